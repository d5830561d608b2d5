//go:build !debug

package dbg

// Printf is a no-op outside debug builds, so call sites never need a
// build tag of their own.
func Printf(format string, v ...interface{}) {}
