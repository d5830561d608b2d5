//go:build debug

// Package dbg provides a build-tag-gated debug logger, adapted from the
// mikenye/geom2d "//go:build debug" log_debug.go: a dedicated logger
// instance that is entirely compiled out of non-debug builds rather than
// gated by a runtime flag.
package dbg

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[akatsuki DEBUG] ", log.LstdFlags)

// Printf logs a debug message. Compiled to nothing unless the binary is
// built with -tags debug.
func Printf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
