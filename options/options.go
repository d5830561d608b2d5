// Package options provides the functional-options pattern used to
// configure the validator without widening its function signature.
//
// The geometry core itself takes no options: every predicate in this
// module is exact, so there is no epsilon to tune. The one runtime switch
// the judge actually needs is whether to run the normalized-folding check
// (§4.V predicate 7), which is enabled while compiling a solution into a
// problem and disabled while evaluating a solution against an existing
// problem. ValidateOptions carries that switch the same way geom2d's
// GeometryOptions carried a tolerance.
package options

// ValidateOptionsFunc mutates a ValidateOptions in place. Callers pass a
// variadic slice of these to Validate.
type ValidateOptionsFunc func(*ValidateOptions)

// ValidateOptions collects the validator's configurable behavior.
type ValidateOptions struct {
	// CheckNormalizedFolding enables predicate 7, which requires that for
	// every source edge shared by exactly two facets, the product of the
	// two facets' signs differs between source and destination.
	// Default: false.
	CheckNormalizedFolding bool
}

// Apply folds a variadic slice of ValidateOptionsFunc onto a defaults
// struct, in order, and returns the result.
func Apply(defaults ValidateOptions, opts ...ValidateOptionsFunc) ValidateOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
