package svmverify

import "errors"

// Top-level sentinels for the error classes spec.md §7 designates as
// fatal to the whole process rather than to a single sample: malformed
// invocation, malformed input files, and allocation failure. Package-level
// errors (onehot.ErrOneHotConstraintViolated, kernel.ErrUnsupportedType, ...) are
// wrapped into one of these at the cmd/svmverify boundary so main can
// apply one exit-code policy regardless of which package detected the
// problem.
var (
	// ErrUsage marks a command-line invocation error: missing or
	// unparseable arguments, a file that does not exist, or an
	// unrecognized abstraction/perturbation name.
	ErrUsage = errors.New("svmverify: usage error")

	// ErrParse marks a malformed SVM model, dataset, tier, or
	// perturbation file.
	ErrParse = errors.New("svmverify: parse error")

	// ErrAllocation marks a failure to allocate scratch state a run
	// needs (e.g. a noise-vector buffer sized from a corrupt header).
	ErrAllocation = errors.New("svmverify: allocation error")
)
