package interval

import "errors"

// Sentinel errors for the interval package, following the teacher's
// "pkg: message" convention (see matrix/errors.go in the teacher corpus) so
// callers can match failures with errors.Is regardless of wrapping.
var (
	// ErrRounding indicates that outward-rounding primitives could not be
	// established for the current build (NumericError in spec taxonomy).
	// The portable ULP-inflation strategy in rounding.go never actually
	// triggers this; it exists so callers that select a hardware
	// round-mode strategy via a build tag have a sentinel to report.
	ErrRounding = errors.New("interval: rounding mode unavailable")

	// ErrInvalidBounds indicates a caller attempted to construct an
	// interval with L > U.
	ErrInvalidBounds = errors.New("interval: lower bound exceeds upper bound")
)
