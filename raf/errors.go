package raf

import "errors"

// Sentinel errors for the raf package, in the teacher's "pkg: message"
// convention (see matrix/errors.go in the teacher corpus).
var (
	// ErrSizeMismatch names a disagreement between two RAFs' noise-vector
	// sizes. No function in this package currently returns it: Copy and
	// the arithmetic ops accept operands of any sizes and never fail.
	ErrSizeMismatch = errors.New("raf: noise vector size mismatch")

	// ErrInvalidSize indicates New was called with a size that cannot
	// back a noise vector (negative, or nonsensically huge for an
	// allocation the caller clearly mistyped).
	ErrInvalidSize = errors.New("raf: invalid noise vector size")
)
