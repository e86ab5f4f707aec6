package kernel

import "errors"

var (
	// ErrUnsupportedType is returned by Compute/AbstractCompute* when a
	// Kernel carries a Type outside the known {Linear, RBF, Polynomial}
	// set.
	ErrUnsupportedType = errors.New("kernel: unsupported kernel type")

	// ErrSizeMismatch is returned when x and y (or an abstract x and a
	// concrete y) disagree in feature count.
	ErrSizeMismatch = errors.New("kernel: vector size mismatch")
)
