package counterexample

import "errors"

var (
	// ErrSizeMismatch is returned when a bounds slice does not match the
	// classifier's feature space.
	ErrSizeMismatch = errors.New("counterexample: feature size mismatch")
)
