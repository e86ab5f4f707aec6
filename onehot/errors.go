package onehot

import "errors"

var (
	// ErrSizeMismatch is returned when a tier definition's length disagrees
	// with the feature vector it is applied to.
	ErrSizeMismatch = errors.New("onehot: tier size mismatch")

	// ErrOneHotConstraintViolated is returned when a feature flagged as
	// one-hot does not concretize to exactly 0, exactly 1, or the full
	// [0, 1] interval (the only shapes a sound one-hot feature can take
	// before perturbation).
	ErrOneHotConstraintViolated = errors.New("onehot: one-hot constraint violated")

	// ErrMultipleNoiseSymbols is returned when a one-hot RAF feature has
	// more than one live noise coefficient, which the sparse zero/one
	// encoding this package relies on cannot represent.
	ErrMultipleNoiseSymbols = errors.New("onehot: one-hot RAF has multiple noise symbols")
)
