package region

import "errors"

var (
	// ErrUnsupportedPerturbation is returned when a Perturbation carries a
	// Kind this package does not implement.
	ErrUnsupportedPerturbation = errors.New("region: unsupported perturbation kind")

	// ErrSizeMismatch is returned when a per-feature perturbation
	// parameter (epsilon vectors, clip bounds, per-sample overrides)
	// disagrees in length with the sample it is applied to.
	ErrSizeMismatch = errors.New("region: size mismatch")

	// ErrInvalidFrameGeometry is returned when a FRAME perturbation's
	// frame dimensions do not fit inside its declared image dimensions.
	ErrInvalidFrameGeometry = errors.New("region: frame larger than image")
)
