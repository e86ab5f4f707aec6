package svm

import "errors"

var (
	// ErrUnsupportedClassifierType is returned by Read when the model
	// header names a classifier type other than "ovo": binary and
	// one-versus-rest models are not supported by the verifier.
	ErrUnsupportedClassifierType = errors.New("svm: unsupported classifier type")

	// ErrUnsupportedKernelName is returned by Read when the kernel line
	// names something other than "linear", "rbf", or "polynomial".
	ErrUnsupportedKernelName = errors.New("svm: unsupported kernel name")

	// ErrMalformedModel is returned when the model stream ends early or
	// contains a token that cannot be parsed as the expected type.
	ErrMalformedModel = errors.New("svm: malformed model")

	// ErrFeatureSizeMismatch is returned by Score/Classify when a sample's
	// length disagrees with the model's feature-space size.
	ErrFeatureSizeMismatch = errors.New("svm: feature size mismatch")

	// ErrNotLinear is returned by Coefficients when the model does not use
	// the linear kernel, so no primal weight vector was precomputed.
	ErrNotLinear = errors.New("svm: primal coefficients require a linear kernel")
)
