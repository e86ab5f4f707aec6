package dataset

import "errors"

var (
	// ErrMalformedHeader is returned when the "# <rows> <cols>" header is
	// missing or unparseable.
	ErrMalformedHeader = errors.New("dataset: malformed header")
	// ErrMalformedRow is returned when a data row does not have the
	// expected number of comma-separated fields.
	ErrMalformedRow = errors.New("dataset: malformed row")
	// ErrMalformedTiers is returned when a tier file's integers are
	// missing, negative, non-numeric, or the tier ids are not
	// monotonically non-decreasing.
	ErrMalformedTiers = errors.New("dataset: malformed tier file")
	// ErrMalformedPerturbation is returned when a FROM_FILE perturbation
	// line does not hold the expected number of "[l;u]" tokens.
	ErrMalformedPerturbation = errors.New("dataset: malformed perturbation file")
)
