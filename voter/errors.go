package voter

import "errors"

// ErrSizeMismatch is returned when the supplied pairwise-score slice does
// not have exactly n*(n-1)/2 entries for the given class count.
var ErrSizeMismatch = errors.New("voter: pairwise score count does not match class count")
