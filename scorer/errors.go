package scorer

import "errors"

// ErrSizeMismatch is returned when an abstract sample's feature count
// disagrees with the model's declared space size.
var ErrSizeMismatch = errors.New("scorer: feature size mismatch")
