package domain

import "errors"

// ErrEmptyMeet is returned by Meet when two supposedly sound bounds for
// the same quantity do not overlap, indicating a soundness bug upstream
// rather than a legitimate empty abstraction.
var ErrEmptyMeet = errors.New("domain: meet of disjoint bounds is empty")
