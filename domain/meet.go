package domain

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
)

// Meet intersects two sound bounds for the same underlying quantity,
// returning the tightest Interval both agree is safe: [max(a.L, b.L),
// min(a.U, b.U)]. Both inputs are assumed independently sound, so their
// true intersection can never be empty; a negative-width result signals an
// upstream soundness defect rather than a legitimate outcome.
//
// Complexity: O(1).
func Meet(a, b interval.Interval) (interval.Interval, error) {
	l := a.L
	if b.L > l {
		l = b.L
	}
	u := a.U
	if b.U < u {
		u = b.U
	}
	if l > u {
		return interval.Interval{}, fmt.Errorf("Meet([%g,%g], [%g,%g]): %w", a.L, a.U, b.L, b.U, ErrEmptyMeet)
	}
	return interval.Interval{L: l, U: u}, nil
}
