package onehot

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
)

// Origin classifies where a one-hot feature's abstract value could have
// come from before perturbation: the constant 0, the constant 1, or
// (post-perturbation) anywhere in between.
type Origin int

const (
	OriginZero Origin = iota
	OriginOne
	OriginMixed
)

// ClassifyIntervals validates that every feature flagged one-hot in tiers
// concretizes to {0}, {1}, or [0, 1], and returns each feature's Origin
// (non-one-hot features are always OriginMixed). Mirrors
// interval_to_ohint's sanity check (one_hot_interval.c).
func ClassifyIntervals(tiers TierSet, xs []interval.Interval) ([]Origin, error) {
	if len(xs) != tiers.Size() {
		return nil, fmt.Errorf("ClassifyIntervals: %w", ErrSizeMismatch)
	}

	origins := make([]Origin, len(xs))
	for i, x := range xs {
		if !tiers.IsOneHot(i) {
			origins[i] = OriginMixed
			continue
		}
		switch {
		case x.L == 0 && x.U == 0:
			origins[i] = OriginZero
		case x.L == 1 && x.U == 1:
			origins[i] = OriginOne
		case x.L == 0 && x.U == 1:
			origins[i] = OriginMixed
		default:
			return nil, fmt.Errorf("ClassifyIntervals: feature %d is %s: %w", i, x, ErrOneHotConstraintViolated)
		}
	}
	return origins, nil
}

// IntervalizeTier merges the per-feature intervals of a single tier into
// one Interval bounding the sum of the contributions that every valid
// one-hot assignment of that tier could produce. For each candidate "hot"
// feature i (the one set to 1), the contribution is xs[i].U plus the
// lower bound xs[j].L of every other feature in the tier — unless some
// other feature j is pinned OriginOne, which makes i=1 infeasible and that
// candidate is skipped. Mirrors ohint_intervalize (one_hot_interval.c).
//
// xs and origins must be aligned by index within the tier (i.e. both
// indexed 0..len(xs)-1, not by the global feature id).
func IntervalizeTier(xs []interval.Interval, origins []Origin) interval.Interval {
	var min, max float64
	first := true

	for i := range xs {
		if origins[i] == OriginZero {
			continue
		}
		val := xs[i].U
		quit := false
		for j := range xs {
			if i == j {
				continue
			}
			if origins[j] == OriginOne {
				quit = true
				break
			}
			val += xs[j].L
		}
		if quit {
			continue
		}
		if first {
			first = false
			min, max = val, val
			continue
		}
		if val > max {
			max = val
		}
		if val < min {
			min = val
		}
	}
	return interval.Interval{L: min, U: max}
}
