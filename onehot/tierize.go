package onehot

import "github.com/abstractsvm/svmverify/raf"

// TierizeScore reduces a score RAF's per-feature noise coefficients down to
// one coefficient per one-hot tier, and records, for every feature, whether
// setting that feature "hot" drives the score towards its minimum or its
// maximum — the witness information the vertex counterexample heuristic
// needs to build a concrete, one-hot-respecting extreme sample. Features
// outside any one-hot tier are recorded directly from their own noise
// sign. Mirrors tierize_raf / tierize_raf_helper (one_hot_raf.c).
//
// Returns the tierized score, and minExample/maxExample flags (length
// tiers.Size(), one per feature) marking which feature should be pinned to its "1"
// concretization to witness, respectively, the score's minimum and
// maximum.
func TierizeScore(score raf.Raf, tiers TierSet) (raf.Raf, []bool, []bool) {
	n := tiers.Size()
	minExample := make([]bool, n)
	maxExample := make([]bool, n)
	out := score.Copy()

	for i := 0; i < n; i++ {
		if !tiers.IsOneHot(i) {
			if coeffAt(out, i) > 0 {
				maxExample[i] = true
			} else {
				minExample[i] = true
			}
			continue
		}

		members := tiers.Members(i)
		if len(members) == 1 {
			if coeffAt(out, i) > 0 {
				maxExample[i] = true
			} else {
				minExample[i] = true
			}
			continue
		}
		if i != members[0] {
			// Already folded while handling this tier's first member.
			continue
		}

		minID, maxID := tierizeHelper(&out, members)
		minExample[minID] = true
		maxExample[maxID] = true
	}

	return out, minExample, maxExample
}

// coeffAt reads score.Noise[i] defensively (0 past the slice end).
func coeffAt(score raf.Raf, i int) float64 {
	if i < 0 || i >= len(score.Noise) {
		return 0
	}
	return score.Noise[i]
}

// tierizeHelper collapses the noise coefficients of a single tier's
// members into a single coefficient at members[0], tracking which member
// attains the tier-local minimum and maximum. Mirrors tierize_raf_helper.
func tierizeHelper(score *raf.Raf, members []int) (minID, maxID int) {
	var min, max float64
	first := true

	for _, i := range members {
		// Every other member's contribution is subtracted as if it had
		// settled to its "0" concretization, since within a single tier
		// at most one member may be "1" at a time.
		val := score.Noise[i]
		for _, j := range members {
			if i != j {
				val -= score.Noise[j]
			}
		}
		if first {
			first = false
			min, max = val, val
			minID, maxID = i, i
			continue
		}
		if val > max {
			max, maxID = val, i
		}
		if val < min {
			min, minID = val, i
		}
	}

	score.C += 0.5 * (min + max)
	score.Noise[members[0]] = 0.5 * (max - min)
	for _, i := range members[1:] {
		score.Noise[i] = 0
	}
	return minID, maxID
}
