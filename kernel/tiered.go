package kernel

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/onehot"
	"github.com/abstractsvm/svmverify/raf"
)

// AbstractComputeIntervalTiered lifts k over the Interval domain the way
// AbstractComputeInterval does, except that coordinates sharing a one-hot
// tier are not summed independently: per spec.md §4.3/§4.4, each tier's
// per-coordinate contributions are first merged via onehot.IntervalizeTier
// into the single interval bounding every admissible one-hot assignment,
// and that merged interval is added to the running sum exactly once
// (summing it once per member coordinate, as a naive per-coordinate lift
// would, overcounts the tier's contribution by its member count).
//
// Contract: len(x) == len(y) == tiers.Size() == len(origins).
func AbstractComputeIntervalTiered(k Kernel, x []interval.Interval, y []float64, tiers onehot.TierSet, origins []onehot.Origin) (interval.Interval, error) {
	if len(x) != len(y) {
		return interval.Interval{}, fmt.Errorf("AbstractComputeIntervalTiered: %w", ErrSizeMismatch)
	}

	switch k.Type {
	case Linear:
		return tieredIntervalSum(perCoordinateLinear(x, y), tiers, origins), nil
	case RBF:
		sum := tieredIntervalSum(perCoordinateSquaredDiff(x, y), tiers, origins)
		return interval.Exp(interval.Scale(sum, -k.Gamma)), nil
	case Polynomial:
		sum := tieredIntervalSum(perCoordinateLinear(x, y), tiers, origins)
		return interval.Pow(interval.Translate(sum, k.C), k.Degree), nil
	default:
		return interval.Interval{}, fmt.Errorf("AbstractComputeIntervalTiered: type %d: %w", k.Type, ErrUnsupportedType)
	}
}

func perCoordinateLinear(x []interval.Interval, y []float64) []interval.Interval {
	terms := make([]interval.Interval, len(x))
	for i := range x {
		terms[i] = interval.Scale(x[i], y[i])
	}
	return terms
}

func perCoordinateSquaredDiff(x []interval.Interval, y []float64) []interval.Interval {
	terms := make([]interval.Interval, len(x))
	for i := range x {
		terms[i] = interval.Pow(interval.Translate(x[i], -y[i]), 2)
	}
	return terms
}

// tieredIntervalSum sums per-coordinate contribution terms, replacing each
// one-hot tier's member contributions with their single merged bound
// (spec.md §4.3's tier-level interval) rather than summing them term by
// term.
func tieredIntervalSum(terms []interval.Interval, tiers onehot.TierSet, origins []onehot.Origin) interval.Interval {
	sum := interval.Singleton(0)
	visited := make(map[int]bool)

	for i := range terms {
		if !tiers.IsOneHot(i) {
			sum = interval.Add(sum, terms[i])
			continue
		}
		tid := tiers.TierOf(i)
		if visited[tid] {
			continue
		}
		visited[tid] = true

		members := tiers.Members(i)
		memberTerms := make([]interval.Interval, len(members))
		memberOrigins := make([]onehot.Origin, len(members))
		for k, m := range members {
			memberTerms[k] = terms[m]
			memberOrigins[k] = origins[m]
		}
		sum = interval.Add(sum, onehot.IntervalizeTier(memberTerms, memberOrigins))
	}
	return sum
}

// AbstractComputeRafTiered is the RAF analogue of
// AbstractComputeIntervalTiered, merging each one-hot tier's per-coordinate
// RAF contributions via onehot.RafizeTier before summing.
//
// Contract: len(x) == len(y) == tiers.Size() == len(origins).
func AbstractComputeRafTiered(k Kernel, x []raf.Raf, y []float64, tiers onehot.TierSet, origins []onehot.Origin) (raf.Raf, error) {
	if len(x) != len(y) {
		return raf.Raf{}, fmt.Errorf("AbstractComputeRafTiered: %w", ErrSizeMismatch)
	}

	switch k.Type {
	case Linear:
		return tieredRafSum(perCoordinateLinearRaf(x, y), tiers, origins), nil
	case RBF:
		sum := tieredRafSum(perCoordinateSquaredDiffRaf(x, y), tiers, origins)
		return raf.Exp(raf.Scale(sum, -k.Gamma)), nil
	case Polynomial:
		sum := tieredRafSum(perCoordinateLinearRaf(x, y), tiers, origins)
		return raf.Pow(raf.Translate(sum, k.C), k.Degree), nil
	default:
		return raf.Raf{}, fmt.Errorf("AbstractComputeRafTiered: type %d: %w", k.Type, ErrUnsupportedType)
	}
}

func perCoordinateLinearRaf(x []raf.Raf, y []float64) []raf.Raf {
	terms := make([]raf.Raf, len(x))
	for i := range x {
		terms[i] = raf.Scale(x[i], y[i])
	}
	return terms
}

func perCoordinateSquaredDiffRaf(x []raf.Raf, y []float64) []raf.Raf {
	terms := make([]raf.Raf, len(x))
	for i := range x {
		terms[i] = raf.Sqr(raf.Translate(x[i], -y[i]))
	}
	return terms
}

func tieredRafSum(terms []raf.Raf, tiers onehot.TierSet, origins []onehot.Origin) raf.Raf {
	sum := raf.Singleton(0)
	visited := make(map[int]bool)

	for i := range terms {
		if !tiers.IsOneHot(i) {
			sum = raf.Add(sum, terms[i])
			continue
		}
		tid := tiers.TierOf(i)
		if visited[tid] {
			continue
		}
		visited[tid] = true

		members := tiers.Members(i)
		memberTerms := make([]raf.Raf, len(members))
		memberOrigins := make([]onehot.Origin, len(members))
		for k, m := range members {
			memberTerms[k] = terms[m]
			memberOrigins[k] = origins[m]
		}
		sum = raf.Add(sum, onehot.RafizeTier(memberTerms, memberOrigins, tiers.Size()+tid))
	}
	return sum
}
