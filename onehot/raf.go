package onehot

import (
	"fmt"
	"math"

	"github.com/abstractsvm/svmverify/raf"
)

const sanityEps = 1e-7

// liveNoise returns x's single noise coefficient, or 0 if x carries none
// (the raf.Singleton shape a zero-width, unperturbed feature collapses
// to).
func liveNoise(x raf.Raf) float64 {
	if len(x.Noise) == 0 {
		return 0
	}
	return x.Noise[0]
}

// ClassifyRafs validates that every feature flagged one-hot in tiers is a
// sparse RAF of shape c=0,noise=0 (OriginZero), c=1,noise=0 (OriginOne), or
// c=0.5,noise=0.5 (OriginMixed), and returns each feature's Origin. Mirrors
// Raf_sanityCheck (one_hot_raf.c).
func ClassifyRafs(tiers TierSet, xs []raf.Raf) ([]Origin, error) {
	if len(xs) != tiers.Size() {
		return nil, fmt.Errorf("ClassifyRafs: %w", ErrSizeMismatch)
	}

	origins := make([]Origin, len(xs))
	for i, x := range xs {
		if !tiers.IsOneHot(i) {
			origins[i] = OriginMixed
			continue
		}

		// A feature with no live noise symbol at all (raf.Singleton, the
		// shape region.ToRafs produces for a coordinate pinned by a
		// zero-width perturbation) is the degenerate case of exactly 0 or
		// exactly 1, with no ambiguity to classify against Noise[0].
		if x.Radius() == 0 {
			switch {
			case math.Abs(x.C) < sanityEps:
				origins[i] = OriginZero
			case math.Abs(x.C-1) < sanityEps:
				origins[i] = OriginOne
			default:
				return nil, fmt.Errorf("ClassifyRafs: feature %d RAF c=%g: %w", i, x.C, ErrOneHotConstraintViolated)
			}
			continue
		}
		if x.Index < 0 {
			return nil, fmt.Errorf("ClassifyRafs: feature %d: %w", i, ErrMultipleNoiseSymbols)
		}
		noise := x.Noise[0]
		switch {
		case math.Abs(noise) < sanityEps && math.Abs(x.C) < sanityEps:
			origins[i] = OriginZero
		case math.Abs(noise) < sanityEps && math.Abs(x.C-1) < sanityEps:
			origins[i] = OriginOne
		case math.Abs(noise-0.5) < sanityEps && math.Abs(x.C-0.5) < sanityEps:
			origins[i] = OriginMixed
		default:
			return nil, fmt.Errorf("ClassifyRafs: feature %d RAF c=%g noise=%g: %w", i, x.C, noise, ErrOneHotConstraintViolated)
		}
	}
	return origins, nil
}

// OHRafExponent computes e^x for a one-hot RAF x, sound for the same
// two-endpoint reason as the plain interval case: x's two concretizations
// are exactly x.C-x.Noise[0] (the "0" origin) and x.C+x.Noise[0] (the "1"
// origin), so exp must be evaluated at each endpoint separately rather
// than linearized once around the center. Mirrors ohraf_exponent
// (one_hot_raf.c).
func OHRafExponent(x raf.Raf) raf.Raf {
	zero := math.Exp(x.C - x.Noise[0])
	one := math.Exp(x.C + x.Noise[0])
	return raf.Raf{
		C:     0.5 * (one + zero),
		Noise: []float64{0.5 * (one - zero)},
		Delta: x.Delta,
		Index: x.Index,
	}
}

// OHRafPow computes x^degree for a one-hot RAF x, evaluating the power at
// the two distinct endpoints x.C-x.Noise[0] and x.C+x.Noise[0] rather than
// collapsing to a single midpoint evaluation. Mirrors ohraf_pow
// (one_hot_raf.c).
func OHRafPow(x raf.Raf, degree uint) raf.Raf {
	zero := math.Pow(x.C-x.Noise[0], float64(degree))
	one := math.Pow(x.C+x.Noise[0], float64(degree))
	return raf.Raf{
		C:     0.5 * (one + zero),
		Noise: []float64{0.5 * (one - zero)},
		Delta: x.Delta,
		Index: x.Index,
	}
}

// RafizeTier merges the per-feature one-hot RAFs of a single tier into one
// RAF bounding every valid one-hot assignment's contribution, the RAF
// analogue of IntervalizeTier. Mirrors ohraf_Rafize (one_hot_raf.c).
//
// freshIndex is the noise-symbol index given to the merged result's single
// coefficient. Spec.md §4.3 calls this "a fresh tier noise symbol": the
// caller must pick an index no input feature's own RAF ever uses (e.g. an
// id space starting past the sample's feature count), since reusing a live
// feature index here would make a later raf.Add's same-index fast path
// treat this tier's contribution as correlated with that unrelated
// feature's noise, silently (and unsoundly) cancelling width that should
// not cancel.
func RafizeTier(xs []raf.Raf, origins []Origin, freshIndex int) raf.Raf {
	var min, max float64
	first := true

	for i := range xs {
		if origins[i] == OriginZero {
			continue
		}
		val := xs[i].C + liveNoise(xs[i]) // value originating from 1
		quit := false
		for j := range xs {
			if i == j {
				continue
			}
			if origins[j] == OriginOne {
				quit = true
				break
			}
			val += xs[j].C - liveNoise(xs[j]) // value originating from 0
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

	return raf.Raf{
		C:     0.5 * (min + max),
		Noise: []float64{0.5 * (max - min)},
		Delta: 0,
		Index: freshIndex,
	}
}
