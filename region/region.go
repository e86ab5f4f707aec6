package region

import (
	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/raf"
)

// AdversarialRegion couples a concrete originating sample with a
// Perturbation, the pair the verifier actually analyzes. Mirrors struct
// adversarial_region (adversarial_region.h).
type AdversarialRegion struct {
	Sample       []float64
	Perturbation Perturbation
}

// New returns the region of every point reachable from sample under p.
func New(sample []float64, p Perturbation) AdversarialRegion {
	return AdversarialRegion{Sample: sample, Perturbation: p}
}

// ToIntervals lifts r into one Interval per feature.
func (r AdversarialRegion) ToIntervals() ([]interval.Interval, error) {
	return Bounds(r.Perturbation, r.Sample)
}

// ToRafs lifts r into one RAF per feature, each with its own noise symbol
// index so that later multiplication across features can express their
// (in this case, trivial — independent-box) correlation exactly; features
// fixed by a Frame perturbation concretize to a zero-radius RAF.
func (r AdversarialRegion) ToRafs() ([]raf.Raf, error) {
	bounds, err := r.ToIntervals()
	if err != nil {
		return nil, err
	}

	out := make([]raf.Raf, len(bounds))
	for i, b := range bounds {
		if b.L == b.U {
			out[i] = raf.Singleton(b.L)
			continue
		}
		out[i] = raf.SparseOf(b.Midpoint(), b.Radius(), i)
	}
	return out, nil
}

// Contains reports whether point lies within r's concrete bounds.
//
// Contract: len(point) == len(r.Sample).
func (r AdversarialRegion) Contains(point []float64) (bool, error) {
	bounds, err := r.ToIntervals()
	if err != nil {
		return false, err
	}
	for i, v := range point {
		if !bounds[i].Contains(v) {
			return false, nil
		}
	}
	return true, nil
}
