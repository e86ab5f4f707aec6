package raf

import (
	"math"

	"github.com/abstractsvm/svmverify/interval"
)

// Midpoint returns the center of r, i.e. r.C.
func (r Raf) Midpoint() float64 {
	return r.C
}

// Radius returns |delta| + sum(|a_i|), the total noise magnitude of r.
//
// Complexity: O(r.Size()).
func (r Raf) Radius() float64 {
	radius := math.Abs(r.Delta)
	if r.Index >= 0 {
		if len(r.Noise) > 0 {
			radius += math.Abs(r.Noise[0])
		}
		return radius
	}
	for _, a := range r.Noise {
		radius += math.Abs(a)
	}
	return radius
}

// ToInterval concretizes r into the tightest Interval containing gamma(r):
// [c - radius, c + radius].
func (r Raf) ToInterval() interval.Interval {
	mid, rad := r.Midpoint(), r.Radius()
	return interval.Interval{L: mid - rad, U: mid + rad}
}

// FromInterval lifts x into a Raf with `size` noise slots, all zero: the
// midpoint becomes the center and the radius becomes the residual delta, so
// no correlation with any other RAF is (falsely) implied.
func FromInterval(x interval.Interval, size int) Raf {
	return Raf{
		C:     x.Midpoint(),
		Noise: make([]float64, size),
		Delta: x.Radius(),
		Index: Dense,
	}
}
