package raf

import "math"

// MulAlgo1 is the cheapest, loosest of the three sound RAF multiplication
// algorithms: it bounds the cross term ||x||_1 * ||y||_1 crudely via the
// sum of absolute noise coefficients, with no attempt to cancel correlated
// terms. Kept for the soundness/tightness comparison spec.md §8 calls for
// ("Algo3's bound width is <= algo2's <= algo1's on all inputs") and as the
// cheap fallback a caller under tight latency constraints may prefer.
//
// Contract: none (total, sound for any two RAFs).
// Complexity: O(min(x.Size(), y.Size())).
func MulAlgo1(x, y Raf) Raf {
	n := minInt(maxSize(x), maxSize(y))
	noise := make([]float64, n)
	var xNormOne, yNormOne float64

	for i := 0; i < n; i++ {
		xi, yi := x.coeffAt(i), y.coeffAt(i)
		xNormOne += math.Abs(xi)
		yNormOne += math.Abs(yi)
		noise[i] = y.C*xi + x.C*yi
	}

	delta := math.Abs(y.C)*x.Delta +
		math.Abs(x.C)*y.Delta +
		(xNormOne+x.Delta)*(yNormOne+y.Delta)

	return Raf{C: x.C * y.C, Noise: noise, Delta: delta, Index: Dense}
}
