package raf

import "math"

// MulAlgo2 improves on MulAlgo1 by folding the correlated part of the cross
// term (sum of x_i*y_i, and its absolute-value counterpart) into the center
// and residual respectively, rather than treating every noise pair as
// uncorrelated worst case.
//
// Contract: none.
// Complexity: O(min(x.Size(), y.Size())).
func MulAlgo2(x, y Raf) Raf {
	n := minInt(maxSize(x), maxSize(y))
	noise := make([]float64, n)
	var xNormOne, yNormOne, xy, xyAbs float64

	for i := 0; i < n; i++ {
		xi, yi := x.coeffAt(i), y.coeffAt(i)
		xy += xi * yi
		xyAbs += math.Abs(xi * yi)
		xNormOne += math.Abs(xi)
		yNormOne += math.Abs(yi)
		noise[i] = y.C*xi + x.C*yi
	}

	c := x.C*y.C + 0.5*xy
	delta := math.Abs(y.C)*x.Delta +
		math.Abs(x.C)*y.Delta +
		(xNormOne+x.Delta)*(yNormOne+y.Delta) -
		0.5*xyAbs

	return Raf{C: c, Noise: noise, Delta: delta, Index: Dense}
}
