package raf

import "math"

// Exp computes e^x via a Chebyshev-optimal affine linearization over x's
// concretization interval (spec.md §4.2). The affine approximation
// e^t ~= alpha*t + zeta minimizes the maximum absolute error on [X.L, X.U];
// that worst-case error becomes the result's residual.
//
// The original C source additionally computed a pair of identical
// "a"/"b" endpoint variables when propagating alpha through x's noise
// coefficients and the center; since both were always computed from the
// same expression they contributed exactly zero to the residual and are
// omitted here as dead code (spec.md §9's guidance on tierize_raf_helper's
// unused "range" accumulator applies equally to this pattern).
//
// Contract: none.
// Complexity: O(x.Size()).
func Exp(x Raf) Raf {
	X := x.ToInterval()

	if X.L == X.U {
		return Raf{C: math.Exp(X.L), Noise: make([]float64, len(x.Noise)), Delta: 0, Index: Dense}
	}

	eA, eB := math.Exp(X.L), math.Exp(X.U)
	w := math.Abs(X.U - X.L)
	alpha := (eB - eA) / w

	var dMin, dMax float64
	switch {
	case alpha == 0:
		dMin, dMax = eA, eB
	case alpha >= eB:
		dMin = math.Exp(X.U) - alpha*X.U
		dMax = math.Exp(X.L) - alpha*X.L
	default:
		dA := math.Exp(X.L) - alpha*X.L
		dB := eB - alpha*X.U
		dMin = alpha * (1 - math.Log(alpha))
		dMax = math.Max(dA, dB)
	}

	zeta := (dMin + dMax) * 0.5
	residual := (dMax - dMin) * 0.5

	noise := make([]float64, len(x.Noise))
	for i, a := range x.Noise {
		noise[i] = alpha * a
	}

	return Raf{
		C:     alpha*x.C + zeta,
		Noise: noise,
		Delta: alpha*x.Delta + residual,
		Index: x.Index,
	}
}
