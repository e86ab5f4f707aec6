package interval

import "math"

// Add returns x +^Int y.
//
// Contract: none (total on all finite Interval values).
// Complexity: O(1).
func Add(x, y Interval) Interval {
	return Interval{
		L: roundDown(x.L + y.L),
		U: roundUp(x.U + y.U),
	}
}

// Sub returns x -^Int y.
//
// The original source computed the lower bound as x.L - y.L, which is not
// sound in general interval arithmetic (spec.md §9 flags this as a probable
// bug). This implementation uses the standard rule instead:
// [x.L - y.U, x.U - y.L].
//
// Complexity: O(1).
func Sub(x, y Interval) Interval {
	return Interval{
		L: roundDown(x.L - y.U),
		U: roundUp(x.U - y.L),
	}
}

// Mul returns x *^Int y via the eight-sign-region case split.
//
// Contract: none.
// Complexity: O(1).
func Mul(x, y Interval) Interval {
	if (x.L == 0.0 && x.U == 0.0) || (y.L == 0.0 && y.U == 0.0) {
		return Interval{}
	}

	switch {
	case x.L >= 0.0 && y.L >= 0.0:
		return Interval{L: roundDown(x.L * y.L), U: roundUp(x.U * y.U)}
	case x.L >= 0.0 && y.U <= 0.0:
		return Interval{L: roundDown(x.U * y.L), U: roundUp(x.L * y.U)}
	case x.L >= 0.0: // y straddles zero
		return Interval{L: roundDown(x.U * y.L), U: roundUp(x.U * y.U)}
	case x.U <= 0.0 && y.L >= 0.0:
		return Interval{L: roundDown(x.L * y.U), U: roundUp(x.U * y.L)}
	case x.U <= 0.0 && y.U <= 0.0:
		return Interval{L: roundDown(x.U * y.U), U: roundUp(x.L * y.L)}
	case x.U <= 0.0: // y straddles zero
		return Interval{L: roundDown(x.L * y.U), U: roundUp(x.L * y.L)}
	default: // x straddles zero
		switch {
		case y.L >= 0.0:
			return Interval{L: roundDown(x.L * y.U), U: roundUp(x.U * y.U)}
		case y.U <= 0.0:
			return Interval{L: roundDown(x.U * y.L), U: roundUp(x.L * y.L)}
		default: // both straddle zero
			return Interval{
				L: roundDown(math.Min(x.L*y.U, x.U*y.L)),
				U: roundUp(math.Max(x.L*y.L, x.U*y.U)),
			}
		}
	}
}

// Translate returns x +^Int t for a real scalar t.
func Translate(x Interval, t float64) Interval {
	return Interval{L: roundDown(x.L + t), U: roundUp(x.U + t)}
}

// Scale returns s *^Int x for a real scalar s.
func Scale(x Interval, s float64) Interval {
	if s >= 0.0 {
		return Interval{L: roundDown(s * x.L), U: roundUp(s * x.U)}
	}
	return Interval{L: roundDown(s * x.U), U: roundUp(s * x.L)}
}

// FMA computes the fused multiply-add r = (alpha *^Int x) +^Int y.
//
// alpha == 0 is handled by the same case split as a non-zero scale; no
// short-circuit is needed since the arithmetic is already O(1).
func FMA(alpha float64, x, y Interval) Interval {
	if alpha >= 0.0 {
		return Interval{L: roundDown(alpha*x.L + y.L), U: roundUp(alpha*x.U + y.U)}
	}
	return Interval{L: roundDown(alpha*x.U + y.L), U: roundUp(alpha*x.L + y.U)}
}

// Pow returns x^degree via iterated multiplication.
//
// Contract: degree >= 1. Pow(x, 0) is not defined by spec.md and is not
// called anywhere in this codebase; callers needing x^0 should use
// Singleton(1).
//
// Complexity: O(degree).
func Pow(x Interval, degree uint) Interval {
	r := x
	for i := uint(1); i < degree; i++ {
		r = Mul(r, x)
	}
	return r
}

// Exp returns e^x with outward-rounded endpoints. exp is monotonic, so the
// bounds are simply the images of the endpoints.
func Exp(x Interval) Interval {
	return Interval{L: roundDown(math.Exp(x.L)), U: roundUp(math.Exp(x.U))}
}
