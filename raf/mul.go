package raf

// Mul computes x *^Raf y using the default, tightest algorithm (MulAlgo3).
// Use MulAlgo1/MulAlgo2 directly when comparing bound tightness or cost.
func Mul(x, y Raf) Raf {
	return MulAlgo3(x, y)
}

// Sqr computes x^2. If x is sparse (a single live noise symbol), the exact
// closed form from spec.md §4.2 is used instead of a generic Mul(x, x):
// c = x.c^2, a_k = 2*x.c*x.a_k, delta = x.a_k^2. The closed form is not
// tighter than Mul(x, x): for c = 0.5, a_k = 0.2 it bounds x^2 by
// [0.01, 0.49], while MulAlgo3 gives [0.05, 0.49].
func Sqr(x Raf) Raf {
	if x.Index >= 0 && len(x.Noise) > 0 {
		return Raf{
			C:     x.C * x.C,
			Noise: []float64{2 * x.C * x.Noise[0]},
			Delta: x.Noise[0] * x.Noise[0],
			Index: x.Index,
		}
	}
	return Mul(x, x)
}

// Pow computes x^d via binary exponentiation: x^(d/2) squared, times x if d
// is odd, mirroring raf_pow's halve-square-correct structure.
//
// Contract: d >= 1.
// Complexity: O(log d) multiplications.
func Pow(x Raf, d uint) Raf {
	if d == 1 {
		return x.Copy()
	}

	half := Pow(x, d/2)
	r := Sqr(half)
	if d%2 == 1 {
		r = Mul(r, x)
	}
	return r
}
