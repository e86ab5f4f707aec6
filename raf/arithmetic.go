package raf

import "math"

// minInt returns the smaller of a, b.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Add returns x +^Raf y.
//
// Noise coefficients are added pointwise over the larger of the two
// operands' noise-arena sizes (see maxSize); a symbol beyond one operand's
// size counts as 0 for it, so adding a Singleton or a sparse Raf keeps
// every coefficient of the other operand. Centers and residuals simply add.
//
// Contract: none. Unlike the C original's raf_add(r, x, y) writing into a
// caller-owned buffer, this returns a fresh Raf.
// Complexity: O(max(maxSize(x), maxSize(y))).
func Add(x, y Raf) Raf {
	if x.Index >= 0 && y.Index >= 0 {
		if x.Index == y.Index {
			return SparseOf(x.C+y.C, x.Noise[0]+y.Noise[0], x.Index)
		}
		return addDense(x, y)
	}
	return addDense(x, y)
}

func addDense(x, y Raf) Raf {
	size := max(maxSize(x), maxSize(y))
	noise := make([]float64, size)
	for i := 0; i < size; i++ {
		noise[i] = x.coeffAt(i) + y.coeffAt(i)
	}
	return Raf{C: x.C + y.C, Noise: noise, Delta: x.Delta + y.Delta, Index: Dense}
}

// maxSize returns the declared noise-arena size of r: for a sparse Raf this
// is Index+1 (the highest symbol it could possibly reference), for dense
// it's len(Noise).
func maxSize(r Raf) int {
	if r.Index >= 0 {
		return r.Index + 1
	}
	return len(r.Noise)
}

// Sub returns x -^Raf y.
//
// Like Add, it covers the larger of the two noise-arena sizes.
//
// Complexity: O(max(maxSize(x), maxSize(y))).
func Sub(x, y Raf) Raf {
	size := max(maxSize(x), maxSize(y))
	noise := make([]float64, size)
	for i := 0; i < size; i++ {
		noise[i] = x.coeffAt(i) - y.coeffAt(i)
	}
	return Raf{C: x.C - y.C, Noise: noise, Delta: x.Delta + y.Delta, Index: Dense}
}

// Translate returns x +^Raf t for a real scalar t: only the center shifts.
func Translate(x Raf, t float64) Raf {
	return Raf{C: x.C + t, Noise: append([]float64(nil), x.Noise...), Delta: x.Delta, Index: x.Index}
}

// Scale returns s *^Raf x for a real scalar s.
//
// Complexity: O(x.Size()).
func Scale(x Raf, s float64) Raf {
	noise := make([]float64, len(x.Noise))
	for i, a := range x.Noise {
		noise[i] = s * a
	}
	return Raf{C: s * x.C, Noise: noise, Delta: math.Abs(s * x.Delta), Index: x.Index}
}

// FMA computes r = (alpha *^Raf x) +^Raf y.
//
// alpha == 0 short-circuits to a copy of y, mirroring raf_fma's explicit
// fast path (avoiding a multiply-by-zero walk over x's noise vector).
//
// Contract: none.
// Complexity: O(y.Size()) if alpha == 0 (the copy of y); otherwise
// O(max(maxSize(x), maxSize(y))), on the sparse-x path as well, since y's
// coefficients are copied into the result.
func FMA(alpha float64, x, y Raf) Raf {
	if alpha == 0.0 {
		return y.Copy()
	}

	c := alpha*x.C + y.C
	delta := math.Abs(alpha*x.Delta) + y.Delta

	if x.Index >= 0 {
		size := maxSize(y)
		if x.Index+1 > size {
			size = x.Index + 1
		}
		noise := make([]float64, size)
		for i := 0; i < size; i++ {
			noise[i] = y.coeffAt(i)
		}
		noise[x.Index] += alpha * x.Noise[0]
		return Raf{C: c, Noise: noise, Delta: delta, Index: Dense}
	}

	size := maxSize(x)
	if ys := maxSize(y); ys > size {
		size = ys
	}
	noise := make([]float64, size)
	for i := 0; i < size; i++ {
		noise[i] = alpha*x.coeffAt(i) + y.coeffAt(i)
	}
	return Raf{C: c, Noise: noise, Delta: delta, Index: Dense}
}
