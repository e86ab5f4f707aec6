package raf

import "fmt"

// Dense marks a Raf with no single active noise symbol; Index is set to
// Dense whenever more than one noise coefficient may be non-zero.
const Dense = -1

// Raf is a Reduced Affine Form: center C, a noise-coefficient vector Noise
// (shared indices across RAFs derived from the same sample), and a residual
// Delta covering every uncorrelated rounding/nonlinearity error.
//
// Index >= 0 iff exactly one noise coefficient may be non-zero, namely
// Noise[0] bound to symbol index Index; this "sparse" tag lets Add/FMA skip
// a full noise-vector walk the way the original C implementation does.
// Index == Dense otherwise. A sparse Raf's Noise slice still has length 1;
// callers must not index it with anything but 0.
type Raf struct {
	C     float64
	Noise []float64
	Delta float64
	Index int
}

// New allocates a dense Raf of the given noise-vector size, centered at 0.
//
// Complexity: O(size).
func New(size int) (Raf, error) {
	if size < 0 {
		return Raf{}, fmt.Errorf("New(%d): %w", size, ErrInvalidSize)
	}
	return Raf{
		C:     0,
		Noise: make([]float64, size),
		Delta: 0,
		Index: Dense,
	}, nil
}

// Singleton returns a size-0 Raf representing the exact real value.
func Singleton(value float64) Raf {
	return Raf{C: value, Noise: nil, Delta: 0, Index: Dense}
}

// SparseOf returns a Raf with its single noise coefficient coeff bound to
// noise symbol index, i.e. c + coeff*e_index.
func SparseOf(c, coeff float64, index int) Raf {
	return Raf{C: c, Noise: []float64{coeff}, Delta: 0, Index: index}
}

// Size returns the declared length of the noise vector (1 for a sparse
// Raf, matching the original's per-RAF "size" field once reduced to its
// single live coefficient).
func (r Raf) Size() int {
	return len(r.Noise)
}

// Copy returns an independent Raf with the same center, noise vector and
// residual as r (the teacher's Clone-style deep copy convention — see
// core/methods_clone.go).
func (r Raf) Copy() Raf {
	noise := make([]float64, len(r.Noise))
	copy(noise, r.Noise)
	return Raf{C: r.C, Noise: noise, Delta: r.Delta, Index: r.Index}
}

// coeffAt returns the noise coefficient bound to symbol index i, whether r
// is dense (plain slice index) or sparse (single coefficient, 0 elsewhere).
func (r Raf) coeffAt(i int) float64 {
	if r.Index >= 0 {
		if r.Index == i {
			return r.Noise[0]
		}
		return 0
	}
	if i < len(r.Noise) {
		return r.Noise[i]
	}
	return 0
}
