package kernel

import (
	"fmt"

	"github.com/abstractsvm/svmverify/raf"
)

// AbstractComputeRaf lifts k over the RAF domain: x is an abstract
// (possibly perturbed, noise-correlated) sample, y a concrete support
// vector.
//
// Contract: len(x) == len(y).
// Complexity: O(size^2) for RBF/Polynomial (each Sqr/Mul call is
// O(x.Size())); O(size) for Linear.
func AbstractComputeRaf(k Kernel, x []raf.Raf, y []float64) (raf.Raf, error) {
	if len(x) != len(y) {
		return raf.Raf{}, fmt.Errorf("AbstractComputeRaf: %w", ErrSizeMismatch)
	}

	switch k.Type {
	case Linear:
		return rafLinear(x, y), nil
	case RBF:
		sum := rafSquaredDistance(x, y)
		return raf.Exp(raf.Scale(sum, -k.Gamma)), nil
	case Polynomial:
		base := raf.Translate(rafLinear(x, y), k.C)
		return raf.Pow(base, k.Degree), nil
	default:
		return raf.Raf{}, fmt.Errorf("AbstractComputeRaf: type %d: %w", k.Type, ErrUnsupportedType)
	}
}

func rafLinear(x []raf.Raf, y []float64) raf.Raf {
	sum := raf.Singleton(0)
	for i := range x {
		sum = raf.Add(sum, raf.Scale(x[i], y[i]))
	}
	return sum
}

func rafSquaredDistance(x []raf.Raf, y []float64) raf.Raf {
	sum := raf.Singleton(0)
	for i := range x {
		diff := raf.Translate(x[i], -y[i])
		sum = raf.Add(sum, raf.Sqr(diff))
	}
	return sum
}
