package kernel

import (
	"fmt"
	"math"
)

// Compute evaluates k on two concrete, equal-length feature vectors.
//
// Contract: len(x) == len(y).
// Complexity: O(size).
func Compute(k Kernel, x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Compute: %w", ErrSizeMismatch)
	}

	switch k.Type {
	case Linear:
		return computeLinear(x, y), nil
	case RBF:
		return computeRBF(x, y, k.Gamma), nil
	case Polynomial:
		return math.Pow(computeLinear(x, y)+k.C, float64(k.Degree)), nil
	default:
		return 0, fmt.Errorf("Compute: type %d: %w", k.Type, ErrUnsupportedType)
	}
}

func computeLinear(x, y []float64) float64 {
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

func computeRBF(x, y []float64, gamma float64) float64 {
	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return math.Exp(-gamma * sum)
}
