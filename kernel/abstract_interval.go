package kernel

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
)

// AbstractComputeInterval lifts k over the Interval domain: x is an
// abstract (possibly perturbed) sample, y a concrete support vector.
//
// Contract: len(x) == len(y).
// Complexity: O(size).
func AbstractComputeInterval(k Kernel, x []interval.Interval, y []float64) (interval.Interval, error) {
	if len(x) != len(y) {
		return interval.Interval{}, fmt.Errorf("AbstractComputeInterval: %w", ErrSizeMismatch)
	}

	switch k.Type {
	case Linear:
		return intervalLinear(x, y), nil
	case RBF:
		sum := intervalSquaredDistance(x, y)
		return interval.Exp(interval.Scale(sum, -k.Gamma)), nil
	case Polynomial:
		base := interval.Translate(intervalLinear(x, y), k.C)
		return interval.Pow(base, k.Degree), nil
	default:
		return interval.Interval{}, fmt.Errorf("AbstractComputeInterval: type %d: %w", k.Type, ErrUnsupportedType)
	}
}

func intervalLinear(x []interval.Interval, y []float64) interval.Interval {
	sum := interval.Singleton(0)
	for i := range x {
		sum = interval.Add(sum, interval.Scale(x[i], y[i]))
	}
	return sum
}

func intervalSquaredDistance(x []interval.Interval, y []float64) interval.Interval {
	sum := interval.Singleton(0)
	for i := range x {
		diff := interval.Translate(x[i], -y[i])
		sum = interval.Add(sum, interval.Pow(diff, 2))
	}
	return sum
}
