package counterexample

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/svm"
)

// Strategy selects which search procedure Seek uses. Mirrors
// CounterExampleType (counterexample_seeker.h), specialized to the
// strategies this module implements.
type Strategy int

const (
	// VertexOnly tries only the cheap single-pass vertex heuristic.
	VertexOnly Strategy = iota
	// DivideAndConquerStrategy recursively bisects the region when the
	// vertex heuristic fails, at the cost of repeated re-analysis.
	DivideAndConquerStrategy
)

// Seek searches bounds for a counterexample using strategy. Mirrors
// counterexample_seeker_search's dispatch (counterexample_seeker.c).
//
// Contract: len(sample) == len(bounds) == model.SpaceSize.
func Seek(model svm.Model, sample []float64, bounds []interval.Interval, strategy Strategy) (Counterexample, bool, error) {
	switch strategy {
	case VertexOnly:
		return VertexHeuristic(model, sample, bounds)
	case DivideAndConquerStrategy:
		return DivideAndConquer(model, sample, bounds)
	default:
		return Counterexample{}, false, fmt.Errorf("Seek: unsupported strategy %d", strategy)
	}
}
