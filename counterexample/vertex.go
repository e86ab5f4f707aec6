package counterexample

import (
	"fmt"
	"math"

	"github.com/abstractsvm/svmverify/classifier"
	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/svm"
)

// VertexHeuristic searches a handful of vertices of the box bounds for a
// counterexample, adapting robustness_vertex_heuristic
// (robustness_vertex_heuristic.c): rather than reusing the original's
// single, pair-agnostic derivative sign, each feature's direction is
// chosen independently by whichever extreme value pushes the sample's
// score vector furthest (in L1 distance) from its value at sample — the
// two single-sided extremes (every feature low, every
// feature high) are tried first as cheap baselines.
//
// Contract: len(sample) == len(bounds) == model.SpaceSize.
func VertexHeuristic(model svm.Model, sample []float64, bounds []interval.Interval) (Counterexample, bool, error) {
	if len(sample) != len(bounds) {
		return Counterexample{}, false, fmt.Errorf("VertexHeuristic: %w", ErrSizeMismatch)
	}

	original, err := classifier.Predict(model, sample)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("VertexHeuristic: %w", err)
	}

	centerScore, err := model.Score(sample)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("VertexHeuristic: %w", err)
	}

	lower := make([]float64, len(sample))
	upper := make([]float64, len(sample))
	mixed := make([]float64, len(sample))
	for i, b := range bounds {
		lower[i] = b.L
		upper[i] = b.U

		candidate := append([]float64(nil), sample...)
		candidate[i] = b.L
		scoreL, err := model.Score(candidate)
		if err != nil {
			return Counterexample{}, false, fmt.Errorf("VertexHeuristic: %w", err)
		}
		candidate[i] = b.U
		scoreU, err := model.Score(candidate)
		if err != nil {
			return Counterexample{}, false, fmt.Errorf("VertexHeuristic: %w", err)
		}

		if l1Distance(scoreL, centerScore) >= l1Distance(scoreU, centerScore) {
			mixed[i] = b.L
		} else {
			mixed[i] = b.U
		}
	}

	for _, candidate := range [][]float64{lower, upper, mixed} {
		changed, err := classifier.ChangesLabel(model, original, candidate)
		if err != nil {
			return Counterexample{}, false, fmt.Errorf("VertexHeuristic: %w", err)
		}
		if changed {
			return Counterexample{A: append([]float64(nil), sample...), B: candidate}, true, nil
		}
	}

	return Counterexample{}, false, nil
}

func l1Distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}
