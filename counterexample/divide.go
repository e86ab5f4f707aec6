package counterexample

import (
	"fmt"

	"github.com/abstractsvm/svmverify/classifier"
	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/scorer"
	"github.com/abstractsvm/svmverify/svm"
	"github.com/abstractsvm/svmverify/voter"
)

// MinPartitionFraction is the smallest size, relative to a feature's
// original width, a sub-box may shrink to before DivideAndConquer gives
// up splitting it further. Mirrors the 6% floor robustness_divide_et_impera
// uses to stop recursing once a region has been sliced too thin to be
// worth the extra abstract re-evaluation.
const MinPartitionFraction = 0.06

// MaxPartitionDepth bounds the recursion so a pathological region cannot
// force an unbounded number of re-analyses.
const MaxPartitionDepth = 12

// DivideAndConquer searches bounds for a counterexample by recursively
// bisecting it along its widest feature whenever the interval abstract
// score (scorer.ScoreIntervals) still leaves more than one possible winner, adapting
// robustness_divide_et_impera (robustness_divide_et_impera.c): every
// sub-box is first probed with VertexHeuristic before paying for a
// split, and a sub-box proven to have a single possible winner is
// pruned without recursing into it.
//
// Contract: len(sample) == len(bounds) == model.SpaceSize.
func DivideAndConquer(model svm.Model, sample []float64, bounds []interval.Interval) (Counterexample, bool, error) {
	if len(sample) != len(bounds) {
		return Counterexample{}, false, fmt.Errorf("DivideAndConquer: %w", ErrSizeMismatch)
	}

	original, err := classifier.Predict(model, sample)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("DivideAndConquer: %w", err)
	}

	originalWidths := make([]float64, len(bounds))
	for i, b := range bounds {
		originalWidths[i] = 2 * b.Radius()
	}

	return divideRerun(model, sample, bounds, originalWidths, original, MaxPartitionDepth)
}

func divideRerun(
	model svm.Model,
	sample []float64,
	bounds []interval.Interval,
	originalWidths []float64,
	originalLabel string,
	depth int,
) (Counterexample, bool, error) {
	cx, found, err := VertexHeuristic(model, sample, bounds)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("DivideAndConquer: %w", err)
	}
	if found {
		return cx, true, nil
	}
	if depth == 0 {
		return Counterexample{}, false, nil
	}

	scores, err := scorer.ScoreIntervals(model, bounds)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("DivideAndConquer: %w", err)
	}
	winners, err := voter.PossibleWinners(model.NClasses(), scores)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("DivideAndConquer: %w", err)
	}
	if len(winners) <= 1 {
		return Counterexample{}, false, nil
	}

	dim := widestDimension(bounds)
	if 2*bounds[dim].Radius() < originalWidths[dim]*MinPartitionFraction {
		return Counterexample{}, false, nil
	}

	left, right := splitAt(bounds, dim)

	leftSample := append([]float64(nil), sample...)
	leftSample[dim] = left[dim].Midpoint()
	if cx, found, err := divideRerun(model, leftSample, left, originalWidths, originalLabel, depth-1); err != nil || found {
		return cx, found, err
	}

	rightSample := append([]float64(nil), sample...)
	rightSample[dim] = right[dim].Midpoint()
	return divideRerun(model, rightSample, right, originalWidths, originalLabel, depth-1)
}

func widestDimension(bounds []interval.Interval) int {
	best, bestWidth := 0, -1.0
	for i, b := range bounds {
		if w := b.Radius(); w > bestWidth {
			best, bestWidth = i, w
		}
	}
	return best
}

func splitAt(bounds []interval.Interval, dim int) ([]interval.Interval, []interval.Interval) {
	left := append([]interval.Interval(nil), bounds...)
	right := append([]interval.Interval(nil), bounds...)

	mid := bounds[dim].Midpoint()
	left[dim] = interval.Interval{L: bounds[dim].L, U: mid}
	right[dim] = interval.Interval{L: mid, U: bounds[dim].U}
	return left, right
}
