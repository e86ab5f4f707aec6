package scorer

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/kernel"
	"github.com/abstractsvm/svmverify/svm"
)

// ScoreIntervals computes, for every one-versus-one pairwise classifier,
// the Interval bound of its decision-function value over the abstract
// sample xs. Indexed by svm.Model.PairIndex, exactly like
// svm.Model.Score's concrete result.
//
// Contract: len(xs) == model.SpaceSize.
func ScoreIntervals(model svm.Model, xs []interval.Interval) ([]interval.Interval, error) {
	if len(xs) != model.SpaceSize {
		return nil, fmt.Errorf("ScoreIntervals: %w", ErrSizeMismatch)
	}

	scores := make([]interval.Interval, model.NPairs())

	if model.IsLinear() {
		for index := range scores {
			row, err := model.Coefficients(index)
			if err != nil {
				return nil, fmt.Errorf("ScoreIntervals: %w", err)
			}
			sum := interval.Singleton(model.Bias[index])
			for k, coeff := range row {
				sum = interval.Add(sum, interval.Scale(xs[k], coeff))
			}
			scores[index] = sum
		}
		return scores, nil
	}

	kvals := make([]interval.Interval, len(model.SupportVectors))
	for i, sv := range model.SupportVectors {
		v, err := kernel.AbstractComputeInterval(model.Kernel, xs, sv)
		if err != nil {
			return nil, fmt.Errorf("ScoreIntervals: %w", err)
		}
		kvals[i] = v
	}

	n := model.NClasses()
	offsetI := 0
	for i := 0; i < n; i++ {
		offsetJ := offsetI
		for j := i + 1; j < n; j++ {
			offsetJ += model.NSupportVectors[j-1]
			index := model.PairIndex(i, j)
			sum := interval.Singleton(model.Bias[index])

			for t := 0; t < model.NSupportVectors[i]; t++ {
				sum = interval.Add(sum, interval.Scale(kvals[offsetI+t], model.Alpha[j-1][offsetI+t]))
			}
			for t := 0; t < model.NSupportVectors[j]; t++ {
				sum = interval.Add(sum, interval.Scale(kvals[offsetJ+t], model.Alpha[i][offsetJ+t]))
			}
			scores[index] = sum
		}
		if i+1 < n {
			offsetI += model.NSupportVectors[i]
		}
	}
	return scores, nil
}
