package scorer

import (
	"fmt"

	"github.com/abstractsvm/svmverify/kernel"
	"github.com/abstractsvm/svmverify/raf"
	"github.com/abstractsvm/svmverify/svm"
)

// ScoreRafs computes, for every one-versus-one pairwise classifier, the
// RAF bound of its decision-function value over the abstract sample xs.
// Indexed by svm.Model.PairIndex, exactly like svm.Model.Score's concrete
// result — and, unlike ScoreIntervals, preserves correlation between the
// contribution of a shared feature across different pairwise classifiers.
//
// Contract: len(xs) == model.SpaceSize.
func ScoreRafs(model svm.Model, xs []raf.Raf) ([]raf.Raf, error) {
	if len(xs) != model.SpaceSize {
		return nil, fmt.Errorf("ScoreRafs: %w", ErrSizeMismatch)
	}

	scores := make([]raf.Raf, model.NPairs())

	if model.IsLinear() {
		for index := range scores {
			row, err := model.Coefficients(index)
			if err != nil {
				return nil, fmt.Errorf("ScoreRafs: %w", err)
			}
			sum := raf.Singleton(model.Bias[index])
			for k, coeff := range row {
				sum = raf.Add(sum, raf.Scale(xs[k], coeff))
			}
			scores[index] = sum
		}
		return scores, nil
	}

	kvals := make([]raf.Raf, len(model.SupportVectors))
	for i, sv := range model.SupportVectors {
		v, err := kernel.AbstractComputeRaf(model.Kernel, xs, sv)
		if err != nil {
			return nil, fmt.Errorf("ScoreRafs: %w", err)
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
			sum := raf.Singleton(model.Bias[index])

			for t := 0; t < model.NSupportVectors[i]; t++ {
				sum = raf.Add(sum, raf.Scale(kvals[offsetI+t], model.Alpha[j-1][offsetI+t]))
			}
			for t := 0; t < model.NSupportVectors[j]; t++ {
				sum = raf.Add(sum, raf.Scale(kvals[offsetJ+t], model.Alpha[i][offsetJ+t]))
			}
			scores[index] = sum
		}
		if i+1 < n {
			offsetI += model.NSupportVectors[i]
		}
	}
	return scores, nil
}
