package scorer

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/kernel"
	"github.com/abstractsvm/svmverify/onehot"
	"github.com/abstractsvm/svmverify/raf"
	"github.com/abstractsvm/svmverify/svm"
)

// ScoreIntervalsTiered is the one-hot-aware counterpart of ScoreIntervals:
// every per-coordinate product or squared-difference feeding a pairwise
// score is merged tier-by-tier via kernel.AbstractComputeIntervalTiered
// instead of being summed coordinate-by-coordinate, so that a one-hot
// tier's contribution is bounded once rather than once per member feature.
//
// Contract: len(xs) == model.SpaceSize == tiers.Size() == len(origins).
func ScoreIntervalsTiered(model svm.Model, xs []interval.Interval, tiers onehot.TierSet, origins []onehot.Origin) ([]interval.Interval, error) {
	if len(xs) != model.SpaceSize {
		return nil, fmt.Errorf("ScoreIntervalsTiered: %w", ErrSizeMismatch)
	}

	scores := make([]interval.Interval, model.NPairs())

	if model.IsLinear() {
		for index := range scores {
			row, err := model.Coefficients(index)
			if err != nil {
				return nil, fmt.Errorf("ScoreIntervalsTiered: %w", err)
			}
			sum, err := kernel.AbstractComputeIntervalTiered(kernel.NewLinear(), xs, row, tiers, origins)
			if err != nil {
				return nil, fmt.Errorf("ScoreIntervalsTiered: %w", err)
			}
			scores[index] = interval.Translate(sum, model.Bias[index])
		}
		return scores, nil
	}

	kvals := make([]interval.Interval, len(model.SupportVectors))
	for i, sv := range model.SupportVectors {
		v, err := kernel.AbstractComputeIntervalTiered(model.Kernel, xs, sv, tiers, origins)
		if err != nil {
			return nil, fmt.Errorf("ScoreIntervalsTiered: %w", err)
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

// ScoreRafsTiered is the RAF analogue of ScoreIntervalsTiered.
//
// Contract: len(xs) == model.SpaceSize == tiers.Size() == len(origins).
func ScoreRafsTiered(model svm.Model, xs []raf.Raf, tiers onehot.TierSet, origins []onehot.Origin) ([]raf.Raf, error) {
	if len(xs) != model.SpaceSize {
		return nil, fmt.Errorf("ScoreRafsTiered: %w", ErrSizeMismatch)
	}

	scores := make([]raf.Raf, model.NPairs())

	if model.IsLinear() {
		for index := range scores {
			row, err := model.Coefficients(index)
			if err != nil {
				return nil, fmt.Errorf("ScoreRafsTiered: %w", err)
			}
			sum, err := kernel.AbstractComputeRafTiered(kernel.NewLinear(), xs, row, tiers, origins)
			if err != nil {
				return nil, fmt.Errorf("ScoreRafsTiered: %w", err)
			}
			scores[index] = raf.Translate(sum, model.Bias[index])
		}
		return scores, nil
	}

	kvals := make([]raf.Raf, len(model.SupportVectors))
	for i, sv := range model.SupportVectors {
		v, err := kernel.AbstractComputeRafTiered(model.Kernel, xs, sv, tiers, origins)
		if err != nil {
			return nil, fmt.Errorf("ScoreRafsTiered: %w", err)
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
