package counterexample

import (
	"fmt"

	"github.com/abstractsvm/svmverify/classifier"
	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/onehot"
	"github.com/abstractsvm/svmverify/raf"
	"github.com/abstractsvm/svmverify/svm"
)

// OneHotVertexHeuristic searches for a counterexample using the tierized
// noise witnesses of a pairwise score RAF, adapting the OH-RAF vertex
// exhibition strategy: rather than probing each coordinate independently
// like VertexHeuristic, it reads off the two concrete samples that
// realize pairScore's exact minimum and maximum while respecting one-hot
// tier exclusivity (onehot.TierizeScore's minExample/maxExample
// witnesses), and checks whether the concrete classifier disagrees on
// either against sample's own label.
//
// Contract: len(sample) == len(bounds) == tiers.Size() == model.SpaceSize,
// and pairScore was computed over a RAF lift of bounds sharing noise
// indices with bounds (i.e. region.AdversarialRegion.ToRafs's convention:
// feature i's noise symbol is index i).
func OneHotVertexHeuristic(model svm.Model, sample []float64, bounds []interval.Interval, tiers onehot.TierSet, pairScore raf.Raf) (Counterexample, bool, error) {
	if len(sample) != len(bounds) || len(sample) != tiers.Size() {
		return Counterexample{}, false, fmt.Errorf("OneHotVertexHeuristic: %w", ErrSizeMismatch)
	}

	_, minExample, maxExample := onehot.TierizeScore(pairScore, tiers)

	minSample := make([]float64, len(sample))
	maxSample := make([]float64, len(sample))
	for i, b := range bounds {
		if minExample[i] {
			minSample[i] = b.U
		} else {
			minSample[i] = b.L
		}
		if maxExample[i] {
			maxSample[i] = b.U
		} else {
			maxSample[i] = b.L
		}
	}

	original, err := classifier.Predict(model, sample)
	if err != nil {
		return Counterexample{}, false, fmt.Errorf("OneHotVertexHeuristic: %w", err)
	}

	for _, candidate := range [][]float64{minSample, maxSample} {
		changed, err := classifier.ChangesLabel(model, original, candidate)
		if err != nil {
			return Counterexample{}, false, fmt.Errorf("OneHotVertexHeuristic: %w", err)
		}
		if changed {
			return Counterexample{A: append([]float64(nil), sample...), B: candidate}, true, nil
		}
	}
	return Counterexample{}, false, nil
}
