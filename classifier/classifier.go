package classifier

import (
	"fmt"
	"sort"

	"github.com/abstractsvm/svmverify/svm"
)

// Predict returns the single class label assigned to sample: when
// svm.Model.Classify returns several classes tied for the most votes
// (a degenerate but legal outcome), the lexicographically smallest class
// name is chosen, mirroring the original engine's "first class in vote
// order wins ties" behavior with a total, deterministic order.
//
// Contract: len(sample) == model.SpaceSize.
func Predict(model svm.Model, sample []float64) (string, error) {
	classes, err := model.Classify(sample)
	if err != nil {
		return "", fmt.Errorf("Predict: %w", err)
	}
	sort.Strings(classes)
	return classes[0], nil
}

// ChangesLabel reports whether candidate classifies differently from
// originalLabel — the test a counterexample must pass to count as a true
// robustness violation rather than a false positive from an over-wide
// abstract bound.
//
// Contract: len(candidate) == model.SpaceSize.
func ChangesLabel(model svm.Model, originalLabel string, candidate []float64) (bool, error) {
	label, err := Predict(model, candidate)
	if err != nil {
		return false, fmt.Errorf("ChangesLabel: %w", err)
	}
	return label != originalLabel, nil
}
