package svm

import (
	"fmt"

	"github.com/abstractsvm/svmverify/kernel"
)

// Score returns the decision-function value of every one-versus-one
// pairwise classifier, indexed by PairIndex(i, j). Mirrors
// classifier_ovo_score (classifier.c): the linear-kernel fast path uses
// the precomputed primal coefficients; any other kernel evaluates
// against every support vector.
//
// Contract: len(sample) == m.SpaceSize.
func (m Model) Score(sample []float64) ([]float64, error) {
	if len(sample) != m.SpaceSize {
		return nil, fmt.Errorf("Score: %w", ErrFeatureSizeMismatch)
	}

	scores := make([]float64, m.NPairs())

	if m.IsLinear() {
		for index := range scores {
			sum := m.Bias[index]
			row := m.coefficients[index]
			for k, v := range sample {
				sum += row[k] * v
			}
			scores[index] = sum
		}
		return scores, nil
	}

	total := m.totalSupportVectors()
	kvals := make([]float64, total)
	for i, sv := range m.SupportVectors {
		v, err := kernel.Compute(m.Kernel, sample, sv)
		if err != nil {
			return nil, fmt.Errorf("Score: %w", err)
		}
		kvals[i] = v
	}

	n := m.NClasses()
	offsetI := 0
	for i := 0; i < n; i++ {
		offsetJ := offsetI
		for j := i + 1; j < n; j++ {
			offsetJ += m.NSupportVectors[j-1]
			index := m.PairIndex(i, j)
			sum := m.Bias[index]

			for t := 0; t < m.NSupportVectors[i]; t++ {
				sum += m.Alpha[j-1][offsetI+t] * kvals[offsetI+t]
			}
			for t := 0; t < m.NSupportVectors[j]; t++ {
				sum += m.Alpha[i][offsetJ+t] * kvals[offsetJ+t]
			}
			scores[index] = sum
		}
		if i+1 < n {
			offsetI += m.NSupportVectors[i]
		}
	}
	return scores, nil
}

// Classify returns every class tied for the most one-versus-one votes,
// mirroring classifier_ovo_classify's tie-preserving vote count (score
// >= 0 favors the lower class index i, otherwise j).
//
// Contract: len(sample) == m.SpaceSize.
func (m Model) Classify(sample []float64) ([]string, error) {
	scores, err := m.Score(sample)
	if err != nil {
		return nil, fmt.Errorf("Classify: %w", err)
	}

	n := m.NClasses()
	votes := make([]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if scores[m.PairIndex(i, j)] >= 0 {
				votes[i]++
			} else {
				votes[j]++
			}
		}
	}

	maxVotes := 0
	for _, v := range votes {
		if v > maxVotes {
			maxVotes = v
		}
	}

	var winners []string
	for i, v := range votes {
		if v == maxVotes {
			winners = append(winners, m.Classes[i])
		}
	}
	return winners, nil
}
