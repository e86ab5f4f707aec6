package svm

import (
	"fmt"

	"github.com/abstractsvm/svmverify/kernel"
)

// Model is an immutable, loaded one-versus-one SVM classifier.
type Model struct {
	Kernel          kernel.Kernel
	Classes         []string
	SpaceSize       int
	NSupportVectors []int       // per class
	SupportVectors  [][]float64 // flattened across classes, grouped by class in order
	Alpha           [][]float64 // Alpha[j-1] holds the (j-1)-th dual-coefficient row, sized total support vectors
	Bias            []float64   // one per (i, j) pair, triangular order

	// coefficients holds precomputed primal weight vectors, one per (i, j)
	// pair, only populated when Kernel.Type == kernel.Linear.
	coefficients [][]float64
}

// NClasses returns the number of classes this model distinguishes.
func (m Model) NClasses() int {
	return len(m.Classes)
}

// NPairs returns the number of one-versus-one pairwise classifiers:
// N*(N-1)/2.
func (m Model) NPairs() int {
	n := m.NClasses()
	return n * (n - 1) / 2
}

// PairIndex returns the triangular index of the (i, j) pairwise
// classifier, i < j, mirroring classifier.c's
// i*(N-1) - i*(i+1)/2 + j - 1 addressing scheme.
//
// Contract: 0 <= i < j < m.NClasses().
func (m Model) PairIndex(i, j int) int {
	n := m.NClasses()
	return i*(n-1) - i*(i+1)/2 + j - 1
}

// IsLinear reports whether m uses the linear kernel, the case in which
// Score can use precomputed primal coefficients instead of evaluating the
// kernel against every support vector.
func (m Model) IsLinear() bool {
	return m.Kernel.Type == kernel.Linear
}

// totalSupportVectors returns the sum of NSupportVectors.
func (m Model) totalSupportVectors() int {
	total := 0
	for _, n := range m.NSupportVectors {
		total += n
	}
	return total
}

// Coefficients returns the precomputed primal weight vector for the
// pairwise classifier at index (see PairIndex).
//
// Contract: m.IsLinear().
func (m Model) Coefficients(index int) ([]float64, error) {
	if !m.IsLinear() {
		return nil, fmt.Errorf("Coefficients: %w", ErrNotLinear)
	}
	return m.coefficients[index], nil
}
