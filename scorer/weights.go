package scorer

import (
	"fmt"

	"github.com/abstractsvm/svmverify/svm"
)

// FeatureWeights returns the primal weight vector driving the (i, j)
// pairwise classifier's decision. Only defined for linear-kernel models:
// for any other kernel type the error from model.Coefficients is returned.
// No report in this module prints these weights.
func FeatureWeights(model svm.Model, i, j int) ([]float64, error) {
	index := model.PairIndex(i, j)
	row, err := model.Coefficients(index)
	if err != nil {
		return nil, fmt.Errorf("FeatureWeights: %w", err)
	}
	return row, nil
}
