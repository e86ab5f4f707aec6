package svm

// precomputeLinearCoefficients derives, for every one-versus-one pair
// (i, j), the primal weight vector equivalent to that pair's dual
// expansion: coefficients[index][k] = sum_t alpha[j-1][offset_i+t] *
// sv[offset_i+t][k] + sum_t alpha[i][offset_j+t] * sv[offset_j+t][k].
// Only valid, and only computed, for linear-kernel models (classifier.c's
// classifier_create). Precomputing this turns scoring a linear model into
// a single dot product per pair instead of one kernel evaluation per
// support vector.
func (m *Model) precomputeLinearCoefficients() {
	n := m.NClasses()
	m.coefficients = make([][]float64, m.NPairs())

	offsetI := 0
	for i := 0; i < n; i++ {
		offsetJ := offsetI
		for j := i + 1; j < n; j++ {
			offsetJ += m.NSupportVectors[j-1]
			index := m.PairIndex(i, j)
			row := make([]float64, m.SpaceSize)

			for t := 0; t < m.NSupportVectors[i]; t++ {
				alpha := m.Alpha[j-1][offsetI+t]
				sv := m.SupportVectors[offsetI+t]
				for k := 0; k < m.SpaceSize; k++ {
					row[k] += alpha * sv[k]
				}
			}
			for t := 0; t < m.NSupportVectors[j]; t++ {
				alpha := m.Alpha[i][offsetJ+t]
				sv := m.SupportVectors[offsetJ+t]
				for k := 0; k < m.SpaceSize; k++ {
					row[k] += alpha * sv[k]
				}
			}

			m.coefficients[index] = row
		}
		if i+1 < n {
			offsetI += m.NSupportVectors[i]
		}
	}
}
