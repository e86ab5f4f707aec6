package svm_test

import (
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/svm"
	"github.com/stretchr/testify/require"
)

// threeClassLinearModel is a tiny hand-built 2-feature, 3-class linear
// OVO model: one support vector per class, placed so each class's region
// is unambiguous along a coordinate axis.
const threeClassLinearModel = `ovo 2 3
linear
a 1
b 1
c 1
1.0 1.0 1.0 1.0 1.0 1.0
1.0 0.0 0.0 1.0 -1.0 -1.0
0.0 0.0 0.0
`

func TestReadRejectsNonOVO(t *testing.T) {
	_, err := svm.Read(strings.NewReader("binary 2 2\n"))
	require.ErrorIs(t, err, svm.ErrUnsupportedClassifierType)
}

func TestReadRejectsUnknownKernel(t *testing.T) {
	_, err := svm.Read(strings.NewReader("ovo 2 2\nfourier\n"))
	require.ErrorIs(t, err, svm.ErrUnsupportedKernelName)
}

func TestPairIndexTriangular(t *testing.T) {
	m := svm.Model{Classes: []string{"a", "b", "c", "d"}}
	// N=4: pairs (0,1)=0 (0,2)=1 (0,3)=2 (1,2)=3 (1,3)=4 (2,3)=5
	require.Equal(t, 0, m.PairIndex(0, 1))
	require.Equal(t, 3, m.PairIndex(1, 2))
	require.Equal(t, 5, m.PairIndex(2, 3))
}

func TestReadAndScoreLinearModel(t *testing.T) {
	m, err := svm.Read(strings.NewReader(threeClassLinearModel))
	require.NoError(t, err)
	require.True(t, m.IsLinear())
	require.Equal(t, 3, m.NClasses())

	scores, err := m.Score([]float64{1, 0})
	require.NoError(t, err)
	require.Len(t, scores, 3)

	classes, err := m.Classify([]float64{1, 0})
	require.NoError(t, err)
	require.Contains(t, classes, "a")
}

func TestScoreRejectsSizeMismatch(t *testing.T) {
	m, err := svm.Read(strings.NewReader(threeClassLinearModel))
	require.NoError(t, err)

	_, err = m.Score([]float64{1})
	require.ErrorIs(t, err, svm.ErrFeatureSizeMismatch)
}
