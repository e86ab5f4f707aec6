package classifier_test

import (
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/classifier"
	"github.com/abstractsvm/svmverify/svm"
	"github.com/stretchr/testify/require"
)

const linearModel = `ovo 2 3
linear
a 1
b 1
c 1
1.0 1.0 1.0 1.0 1.0 1.0
1.0 0.0 0.0 1.0 -1.0 -1.0
0.0 0.0 0.0
`

func TestPredictReturnsDeterministicLabel(t *testing.T) {
	model, err := svm.Read(strings.NewReader(linearModel))
	require.NoError(t, err)

	label, err := classifier.Predict(model, []float64{1, 0})
	require.NoError(t, err)
	require.NotEmpty(t, label)
}

func TestChangesLabelDetectsFlip(t *testing.T) {
	model, err := svm.Read(strings.NewReader(linearModel))
	require.NoError(t, err)

	original, err := classifier.Predict(model, []float64{1, 0})
	require.NoError(t, err)

	changed, err := classifier.ChangesLabel(model, original, []float64{-1, -1})
	require.NoError(t, err)
	require.True(t, changed)

	unchanged, err := classifier.ChangesLabel(model, original, []float64{1, 0})
	require.NoError(t, err)
	require.False(t, unchanged)
}
