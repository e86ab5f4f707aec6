package counterexample_test

import (
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/counterexample"
	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/svm"
	"github.com/stretchr/testify/require"
)

// threeClassLinearModel mirrors the fixture used across the svm, scorer
// and classifier packages: classes a, b, c each owned by one support
// vector, at (1, 0), (0, 1) and (-1, -1). The pair scores are x0+x1 for
// (a, b), -x1 for (a, c) and -x0 for (b, c).
const threeClassLinearModel = `ovo 2 3
linear
a 1
b 1
c 1
1.0 1.0 1.0 1.0 1.0 1.0
1.0 0.0 0.0 1.0 -1.0 -1.0
0.0 0.0 0.0
`

func mustModel(t *testing.T) svm.Model {
	t.Helper()
	m, err := svm.Read(strings.NewReader(threeClassLinearModel))
	require.NoError(t, err)
	return m
}

// At sample (1, 0) the model predicts "a". The box [-1,1]x[-1,1]
// contains the vertex (-1,-1), where the model predicts "b" — a genuine
// counterexample reachable directly at a box corner.
func wideBox() []interval.Interval {
	return []interval.Interval{{L: -1, U: 1}, {L: -1, U: 1}}
}

func TestVertexHeuristicFindsCornerCounterexample(t *testing.T) {
	m := mustModel(t)
	sample := []float64{1, 0}

	cx, found, err := counterexample.VertexHeuristic(m, sample, wideBox())
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, sample, cx.A)
	require.Equal(t, []float64{-1, -1}, cx.B)
}

func TestVertexHeuristicRejectsSizeMismatch(t *testing.T) {
	m := mustModel(t)
	_, _, err := counterexample.VertexHeuristic(m, []float64{1}, wideBox())
	require.ErrorIs(t, err, counterexample.ErrSizeMismatch)
}

// (1, 0) lies on the (a, c) boundary, so the tiny boxes below are centred
// on (1, -0.5), where every pair score keeps its sign.
func TestVertexHeuristicNoCounterexampleInTinyBox(t *testing.T) {
	m := mustModel(t)
	sample := []float64{1, -0.5}
	tiny := []interval.Interval{{L: 0.999, U: 1.001}, {L: -0.501, U: -0.499}}

	_, found, err := counterexample.VertexHeuristic(m, sample, tiny)
	require.NoError(t, err)
	require.False(t, found)
}

func TestDivideAndConquerFindsCounterexample(t *testing.T) {
	m := mustModel(t)
	sample := []float64{1, 0}

	cx, found, err := counterexample.DivideAndConquer(m, sample, wideBox())
	require.NoError(t, err)
	require.True(t, found)
	require.NotEqual(t, cx.A, cx.B)
}

func TestDivideAndConquerNoCounterexampleWhenRobust(t *testing.T) {
	m := mustModel(t)
	sample := []float64{1, -0.5}
	tiny := []interval.Interval{{L: 0.999, U: 1.001}, {L: -0.501, U: -0.499}}

	_, found, err := counterexample.DivideAndConquer(m, sample, tiny)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSeekDispatchesVertexOnly(t *testing.T) {
	m := mustModel(t)
	sample := []float64{1, 0}

	cx, found, err := counterexample.Seek(m, sample, wideBox(), counterexample.VertexOnly)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, cx.SpaceSize())
}

func TestSeekRejectsUnknownStrategy(t *testing.T) {
	m := mustModel(t)
	_, _, err := counterexample.Seek(m, []float64{1, 0}, wideBox(), counterexample.Strategy(99))
	require.Error(t, err)
}
