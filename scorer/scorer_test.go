package scorer_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/onehot"
	"github.com/abstractsvm/svmverify/raf"
	"github.com/abstractsvm/svmverify/scorer"
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

func TestScoreIntervalsSoundness(t *testing.T) {
	model, err := svm.Read(strings.NewReader(linearModel))
	require.NoError(t, err)

	xs := []interval.Interval{{L: -1, U: 1}, {L: -1, U: 1}}
	bounds, err := scorer.ScoreIntervals(model, xs)
	require.NoError(t, err)
	require.Len(t, bounds, model.NPairs())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		sample := []float64{-1 + rng.Float64()*2, -1 + rng.Float64()*2}
		concrete, err := model.Score(sample)
		require.NoError(t, err)
		for p := range concrete {
			require.True(t, bounds[p].Contains(concrete[p]))
		}
	}
}

func TestScoreRafsSoundness(t *testing.T) {
	model, err := svm.Read(strings.NewReader(linearModel))
	require.NoError(t, err)

	xs := []raf.Raf{raf.SparseOf(0, 1, 0), raf.SparseOf(0, 1, 1)}
	bounds, err := scorer.ScoreRafs(model, xs)
	require.NoError(t, err)
	require.Len(t, bounds, model.NPairs())

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		e0 := 2*rng.Float64() - 1
		e1 := 2*rng.Float64() - 1
		sample := []float64{e0, e1}
		concrete, err := model.Score(sample)
		require.NoError(t, err)
		for p := range concrete {
			bi := bounds[p].ToInterval()
			require.True(t, bi.Contains(concrete[p]))
		}
	}
}

func TestScoreIntervalsRejectsSizeMismatch(t *testing.T) {
	model, err := svm.Read(strings.NewReader(linearModel))
	require.NoError(t, err)

	_, err = scorer.ScoreIntervals(model, []interval.Interval{{L: 0, U: 1}})
	require.ErrorIs(t, err, scorer.ErrSizeMismatch)
}

func TestFeatureWeightsMatchesCoefficients(t *testing.T) {
	model, err := svm.Read(strings.NewReader(linearModel))
	require.NoError(t, err)

	weights, err := scorer.FeatureWeights(model, 0, 1)
	require.NoError(t, err)
	require.Len(t, weights, 2)
	// Pair (a, b): 1*(1, 0) + 1*(0, 1).
	require.Equal(t, []float64{1, 1}, weights)
}

// one-hot 3-feature tier, single class-a/class-b pair, linear weights
// (2, 3, 5), bias 0 (spec.md §8 scenario 4).
const oneHotTierModel = `ovo 3 2
linear
a 1
b 0
1.0
2.0 3.0 5.0
0.0
`

// TestScoreIntervalsTieredMatchesWorkedExample pins spec.md §8 scenario 4:
// a fully ambiguous one-hot tier (every member's origin Mixed, since none
// is pinned to 0 or 1) collapses to the tier interval [min, max] over its
// three one-in-three configurations' contributions {2, 3, 5}, rather than
// the naive per-coordinate sum every member's own [0, 1] box would give
// under plain ScoreIntervals. Bounds are compared within 1e-9 because
// interval arithmetic rounds every endpoint outward by one ULP.
func TestScoreIntervalsTieredMatchesWorkedExample(t *testing.T) {
	model, err := svm.Read(strings.NewReader(oneHotTierModel))
	require.NoError(t, err)

	tiers, err := onehot.NewTierSet([]int{0, 0, 0}, []bool{true, true, true})
	require.NoError(t, err)

	xs := []interval.Interval{{L: 0, U: 1}, {L: 0, U: 1}, {L: 0, U: 1}}
	origins, err := onehot.ClassifyIntervals(tiers, xs)
	require.NoError(t, err)

	tiered, err := scorer.ScoreIntervalsTiered(model, xs, tiers, origins)
	require.NoError(t, err)
	require.Len(t, tiered, 1)
	require.InDelta(t, 2.0, tiered[0].L, 1e-9)
	require.InDelta(t, 5.0, tiered[0].U, 1e-9)

	naive, err := scorer.ScoreIntervals(model, xs)
	require.NoError(t, err)
	require.InDelta(t, 0.0, naive[0].L, 1e-9)
	require.InDelta(t, 10.0, naive[0].U, 1e-9)
}

// TestScoreRafsTieredMatchesWorkedExample is the RAF analogue: a tier whose
// three sparse one-hot RAFs each concretize to {0, 1} collapses to the same
// [2, 5] bound once merged, and the merged RAF's noise symbol does not
// alias any of the three input feature indices.
func TestScoreRafsTieredMatchesWorkedExample(t *testing.T) {
	model, err := svm.Read(strings.NewReader(oneHotTierModel))
	require.NoError(t, err)

	tiers, err := onehot.NewTierSet([]int{0, 0, 0}, []bool{true, true, true})
	require.NoError(t, err)

	xs := []raf.Raf{raf.SparseOf(0.5, 0.5, 0), raf.SparseOf(0.5, 0.5, 1), raf.SparseOf(0.5, 0.5, 2)}
	origins, err := onehot.ClassifyRafs(tiers, xs)
	require.NoError(t, err)

	tiered, err := scorer.ScoreRafsTiered(model, xs, tiers, origins)
	require.NoError(t, err)
	require.Len(t, tiered, 1)

	bound := tiered[0].ToInterval()
	require.InDelta(t, 2.0, bound.L, 1e-9)
	require.InDelta(t, 5.0, bound.U, 1e-9)
}
