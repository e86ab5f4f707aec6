package onehot_test

import (
	"testing"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/onehot"
	"github.com/abstractsvm/svmverify/raf"
	"github.com/stretchr/testify/require"
)

func threeWayTier(t *testing.T) onehot.TierSet {
	t.Helper()
	tiers, err := onehot.NewTierSet([]int{0, 0, 0}, []bool{true, true, true})
	require.NoError(t, err)
	return tiers
}

func TestNewTierSetRejectsSizeMismatch(t *testing.T) {
	_, err := onehot.NewTierSet([]int{0, 1}, []bool{true})
	require.ErrorIs(t, err, onehot.ErrSizeMismatch)
}

func TestTierCount(t *testing.T) {
	tiers, err := onehot.NewTierSet([]int{0, 0, 1, 1, 2}, []bool{true, true, true, true, false})
	require.NoError(t, err)
	require.Equal(t, 3, tiers.TierCount())
}

func TestClassifyIntervalsRejectsViolation(t *testing.T) {
	tiers := threeWayTier(t)
	xs := []interval.Interval{{L: 0, U: 0}, {L: 0.3, U: 0.3}, {L: 0, U: 1}}
	_, err := onehot.ClassifyIntervals(tiers, xs)
	require.ErrorIs(t, err, onehot.ErrOneHotConstraintViolated)
}

// TestIntervalizeTierOneHotIsHot pins the concrete "feature 1 is set" case:
// the tier collapses to exactly that feature's value, since every other
// candidate is ruled infeasible by OriginOne.
func TestIntervalizeTierOneHotIsHot(t *testing.T) {
	xs := []interval.Interval{{L: 0, U: 0}, {L: 1, U: 1}, {L: 0, U: 0}}
	origins := []onehot.Origin{onehot.OriginZero, onehot.OriginOne, onehot.OriginZero}

	got := onehot.IntervalizeTier(xs, origins)
	require.Equal(t, interval.Interval{L: 1, U: 1}, got)
}

// TestIntervalizeTierAllMixed checks the fully-unconstrained, perturbed
// case: every candidate hot feature contributes 1 + 0 + 0, so the tier's
// sum is [1, 1].
func TestIntervalizeTierAllMixed(t *testing.T) {
	xs := []interval.Interval{{L: 0, U: 1}, {L: 0, U: 1}, {L: 0, U: 1}}
	origins := []onehot.Origin{onehot.OriginMixed, onehot.OriginMixed, onehot.OriginMixed}

	got := onehot.IntervalizeTier(xs, origins)
	require.Equal(t, 1.0, got.L)
	require.Equal(t, 1.0, got.U)
}

func TestClassifyRafsRejectsMultipleNoise(t *testing.T) {
	tiers := threeWayTier(t)
	xs := []raf.Raf{
		raf.SparseOf(0, 0, 0),
		{C: 0.5, Noise: []float64{0.3, 0.2}, Index: raf.Dense},
		raf.SparseOf(0, 0, 2),
	}
	_, err := onehot.ClassifyRafs(tiers, xs)
	require.ErrorIs(t, err, onehot.ErrMultipleNoiseSymbols)
}

func TestClassifyRafsAccepts(t *testing.T) {
	tiers := threeWayTier(t)
	xs := []raf.Raf{
		raf.SparseOf(0, 0, 0),
		raf.SparseOf(1, 0, 1),
		raf.SparseOf(0.5, 0.5, 2),
	}
	origins, err := onehot.ClassifyRafs(tiers, xs)
	require.NoError(t, err)
	require.Equal(t, []onehot.Origin{onehot.OriginZero, onehot.OriginOne, onehot.OriginMixed}, origins)
}

// TestOHRafExponentDistinctEndpoints pins the corrected behavior spec.md
// calls out: exp must be evaluated at the two distinct concretizations
// (c-noise, c+noise), never by applying exp to c twice.
func TestOHRafExponentDistinctEndpoints(t *testing.T) {
	x := raf.SparseOf(0.5, 0.5, 0) // concretizes to {0, 1}
	got := onehot.OHRafExponent(x)

	// gamma(got) must contain exp(0)=1 and exp(1)=e.
	bound := got.ToInterval()
	require.InDelta(t, 1.0, bound.L, 1e-9)
	require.True(t, bound.U > 2.71 && bound.U < 2.72)
}

func TestRafizeTierOneHotIsHot(t *testing.T) {
	xs := []raf.Raf{raf.SparseOf(0, 0, 0), raf.SparseOf(1, 0, 1), raf.SparseOf(0, 0, 2)}
	origins := []onehot.Origin{onehot.OriginZero, onehot.OriginOne, onehot.OriginZero}

	got := onehot.RafizeTier(xs, origins, 99)
	require.InDelta(t, 1.0, got.C, 1e-9)
	require.InDelta(t, 0.0, got.Noise[0], 1e-9)
}

func TestTierizeScoreSingleFeatureIsNotOneHot(t *testing.T) {
	tiers, err := onehot.NewTierSet([]int{0}, []bool{false})
	require.NoError(t, err)
	score := raf.Raf{C: 1, Noise: []float64{0.4}, Index: raf.Dense}

	_, minEx, maxEx := onehot.TierizeScore(score, tiers)
	require.False(t, minEx[0])
	require.True(t, maxEx[0])
}

func TestTierizeScoreCollapsesTier(t *testing.T) {
	tiers := threeWayTier(t)
	score := raf.Raf{C: 0, Noise: []float64{0.5, -0.2, 0.1}, Index: raf.Dense}

	out, minEx, maxEx := onehot.TierizeScore(score, tiers)

	// Exactly one witness should be marked hot for min and for max within
	// the tier.
	minCount, maxCount := 0, 0
	for i := 0; i < 3; i++ {
		if minEx[i] {
			minCount++
		}
		if maxEx[i] {
			maxCount++
		}
	}
	require.Equal(t, 1, minCount)
	require.Equal(t, 1, maxCount)
	require.Equal(t, 0.0, out.Noise[1])
	require.Equal(t, 0.0, out.Noise[2])
}
