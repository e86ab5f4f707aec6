package dataset_test

import (
	"strings"
	"testing"

	"github.com/abstractsvm/svmverify/dataset"
	"github.com/stretchr/testify/require"
)

func TestReadTiersParsesGroupsAndFlags(t *testing.T) {
	// 3 coordinates: tier 0 is a one-hot pair (indices 0,1), tier 1 is a
	// plain singleton (index 2).
	ts, err := dataset.ReadTiers(strings.NewReader("0 0 1\n1 1 0\n"), 3)
	require.NoError(t, err)
	require.Equal(t, 0, ts.TierOf(0))
	require.Equal(t, 0, ts.TierOf(1))
	require.Equal(t, 1, ts.TierOf(2))
	require.True(t, ts.IsOneHot(0))
	require.True(t, ts.IsOneHot(1))
	require.False(t, ts.IsOneHot(2))
	require.Equal(t, 2, ts.TierCount())
	require.ElementsMatch(t, []int{0, 1}, ts.Members(0))
}

func TestReadTiersRejectsDecreasingIDs(t *testing.T) {
	_, err := dataset.ReadTiers(strings.NewReader("1 0\n0 0\n"), 2)
	require.ErrorIs(t, err, dataset.ErrMalformedTiers)
}

func TestReadTiersRejectsBadFlag(t *testing.T) {
	_, err := dataset.ReadTiers(strings.NewReader("0 0\n1 2\n"), 2)
	require.ErrorIs(t, err, dataset.ErrMalformedTiers)
}

func TestReadTiersRejectsTruncatedStream(t *testing.T) {
	_, err := dataset.ReadTiers(strings.NewReader("0\n"), 2)
	require.Error(t, err)
}
