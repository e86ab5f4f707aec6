package voter_test

import (
	"testing"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/voter"
	"github.com/stretchr/testify/require"
)

func TestPossibleWinnersRejectsSizeMismatch(t *testing.T) {
	_, err := voter.PossibleWinners(3, []interval.Interval{{L: 0, U: 1}})
	require.ErrorIs(t, err, voter.ErrSizeMismatch)
}

// TestPossibleWinnersAllDecided: 3 classes, all pairwise outcomes
// certain. Class 0 beats both 1 and 2, so it is the unique winner.
func TestPossibleWinnersAllDecided(t *testing.T) {
	scores := []interval.Interval{
		{L: 1, U: 1},  // (0,1): 0 wins
		{L: 1, U: 1},  // (0,2): 0 wins
		{L: -1, U: -1}, // (1,2): 2 wins
	}
	winners, err := voter.PossibleWinners(3, scores)
	require.NoError(t, err)
	require.Equal(t, []int{0}, winners)
}

// TestPossibleWinnersUncertainPairDoesNotElevateLoser: the (1,2) pair
// straddles zero, but 0 is certain to beat both 1 and 2 (two votes, while
// 1 and 2 can reach at most one each), so only 0 survives regardless of
// how that pair resolves.
func TestPossibleWinnersUncertainPairDoesNotElevateLoser(t *testing.T) {
	scores := []interval.Interval{
		{L: 1, U: 1}, // (0,1): 0 wins
		{L: 1, U: 1}, // (0,2): 0 wins
		{L: -1, U: 1}, // (1,2): undecided
	}
	winners, err := voter.PossibleWinners(3, scores)
	require.NoError(t, err)
	require.Equal(t, []int{0}, winners)
}

// TestPossibleWinnersFullyUncertainKeepsEveryone: with every pair
// undecided among 3 classes, any class could in principle sweep its
// votes, so all three remain possible winners.
func TestPossibleWinnersFullyUncertainKeepsEveryone(t *testing.T) {
	undecided := interval.Interval{L: -1, U: 1}
	scores := []interval.Interval{undecided, undecided, undecided}
	winners, err := voter.PossibleWinners(3, scores)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, winners)
}
