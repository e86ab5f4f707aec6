package domain_test

import (
	"testing"

	"github.com/abstractsvm/svmverify/domain"
	"github.com/abstractsvm/svmverify/interval"
	"github.com/stretchr/testify/require"
)

func TestMeetTightensOverlap(t *testing.T) {
	a := interval.Interval{L: -2, U: 3}
	b := interval.Interval{L: -1, U: 5}

	got, err := domain.Meet(a, b)
	require.NoError(t, err)
	require.Equal(t, interval.Interval{L: -1, U: 3}, got)
}

func TestMeetRejectsDisjoint(t *testing.T) {
	a := interval.Interval{L: 0, U: 1}
	b := interval.Interval{L: 2, U: 3}

	_, err := domain.Meet(a, b)
	require.ErrorIs(t, err, domain.ErrEmptyMeet)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "HYBRID", domain.Hybrid.String())
	require.Equal(t, "OH_RAF", domain.OHRAF.String())
}
