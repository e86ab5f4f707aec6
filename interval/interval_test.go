package interval_test

import (
	"math"
	"testing"

	"github.com/abstractsvm/svmverify/interval"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsInvalidBounds ensures New validates L <= U.
func TestNewRejectsInvalidBounds(t *testing.T) {
	_, err := interval.New(2, 1)
	require.ErrorIs(t, err, interval.ErrInvalidBounds)

	v, err := interval.New(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v.L)
	require.Equal(t, 2.0, v.U)
}

// TestMidpointRadius checks the two derived accessors against hand values.
func TestMidpointRadius(t *testing.T) {
	x := interval.Interval{L: -1, U: 3}
	require.Equal(t, 1.0, x.Midpoint())
	require.Equal(t, 2.0, x.Radius())
}

// TestAddSoundness spot-checks that Add's bounds contain the sum of any two
// sampled concrete points within the operand intervals.
func TestAddSoundness(t *testing.T) {
	x := interval.Interval{L: 0.1, U: 0.5}
	y := interval.Interval{L: 0.2, U: 0.4}
	r := interval.Add(x, y)

	for _, a := range []float64{x.L, x.Midpoint(), x.U} {
		for _, b := range []float64{y.L, y.Midpoint(), y.U} {
			require.True(t, r.Contains(a+b), "Add(%v,%v) = %v must contain %v+%v=%v", x, y, r, a, b, a+b)
		}
	}
}

// TestSubUsesStandardRule pins the fix called for by spec.md's open
// question: the original's x.L - y.L lower bound was unsound.
func TestSubUsesStandardRule(t *testing.T) {
	x := interval.Interval{L: 1, U: 2}
	y := interval.Interval{L: 1, U: 2}
	r := interval.Sub(x, y)

	// Standard rule: [x.L - y.U, x.U - y.L] = [-1, 1].
	require.InDelta(t, -1, r.L, 1e-9)
	require.InDelta(t, 1, r.U, 1e-9)

	// The buggy rule would have produced [0, 1], which would wrongly
	// exclude -1 even though 1 - 2 = -1 is a valid concrete result.
	require.True(t, r.Contains(-1))
}

// TestMulSignRegions exercises every branch of the eight-region case split.
func TestMulSignRegions(t *testing.T) {
	cases := []struct {
		name string
		x, y interval.Interval
		l, u float64
	}{
		{"pos*pos", interval.Interval{L: 1, U: 2}, interval.Interval{L: 3, U: 4}, 3, 8},
		{"pos*neg", interval.Interval{L: 1, U: 2}, interval.Interval{L: -4, U: -3}, -8, -3},
		{"pos*straddle", interval.Interval{L: 1, U: 2}, interval.Interval{L: -1, U: 3}, -2, 6},
		{"neg*pos", interval.Interval{L: -2, U: -1}, interval.Interval{L: 3, U: 4}, -8, -3},
		{"neg*neg", interval.Interval{L: -2, U: -1}, interval.Interval{L: -4, U: -3}, 3, 8},
		{"neg*straddle", interval.Interval{L: -2, U: -1}, interval.Interval{L: -1, U: 3}, -6, 2},
		{"straddle*pos", interval.Interval{L: -1, U: 2}, interval.Interval{L: 1, U: 3}, -3, 6},
		{"straddle*neg", interval.Interval{L: -1, U: 2}, interval.Interval{L: -3, U: -1}, -6, 3},
		{"straddle*straddle", interval.Interval{L: -1, U: 2}, interval.Interval{L: -2, U: 3}, -4, 6},
		{"zero operand", interval.Interval{L: 0, U: 0}, interval.Interval{L: -2, U: 3}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := interval.Mul(c.x, c.y)
			require.InDelta(t, c.l, r.L, 1e-9)
			require.InDelta(t, c.u, r.U, 1e-9)
		})
	}
}

// TestFMAMatchesScaleThenAdd checks FMA against its definition.
func TestFMAMatchesScaleThenAdd(t *testing.T) {
	x := interval.Interval{L: -1, U: 2}
	y := interval.Interval{L: 0, U: 1}
	alpha := -3.0

	got := interval.FMA(alpha, x, y)
	want := interval.Add(interval.Scale(x, alpha), y)

	require.InDelta(t, want.L, got.L, 1e-9)
	require.InDelta(t, want.U, got.U, 1e-9)
}

// TestPowIteratesMultiplication verifies Pow against repeated Mul.
func TestPowIteratesMultiplication(t *testing.T) {
	x := interval.Interval{L: -2, U: 3}
	got := interval.Pow(x, 3)
	want := interval.Mul(interval.Mul(x, x), x)

	require.InDelta(t, want.L, got.L, 1e-9)
	require.InDelta(t, want.U, got.U, 1e-9)
}

// TestExpMonotone verifies Exp against math.Exp on the endpoints.
func TestExpMonotone(t *testing.T) {
	x := interval.Interval{L: -1, U: 1}
	r := interval.Exp(x)

	require.LessOrEqual(t, r.L, math.Exp(x.L))
	require.GreaterOrEqual(t, r.U, math.Exp(x.U))
}

// TestStraddlesZero checks that only an interval with L < 0 < U straddles zero.
func TestStraddlesZero(t *testing.T) {
	require.True(t, interval.Interval{L: -1, U: 1}.StraddlesZero())
	require.False(t, interval.Interval{L: 0, U: 1}.StraddlesZero())
	require.False(t, interval.Interval{L: -1, U: 0}.StraddlesZero())
}
