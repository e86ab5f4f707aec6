package region_test

import (
	"testing"

	"github.com/abstractsvm/svmverify/region"
	"github.com/stretchr/testify/require"
)

func TestBoundsLInf(t *testing.T) {
	bounds, err := region.Bounds(region.NewLInf(0.1), []float64{1, 2})
	require.NoError(t, err)
	require.InDelta(t, 0.9, bounds[0].L, 1e-9)
	require.InDelta(t, 1.1, bounds[0].U, 1e-9)
}

func TestBoundsHyperRectRejectsSizeMismatch(t *testing.T) {
	_, err := region.Bounds(region.NewHyperRect([]float64{0.1}, []float64{0.1}), []float64{1, 2})
	require.ErrorIs(t, err, region.ErrSizeMismatch)
}

func TestBoundsClippedHyperRectClamps(t *testing.T) {
	p := region.NewClippedHyperRect(
		[]float64{0.5}, []float64{0.5},
		[]float64{0.0}, []float64{1.0},
	)
	bounds, err := region.Bounds(p, []float64{0.9})
	require.NoError(t, err)
	require.InDelta(t, 0.4, bounds[0].L, 1e-9)
	require.InDelta(t, 1.0, bounds[0].U, 1e-9) // clamped from 1.4
}

func TestBoundsFrameEmptyFrameWidensEveryPixel(t *testing.T) {
	// 2x2 image, 0x0 frame: every pixel is "outside" the empty frame.
	sample := []float64{0.1, 0.2, 0.3, 0.4}
	p := region.NewFrame(2, 2, 0, 0)
	bounds, err := region.Bounds(p, sample)
	require.NoError(t, err)
	for _, b := range bounds {
		require.Equal(t, 0.0, b.L)
		require.Equal(t, 1.0, b.U)
	}
}

func TestBoundsFrameRejectsOversizedFrame(t *testing.T) {
	_, err := region.Bounds(region.NewFrame(2, 2, 3, 3), []float64{0, 0, 0, 0})
	require.ErrorIs(t, err, region.ErrInvalidFrameGeometry)
}

func TestRegionContains(t *testing.T) {
	r := region.New([]float64{1, 1}, region.NewLInf(0.5))
	ok, err := r.Contains([]float64{1.2, 0.7})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.Contains([]float64{2.0, 1.0})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestToRafsPreservesIndependentNoiseIndices(t *testing.T) {
	r := region.New([]float64{0, 0}, region.NewHyperRect([]float64{0.2, 0.3}, []float64{0.2, 0.3}))
	rafs, err := r.ToRafs()
	require.NoError(t, err)
	require.Equal(t, 0, rafs[0].Index)
	require.Equal(t, 1, rafs[1].Index)
}
