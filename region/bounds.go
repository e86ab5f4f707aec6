package region

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
)

// Bounds computes the per-feature concrete Interval bound a Perturbation
// carves out of sample — the box every further abstraction (Interval
// domain, RAF domain) is derived from.
//
// For L1 and LInf, each feature's bound is sample[i] +/- Magnitude: this
// is exact for LInf (the perturbation is itself a box of that radius) and
// a sound, if coarser, over-approximation for L1 (a single coordinate
// could in principle absorb the entire L1 budget, so no feature's box can
// be tighter than this without risking unsoundness; any joint L1 coupling
// across features is left to be captured by RAF noise-symbol sharing in
// the caller, not by this per-feature box).
//
// Contract: for HyperRect/ClippedHyperRect/FromFile, len(sample) ==
// len(p.EpsilonL) == len(p.EpsilonU). For Frame, len(sample) ==
// p.ImageWidth*p.ImageHeight.
func Bounds(p Perturbation, sample []float64) ([]interval.Interval, error) {
	switch p.Kind {
	case L1, LInf:
		return boxBounds(sample, p.Magnitude), nil

	case HyperRect:
		return hyperRectBounds(sample, p.EpsilonL, p.EpsilonU)

	case ClippedHyperRect:
		return clippedHyperRectBounds(sample, p)

	case FromFile:
		return hyperRectBounds(sample, p.EpsilonL, p.EpsilonU)

	case Frame:
		return frameBounds(sample, p)

	default:
		return nil, fmt.Errorf("Bounds: %w", ErrUnsupportedPerturbation)
	}
}

func boxBounds(sample []float64, magnitude float64) []interval.Interval {
	out := make([]interval.Interval, len(sample))
	for i, v := range sample {
		out[i] = interval.Interval{L: v - magnitude, U: v + magnitude}
	}
	return out
}

func hyperRectBounds(sample, epsilonL, epsilonU []float64) ([]interval.Interval, error) {
	if len(sample) != len(epsilonL) || len(sample) != len(epsilonU) {
		return nil, fmt.Errorf("hyperRectBounds: %w", ErrSizeMismatch)
	}
	out := make([]interval.Interval, len(sample))
	for i, v := range sample {
		out[i] = interval.Interval{L: v - epsilonL[i], U: v + epsilonU[i]}
	}
	return out, nil
}

func clippedHyperRectBounds(sample []float64, p Perturbation) ([]interval.Interval, error) {
	n := len(sample)
	if n != len(p.EpsilonL) || n != len(p.EpsilonU) || n != len(p.ClipMin) || n != len(p.ClipMax) {
		return nil, fmt.Errorf("clippedHyperRectBounds: %w", ErrSizeMismatch)
	}
	out := make([]interval.Interval, n)
	for i, v := range sample {
		l := v - p.EpsilonL[i]
		u := v + p.EpsilonU[i]
		if l < p.ClipMin[i] {
			l = p.ClipMin[i]
		}
		if u > p.ClipMax[i] {
			u = p.ClipMax[i]
		}
		out[i] = interval.Interval{L: l, U: u}
	}
	return out, nil
}

// frameBounds leaves every pixel inside the centered frame window fixed
// at its sample value and widens every pixel outside the frame to the
// full [0, 1] range, mirroring an occlusive-frame attack: an adversary
// may repaint anything outside the frame arbitrarily.
func frameBounds(sample []float64, p Perturbation) ([]interval.Interval, error) {
	if len(sample) != p.ImageWidth*p.ImageHeight {
		return nil, fmt.Errorf("frameBounds: %w", ErrSizeMismatch)
	}
	if p.FrameWidth > p.ImageWidth || p.FrameHeight > p.ImageHeight {
		return nil, fmt.Errorf("frameBounds: %w", ErrInvalidFrameGeometry)
	}

	left := (p.ImageWidth - p.FrameWidth) / 2
	top := (p.ImageHeight - p.FrameHeight) / 2

	out := make([]interval.Interval, len(sample))
	for row := 0; row < p.ImageHeight; row++ {
		for col := 0; col < p.ImageWidth; col++ {
			idx := row*p.ImageWidth + col
			inFrame := col >= left && col < left+p.FrameWidth && row >= top && row < top+p.FrameHeight
			if inFrame {
				out[idx] = interval.Singleton(sample[idx])
			} else {
				out[idx] = interval.Interval{L: 0, U: 1}
			}
		}
	}
	return out, nil
}
