package raf

import (
	"math"
	"sort"
)

// MulAlgo3 is the tightest and most expensive of the three multiplication
// algorithms (spec.md §4.2, "algo3"). It treats the noise coefficients and
// residuals of both operands as a single list of (magnitude, signed-partner)
// pairs, sorts them by slope, and sweeps an accumulator through every
// prefix to find the true extrema of the bilinear cross term — falling back
// to a parabola correction when the sweep's extremum is tied across two
// consecutive steps (steps 3-4 of spec.md §4.2).
//
// Contract: none.
// Complexity: O(n log n) for n = min(x.Size(), y.Size()) + 2, dominated by
// the sort.
func MulAlgo3(x, y Raf) Raf {
	n := minInt(maxSize(x), maxSize(y))

	// X[i], Y[i] for i in [0, n) are the noise terms; index n carries
	// x's residual, index n+1 carries y's residual (spec.md step 1).
	type term struct {
		X, Y float64
	}
	terms := make([]term, n+2)
	var xNormOne, sgnXY float64

	for i := 0; i < n; i++ {
		xi := x.coeffAt(i)
		yi := y.coeffAt(i)
		if xi == 0 {
			yi = math.Abs(yi)
		}
		terms[i] = term{X: xi, Y: yi}
		xNormOne += math.Abs(xi)
		if xi >= 0.0 {
			sgnXY += yi
		} else {
			sgnXY -= yi
		}
	}
	terms[n] = term{X: x.Delta, Y: 0.0}
	xNormOne += math.Abs(x.Delta)
	terms[n+1] = term{X: 0.0, Y: math.Abs(y.Delta)}

	// Builds h: drops zero-X entries, folds sign into Y.
	h := make([]point2d, 0, n+2)
	for _, t := range terms {
		if t.X == 0.0 {
			continue
		}
		sign := 1.0
		if t.X <= 0.0 {
			sign = -1.0
		}
		h = append(h, point2d{x: math.Abs(t.X), y: sign * t.Y})
	}

	sort.Slice(h, func(i, j int) bool {
		return h[i].y/h[i].x < h[j].y/h[j].x
	})

	w := point2d{x: xNormOne, y: sgnXY}
	wAcc := w
	wMax1, wMax2 := w, point2d{}
	wMin1, wMin2 := w, point2d{}
	objMax := wMax1.x * wMax1.y
	objMin := wMin1.x * wMin1.y
	hasDoubleMax, hasDoubleMin := false, false

	for _, hk := range h {
		wAcc = point2dFMA(-2.0, hk, wAcc)
		obj := wAcc.x * wAcc.y

		switch {
		case obj > objMax:
			objMax, wMax1, hasDoubleMax = obj, wAcc, false
		case obj == objMax:
			wMax2, hasDoubleMax = wAcc, true
		}

		switch {
		case obj < objMin:
			objMin, wMin1, hasDoubleMin = obj, wAcc, false
		case obj == objMin:
			wMin2, hasDoubleMin = wAcc, true
		}
	}

	rMax := resolveExtremum(objMax, wMax1, wMax2, hasDoubleMax, math.Max)
	rMin := resolveExtremum(objMin, wMin1, wMin2, hasDoubleMin, math.Min)

	noise := make([]float64, n)
	for i := 0; i < n; i++ {
		noise[i] = y.C*x.coeffAt(i) + x.C*y.coeffAt(i)
	}

	return Raf{
		C:     x.C*y.C + 0.5*(rMin+rMax),
		Noise: noise,
		Delta: math.Abs(y.C)*x.Delta + math.Abs(x.C)*y.Delta + 0.5*(rMax-rMin),
		Index: Dense,
	}
}

// resolveExtremum implements spec.md §4.2 step 4: when the sweep found a
// tie (two witnesses w1, w2 attaining the same extremal objective), it
// checks whether the vertex of the parabola through the line w1-w2 falls
// strictly between them on the x-axis, and if so folds that parabolic
// extremum into the result via combine (math.Max for R_max, math.Min for
// R_min).
func resolveExtremum(obj float64, w1, w2 point2d, tied bool, combine func(a, b float64) float64) float64 {
	if !tied {
		return obj
	}

	m, q := findLine(w1, w2)
	px := -0.5 * q / m
	lo, hi := w1.x, w2.x
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < px && px < hi {
		return combine(obj, -0.25*q*q/m)
	}
	return obj
}
