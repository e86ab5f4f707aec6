package interval

import "math"

// roundDown and roundUp implement the "portable outward primitive" design
// note from spec.md §9: Go exposes no cheap, portable way to switch the
// hardware floating-point rounding direction (unlike the C original, which
// used fesetround under ENFORCE_SOUNDNESS). Instead, every directed
// arithmetic primitive here computes the result with the platform's default
// (round-to-nearest) rounding and then nudges it outward by one ULP with
// math.Nextafter. This is strictly more conservative than true directed
// rounding (it may widen a bound that was already exact) but it is sound
// under any Go runtime, which is the property this package must guarantee.

// roundDown nudges x one ULP toward -Inf, over-approximating a lower bound.
func roundDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// roundUp nudges x one ULP toward +Inf, over-approximating an upper bound.
func roundUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}
