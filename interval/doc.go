// Package interval implements sound interval arithmetic with outward
// rounding.
//
// An Interval [L, U] over-approximates a set of reals: every operation
// defined here guarantees that for any concrete x in the input interval(s),
// the concrete result of the corresponding real operation lies in the
// returned interval. This is achieved by directed rounding — lower bounds
// are computed as if rounding toward -Inf, upper bounds as if rounding
// toward +Inf — via the portable "compute both ways and inflate" primitive
// in rounding.go (see its doc comment for why a inflate-by-ULP strategy is
// used instead of changing the hardware rounding mode).
//
// Interval values are small, stack-friendly structs; every function here
// takes and returns Interval by value and allocates nothing.
package interval
