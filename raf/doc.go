// Package raf implements Reduced Affine Forms (RAF), a symbolic
// over-approximation that preserves first-order correlations between
// values derived from the same inputs.
//
// A RAF r = c + sum_i(a_i * e_i) + delta * e_r represents the set of reals
// obtained by letting every shared noise symbol e_i range over [-1, +1] and
// the residual symbol e_r range over [-1, +1] scaled by delta >= 0. Sharing
// noise indices across RAFs derived from the same input sample is what lets
// RAF arithmetic track correlations an Interval cannot (e.g. x - x stays
// exactly 0 for a RAF but widens for an Interval).
//
// This package offers three interchangeable multiplication algorithms
// (MulAlgo1, MulAlgo2, MulAlgo3, from loosest/cheapest to tightest/costliest)
// behind the single Mul entry point; Mul defaults to MulAlgo3. All three are
// exported so soundness/tightness tests can compare them directly (see
// spec.md §8: "Algo3's bound width is <= algo2's <= algo1's on all inputs").
package raf
