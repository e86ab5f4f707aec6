// Package onehot refines the Interval and RAF abstract domains for features
// known to be one-hot encoded: within a tier (a group of mutually exclusive
// boolean features), at most one coordinate may be 1 while the rest are 0.
// A generic interval/RAF abstraction of such a tier admits spurious points
// (e.g. every feature simultaneously at 0.5), which both loosens bounds and
// can manufacture counterexamples that do not correspond to any valid
// one-hot assignment. The functions here exploit the "originates from 0" /
// "originates from 1" duality of a one-hot feature to recover tighter,
// constraint-respecting bounds.
package onehot
