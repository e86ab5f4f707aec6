package counterexample

// Counterexample is a pair of concrete samples drawn from the same
// adversarial region that a classifier assigns different labels, proving
// the region is not robust. Mirrors struct counterexample
// (counterexample.h), specialized to the two-sample robustness case.
type Counterexample struct {
	A, B []float64
}

// SpaceSize returns the dimensionality of the counterexample's samples.
func (c Counterexample) SpaceSize() int {
	return len(c.A)
}
