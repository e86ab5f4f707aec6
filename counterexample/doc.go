// Package counterexample searches adversarial regions for concrete pairs
// of points that a classifier labels differently, witnessing that a
// robustness claim the abstract domains could not discharge is in fact
// false (as opposed to merely undischargeable due to abstraction loss).
package counterexample
