// Package region defines adversarial perturbations and the region they
// carve out around a concrete sample: every point the verifier must
// prove (or disprove) classifies the same way. A Perturbation only
// describes the shape of the allowed deviation; Bounds combines it with
// a concrete sample into concrete per-feature Interval bounds, which the
// interval and RAF domains then lift into their own abstractions.
package region
