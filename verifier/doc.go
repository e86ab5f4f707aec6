// Package verifier wires the abstract domains, the SVM scorer, the
// possible-winners voter and the counterexample search into the
// end-to-end robustness check a batch run performs on every dataset
// row, mirroring abstract_classifier.c's dispatch across its interval,
// RAF and hybrid specializations (interval_classifier.c,
// raf_classifier.c, hybrid_classifier.c).
package verifier
