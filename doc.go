// Package svmverify is a sound abstract-interpretation verifier for
// one-versus-one support-vector-machine classifiers.
//
// Given a trained model, an input sample, and an adversarial region
// describing the admissible perturbations of that sample, the verifier
// decides one of three outcomes: the classifier's label is stable
// across the whole region (robust), the region provably straddles a
// decision boundary and a concrete counterexample pair was found, or
// the analysis is inconclusive. A "robust" verdict is a hard soundness
// guarantee: every concrete point in the region classifies to the
// declared label set, never an approximation of one.
//
// The package layout mirrors the verifier's dependency order, leaves
// first:
//
//	interval/       — sound interval arithmetic with outward rounding
//	raf/            — reduced affine forms and their three multiplication algorithms
//	onehot/         — one-hot-tier-aware refinements of interval/raf
//	kernel/         — concrete and abstract kernel evaluation (linear, RBF, polynomial)
//	scorer/         — one-versus-one pairwise score aggregation
//	voter/          — interval-vote possible-winner reduction
//	domain/         — the hybrid interval/RAF meet and the domain.Kind tag
//	region/         — adversarial-region perturbation kinds and concretization
//	counterexample/ — vertex heuristic and divide-and-conquer counterexample search
//	svm/            — SVM model file format and concrete scoring
//	classifier/     — the concrete decision procedure used to confirm counterexamples
//	dataset/        — CSV dataset, tier-file and perturbation-file loaders
//	config/         — functional-options run configuration
//	report/         — stopwatch and tab-separated batch report writer
//	verifier/       — the top-level per-sample pipeline wiring every package above
//	cmd/svmverify/  — the CLI entry point
//
// The core (interval/raf/onehot/kernel/scorer/voter/domain/counterexample/
// region) is single-threaded and synchronous: every exported function is a
// pure function of its arguments, and batch driving at the cmd/svmverify
// layer is responsible for any parallelism across independent samples.
package svmverify
