// Package classifier wraps an svm.Model as the concrete decision
// procedure the counterexample engine calls to confirm whether a
// candidate point genuinely changes the predicted class — the concrete
// collaborator every abstract-domain computation is checked against.
package classifier
