// Package kernel implements the SVM kernel functions (linear, RBF,
// polynomial) both concretely, for scoring a single sample, and abstractly,
// lifted over the Interval and RAF domains for verifying an entire
// adversarial region at once. Every abstract kernel computes against a
// concrete support vector: the support vectors are fixed training data,
// only the input sample is treated as an abstract, perturbed quantity.
package kernel
