// Package scorer computes the abstract one-versus-one decision-function
// bound for every pairwise classifier of an svm.Model, lifting the same
// triangular-indexing scheme svm.Model.Score uses over the Interval and
// RAF domains instead of concrete floats.
package scorer
