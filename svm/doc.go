// Package svm represents a trained one-versus-one multi-class SVM
// classifier and loads it from the text model format used throughout the
// verification pipeline. A Model is read-only: nothing in this package
// ever mutates a support vector, dual coefficient, or bias once loaded.
package svm
