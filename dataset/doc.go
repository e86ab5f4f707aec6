// Package dataset reads labeled feature rows used to drive batches of
// verification runs against a classifier, one row per sample.
package dataset
