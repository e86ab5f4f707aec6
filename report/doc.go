// Package report times verification runs and writes their per-sample
// and summary results, mirroring stopwatch.c/.h and the tabular output
// saver.c prints for each analyzed sample.
package report
