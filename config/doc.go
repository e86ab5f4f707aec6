// Package config holds the verifier's run-time options: which abstract
// domain to use, whether to search for counterexamples, and the
// auxiliary reporting switches a batch run accepts. Mirrors Options
// (options.h), widened from its original counterexample-file/debug-output
// pair to cover the rest of the verifier's configurable behavior.
package config
