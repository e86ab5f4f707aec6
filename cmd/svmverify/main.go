// Command svmverify is the CLI entry point for the abstract-interpretation
// SVM robustness verifier: it loads a model and a dataset, verifies every
// row against an adversarial region, and prints one tab-separated line
// per sample followed by a "[SUMMARY]" line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
