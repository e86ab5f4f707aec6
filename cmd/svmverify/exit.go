package main

import (
	"errors"

	svmverify "github.com/abstractsvm/svmverify"
)

// Exit codes, per spec.md §6: 0 on a normal run, non-zero on usage error
// or allocation/soundness failure.
const (
	exitOK         = 0
	exitUsage      = 1
	exitParse      = 2
	exitAllocation = 3
	exitSoundness  = 4
	exitUnexpected = 5
)

// errSoundness marks a run error that originated from a recovered
// verifier.SoundnessViolation panic (see run.go), so exitCode can
// distinguish it without importing the verifier package's panic type.
var errSoundness = errors.New("svmverify: soundness violation")

// exitCode maps a fatal error returned from run to the process exit code
// spec.md §6 and §7 describe.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errSoundness):
		return exitSoundness
	case errors.Is(err, svmverify.ErrUsage):
		return exitUsage
	case errors.Is(err, svmverify.ErrParse):
		return exitParse
	case errors.Is(err, svmverify.ErrAllocation):
		return exitAllocation
	default:
		return exitUnexpected
	}
}
