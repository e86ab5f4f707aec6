package verifier

import (
	"errors"
	"fmt"
)

// ErrUnsupportedAbstraction is wrapped into errUnsupportedAbstraction's
// result so callers can errors.Is against it regardless of which Kind was
// rejected.
var ErrUnsupportedAbstraction = errors.New("verifier: unsupported abstraction")

// SoundnessViolation is the value checkSoundness panics with when a
// concrete score falls outside its own abstract bound: a defect in the
// abstract domains themselves, never a legitimate verification outcome,
// so it is never returned as an ordinary error. Mirrors the "unsound"
// branch check_soundness (saver.c) prints as a fatal diagnostic; only
// cmd/svmverify's main recovers it.
type SoundnessViolation struct {
	PairIndex int
	Concrete  float64
	BoundLow  float64
	BoundHigh float64
}

func (v SoundnessViolation) Error() string {
	return fmt.Sprintf("pair %d: concrete score %g outside abstract bound [%g, %g]", v.PairIndex, v.Concrete, v.BoundLow, v.BoundHigh)
}
