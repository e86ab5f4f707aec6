package verifier

import (
	"fmt"

	"github.com/abstractsvm/svmverify/classifier"
	"github.com/abstractsvm/svmverify/config"
	"github.com/abstractsvm/svmverify/counterexample"
	"github.com/abstractsvm/svmverify/domain"
	"github.com/abstractsvm/svmverify/interval"
	"github.com/abstractsvm/svmverify/onehot"
	"github.com/abstractsvm/svmverify/raf"
	"github.com/abstractsvm/svmverify/region"
	"github.com/abstractsvm/svmverify/scorer"
	"github.com/abstractsvm/svmverify/svm"
	"github.com/abstractsvm/svmverify/voter"
)

// Outcome is the result of verifying one sample against one adversarial
// region.
type Outcome struct {
	PredictedLabel      string
	PossibleWinners     []string
	Robust              bool
	ConditionallyRobust bool
	Counterexample      *counterexample.Counterexample
}

// Verify checks whether perturbing sample within perturbation can change
// model's predicted label, using the abstract domain opts.Abstraction
// selects. It dispatches across the interval, RAF and hybrid domains the
// way abstract_classifier.c's score/classify entry points dispatch across
// interval_classifier.c, raf_classifier.c and hybrid_classifier.c.
//
// Contract: opts.Abstraction must be domain.Interval, domain.RAF or
// domain.Hybrid; one-hot-refined domains are handled by VerifyWithTiers.
func Verify(model svm.Model, sample []float64, perturbation region.Perturbation, opts config.Options) (Outcome, error) {
	reg := region.New(sample, perturbation)
	bounds, err := reg.ToIntervals()
	if err != nil {
		return Outcome{}, fmt.Errorf("Verify: %w", err)
	}

	scores, err := computeScores(model, reg, bounds, opts.Abstraction)
	if err != nil {
		return Outcome{}, fmt.Errorf("Verify: %w", err)
	}
	return finish(model, sample, bounds, scores, opts)
}

// VerifyWithTiers behaves like Verify but scores through the one-hot-aware
// kernel lift: every one-hot tier's per-coordinate contributions are merged
// into a single tier-level bound (scorer.ScoreIntervalsTiered /
// scorer.ScoreRafsTiered) rather than summed coordinate by coordinate,
// mirroring one_hot_interval.c/one_hot_raf.c's role in
// interval_classifier.c and raf_classifier.c.
//
// Contract: opts.Abstraction must be domain.OHInterval or domain.OHRAF.
func VerifyWithTiers(model svm.Model, sample []float64, perturbation region.Perturbation, tiers onehot.TierSet, opts config.Options) (Outcome, error) {
	reg := region.New(sample, perturbation)
	bounds, err := reg.ToIntervals()
	if err != nil {
		return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", err)
	}

	var scores []interval.Interval
	switch opts.Abstraction {
	case domain.OHInterval:
		origins, err := onehot.ClassifyIntervals(tiers, bounds)
		if err != nil {
			return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", err)
		}
		scores, err = scorer.ScoreIntervalsTiered(model, bounds, tiers, origins)
		if err != nil {
			return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", err)
		}
	case domain.OHRAF:
		rafs, err := reg.ToRafs()
		if err != nil {
			return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", err)
		}
		origins, err := onehot.ClassifyRafs(tiers, rafs)
		if err != nil {
			return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", err)
		}
		rscores, err := scorer.ScoreRafsTiered(model, rafs, tiers, origins)
		if err != nil {
			return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", err)
		}
		scores = toIntervals(rscores)
	default:
		return Outcome{}, fmt.Errorf("VerifyWithTiers: %w", errUnsupportedAbstraction(opts.Abstraction))
	}

	return finish(model, sample, bounds, scores, opts)
}

func computeScores(model svm.Model, reg region.AdversarialRegion, bounds []interval.Interval, kind domain.Kind) ([]interval.Interval, error) {
	switch kind {
	case domain.Interval:
		return scorer.ScoreIntervals(model, bounds)

	case domain.RAF:
		rafs, err := reg.ToRafs()
		if err != nil {
			return nil, err
		}
		rscores, err := scorer.ScoreRafs(model, rafs)
		if err != nil {
			return nil, err
		}
		return toIntervals(rscores), nil

	case domain.Hybrid:
		intervalScores, err := scorer.ScoreIntervals(model, bounds)
		if err != nil {
			return nil, err
		}
		rafs, err := reg.ToRafs()
		if err != nil {
			return nil, err
		}
		rscores, err := scorer.ScoreRafs(model, rafs)
		if err != nil {
			return nil, err
		}

		merged := make([]interval.Interval, len(intervalScores))
		for i := range merged {
			m, err := domain.Meet(intervalScores[i], rscores[i].ToInterval())
			if err != nil {
				return nil, err
			}
			merged[i] = m
		}
		return merged, nil

	default:
		return nil, errUnsupportedAbstraction(kind)
	}
}

func finish(model svm.Model, sample []float64, bounds []interval.Interval, scores []interval.Interval, opts config.Options) (Outcome, error) {
	if err := checkSoundness(model, sample, scores); err != nil {
		return Outcome{}, fmt.Errorf("finish: %w", err)
	}

	predicted, err := classifier.Predict(model, sample)
	if err != nil {
		return Outcome{}, fmt.Errorf("finish: %w", err)
	}

	winnerIdx, err := voter.PossibleWinners(model.NClasses(), scores)
	if err != nil {
		return Outcome{}, fmt.Errorf("finish: %w", err)
	}

	winners := make([]string, len(winnerIdx))
	predictedIdx := -1
	for i, idx := range winnerIdx {
		winners[i] = model.Classes[idx]
		if model.Classes[idx] == predicted {
			predictedIdx = idx
		}
	}

	robust := len(winnerIdx) == 1 && model.Classes[winnerIdx[0]] == predicted
	conditionallyRobust := !robust && predictedIdx >= 0

	out := Outcome{
		PredictedLabel:      predicted,
		PossibleWinners:     winners,
		Robust:              robust,
		ConditionallyRobust: conditionallyRobust,
	}

	if !robust && opts.SearchCounterexamples {
		cx, found, err := counterexample.Seek(model, sample, bounds, opts.CounterexampleStrategy)
		if err != nil {
			return Outcome{}, fmt.Errorf("finish: %w", err)
		}
		if found {
			out.Counterexample = &cx
		}
	}

	return out, nil
}

// checkSoundness confirms the concrete score of sample lies within every
// abstract bound, the runtime assertion check_soundness (saver.c) prints
// as a debug diagnostic; here it panics with a SoundnessViolation, since a
// failure indicates a defect in the abstract domains themselves rather
// than a normal, callable-recoverable error. A model.Score failure (e.g. a
// caller-induced size mismatch) is still an ordinary error, since it says
// nothing about the abstract domains' soundness.
func checkSoundness(model svm.Model, sample []float64, scores []interval.Interval) error {
	concrete, err := model.Score(sample)
	if err != nil {
		return fmt.Errorf("checkSoundness: %w", err)
	}
	for i, v := range concrete {
		if !scores[i].Contains(v) {
			panic(SoundnessViolation{PairIndex: i, Concrete: v, BoundLow: scores[i].L, BoundHigh: scores[i].U})
		}
	}
	return nil
}

func toIntervals(rs []raf.Raf) []interval.Interval {
	out := make([]interval.Interval, len(rs))
	for i, r := range rs {
		out[i] = r.ToInterval()
	}
	return out
}

func errUnsupportedAbstraction(kind domain.Kind) error {
	return fmt.Errorf("unsupported abstraction %s: %w", kind, ErrUnsupportedAbstraction)
}
