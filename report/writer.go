package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// SampleResult captures the outcome of verifying one dataset row.
//
// ClassifierPath, DatasetPath and Epsilon are carried per-row (rather than
// once per run) so a single Writer can serve a batch that mixes
// perturbation magnitudes, matching the per-row output line spec.md §6
// specifies: "classifier_path dataset_path id epsilon true_label
// concrete_labels abstract_labels [counterexample_status]".
type SampleResult struct {
	ClassifierPath string
	DatasetPath    string
	Index          int
	Epsilon        float64

	TrueLabel       string
	ConcreteLabels  []string
	PredictedLabels []string // abstract_labels: the possible-winners set

	Robust              bool
	ConditionallyRobust bool
	CounterexampleFound bool
	Elapsed             time.Duration
}

// Summary aggregates SampleResults across an entire batch run, mirroring
// the running counters saver.c's main accumulates (robust_cases,
// correct_cases, conditionally_robust_cases, counterexamples_found).
type Summary struct {
	Total                    int
	RobustCases              int
	CorrectCases             int
	ConditionallyRobustCases int
	CounterexamplesFound     int
	totalElapsed             time.Duration
}

// AvgMillisPerSample returns the mean wall-clock time, in milliseconds,
// spent verifying each sample folded into s so far. Returns 0 when s is
// empty, matching saver.c's guard against dividing by a zero sample count.
func (s Summary) AvgMillisPerSample() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.totalElapsed.Microseconds()) / 1000 / float64(s.Total)
}

// Add folds r into s.
func (s *Summary) Add(r SampleResult) {
	s.Total++
	s.totalElapsed += r.Elapsed
	if r.Robust {
		s.RobustCases++
	}
	if r.ConditionallyRobust {
		s.ConditionallyRobustCases++
	}
	if len(r.PredictedLabels) == 1 && r.PredictedLabels[0] == r.TrueLabel {
		s.CorrectCases++
	}
	if r.CounterexampleFound {
		s.CounterexamplesFound++
	}
}

// Writer formats SampleResults and a final Summary as tab-separated
// text, one sample per line, in the spirit of saver.c's per-pair
// "index\tscore\t[l, u]\tsound/unsound" rows.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteSample writes one tab-separated row describing r, following
// spec.md §6's column order: classifier_path, dataset_path, id, epsilon,
// true_label, concrete_labels, abstract_labels, then a status column that
// is always written ("robust", "conditionally robust", "counterexample
// found" or "not robust") and a final column with r.Elapsed.
func (rw *Writer) WriteSample(r SampleResult) error {
	status := "not robust"
	switch {
	case r.Robust:
		status = "robust"
	case r.ConditionallyRobust:
		status = "conditionally robust"
	case r.CounterexampleFound:
		status = "counterexample found"
	}

	_, err := fmt.Fprintf(
		rw.w,
		"%s\t%s\t%d\t%g\t%s\t%s\t%s\t%s\t%s\n",
		r.ClassifierPath,
		r.DatasetPath,
		r.Index,
		r.Epsilon,
		r.TrueLabel,
		strings.Join(r.ConcreteLabels, ","),
		strings.Join(r.PredictedLabels, ","),
		status,
		r.Elapsed,
	)
	if err != nil {
		return fmt.Errorf("WriteSample: %w", err)
	}
	return nil
}

// WriteSummary writes the final "[SUMMARY]" line: size, average
// milliseconds per sample, and the running counters, per spec.md §6.
func (rw *Writer) WriteSummary(s Summary) error {
	_, err := fmt.Fprintf(
		rw.w,
		"[SUMMARY]\ttotal=%d\tavg_ms_per_sample=%.3f\trobust=%d\tcorrect=%d\tconditionally_robust=%d\tcounterexamples=%d\n",
		s.Total,
		s.AvgMillisPerSample(),
		s.RobustCases,
		s.CorrectCases,
		s.ConditionallyRobustCases,
		s.CounterexamplesFound,
	)
	if err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	return nil
}
