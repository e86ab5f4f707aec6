package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/abstractsvm/svmverify/report"
	"github.com/stretchr/testify/require"
)

func TestStopwatchElapsed(t *testing.T) {
	var sw report.Stopwatch
	sw.Start()
	time.Sleep(time.Millisecond)
	sw.Stop()
	require.Positive(t, sw.Elapsed())
}

func TestWriterWriteSample(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	err := w.WriteSample(report.SampleResult{
		Index:           0,
		TrueLabel:       "a",
		PredictedLabels: []string{"a"},
		Robust:          true,
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "robust")
	require.Contains(t, buf.String(), "a")
}

func TestSummaryAddAndWriteSummary(t *testing.T) {
	var s report.Summary
	s.Add(report.SampleResult{TrueLabel: "a", PredictedLabels: []string{"a"}, Robust: true})
	s.Add(report.SampleResult{TrueLabel: "a", PredictedLabels: []string{"b"}, CounterexampleFound: true})

	require.Equal(t, 2, s.Total)
	require.Equal(t, 1, s.RobustCases)
	require.Equal(t, 1, s.CorrectCases)
	require.Equal(t, 1, s.CounterexamplesFound)

	var buf bytes.Buffer
	w := report.NewWriter(&buf)
	require.NoError(t, w.WriteSummary(s))
	require.Contains(t, buf.String(), "[SUMMARY]")
	require.Contains(t, buf.String(), "total=2")
}
