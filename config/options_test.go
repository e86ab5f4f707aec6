package config_test

import (
	"testing"

	"github.com/abstractsvm/svmverify/config"
	"github.com/abstractsvm/svmverify/counterexample"
	"github.com/abstractsvm/svmverify/domain"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := config.DefaultOptions()
	require.Equal(t, domain.Interval, o.Abstraction)
	require.False(t, o.SearchCounterexamples)
	require.False(t, o.DebugOutput)
}

func TestApplyFoldsOptionsInOrder(t *testing.T) {
	o := config.Apply(
		config.WithAbstraction(domain.Hybrid),
		config.WithCounterexamples(counterexample.DivideAndConquerStrategy),
		config.WithCounterexamplesFile("out.txt"),
		config.WithFeatureWeights(),
		config.WithTopRegionOnly(),
		config.WithDebugOutput(),
	)

	require.Equal(t, domain.Hybrid, o.Abstraction)
	require.True(t, o.SearchCounterexamples)
	require.Equal(t, counterexample.DivideAndConquerStrategy, o.CounterexampleStrategy)
	require.Equal(t, "out.txt", o.CounterexamplesFile)
	require.True(t, o.ReportFeatureWeights)
	require.True(t, o.TopRegionOnly)
	require.True(t, o.DebugOutput)
}
