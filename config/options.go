package config

import (
	"github.com/abstractsvm/svmverify/counterexample"
	"github.com/abstractsvm/svmverify/domain"
)

// Options controls how a verification run is carried out: which
// abstract domain computes the pairwise score bounds, whether a
// counterexample search runs when a sample cannot be proved robust, and
// the auxiliary reporting switches a batch run accepts.
type Options struct {
	// Abstraction selects the abstract domain used to bound pairwise
	// scores. Default is domain.Interval.
	Abstraction domain.Kind

	// SearchCounterexamples enables counterexample search for samples
	// the chosen abstraction cannot prove robust. Default is false.
	SearchCounterexamples bool

	// CounterexampleStrategy selects the search procedure used when
	// SearchCounterexamples is set. Default is counterexample.VertexOnly.
	CounterexampleStrategy counterexample.Strategy

	// CounterexamplesFile, if non-empty, is the path counterexamples
	// found during the run are appended to. Mirrors
	// Options.counterexamples_file (options.h).
	CounterexamplesFile string

	// ReportFeatureWeights records a request for per-pair linear feature
	// weights. It is set by the CLI's top flag; no package in this module
	// reads it, so no weights are printed.
	ReportFeatureWeights bool

	// TopRegionOnly records a request to report only the outermost region.
	// It is set by the CLI's top flag; no package in this module reads it.
	TopRegionOnly bool

	// DebugOutput records the debug-output switch. Mirrors
	// Options.debug_output (options.h); no package in this module reads
	// it, so it produces no extra output.
	DebugOutput bool
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the verifier's baseline configuration: interval
// abstraction, no counterexample search, no debug output.
func DefaultOptions() Options {
	return Options{
		Abstraction:            domain.Interval,
		SearchCounterexamples:  false,
		CounterexampleStrategy: counterexample.VertexOnly,
	}
}

// Apply folds opts onto DefaultOptions in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAbstraction returns an Option that selects the abstract domain.
func WithAbstraction(kind domain.Kind) Option {
	return func(o *Options) {
		o.Abstraction = kind
	}
}

// WithCounterexamples returns an Option that enables counterexample
// search using strategy for samples the abstraction leaves undecided.
func WithCounterexamples(strategy counterexample.Strategy) Option {
	return func(o *Options) {
		o.SearchCounterexamples = true
		o.CounterexampleStrategy = strategy
	}
}

// WithCounterexamplesFile returns an Option that appends found
// counterexamples to path.
func WithCounterexamplesFile(path string) Option {
	return func(o *Options) {
		o.CounterexamplesFile = path
	}
}

// WithFeatureWeights returns an Option that sets ReportFeatureWeights.
func WithFeatureWeights() Option {
	return func(o *Options) {
		o.ReportFeatureWeights = true
	}
}

// WithTopRegionOnly returns an Option that sets TopRegionOnly.
func WithTopRegionOnly() Option {
	return func(o *Options) {
		o.TopRegionOnly = true
	}
}

// WithDebugOutput returns an Option that sets DebugOutput.
func WithDebugOutput() Option {
	return func(o *Options) {
		o.DebugOutput = true
	}
}
