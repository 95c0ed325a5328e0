// SPDX-License-Identifier: MIT
// Package: sicrate/sic
//
// options.go — functional options shared by Evaluate, EvaluateOrdered and
// EvaluateBatch.
//
// Contract:
//   • Option constructors panic on nonsensical values (programmer error).
//   • Defaults: discarding logger, GOMAXPROCS batch concurrency.

package sic

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Option customizes an evaluation.
type Option func(*config)

// config is the resolved option set (passed by value after construction).
type config struct {
	logger      logrus.FieldLogger
	concurrency int
}

// newConfig applies options in order (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		logger:      discardLogger(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes evaluator diagnostics (debug summaries, warnings about
// degenerate cells) to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("sic: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithConcurrency bounds the number of cases EvaluateBatch runs at once.
// Panics if n < 1. Ignored by the single-case evaluators.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("sic: WithConcurrency(n<1)")
	}
	return func(c *config) {
		c.concurrency = n
	}
}

// discardLogger returns a logger that drops every entry.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
