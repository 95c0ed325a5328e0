// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// options.go — functional options for the channel generators.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package channel

import (
	"math"
	"math/rand"
)

// Option customizes a generator by mutating a channelConfig before sampling.
type Option func(*channelConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("channel: WithRand(nil)")
	}
	return func(c *channelConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *channelConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVariance sets the per-entry fading variance σ² (> 0, finite).
func WithVariance(v float64) Option {
	if !(v > 0) || math.IsInf(v, 0) {
		panic("channel: WithVariance(v<=0 or non-finite)")
	}
	return func(c *channelConfig) {
		c.variance = v
	}
}

// WithPathGains sets per-user large-scale linear power gains. Users beyond
// len(g) fall back to unit gain. Panics on negative or non-finite gains.
func WithPathGains(g ...float64) Option {
	for _, v := range g {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			panic("channel: WithPathGains(negative or non-finite gain)")
		}
	}
	gains := append([]float64(nil), g...)
	return func(c *channelConfig) {
		c.pathGains = gains
	}
}
