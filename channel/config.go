// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng       = nil   (generators refuse to run without WithSeed/WithRand)
//   • variance  = 1.0   (CN(0,1) small-scale fading)
//   • pathGains = nil   (unit large-scale gain for every user)

package channel

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultVariance = 1.0 // per-entry variance of CN(0, σ²)
	defaultPathGain = 1.0 // large-scale gain when WithPathGains is not set
)

// channelConfig aggregates all knobs used by the generators.
// It is passed by VALUE to generators (immutable to callers).
type channelConfig struct {
	rng       *rand.Rand // nil means "no randomness"
	variance  float64    // > 0
	pathGains []float64  // per-user linear power gains; nil ⇒ defaultPathGain
}

// newChannelConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newChannelConfig(opts ...Option) channelConfig {
	cfg := channelConfig{
		rng:      nil,
		variance: defaultVariance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// gain returns the large-scale power gain of user i.
func (c channelConfig) gain(i int) float64 {
	if i < len(c.pathGains) {
		return c.pathGains[i]
	}

	return defaultPathGain
}
