// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// generators.go — seeded fixture generators.
//
// RNG policy:
//   - Rayleigh requires cfg.rng (WithSeed/WithRand); otherwise ErrNeedRandSource.
//   - Sampling order is fixed (user → rx → tx, real part before imaginary),
//     so a given seed always yields the same tensor.

package channel

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Rayleigh samples an i.i.d. Rayleigh-fading tensor: every entry of user i is
// CN(0, σ²·g_i), with σ² from WithVariance and g_i from WithPathGains.
//
// Errors: ErrTooFewUsers for non-positive sizes, ErrNeedRandSource without RNG.
// Complexity: O(users·rx·tx).
func Rayleigh(users, rx, tx int, opts ...Option) (Tensor, error) {
	if users < 1 || rx < 1 || tx < 1 {
		return Tensor{}, channelErrorf("Rayleigh", ErrTooFewUsers)
	}
	cfg := newChannelConfig(opts...)
	if cfg.rng == nil {
		return Tensor{}, channelErrorf("Rayleigh", ErrNeedRandSource)
	}

	slices := make([]*mat.CDense, users)
	for i := range slices {
		// each real dimension carries half the complex variance
		sigma := math.Sqrt(cfg.variance * cfg.gain(i) / 2)
		s := mat.NewCDense(rx, tx, nil)
		for r := 0; r < rx; r++ {
			for c := 0; c < tx; c++ {
				re := cfg.rng.NormFloat64() * sigma
				im := cfg.rng.NormFloat64() * sigma
				s.Set(r, c, complex(re, im))
			}
		}
		slices[i] = s
	}

	return Tensor{slices: slices, rx: rx, tx: tx}, nil
}

// LineOfSight builds single-antenna users seen from a half-wavelength uniform
// linear array of tx elements: h_i[k] = √g_i · exp(-jπ k sin θ_i).
// angles are in radians; path gains come from WithPathGains.
func LineOfSight(tx int, angles []float64, opts ...Option) (Tensor, error) {
	if tx < 1 || len(angles) == 0 {
		return Tensor{}, channelErrorf("LineOfSight", ErrTooFewUsers)
	}
	cfg := newChannelConfig(opts...)

	slices := make([]*mat.CDense, len(angles))
	for i, theta := range angles {
		amp := complex(math.Sqrt(cfg.gain(i)), 0)
		s := mat.NewCDense(1, tx, nil)
		for k := 0; k < tx; k++ {
			s.Set(0, k, amp*cmplx.Exp(complex(0, -math.Pi*float64(k)*math.Sin(theta))))
		}
		slices[i] = s
	}

	return Tensor{slices: slices, rx: 1, tx: tx}, nil
}
