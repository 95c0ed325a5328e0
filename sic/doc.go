// Package sic evaluates the layers of a superposition-coded downlink decoded
// with successive interference cancellation (NOMA / rate-splitting).
//
// 🚀 What does it compute?
//
//	For a fixed channel tensor H (one single-stream row per user), a fixed
//	precoder P (one column per layer) and a decoding order, sic returns:
//	  • G — the scalar MMSE equalizer each user applies at each SIC stage
//	  • U — the MMSE weights 1/MMSE
//	  • R — the achievable rate of every layer, i.e. the minimum over all the
//	        users that must decode it
//
// ✨ Key features:
//   - Evaluate: implicit order (column j is decoded at stage j).
//   - EvaluateOrdered: explicit order permutation.
//   - An explicit validity mask: user i decodes stages up to its own layer;
//     every other cell is NaN in the result and never enters a minimum.
//   - EvaluateBatch: bounded concurrent scoring of many configurations.
//
// ⚙️ Usage:
//
//	h, _ := channel.Rayleigh(2, 1, 2, channel.WithSeed(1))
//	p, _ := channel.MaximumRatio(h, []float64{1, 1})
//	res, err := sic.EvaluateOrdered(h, p, channel.OrderByGain(h))
//	fmt.Println(res.SumRate())
//
// Noise power is normalized to 1: scale channel or precoder to set the SNR.
// Degenerate configurations (negative residual power) yield NaN/±Inf cells
// and a logged warning rather than an error.
package sic
