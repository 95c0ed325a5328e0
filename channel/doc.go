// Package channel models the broadcast side of a superposition-coded downlink:
// the per-user channel tensor, the precoder matrix and the decoding order.
//
// ✨ Key features:
//   - Tensor: one (rx × tx) complex slice per user with shape checks at
//     construction and read-only access afterwards.
//   - Seeded generators: i.i.d. Rayleigh fading (WithSeed / WithRand,
//     WithVariance, WithPathGains) and half-wavelength ULA line-of-sight rows.
//   - Receive combining (Combine, SelectStrongest) down to the single stream
//     the layer evaluator expects.
//   - Precoder helpers: NewPrecoder, MaximumRatio, NormalizeColumns,
//     ScalePrecoder, PermuteColumns, TotalPower.
//   - Order helpers: IdentityOrder, Positions, OrderByGain.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sicrate/channel"
//
//	h, err := channel.Rayleigh(3, 1, 4, channel.WithSeed(7))
//	p, err := channel.MaximumRatio(h, []float64{1, 1, 1})
//	order := channel.OrderByGain(h)
package channel
