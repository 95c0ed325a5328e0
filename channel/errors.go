// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// errors.go — sentinel errors for the channel package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Shape problems reuse the matrix sentinels (ErrDimensionMismatch,
//     ErrBadShape, ErrNotPermutation) so one errors.Is works across packages.
//   • Generators and helpers MUST NOT panic at runtime; validation panics are
//     confined to option constructors (WithX...).

package channel

import (
	"errors"
	"fmt"
)

// ErrTooFewUsers indicates that a user or antenna count is smaller than one.
var ErrTooFewUsers = errors.New("channel: parameter too small")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved config (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("channel: rng is required")

// ErrZeroColumn indicates that a precoder column (or a channel row used as a
// beam direction) has zero norm and cannot be normalized.
var ErrZeroColumn = errors.New("channel: zero-norm vector")

// ErrBadPower indicates a negative, NaN or infinite power or gain value.
var ErrBadPower = errors.New("channel: invalid power")

// channelErrorf attaches the operation name to err.
func channelErrorf(op string, err error) error {
	return fmt.Errorf("channel.%s: %w", op, err)
}
