// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// tensor.go — the broadcast channel tensor.
//
// Purpose:
//   - Stack one (receive × transmit) complex matrix per user and guarantee at
//     construction that every slice shares the same shape.
//   - Treat slices as immutable: constructors copy, accessors hand out the
//     stored pointers for read-only use.

package channel

import (
	"github.com/katalvlaran/sicrate/matrix"
	"gonum.org/v1/gonum/mat"
)

// Tensor is the channel from the transmitter to every user.
// The zero value has no users and is rejected by every consumer.
type Tensor struct {
	slices []*mat.CDense // one rx×tx slice per user
	rx, tx int
}

// NewTensor stacks per-user channel matrices into a Tensor. Slices are copied.
//
// Errors:
//   - ErrTooFewUsers when no slice is given.
//   - matrix.ErrNilMatrix / matrix.ErrBadShape for nil or empty slices.
//   - matrix.ErrDimensionMismatch when shapes differ between users.
func NewTensor(slices ...*mat.CDense) (Tensor, error) {
	if len(slices) == 0 {
		return Tensor{}, channelErrorf("NewTensor", ErrTooFewUsers)
	}
	for _, s := range slices {
		if err := matrix.ValidateNotNil(s); err != nil {
			return Tensor{}, channelErrorf("NewTensor", err)
		}
		if err := matrix.ValidateSameShape(slices[0], s); err != nil {
			return Tensor{}, channelErrorf("NewTensor", err)
		}
	}

	out := make([]*mat.CDense, len(slices))
	for i, s := range slices {
		out[i] = matrix.CloneC(s)
	}
	rx, tx := slices[0].Dims()

	return Tensor{slices: out, rx: rx, tx: tx}, nil
}

// Users returns the number of stacked users.
func (t Tensor) Users() int { return len(t.slices) }

// Dims returns (receive antennas, transmit antennas).
func (t Tensor) Dims() (rx, tx int) { return t.rx, t.tx }

// At returns user i's channel slice, or nil when i is out of range.
// The returned matrix must not be modified.
func (t Tensor) At(i int) *mat.CDense {
	if i < 0 || i >= len(t.slices) {
		return nil
	}

	return t.slices[i]
}

// Slices returns the per-user slices in user order.
// The returned slice header is fresh; the matrices are shared and read-only.
func (t Tensor) Slices() []*mat.CDense {
	return append([]*mat.CDense(nil), t.slices...)
}

// Permute returns a tensor whose user k is t's user order[k].
func (t Tensor) Permute(order []int) (Tensor, error) {
	if err := matrix.ValidatePermutation(order, t.Users()); err != nil {
		return Tensor{}, channelErrorf("Tensor.Permute", err)
	}
	out := make([]*mat.CDense, len(order))
	for k, u := range order {
		out[k] = t.slices[u]
	}

	return Tensor{slices: out, rx: t.rx, tx: t.tx}, nil
}

// Gains returns ‖H_i‖_F² for every user.
func (t Tensor) Gains() []float64 {
	g := make([]float64, len(t.slices))
	for i, s := range t.slices {
		for r := 0; r < t.rx; r++ {
			g[i] += matrix.RowNormSq(s, r)
		}
	}

	return g
}
