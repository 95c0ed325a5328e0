// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// combine.go — reduce multi-antenna receivers to one effective stream.
//
// The layer evaluator works on scalar combining coefficients, so each user's
// slice must be 1×tx. Combine applies a fixed receive combiner per user;
// SelectStrongest is plain antenna selection.

package channel

import (
	"math/cmplx"

	"github.com/katalvlaran/sicrate/matrix"
	"gonum.org/v1/gonum/mat"
)

// Combine returns the single-stream tensor h_i = w_iᴴ H_i.
//
// w must hold one rx-length combiner per user.
// Errors: matrix.ErrDimensionMismatch on count/length mismatch, ErrTooFewUsers
// on an empty tensor.
func Combine(t Tensor, w [][]complex128) (Tensor, error) {
	if t.Users() == 0 {
		return Tensor{}, channelErrorf("Combine", ErrTooFewUsers)
	}
	if len(w) != t.Users() {
		return Tensor{}, channelErrorf("Combine", matrix.ErrDimensionMismatch)
	}

	out := make([]*mat.CDense, t.Users())
	for i, h := range t.slices {
		if len(w[i]) != t.rx {
			return Tensor{}, channelErrorf("Combine", matrix.ErrDimensionMismatch)
		}
		row := mat.NewCDense(1, t.tx, nil)
		for k := 0; k < t.tx; k++ {
			var acc complex128
			for r := 0; r < t.rx; r++ {
				acc += cmplx.Conj(w[i][r]) * h.At(r, k)
			}
			row.Set(0, k, acc)
		}
		out[i] = row
	}

	return Tensor{slices: out, rx: 1, tx: t.tx}, nil
}

// SelectStrongest keeps, for every user, the receive row with the largest
// squared norm (ties resolve to the lowest antenna index).
func SelectStrongest(t Tensor) (Tensor, error) {
	if t.Users() == 0 {
		return Tensor{}, channelErrorf("SelectStrongest", ErrTooFewUsers)
	}

	w := make([][]complex128, t.Users())
	for i, h := range t.slices {
		best, bestNorm := 0, -1.0
		for r := 0; r < t.rx; r++ {
			if n := matrix.RowNormSq(h, r); n > bestNorm {
				best, bestNorm = r, n
			}
		}
		w[i] = make([]complex128, t.rx)
		w[i][best] = 1
	}

	return Combine(t, w)
}
