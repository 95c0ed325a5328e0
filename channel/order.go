// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// order.go — decoding-order helpers. These only build or invert orders; they
// do not search for a good one.

package channel

import (
	"sort"

	"github.com/katalvlaran/sicrate/matrix"
)

// IdentityOrder returns [0, 1, ..., n-1].
func IdentityOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Positions inverts a decoding order: pos[order[k]] = k.
func Positions(order []int) ([]int, error) {
	if err := matrix.ValidatePermutation(order, len(order)); err != nil {
		return nil, channelErrorf("Positions", err)
	}
	pos := make([]int, len(order))
	for k, u := range order {
		pos[u] = k
	}

	return pos, nil
}

// OrderByGain returns the conventional NOMA order: users sorted by ascending
// channel gain ‖H_i‖_F², so the weakest user's layer is decoded first and the
// strongest user cancels everyone else's. Ties keep user index order.
func OrderByGain(t Tensor) []int {
	gains := t.Gains()
	order := IdentityOrder(t.Users())
	sort.SliceStable(order, func(a, b int) bool {
		return gains[order[a]] < gains[order[b]]
	})

	return order
}
