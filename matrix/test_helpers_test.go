// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the complex kernels and masks.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tol is the absolute tolerance used by floating comparisons in this package.
const tol = 1e-12

// row builds a 1×n channel row from the given entries.
func row(t *testing.T, vals ...complex128) *mat.CDense {
	t.Helper()
	require.NotEmpty(t, vals, "row needs at least one entry")

	return mat.NewCDense(1, len(vals), vals)
}

// cols builds an r×c matrix from column slices (each of length r).
func cols(t *testing.T, cs ...[]complex128) *mat.CDense {
	t.Helper()
	require.NotEmpty(t, cs)
	r := len(cs[0])
	m := mat.NewCDense(r, len(cs), nil)
	for j, c := range cs {
		require.Len(t, c, r, "ragged column %d", j)
		for i, v := range c {
			m.Set(i, j, v)
		}
	}

	return m
}
