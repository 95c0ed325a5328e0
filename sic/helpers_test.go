package sic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sicrate/channel"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tol is the absolute tolerance for closed-form comparisons.
const tol = 1e-12

// tensor builds a single-stream tensor from per-user rows.
func tensor(t *testing.T, rows ...[]complex128) channel.Tensor {
	t.Helper()
	slices := make([]*mat.CDense, len(rows))
	for i, r := range rows {
		slices[i] = mat.NewCDense(1, len(r), append([]complex128(nil), r...))
	}
	h, err := channel.NewTensor(slices...)
	require.NoError(t, err)

	return h
}

// precoder builds a tx×users precoder from row-major data.
func precoder(t *testing.T, tx, users int, data ...complex128) *mat.CDense {
	t.Helper()
	p, err := channel.NewPrecoder(tx, users, data)
	require.NoError(t, err)

	return p
}

// randomProblem draws a seeded single-stream problem with MRT precoding.
func randomProblem(t *testing.T, users, tx int, seed int64) (channel.Tensor, *mat.CDense) {
	t.Helper()
	h, err := channel.Rayleigh(users, 1, tx, channel.WithSeed(seed))
	require.NoError(t, err)
	powers := make([]float64, users)
	for i := range powers {
		powers[i] = 1 + float64(i)
	}
	p, err := channel.MaximumRatio(h, powers)
	require.NoError(t, err)

	return h, p
}

var invSqrt2 = complex(1/math.Sqrt2, 0)
