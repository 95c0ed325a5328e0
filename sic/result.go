// SPDX-License-Identifier: MIT
// Package: sicrate/sic
//
// result.go — the evaluation result and derived metrics.
//
// Layout conventions (all users×users unless noted):
//   • Row i is a user, column j is a SIC stage; stage j carries precoder
//     column Order[j].
//   • Cells outside Mask are NaN in every matrix.

package sic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sicrate/matrix"
	"gonum.org/v1/gonum/mat"
)

// Result holds the layer metrics of one channel/precoder/order configuration.
type Result struct {
	// Order is the decoding order the result was computed for (identity for
	// Evaluate).
	Order []int

	// G is the MMSE equalizer: G[i,j] = (p_{Order[j]}ᴴ h_i) / T[i,j].
	G *mat.CDense
	// U is the MMSE weight: U[i,j] = 1 / MMSE[i,j].
	U *mat.Dense
	// R is the achievable rate of each stage's layer, in bit/s/Hz.
	R *mat.VecDense

	// T is the received power left before stage j (unit noise included).
	T    *mat.Dense
	// I is T minus the power of the layer decoded at stage j.
	I    *mat.Dense
	// MMSE is I/T.
	MMSE *mat.Dense
	// Rate is the per-cell rate log2(T/I).
	Rate *mat.Dense

	// Mask marks the (user, stage) cells each user actually decodes.
	Mask matrix.Mask
}

// Users returns the number of users (and stages).
func (r *Result) Users() int { return len(r.Order) }

// Valid reports whether user i decodes stage j.
func (r *Result) Valid(i, j int) bool { return r.Mask.Valid(i, j) }

// SINR returns T/I − 1 for a valid cell and NaN otherwise.
func (r *Result) SINR(i, j int) float64 {
	if !r.Valid(i, j) {
		return math.NaN()
	}

	return r.T.At(i, j)/r.I.At(i, j) - 1
}

// SumRate returns Σ_j R[j].
func (r *Result) SumRate() float64 {
	var s float64
	for j := 0; j < r.R.Len(); j++ {
		s += r.R.AtVec(j)
	}

	return s
}

// UserRates maps the per-stage rates back to users: out[Order[j]] = R[j].
func (r *Result) UserRates() []float64 {
	out := make([]float64, len(r.Order))
	for j, u := range r.Order {
		out[u] = r.R.AtVec(j)
	}

	return out
}

// WeightedSumRate returns Σ_u w[u]·rate(u), with weights indexed by user.
// Returns matrix.ErrDimensionMismatch when len(w) differs from Users().
func (r *Result) WeightedSumRate(w []float64) (float64, error) {
	if err := matrix.ValidateVecLen(w, r.Users()); err != nil {
		return 0, fmt.Errorf("sic.WeightedSumRate: %w", err)
	}
	var s float64
	for u, rate := range r.UserRates() {
		s += w[u] * rate
	}

	return s, nil
}
