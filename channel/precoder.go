// SPDX-License-Identifier: MIT
// Package: sicrate/channel
//
// precoder.go — precoder construction and power bookkeeping.
//
// A precoder is a tx×users *mat.CDense whose column l beamforms layer l.
// Helpers here never mutate their inputs; they return fresh matrices.

package channel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/sicrate/matrix"
	"gonum.org/v1/gonum/mat"
)

// NewPrecoder wraps row-major data into a tx×users precoder (data is copied).
func NewPrecoder(tx, users int, data []complex128) (*mat.CDense, error) {
	if tx < 1 || users < 1 {
		return nil, channelErrorf("NewPrecoder", ErrTooFewUsers)
	}
	if len(data) != tx*users {
		return nil, channelErrorf("NewPrecoder", matrix.ErrDimensionMismatch)
	}

	return mat.NewCDense(tx, users, append([]complex128(nil), data...)), nil
}

// TotalPower returns ‖P‖_F², the total transmit power of the precoder.
func TotalPower(p *mat.CDense) float64 {
	_, c := p.Dims()
	var s float64
	for l := 0; l < c; l++ {
		s += matrix.ColNormSq(p, l)
	}

	return s
}

// ColumnPowers returns ‖p_l‖² for every layer.
func ColumnPowers(p *mat.CDense) []float64 {
	_, c := p.Dims()
	out := make([]float64, c)
	for l := range out {
		out[l] = matrix.ColNormSq(p, l)
	}

	return out
}

// NormalizeColumns rescales every column so that ‖p_l‖² = powers[l].
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (len(powers) ≠
// columns), ErrBadPower (negative/non-finite power), ErrZeroColumn (a zero
// column asked for non-zero power).
func NormalizeColumns(p *mat.CDense, powers []float64) (*mat.CDense, error) {
	if err := matrix.ValidateNotNil(p); err != nil {
		return nil, channelErrorf("NormalizeColumns", err)
	}
	r, c := p.Dims()
	if err := matrix.ValidateVecLen(powers, c); err != nil {
		return nil, channelErrorf("NormalizeColumns", err)
	}

	out := mat.NewCDense(r, c, nil)
	for l := 0; l < c; l++ {
		if err := checkPower(powers[l]); err != nil {
			return nil, channelErrorf("NormalizeColumns", err)
		}
		norm := matrix.ColNormSq(p, l)
		if norm == 0 {
			if powers[l] == 0 {
				continue
			}
			return nil, channelErrorf("NormalizeColumns", ErrZeroColumn)
		}
		scale := complex(math.Sqrt(powers[l]/norm), 0)
		for k := 0; k < r; k++ {
			out.Set(k, l, scale*p.At(k, l))
		}
	}

	return out, nil
}

// ScalePrecoder returns α·P.
func ScalePrecoder(p *mat.CDense, alpha complex128) (*mat.CDense, error) {
	if err := matrix.ValidateNotNil(p); err != nil {
		return nil, channelErrorf("ScalePrecoder", err)
	}
	r, c := p.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, alpha*p.At(i, j))
		}
	}

	return out, nil
}

// PermuteColumns returns P' with column k = P's column order[k].
// Feeding (Tensor.Permute(order), PermuteColumns(P, order)) to the implicit
// order evaluator is the same problem as the explicit order evaluator on
// (T, P, order).
func PermuteColumns(p *mat.CDense, order []int) (*mat.CDense, error) {
	if err := matrix.ValidateNotNil(p); err != nil {
		return nil, channelErrorf("PermuteColumns", err)
	}
	r, c := p.Dims()
	if err := matrix.ValidatePermutation(order, c); err != nil {
		return nil, channelErrorf("PermuteColumns", err)
	}
	out := mat.NewCDense(r, c, nil)
	for k, src := range order {
		for i := 0; i < r; i++ {
			out.Set(i, k, p.At(i, src))
		}
	}

	return out, nil
}

// MaximumRatio builds the matched-filter precoder p_l = √P_l · h_lᴴ/‖h_l‖ for a
// single-stream tensor (layer l points at user l).
//
// Errors: matrix.ErrBadShape when rx ≠ 1, matrix.ErrDimensionMismatch when
// len(powers) ≠ users, ErrBadPower, ErrZeroColumn for an all-zero channel row.
func MaximumRatio(t Tensor, powers []float64) (*mat.CDense, error) {
	if t.Users() == 0 {
		return nil, channelErrorf("MaximumRatio", ErrTooFewUsers)
	}
	if t.rx != 1 {
		return nil, channelErrorf("MaximumRatio", matrix.ErrBadShape)
	}
	if err := matrix.ValidateVecLen(powers, t.Users()); err != nil {
		return nil, channelErrorf("MaximumRatio", err)
	}

	p := mat.NewCDense(t.tx, t.Users(), nil)
	for l, h := range t.slices {
		for k := 0; k < t.tx; k++ {
			// column l is the conjugate transpose of user l's row
			p.Set(k, l, cmplx.Conj(h.At(0, k)))
		}
	}

	return NormalizeColumns(p, powers)
}

// checkPower rejects negative or non-finite powers.
func checkPower(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrBadPower
	}

	return nil
}
