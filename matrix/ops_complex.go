// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small complex kernels shared by the channel and sic packages: row-by-column
//     products, squared magnitudes and the user×layer response/gain tables.
//   - Keep loops deterministic (fixed i→l→k order) so results are bitwise
//     reproducible across runs.
//
// AI-Hints:
//   - Build the response table once per evaluation; every power term downstream
//     is a lookup, not a fresh inner product.
//   - Inputs are assumed validated at the boundary (see validators.go); the
//     exported table builders still re-check shapes and return sentinels.

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// RowCol returns Σ_k a[row,k]·b[k,col] (no conjugation).
//
// For a single-stream channel row h (1×Nt) and a precoder column p this is the
// scalar received amplitude h·p, i.e. the inner product h_iᴴ p_l when h_i is
// stored as the column vector h_iᴴ-transposed.
// Complexity: O(Nt). Panics (via gonum) only on programmer-error indices.
func RowCol(a *mat.CDense, row int, b *mat.CDense, col int) complex128 {
	_, n := a.Dims()
	var acc complex128
	for k := 0; k < n; k++ {
		acc += a.At(row, k) * b.At(k, col)
	}

	return acc
}

// AbsSq returns |z|² without the square root taken by cmplx.Abs.
func AbsSq(z complex128) float64 {
	re, im := real(z), imag(z)

	return re*re + im*im
}

// Response builds the user×layer table A[i,l] = h_i·p_l for single-stream
// channel rows h_i (each 1×Nt) and a precoder P (Nt×L).
//
// Errors:
//   - ErrNilMatrix / ErrBadShape for nil, empty or multi-row channel slices.
//   - ErrNilMatrix for a nil precoder.
//   - ErrDimensionMismatch when a row length differs from P's row count.
//
// Complexity: O(U·L·Nt) time, O(U·L) space.
func Response(rows []*mat.CDense, p *mat.CDense) (*mat.CDense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("Response", ErrBadShape)
	}
	if err := ValidateNotNil(p); err != nil {
		return nil, matrixErrorf("Response", err)
	}
	for _, h := range rows {
		if err := ValidateRowVector(h); err != nil {
			return nil, matrixErrorf("Response", err)
		}
		if err := ValidateProduct(h, p); err != nil {
			return nil, matrixErrorf("Response", err)
		}
	}

	_, layers := p.Dims()
	out := mat.NewCDense(len(rows), layers, nil)
	for i, h := range rows {
		for l := 0; l < layers; l++ {
			out.Set(i, l, RowCol(h, 0, p, l))
		}
	}

	return out, nil
}

// Gain converts a response table into received powers G[i,l] = |A[i,l]|².
// Complexity: O(U·L).
func Gain(a *mat.CDense) (*mat.Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Gain", err)
	}
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for l := 0; l < c; l++ {
			out.Set(i, l, AbsSq(a.At(i, l)))
		}
	}

	return out, nil
}

// RowNormSq returns Σ_k |m[row,k]|².
func RowNormSq(m *mat.CDense, row int) float64 {
	_, c := m.Dims()
	var s float64
	for k := 0; k < c; k++ {
		s += AbsSq(m.At(row, k))
	}

	return s
}

// ColNormSq returns Σ_k |m[k,col]|².
func ColNormSq(m *mat.CDense, col int) float64 {
	r, _ := m.Dims()
	var s float64
	for k := 0; k < r; k++ {
		s += AbsSq(m.At(k, col))
	}

	return s
}

// CloneC returns a deep copy of m.
func CloneC(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	out.Copy(m)

	return out
}

// EqualApproxC reports whether a and b have the same shape and every pair of
// entries differs by at most tol in modulus. NaN entries compare equal only
// to NaN entries in the same position.
func EqualApproxC(a, b *mat.CDense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			x, y := a.At(i, j), b.At(i, j)
			xn, yn := cmplx.IsNaN(x), cmplx.IsNaN(y)
			if xn || yn {
				if xn != yn {
					return false
				}
				continue
			}
			if cmplx.Abs(x-y) > tol {
				return false
			}
		}
	}

	return true
}
