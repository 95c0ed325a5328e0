// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Mask is an explicit boolean validity grid kept alongside plain numeric
//     matrices. Numeric kernels consult it instead of inferring validity from
//     sentinel values, so a legitimately zero entry is never confused with an
//     inapplicable one.
//   - Exported matrices carry NaN in masked cells (ApplyNaN*), which gonum
//     arithmetic and fmt printing propagate naturally.
//
// Determinism:
//   - Row-major storage, fixed i→j loops.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Mask is an r×c validity grid. The zero value is an empty 0×0 mask.
type Mask struct {
	r, c int
	bits []bool // row-major, len == r*c
}

// NewMask returns an r×c mask with every cell invalid.
// Returns ErrBadShape if r or c is not positive.
func NewMask(r, c int) (Mask, error) {
	if r <= 0 || c <= 0 {
		return Mask{}, matrixErrorf("NewMask", ErrBadShape)
	}

	return Mask{r: r, c: c, bits: make([]bool, r*c)}, nil
}

// MaskFromOrder derives the SIC visibility mask for a decoding order.
//
// order[k] is the user whose own layer is decoded at stage k. User i decodes
// stages 0..pos[i] (pos = inverse permutation) and stops after its own layer,
// so valid(i,j) ⇔ j ≤ pos[i]. For the identity order this is the lower
// triangle including the diagonal.
//
// Errors: ErrDimensionMismatch / ErrNotPermutation from ValidatePermutation,
// ErrBadShape for an empty order.
// Complexity: O(n²).
func MaskFromOrder(order []int) (Mask, error) {
	n := len(order)
	m, err := NewMask(n, n)
	if err != nil {
		return Mask{}, matrixErrorf("MaskFromOrder", err)
	}
	if err = ValidatePermutation(order, n); err != nil {
		return Mask{}, matrixErrorf("MaskFromOrder", err)
	}
	for stage, user := range order {
		// user finishes at this stage; it sees every stage up to and including it
		for j := 0; j <= stage; j++ {
			m.bits[user*n+j] = true
		}
	}

	return m, nil
}

// Dims returns the mask shape.
func (m Mask) Dims() (int, int) { return m.r, m.c }

// Valid reports whether cell (i,j) is valid. Out-of-range cells are invalid.
func (m Mask) Valid(i, j int) bool {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return false
	}

	return m.bits[i*m.c+j]
}

// Set marks (i,j) valid or invalid.
func (m Mask) Set(i, j int, v bool) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return matrixErrorf("Mask.Set", ErrOutOfRange)
	}
	m.bits[i*m.c+j] = v

	return nil
}

// Count returns the number of valid cells.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}

	return n
}

// ColumnCount returns how many rows are valid in column j.
func (m Mask) ColumnCount(j int) int {
	n := 0
	for i := 0; i < m.r; i++ {
		if m.Valid(i, j) {
			n++
		}
	}

	return n
}

// ApplyNaN overwrites every masked-out cell of d with NaN in place.
// Returns ErrDimensionMismatch when shapes differ.
func ApplyNaN(d *mat.Dense, m Mask) error {
	if d == nil {
		return matrixErrorf("ApplyNaN", ErrNilMatrix)
	}
	if r, c := d.Dims(); r != m.r || c != m.c {
		return matrixErrorf("ApplyNaN", ErrDimensionMismatch)
	}
	nan := math.NaN()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !m.bits[i*m.c+j] {
				d.Set(i, j, nan)
			}
		}
	}

	return nil
}

// ApplyNaNC is ApplyNaN for complex matrices.
func ApplyNaNC(d *mat.CDense, m Mask) error {
	if d == nil {
		return matrixErrorf("ApplyNaNC", ErrNilMatrix)
	}
	if r, c := d.Dims(); r != m.r || c != m.c {
		return matrixErrorf("ApplyNaNC", ErrDimensionMismatch)
	}
	nan := cmplx.NaN()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !m.bits[i*m.c+j] {
				d.Set(i, j, nan)
			}
		}
	}

	return nil
}

// ColumnMin returns the minimum of d[i,j] over the rows i valid in column j.
//
// Masked cells never participate. A NaN inside a valid cell is returned as NaN
// (degenerate input propagates). ok is false when no row is valid.
// Complexity: O(r).
func ColumnMin(d *mat.Dense, m Mask, j int) (minimum float64, ok bool) {
	r, _ := d.Dims()
	for i := 0; i < r; i++ {
		if !m.Valid(i, j) {
			continue
		}
		v := d.At(i, j)
		if !ok {
			minimum, ok = v, true
			continue
		}
		minimum = math.Min(minimum, v) // math.Min returns NaN if either is NaN
	}

	return minimum, ok
}
