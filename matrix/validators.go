// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for boundary validation.
//   - Keep kernels minimal by delegating nil/shape/permutation checks here.
//   - Return wrapped sentinels so call sites can branch with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only ValidatePermutation allocates
//     (one seen-bitmap of length n).
//
// AI-Hints:
//   - Validate once at the public boundary, never inside hot loops.
//   - Composite validators follow a fixed sequence (NotNil → Shape → Dims).

package matrix

import "gonum.org/v1/gonum/mat"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the complex matrix reference is non-nil and non-empty.
//
// Returns ErrNilMatrix for a nil pointer and ErrBadShape for an empty
// (zero-value) CDense, whose Dims report 0×0.
// Complexity: O(1).
func ValidateNotNil(m *mat.CDense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.IsEmpty() {
		return validatorErrorf("ValidateNotNil", ErrBadShape)
	}

	return nil
}

// ValidateRowVector ensures m is a non-nil 1×c matrix (one receive stream).
// Complexity: O(1).
func ValidateRowVector(m *mat.CDense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowVector", err)
	}
	if r, _ := m.Dims(); r != 1 {
		return validatorErrorf("ValidateRowVector", ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *mat.CDense) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProduct ensures the product a·b is defined (a.Cols == b.Rows).
// Complexity: O(1).
func ValidateProduct(a, b *mat.CDense) error {
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return validatorErrorf("ValidateProduct", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePermutation checks that order is a permutation of 0..n-1.
//
// Errors:
//   - ErrDimensionMismatch if len(order) != n.
//   - ErrNotPermutation on an out-of-range or repeated index.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if len(order) != n {
		return validatorErrorf("ValidatePermutation", ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return validatorErrorf("ValidatePermutation", ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}
