// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// attach context with matrixErrorf(tag, err); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> permutation -> index range.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a shape is structurally invalid for the
	// operation (empty matrix, a row vector expected but several rows given).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a channel row of length Nt against a precoder with a different row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotPermutation signals that an index sequence is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("matrix: not a permutation")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// matrixErrorf wraps err with an operation tag ("Op: matrix: ...").
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
