// SPDX-License-Identifier: MIT
// Package: sicrate/sic
//
// errors.go — sentinel errors for the evaluator.
//
// Error policy:
//   • Shape violations are reported ONCE, at entry, as ErrShapeMismatch joined
//     with the underlying matrix/channel sentinel, so both
//     errors.Is(err, sic.ErrShapeMismatch) and
//     errors.Is(err, matrix.ErrDimensionMismatch) hold.
//   • Numeric degeneracy is never an error: it surfaces as NaN/±Inf cells.

package sic

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates inconsistent input shapes: user counts that differ
// between channel, precoder and order, a transmit-antenna mismatch, a
// multi-stream channel slice, or a malformed order.
var ErrShapeMismatch = errors.New("sic: shape mismatch")

// shapeErrorf tags a boundary validation failure with the operation name.
func shapeErrorf(op string, cause error) error {
	return fmt.Errorf("sic.%s: %w: %w", op, ErrShapeMismatch, cause)
}
