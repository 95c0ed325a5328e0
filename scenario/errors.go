// SPDX-License-Identifier: MIT
// Package: sicrate/scenario
//
// errors.go — sentinel errors for scenario loading.

package scenario

import (
	"errors"
	"fmt"
)

// ErrEmptyScenario indicates a document without any case.
var ErrEmptyScenario = errors.New("scenario: no cases")

// ErrBadEntry indicates a malformed value: an unparsable complex number, a
// ragged matrix, or a case with neither explicit matrices nor a generator.
var ErrBadEntry = errors.New("scenario: bad entry")

// scenarioErrorf attaches operation context to err.
func scenarioErrorf(op string, err error) error {
	return fmt.Errorf("scenario.%s: %w", op, err)
}
