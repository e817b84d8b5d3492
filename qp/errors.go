// SPDX-License-Identifier: MIT

package qp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Shape and nil problems reuse matrix.ErrDimensionMismatch
// and matrix.ErrNilMatrix.
var (
	// ErrInvalidLabel indicates a label other than +1 or -1.
	ErrInvalidLabel = errors.New("qp: labels must be +1 or -1")

	// ErrInvalidBounds indicates l[i] > u[i] or a NaN bound.
	ErrInvalidBounds = errors.New("qp: lower bound exceeds upper bound")

	// ErrInvalidParameter indicates a negative iteration cap or a negative/NaN tolerance.
	ErrInvalidParameter = errors.New("qp: invalid solve parameter")
)

const (
	opNewSolver = "NewSolver"
	opSolve     = "Solve"
	opDecision  = "Decision"
)

// qpErrorf wraps err as "<tag>: <err>", preserving errors.Is.
func qpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
