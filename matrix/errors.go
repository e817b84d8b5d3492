// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its sub-packages. All algorithms MUST return these sentinels and
// tests MUST check them via errors.Is. No algorithm should panic on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("<Op>: %w", ErrX)
// at the operation boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/dimension -> index -> numeric (singular).

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative extent.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (element, row or column) is outside valid bounds.
	// Public indexers and in-place row/column primitives MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. vectors of
	// different length, Gemm with a.Cols != b.Rows, or ragged construction rows.
	// It is always detected before any partial result is observable.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a pivot (or determinant) is indistinguishable
	// from zero under the configured tolerance during LU, inversion or elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense or *Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrNilRand indicates that a random constructor was called without a random source.
	// Random fills never fall back to process-global state.
	ErrNilRand = errors.New("matrix: nil random source")
)

