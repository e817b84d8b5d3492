// SPDX-License-Identifier: MIT

// Package ops holds the factorization algorithms built on matrix.Dense:
// LU decomposition with partial pivoting, determinant, inversion (LU based,
// with a bounded cofactor fallback), linear solves, Gaussian elimination on
// an augmented matrix, classical Gram–Schmidt QR and the symmetric Jacobi
// eigen-decomposition.
//
// Every function is stateless and never mutates its input; work happens on a
// private copy. Pivots and norms below the configured tolerance
// (DefaultTolerance, 1e-10) are treated as zero: factorizations report a
// singular state and solvers return matrix.ErrSingular rather than dividing
// by a near-zero value.
//
// Shape problems are reported as matrix.ErrDimensionMismatch and nil inputs
// as matrix.ErrNilMatrix, so callers can tell "fix the input" apart from
// "regularize and retry".
package ops
