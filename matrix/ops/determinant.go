// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mlcore/matrix"

// Determinant returns det(a) through one LU factorization.
// A singular factorization yields exactly 0; Determinant(I_n) is 1 for all n >= 0.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n³).
func Determinant(a *matrix.Dense, opts ...Option) (float64, error) {
	lu, err := LUDecompose(a, opts...)
	if err != nil {
		return 0, opsErrorf(opDeterminant, err)
	}

	return lu.Determinant(), nil
}

// Solve returns x with a·x = b via LU with partial pivoting.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular.
func Solve(a *matrix.Dense, b *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	lu, err := LUDecompose(a, opts...)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	x, err := lu.Solve(b)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	return x, nil
}
