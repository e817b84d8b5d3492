// SPDX-License-Identifier: MIT
// Inverse computes the inverse of a square matrix from one LU factorization
// and per-column forward/backward substitution. InverseCofactor is the
// adjugate/determinant alternative, kept for small matrices only.
package ops

import (
	"math"

	"github.com/katalvlaran/mlcore/matrix"
)

// Inverse returns a⁻¹.
// Blueprint:
//
//	Stage 1 (Validate): a non-nil and square.
//	Stage 2 (Decompose): P·A = L·U once; a singular factorization fails here.
//	Stage 3 (Execute): for each column c of I, solve L·y = P·e_c (unit
//	                   diagonal, no division) then U·x = y.
//	Stage 4 (Finalize): x becomes column c of the inverse.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	lu, err := LUDecompose(a, opts...)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	if lu.Singular() {
		return nil, opsErrorf(opInverse, matrix.ErrSingular)
	}

	n := lu.Size()
	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}
	x := make([]float64, n)
	var i, c int
	for c = 0; c < n; c++ {
		// x = P·e_c: row i of P·I is e_{pivots[i]}.
		for i = 0; i < n; i++ {
			x[i] = 0
			if lu.pivots[i] == c {
				x[i] = 1
			}
		}
		lu.substitute(x)
		for i = 0; i < n; i++ {
			inv[i][c] = x[i]
		}
	}

	return mustFromRows(inv), nil
}

// InverseCofactor returns a⁻¹ = adj(a)/det(a), where adj is the transpose
// of the cofactor matrix and every cofactor is a signed minor determinant.
//
// Behavior highlights:
//   - Only accepts n <= MaxCofactorOrder; the method needs n² minor
//     determinants, so Inverse is the right call for anything larger.
//   - Minor determinants are evaluated by LU, so results agree with Inverse
//     up to rounding.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrCofactorOrder,
//     matrix.ErrSingular (|det| below tolerance).
//
// Complexity:
//   - Time O(n⁵), Space O(n²).
func InverseCofactor(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, opsErrorf(opInverseCofactor, err)
	}
	n := a.Rows()
	if n > MaxCofactorOrder {
		return nil, opsErrorf(opInverseCofactor, ErrCofactorOrder)
	}
	o := gatherOptions(opts...)

	det, err := Determinant(a, opts...)
	if err != nil {
		return nil, opsErrorf(opInverseCofactor, err)
	}
	if !(math.Abs(det) >= o.tol) {
		return nil, opsErrorf(opInverseCofactor, matrix.ErrSingular)
	}

	src := a.ToSlices()
	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}
	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minorDet, err := Determinant(mustFromRows(minor(src, i, j)), opts...)
			if err != nil {
				return nil, opsErrorf(opInverseCofactor, err)
			}
			sign = 1
			if (i+j)%2 == 1 {
				sign = -1
			}
			// adj = Cᵀ, so cofactor (i,j) lands at (j,i).
			inv[j][i] = sign * minorDet / det
		}
	}

	return mustFromRows(inv), nil
}

// minor returns src without row r and column c.
func minor(src [][]float64, r, c int) [][]float64 {
	n := len(src)
	out := make([][]float64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		row := make([]float64, 0, n-1)
		row = append(row, src[i][:c]...)
		row = append(row, src[i][c+1:]...)
		out = append(out, row)
	}

	return out
}
