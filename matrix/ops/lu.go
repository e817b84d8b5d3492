// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/mlcore/matrix"
)

// LU is a Doolittle factorization P·A = L·U in combined storage.
//
// The strictly lower part of the combined matrix holds the multipliers of L
// (its unit diagonal is implicit); the diagonal and upper part hold U.
// Parity is +1 or -1 for an even or odd number of row swaps, and 0 when a
// pivot fell below tolerance. A singular factorization stops at the failing
// column, so entries past that point are not meaningful.
type LU struct {
	a      [][]float64 // combined L\U storage, n×n
	pivots []int       // row i of P·A is row pivots[i] of A
	parity int
}

// LUDecompose factorizes a square matrix with partial pivoting.
// Implementation:
//   - Stage 1: validate a (non-nil, square) and copy it; a is never modified.
//   - Stage 2: for k = 0..n-1 pick the row p >= k with the largest |a[p,k]|
//     (first maximum wins on ties) and swap it into row k, flipping parity.
//   - Stage 3: if |a[k,k]| < tol, set parity 0 and stop.
//   - Stage 4: for i > k store l = a[i,k]/a[k,k] in place and subtract
//     l·row_k from the rest of row i.
//
// Behavior highlights:
//   - Singularity is a state, not an error: inspect Singular() or Parity().
//   - The 0×0 matrix factorizes to parity +1 (determinant 1).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUDecompose(a *matrix.Dense, opts ...Option) (*LU, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, opsErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	w := a.ToSlices()
	n := len(w)
	lu := &LU{a: w, pivots: make([]int, n), parity: 1}
	for i := range lu.pivots {
		lu.pivots[i] = i
	}

	var (
		i, j, k, p int
		best, v, f float64
	)
	for k = 0; k < n; k++ {
		// Stage 2: pivot search over rows k..n-1; strict '>' keeps the lowest index.
		p, best = k, math.Abs(w[k][k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w[i][k]); v > best {
				p, best = i, v
			}
		}
		if p != k {
			w[p], w[k] = w[k], w[p]
			lu.pivots[p], lu.pivots[k] = lu.pivots[k], lu.pivots[p]
			lu.parity = -lu.parity
		}

		// Stage 3: also catches NaN pivots, since !(NaN >= tol).
		if !(best >= o.tol) {
			lu.parity = 0
			break
		}

		// Stage 4: eliminate below the pivot, keeping multipliers in place.
		pivotRow := w[k]
		for i = k + 1; i < n; i++ {
			row := w[i]
			f = row[k] / pivotRow[k]
			row[k] = f
			for j = k + 1; j < n; j++ {
				row[j] -= f * pivotRow[j]
			}
		}
	}

	return lu, nil
}

// Size returns n.
func (lu *LU) Size() int { return len(lu.a) }

// Parity returns +1/-1 for the permutation sign, or 0 when singular.
func (lu *LU) Parity() int { return lu.parity }

// Singular reports whether a pivot fell below tolerance.
func (lu *LU) Singular() bool { return lu.parity == 0 }

// Pivots returns a copy of the row permutation: row i of P·A is row Pivots()[i] of A.
func (lu *LU) Pivots() []int {
	out := make([]int, len(lu.pivots))
	copy(out, lu.pivots)

	return out
}

// Combined returns a copy of the combined L\U matrix.
func (lu *LU) Combined() *matrix.Dense { return mustFromRows(lu.a) }

// L returns the unit lower-triangular factor as a new matrix.
func (lu *LU) L() *matrix.Dense {
	n := len(lu.a)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		copy(out[i][:i], lu.a[i][:i])
		out[i][i] = 1
	}

	return mustFromRows(out)
}

// U returns the upper-triangular factor as a new matrix.
func (lu *LU) U() *matrix.Dense {
	n := len(lu.a)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		copy(out[i][i:], lu.a[i][i:])
	}

	return mustFromRows(out)
}

// Determinant returns parity · Π U[k,k]; exactly 0 when singular.
func (lu *LU) Determinant() float64 {
	if lu.parity == 0 {
		return 0
	}
	det := float64(lu.parity)
	for k := range lu.a {
		det *= lu.a[k][k]
	}

	return det
}

// Solve returns x with A·x = b.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular.
func (lu *LU) Solve(b *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateVecLen(b, len(lu.a)); err != nil {
		return nil, opsErrorf(opLUSolve, err)
	}
	if lu.Singular() {
		return nil, opsErrorf(opLUSolve, matrix.ErrSingular)
	}
	vals := b.Values()
	rhs := make([]float64, len(vals))
	for i, p := range lu.pivots {
		rhs[i] = vals[p]
	}
	lu.substitute(rhs)

	return matrix.NewVector(rhs...), nil
}

// substitute overwrites x (holding P·b) with the solution of L·U·x = P·b:
// forward substitution on the unit lower factor (no division), then
// backward substitution on U. Assumes a non-singular factorization.
func (lu *LU) substitute(x []float64) {
	n := len(lu.a)
	var (
		i, j int
		sum  float64
	)
	for i = 1; i < n; i++ {
		row := lu.a[i]
		sum = x[i]
		for j = 0; j < i; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		row := lu.a[i]
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum / row[i]
	}
}

// mustFromRows builds a matrix from rectangular rows produced internally.
// n = 0 yields the 0×0 matrix.
func mustFromRows(rows [][]float64) *matrix.Dense {
	m, err := matrix.FromRows(rows)
	if err != nil {
		// Internal rows are rectangular by construction.
		panic(err)
	}

	return m
}
