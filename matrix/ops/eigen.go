// SPDX-License-Identifier: MIT
// EigenSym computes all eigenvalues and eigenvectors of a real symmetric
// matrix (a Gram or covariance matrix, typically) with cyclic Jacobi rotations.
package ops

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/mlcore/matrix"
)

// EigenSym returns the eigenvalues of a in descending order and a matrix
// whose column k is the unit eigenvector for value k.
// Blueprint:
//
//	Stage 1 (Validate): a square; |a[i,j] - a[j,i]| <= tol·max(1, |a[i,j]|, |a[j,i]|).
//	Stage 2 (Prepare):  work on a copy A, accumulate rotations into V = I.
//	Stage 3 (Execute):  sweep all pairs p<q; each rotation zeroes A[p,q].
//	                    Stop once the off-diagonal Frobenius norm is below tol.
//	Stage 4 (Finalize): sort eigenpairs by value, largest first.
//
// Behavior highlights:
//   - A positive semi-definite input (e.g. matrix.Gram output) yields
//     values >= -tol, which makes EigenSym a cheap PSD check for QP inputs.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNotSymmetric,
//     ErrNoConvergence (after WithMaxSweeps sweeps).
//
// Complexity:
//   - O(n³) per sweep, O(n²) memory.
func EigenSym(a *matrix.Dense, opts ...Option) (*matrix.Vector, *matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, opsErrorf(opEigenSym, err)
	}
	o := gatherOptions(opts...)
	A := a.ToSlices()
	n := len(A)

	var (
		i, j, k, p, q int
		aij, aji      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, aji = A[i][j], A[j][i]
			if math.Abs(aij-aji) > o.tol*max(1, math.Abs(aij), math.Abs(aji)) {
				return nil, nil, fmt.Errorf("%s: (%d,%d): %w", opEigenSym, i, j, ErrNotSymmetric)
			}
		}
	}

	V := make([][]float64, n)
	for i = 0; i < n; i++ {
		V[i] = make([]float64, n)
		V[i][i] = 1
	}

	var (
		sweep                        int
		theta, t, c, s, apq, akp, akq float64
		converged                    bool
	)
	for sweep = 0; sweep <= o.maxSweeps; sweep++ {
		if offNorm(A) < o.tol {
			converged = true
			break
		}
		if sweep == o.maxSweeps {
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = A[p][q]
				if apq == 0 {
					continue
				}
				theta = (A[q][q] - A[p][p]) / (2 * apq)
				t = math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c = 1 / math.Sqrt(t*t+1)
				s = t * c
				// A ← A·J (columns p, q), V ← V·J.
				for k = 0; k < n; k++ {
					akp, akq = A[k][p], A[k][q]
					A[k][p] = c*akp - s*akq
					A[k][q] = s*akp + c*akq
					akp, akq = V[k][p], V[k][q]
					V[k][p] = c*akp - s*akq
					V[k][q] = s*akp + c*akq
				}
				// A ← Jᵀ·A (rows p, q).
				for k = 0; k < n; k++ {
					akp, akq = A[p][k], A[q][k]
					A[p][k] = c*akp - s*akq
					A[q][k] = s*akp + c*akq
				}
				A[p][q], A[q][p] = 0, 0
			}
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("%s: %d sweeps: %w", opEigenSym, o.maxSweeps, ErrNoConvergence)
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int { return cmp.Compare(A[y][y], A[x][x]) })

	values := make([]float64, n)
	vectors := make([][]float64, n)
	for i = 0; i < n; i++ {
		vectors[i] = make([]float64, n)
	}
	for k, src := range order {
		values[k] = A[src][src]
		for i = 0; i < n; i++ {
			vectors[i][k] = V[i][src]
		}
	}

	return matrix.NewVector(values...), mustFromRows(vectors), nil
}

// offNorm returns sqrt(Σ_{p≠q} A[p,q]²).
func offNorm(A [][]float64) float64 {
	var sum float64
	for p := range A {
		for q := range A[p] {
			if p != q {
				sum += A[p][q] * A[p][q]
			}
		}
	}

	return math.Sqrt(sum)
}
