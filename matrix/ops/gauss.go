// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mlcore/matrix"
)

// GaussianElimination solves the system encoded by an n×(n+1) augmented
// matrix [A | b] and returns x with A·x = b.
// Implementation:
//   - Stage 1: reject anything that is not n×(n+1) before doing any work.
//   - Stage 2: forward phase on a private copy. For each pivot column k,
//     choose the row at or below k with the largest |value|; fail with
//     ErrSingular if that maximum is below tolerance; SwapRows it into
//     place; AddRows eliminates every row below.
//   - Stage 3: back substitution from the last pivot row to the first.
//
// Behavior highlights:
//   - Uses only the public Dense row primitives, so the input is untouched.
//   - Shape and singularity failures are distinct sentinels.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (shape), matrix.ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GaussianElimination(aug *matrix.Dense, opts ...Option) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, opsErrorf(opGauss, err)
	}
	n, cols := aug.Shape()
	if cols != n+1 {
		return nil, fmt.Errorf("%s: augmented shape %dx%d, want %dx%d: %w",
			opGauss, n, cols, n, n+1, matrix.ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	w := aug.Clone()

	var (
		i, j, k, p   int
		best, v, piv float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(at(w, k, k))
		for i = k + 1; i < n; i++ {
			if v = math.Abs(at(w, i, k)); v > best {
				p, best = i, v
			}
		}
		if !(best >= o.tol) {
			return nil, fmt.Errorf("%s: pivot column %d: %w", opGauss, k, matrix.ErrSingular)
		}
		if p != k {
			_ = w.SwapRows(k, p)
		}
		piv = at(w, k, k)
		for i = k + 1; i < n; i++ {
			if f := at(w, i, k) / piv; f != 0 {
				_ = w.AddRows(i, k, -f)
			}
		}
	}

	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = at(w, i, n)
		for j = i + 1; j < n; j++ {
			sum -= at(w, i, j) * x[j]
		}
		x[i] = sum / at(w, i, i)
	}

	return matrix.NewVector(x...), nil
}

// at reads an entry whose indices the caller has already bounded.
func at(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j)

	return v
}
