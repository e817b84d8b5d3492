// SPDX-License-Identifier: MIT
// GramSchmidt computes a thin QR decomposition with the classical
// Gram–Schmidt process, returning Q with orthonormal (or zero) columns and
// upper-triangular R such that a ≈ Q×R.
package ops

import "github.com/katalvlaran/mlcore/matrix"

// GramSchmidt factors an m×n matrix into Q (m×n) and R (n×n).
// Blueprint:
//
//	Stage 1 (Validate): a non-nil.
//	Stage 2 (Execute): for column j, start from the raw column a_j; for each
//	                   earlier q_i set R[i,j] = q_i·a_j and subtract R[i,j]·q_i.
//	Stage 3 (Normalize): R[j,j] = ‖residual‖; below tolerance the column is
//	                   dependent on its predecessors and q_j stays zero,
//	                   otherwise q_j = residual/R[j,j].
//	Stage 4 (Finalize): assemble Q from its columns.
//
// Notes:
//   - Projections use the raw column (classical, not modified, Gram–Schmidt).
//     Orthogonality degrades on ill-conditioned input; this is accepted.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(m·n²) time, O(m·n + n²) memory.
func GramSchmidt(a *matrix.Dense, opts ...Option) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, opsErrorf(opGramSchmidt, err)
	}
	o := gatherOptions(opts...)
	m, n := a.Shape()

	R, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, opsErrorf(opGramSchmidt, err)
	}
	if n == 0 {
		Q, err := matrix.NewDense(m, 0)
		if err != nil {
			return nil, nil, opsErrorf(opGramSchmidt, err)
		}
		return Q, R, nil
	}

	qs := make([]*matrix.Vector, n)
	var i, j int
	var rij, norm float64
	for j = 0; j < n; j++ {
		aj, err := a.Column(j)
		if err != nil {
			return nil, nil, opsErrorf(opGramSchmidt, err)
		}
		v := aj.Clone()
		for i = 0; i < j; i++ {
			rij, _ = matrix.Dot(qs[i], aj)
			_ = R.Set(i, j, rij)
			_ = v.AddAssign(qs[i], -rij)
		}
		norm = matrix.Norm(v)
		_ = R.Set(j, j, norm)
		if norm < o.tol {
			v, _ = matrix.NewVectorZeros(m)
		} else {
			v.ScaleAssign(1 / norm)
		}
		qs[j] = v
	}

	// Columns were built as vectors; stack them as rows and transpose.
	Qt, err := matrix.FromVectors(qs)
	if err != nil {
		return nil, nil, opsErrorf(opGramSchmidt, err)
	}
	Q, err := matrix.Transpose(Qt)
	if err != nil {
		return nil, nil, opsErrorf(opGramSchmidt, err)
	}

	return Q, R, nil
}
