// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
)

// Sentinels specific to the factorization algorithms. Shape, nil and
// singularity failures reuse the matrix package sentinels.
var (
	// ErrCofactorOrder is returned by InverseCofactor for n > MaxCofactorOrder.
	ErrCofactorOrder = errors.New("ops: matrix too large for cofactor inversion")

	// ErrNotSymmetric is returned by EigenSym when a[i,j] and a[j,i] differ beyond tolerance.
	ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

	// ErrNoConvergence is returned by EigenSym when the sweep budget is exhausted.
	ErrNoConvergence = errors.New("ops: eigen decomposition did not converge")
)

// Operation tags for error wrapping.
const (
	opLU              = "LUDecompose"
	opLUSolve         = "LU.Solve"
	opDeterminant     = "Determinant"
	opInverse         = "Inverse"
	opInverseCofactor = "InverseCofactor"
	opSolve           = "Solve"
	opGauss           = "GaussianElimination"
	opGramSchmidt     = "GramSchmidt"
	opEigenSym        = "EigenSym"
)

// opsErrorf wraps err as "<tag>: <err>", preserving errors.Is.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
