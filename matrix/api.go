// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points over the canonical kernels.
//   - No logic duplication: each facade forwards to exactly one implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels they call.

package matrix

// NewZeros returns a rows×cols zero matrix. Alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrNilMatrix.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDense(m.Shape()), nil
}

// IdentityLike returns I_n where n = m.Rows(); m must be square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// Mul is Gemm under its conventional name.
func Mul(a, b *Dense, opts ...Option) (*Dense, error) { return Gemm(a, b, opts...) }

// MatVec is Gemv under its conventional name.
func MatVec(a *Dense, x *Vector) (*Vector, error) { return Gemv(a, x) }
