// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Feature-matrix transforms that estimators run before factorizing or
//     building a QP: column centering, L2 row normalization, sample
//     covariance and the linear-kernel Gram matrix.
//   - Every transform is a composition of the canonical kernels
//     (Transpose, Gemm, Scale) plus one explicit pass.
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)   // subtract per-column mean
//   - NormalizeRowsL2(X) -> (Y, norms)    // unit rows; zero rows unchanged
//   - Covariance(X)      -> (Cov, means)  // (Xcᵀ Xc)/(r-1)
//   - Gram(X)            -> G             // X Xᵀ, G[i,j] = <x_i, x_j>
//
// Determinism:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-size inputs are legal and produce zero-size outputs.

package matrix

import "math"

const (
	opCenterColumns   = "CenterColumns"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opGram            = "Gram"
)

// CenterColumns subtracts the per-column mean from every entry.
// Implementation:
//   - Stage 1: validate X non-nil.
//   - Stage 2: accumulate column sums row by row, divide by r.
//   - Stage 3: build the centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c); X is never modified.
//   - *Vector: column means (len c; zeros when r == 0).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, *Vector, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Shape()
	means := make([]float64, c)
	if r == 0 {
		return X.Clone(), &Vector{data: means}, nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		row := X.rows[i].data
		for j = 0; j < c; j++ {
			means[j] += row[j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	out := newDense(r, c)
	for i = 0; i < r; i++ {
		src, dst := X.rows[i].data, out.rows[i].data
		for j = 0; j < c; j++ {
			dst[j] = src[j] - means[j]
		}
	}

	return out, &Vector{data: means}, nil
}

// NormalizeRowsL2 scales each row to unit Euclidean norm.
// Rows with norm 0 are copied unchanged (there is no direction to keep).
// Returns the normalized copy and the original row norms.
// Errors: ErrNilMatrix.
func NormalizeRowsL2(X *Dense) (*Dense, *Vector, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	out := X.Clone()
	norms := make([]float64, len(X.rows))
	for i := range out.rows {
		n := Norm(&out.rows[i])
		norms[i] = n
		if n == 0 || math.IsNaN(n) {
			continue
		}
		out.rows[i].ScaleAssign(1 / n)
	}

	return out, &Vector{data: norms}, nil
}

// Covariance returns the sample covariance of the columns of X,
// Cov = (Xcᵀ Xc)/(r-1), together with the column means.
//
// Behavior highlights:
//   - c == 0 yields the 0×0 matrix.
//   - The result is symmetric by construction up to rounding.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when c > 0 and r < 2.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X *Dense) (*Dense, *Vector, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Shape()
	if c == 0 {
		return newDense(0, 0), &Vector{data: []float64{}}, nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Gemm(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G.ScaleAssign(1.0 / float64(r-1))

	return G, means, nil
}

// Gram returns X·Xᵀ, the linear-kernel matrix of the rows of X:
// G[i,j] = Dot(x_i, x_j). Only the upper triangle is computed; the lower
// one is mirrored so G is exactly symmetric.
// Errors: ErrNilMatrix.
func Gram(X *Dense) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	r := len(X.rows)
	G := newDense(r, r)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = i; j < r; j++ {
			v = dotImpl(X.rows[i].data, X.rows[j].data)
			G.rows[i].data[j] = v
			G.rows[j].data[i] = v
		}
	}

	return G, nil
}
