// SPDX-License-Identifier: MIT
// Package matrix - canonical linear-algebra kernels on Dense and Vector.
//
// Purpose:
//   - Transpose, matrix-vector product (Gemv), matrix-matrix product (Gemm)
//     and the vector outer product.
//   - Strict fail-fast validation: shape errors are reported before any
//     output is allocated or written.
//
// Determinism:
//   - Fixed loop orders. Gemm is i→k→j; the optional row-parallel path
//     keeps that order inside every output row, so both paths produce
//     identical bits.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opGemv      = "Gemv"
	opGemm      = "Gemm"
	opOuter     = "OuterProduct"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The result formats as "<tag>: <underlying>" and still matches errors.Is/As.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new cols×rows matrix with out[j,i] = a[i,j].
// Transpose(Transpose(a)) equals a entry for entry.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := a.Shape()
	out := newDense(c, r)
	var i, j int
	for i = 0; i < r; i++ {
		src := a.rows[i].data
		for j = 0; j < c; j++ {
			out.rows[j].data[i] = src[j]
		}
	}

	return out, nil
}

// Gemv computes y = a·x, one dot product per row of a.
// Implementation:
//   - Stage 1: validate a, x non-nil and a.Cols() == x.Len().
//   - Stage 2: y[i] = Dot(row_i, x) via the selected dot kernel.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func Gemv(a *Dense, x *Vector) (*Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opGemv, err)
	}
	if err := ValidateVecLen(x, a.cols); err != nil {
		return nil, matrixErrorf(opGemv, err)
	}
	out := make([]float64, len(a.rows))
	for i := range a.rows {
		out[i] = dotImpl(a.rows[i].data, x.data)
	}

	return &Vector{data: out}, nil
}

// Gemm computes C = a·b with the i→k→j loop order.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil and inner-dimension checks).
//   - Stage 2: allocate C (a.Rows × b.Cols), zero-filled.
//   - Stage 3: for each output row i, for each k, C[i,:] += a[i,k]·b[k,:].
//     With WithWorkers(n>1) and enough rows, output rows are split into
//     contiguous blocks and processed by an errgroup bounded by n.
//
// Behavior highlights:
//   - Streaming b row by row keeps the inner loop on contiguous memory.
//   - The summation order per cell is k = 0..n-1 on every path, so the
//     parallel result is bit-identical to the sequential one. It may differ
//     from an i→j→k product in the last ulp.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Gemm(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opGemm, err)
	}
	o := gatherOptions(opts...)
	r := len(a.rows)
	out := newDense(r, b.cols)

	if !o.parallel(r) {
		gemmRows(a, b, out, 0, r)
		return out, nil
	}

	workers := min(o.workers, r)
	chunk := (r + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < r; lo += chunk {
		hi := min(lo+chunk, r)
		g.Go(func() error {
			gemmRows(a, b, out, lo, hi)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()

	return out, nil
}

// gemmRows fills out rows [lo,hi) of a·b. Rows are disjoint per caller, so
// concurrent calls on non-overlapping ranges never touch the same memory.
func gemmRows(a, b, out *Dense, lo, hi int) {
	var (
		i, k, j int
		aik     float64
	)
	inner := a.cols
	for i = lo; i < hi; i++ {
		ai := a.rows[i].data
		ci := out.rows[i].data
		for k = 0; k < inner; k++ {
			aik = ai[k]
			bk := b.rows[k].data
			for j = range ci {
				ci[j] += aik * bk[j]
			}
		}
	}
}

// OuterProduct returns the len(a)×len(b) matrix M[i,j] = a[i]*b[j].
// Errors: ErrNilMatrix.
func OuterProduct(a, b *Vector) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	out := newDense(len(a.data), len(b.data))
	for i, x := range a.data {
		row := out.rows[i].data
		for j, y := range b.data {
			row[j] = x * y
		}
	}

	return out, nil
}

// Trace returns Σ a[k,k]. Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func Trace(a *Dense) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return Sum(a.Diagonal()), nil
}
