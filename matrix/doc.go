// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric primitives the rest of mlcore is
// built on: an owned float64 Vector and a row-major Dense matrix whose rows
// are Vectors.
//
// The package provides:
//
//   - Vector arithmetic: Dot, Norm, Sum, ScaleVec, AddVec and the in-place
//     AddAssign/Axpy/ScaleAssign/Swap.
//   - Dense construction from shapes (NewDense, NewIdentity, NewRandom),
//     nested slices (FromRows) or vectors (FromVectors).
//   - Products: Transpose, Gemv, Gemm (i→k→j, optionally row-parallel via
//     WithWorkers), OuterProduct.
//   - In-place row/column primitives for elimination: ScaleRow, AddRows,
//     SwapRows, SwapColumns, ScaleColumn, AddColumns.
//   - Element-wise Add/Sub/Hadamard/Scale/Clip and feature transforms
//     (CenterColumns, NormalizeRowsL2, Covariance, Gram).
//   - Comparison helpers: Equal/VecEqual (machine epsilon) and
//     AllClose/VecAllClose (explicit tolerance).
//
// Errors are package-level sentinels (ErrDimensionMismatch, ErrOutOfRange,
// ErrSingular, ...) wrapped with the operation name; match them with
// errors.Is. Operations returning a new value never alias their inputs;
// mutating operations are methods whose names say so.
//
// Factorizations (LU, inverse, elimination, QR) live in matrix/ops.
package matrix
