// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the vector and dense kernels.
// This file intentionally contains ONLY the storage types. Errors, options
// and validators live in dedicated files (errors.go, options.go,
// validators.go).
package matrix

// Vector is an owned, fixed-length sequence of float64 values.
// The length is fixed at construction; arithmetic changes values, never length.
// A Vector never aliases caller memory: constructors copy their input.
//
// Complexity notes: Len/At/Set are O(1); every "new vector" operation is O(n).
type Vector struct {
	data []float64 // owned backing storage; len(data) is the vector length
}

// Dense is a row-major matrix stored as a sequence of owned row vectors.
//   - rows holds exactly Rows() vectors, each of length cols.
//   - cols is fixed by the constructor (from the first row when built from data).
//   - A 0×c matrix (no rows) is legal and represents the empty matrix.
//
// Rows are never shared between two matrices: FromVectors copies its input,
// and every operation that "returns a new matrix" allocates fresh rows.
type Dense struct {
	rows []Vector // exclusively owned rows; len(rows[i].data) == cols
	cols int      // column count (>= 0)
}
