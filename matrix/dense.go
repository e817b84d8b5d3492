// SPDX-License-Identifier: MIT

// Package matrix - Dense constructors.
//
// Purpose:
//   - Build row-major matrices from shapes, nested slices or existing vectors.
//   - Fix the column count from the first row and reject ragged input up front.
//   - Never alias caller memory: every constructor copies what it is given.
//
// Complexity quicksheet:
//   - NewDense/NewIdentity/NewRandom/FromRows/FromVectors: O(r*c) time and space.
package matrix

import (
	"fmt"
	"math/rand"
)

const (
	opNewDense    = "NewDense"
	opNewIdentity = "NewIdentity"
	opNewRandom   = "NewRandom"
	opFromRows    = "FromRows"
	opFromVectors = "FromVectors"
)

// NewDense creates a rows×cols zero matrix.
// Implementation:
//   - Stage 1: validate rows >= 0 && cols >= 0.
//   - Stage 2: allocate one zero-filled Vector per row.
//
// Behavior highlights:
//   - Zero extents are legal: NewDense(0, 0) is the empty matrix and
//     NewDense(0, c) keeps c as its column count.
//
// Errors:
//   - ErrInvalidDimensions when either extent is negative.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewDense, rows, cols, ErrInvalidDimensions)
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee non-negative extents.
func newDense(rows, cols int) *Dense {
	// One backing buffer keeps rows adjacent in memory; each row gets a
	// capacity-limited window so appends can never spill into a neighbour.
	buf := make([]float64, rows*cols)
	rs := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		rs[i].data = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &Dense{rows: rs, cols: cols}
}

// NewIdentity returns I_n. NewIdentity(0) is the empty 0×0 matrix.
func NewIdentity(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opNewIdentity, n, ErrInvalidDimensions)
	}
	id := newDense(n, n)
	for i := 0; i < n; i++ {
		id.rows[i].data[i] = 1
	}

	return id, nil
}

// NewRandom returns a rows×cols matrix filled with U(-1,1) draws from rng.
// Cells are drawn row by row, left to right, so a fixed seed reproduces the
// same matrix.
// Errors: ErrInvalidDimensions, ErrNilRand.
func NewRandom(rows, cols int, rng *rand.Rand) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewRandom, ErrInvalidDimensions)
	}
	if rng == nil {
		return nil, matrixErrorf(opNewRandom, ErrNilRand)
	}
	m := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		row := m.rows[i].data
		for j = 0; j < cols; j++ {
			row[j] = rng.Float64()*2 - 1
		}
	}

	return m, nil
}

// FromRows builds a matrix from nested slices.
// Implementation:
//   - Stage 1: take cols from data[0] (0 when data is empty).
//   - Stage 2: verify every row has exactly cols entries before copying anything.
//   - Stage 3: copy row by row into fresh storage.
//
// Errors:
//   - ErrDimensionMismatch if any row length differs from the first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(data [][]float64) (*Dense, error) {
	if len(data) == 0 {
		return newDense(0, 0), nil
	}
	cols := len(data[0])
	for i := range data {
		if len(data[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				opFromRows, i, len(data[i]), cols, ErrDimensionMismatch)
		}
	}
	m := newDense(len(data), cols)
	for i := range data {
		copy(m.rows[i].data, data[i])
	}

	return m, nil
}

// FromVectors builds a matrix whose rows are copies of vs.
// The column count is fixed by vs[0]; the input vectors stay owned by the caller.
// Errors: ErrNilMatrix (nil entry), ErrDimensionMismatch (ragged lengths).
func FromVectors(vs []*Vector) (*Dense, error) {
	if len(vs) == 0 {
		return newDense(0, 0), nil
	}
	for i, v := range vs {
		if v == nil {
			return nil, fmt.Errorf("%s: row %d: %w", opFromVectors, i, ErrNilMatrix)
		}
	}
	cols := vs[0].Len()
	for i, v := range vs {
		if v.Len() != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				opFromVectors, i, v.Len(), cols, ErrDimensionMismatch)
		}
	}
	m := newDense(len(vs), cols)
	for i, v := range vs {
		copy(m.rows[i].data, v.data)
	}

	return m, nil
}
