// SPDX-License-Identifier: MIT

// Package matrix - Dense accessors & formatting.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set/Row/Column return errors instead of panicking.
//   - Hand out copies, never views: a caller can not reach into a matrix's rows.
//   - Keep algorithmic determinism (fixed i→j loop orders).
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/At/Set: O(1); Row: O(c); Column: O(r); Clone/ToSlices/String: O(r*c).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxColumn = "Column"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense)(nil)
	_ fmt.Stringer = (*Vector)(nil)
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <underlying>"; the sentinel survives %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return len(m.rows) }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return len(m.rows), m.cols }

// At returns m[i,j].
// Errors: ErrOutOfRange if (i,j) is outside the matrix.
func (m *Dense) At(i, j int) (float64, error) {
	if validateIndex(i, len(m.rows)) != nil || validateIndex(j, m.cols) != nil {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.rows[i].data[j], nil
}

// Set assigns m[i,j] = v.
// Errors: ErrOutOfRange if (i,j) is outside the matrix; m is untouched.
func (m *Dense) Set(i, j int, v float64) error {
	if validateIndex(i, len(m.rows)) != nil || validateIndex(j, m.cols) != nil {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.rows[i].data[j] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) (*Vector, error) {
	if err := validateIndex(i, len(m.rows)); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}

	return m.rows[i].Clone(), nil
}

// Column returns a copy of column j, top to bottom.
func (m *Dense) Column(j int) (*Vector, error) {
	if err := validateIndex(j, m.cols); err != nil {
		return nil, denseErrorf(ctxColumn, 0, j, err)
	}
	out := make([]float64, len(m.rows))
	for i := range m.rows {
		out[i] = m.rows[i].data[j]
	}

	return &Vector{data: out}, nil
}

// Diagonal returns the main diagonal m[k,k] for k < min(rows, cols).
func (m *Dense) Diagonal() *Vector {
	n := min(len(m.rows), m.cols)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = m.rows[k].data[k]
	}

	return &Vector{data: out}
}

// Clone returns a deep copy with identical shape and values.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := newDense(len(m.rows), m.cols)
	for i := range m.rows {
		copy(out.rows[i].data, m.rows[i].data)
	}

	return out
}

// ToSlices returns the entries as freshly allocated nested slices.
func (m *Dense) ToSlices() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i := range m.rows {
		out[i] = m.rows[i].Values()
	}

	return out
}

// String renders one bracketed row per line, e.g.
//
//	[1, 2]
//	[3, 4]
//
// The empty matrix renders as "".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j, x := range m.rows[i].data {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
