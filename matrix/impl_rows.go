// SPDX-License-Identifier: MIT

// Package matrix - in-place row & column primitives.
//
// These are the building blocks of elimination algorithms (see matrix/ops).
// Every primitive mutates the receiver, validates its indices first and
// leaves the matrix untouched on error.
package matrix

const (
	opScaleRow    = "ScaleRow"
	opAddRows     = "AddRows"
	opSwapRows    = "SwapRows"
	opSwapColumns = "SwapColumns"
	opScaleColumn = "ScaleColumn"
	opAddColumns  = "AddColumns"
)

// ScaleRow multiplies row i by k in place.
// Errors: ErrOutOfRange.
func (m *Dense) ScaleRow(i int, k float64) error {
	if err := validateIndex(i, len(m.rows)); err != nil {
		return denseErrorf(opScaleRow, i, 0, err)
	}
	m.rows[i].ScaleAssign(k)

	return nil
}

// AddRows performs row[target] += factor * row[source] in place.
// Implementation:
//   - Stage 1: validate both indices.
//   - Stage 2: take the source row as a read-only slice and the target row as
//     the write slice. Rows never overlap in memory, so the two can be held
//     at once for any ordering of target and source.
//
// Behavior highlights:
//   - target == source is allowed and yields row *= (1 + factor), because each
//     element is read before it is written.
//
// Errors:
//   - ErrOutOfRange (either index).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddRows(target, source int, factor float64) error {
	n := len(m.rows)
	if err := validateIndex(target, n); err != nil {
		return denseErrorf(opAddRows, target, source, err)
	}
	if err := validateIndex(source, n); err != nil {
		return denseErrorf(opAddRows, target, source, err)
	}
	src := m.rows[source].data
	dst := m.rows[target].data
	for j, x := range src {
		dst[j] += factor * x
	}

	return nil
}

// SwapRows exchanges rows i and j in place. O(1): only row headers move.
func (m *Dense) SwapRows(i, j int) error {
	n := len(m.rows)
	if validateIndex(i, n) != nil || validateIndex(j, n) != nil {
		return denseErrorf(opSwapRows, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// SwapColumns exchanges columns i and j in place. O(r).
func (m *Dense) SwapColumns(i, j int) error {
	if validateIndex(i, m.cols) != nil || validateIndex(j, m.cols) != nil {
		return denseErrorf(opSwapColumns, i, j, ErrOutOfRange)
	}
	for r := range m.rows {
		row := m.rows[r].data
		row[i], row[j] = row[j], row[i]
	}

	return nil
}

// ScaleColumn multiplies column j by k in place.
func (m *Dense) ScaleColumn(j int, k float64) error {
	if err := validateIndex(j, m.cols); err != nil {
		return denseErrorf(opScaleColumn, 0, j, err)
	}
	for r := range m.rows {
		m.rows[r].data[j] *= k
	}

	return nil
}

// AddColumns performs col[target] += factor * col[source] in place.
// Same aliasing rule as AddRows: target == source scales the column by (1 + factor).
func (m *Dense) AddColumns(target, source int, factor float64) error {
	if err := validateIndex(target, m.cols); err != nil {
		return denseErrorf(opAddColumns, target, source, err)
	}
	if err := validateIndex(source, m.cols); err != nil {
		return denseErrorf(opAddColumns, target, source, err)
	}
	for r := range m.rows {
		row := m.rows[r].data
		row[target] += factor * row[source]
	}

	return nil
}
