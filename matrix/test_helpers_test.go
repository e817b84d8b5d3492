// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mlcore/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances shared by the tests.
const (
	epsTight = 1e-12
	epsLoose = 1e-9
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFromRows builds a matrix from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustRandom returns an r×c U(-1,1) matrix drawn from a fixed seed.
func MustRandom(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(r, c, rand.New(rand.NewSource(seed)))
	require.NoError(tb, err)

	return m
}

// CompareExact asserts identical shape and bit-identical entries.
func CompareExact(tb testing.TB, got, want *matrix.Dense) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			g, w := MustAt(tb, got, i, j), MustAt(tb, want, i, j)
			require.Truef(tb, math.Float64bits(g) == math.Float64bits(w),
				"(%d,%d): got %v, want %v", i, j, g, w)
		}
	}
}

// CompareClose asserts identical shape and |got-want| <= tol entrywise.
func CompareClose(tb testing.TB, got, want *matrix.Dense, tol float64) {
	tb.Helper()
	require.Truef(tb, matrix.AllClose(got, want, tol), "got\n%vwant\n%v", got, want)
}

// sliceClose asserts |got[i]-want[i]| <= tol for equal-length slices.
func sliceClose(tb testing.TB, got, want []float64, tol float64) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		require.InDeltaf(tb, want[i], got[i], tol, "index %d", i)
	}
}
