// SPDX-License-Identifier: MIT

package ops_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mlcore/matrix"
	"github.com/stretchr/testify/require"
)

const (
	epsTight = 1e-12
	epsTest  = 1e-6
)

// mustRows builds a matrix from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err)

	return m
}

// mustMul returns a·b or fails the test.
func mustMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	c, err := matrix.Gemm(a, b)
	require.NoError(tb, err)

	return c
}

// mustRound rounds every entry of m or fails the test.
func mustRound(tb testing.TB, m *matrix.Dense) *matrix.Dense {
	tb.Helper()
	r, err := m.Round()
	require.NoError(tb, err)

	return r
}

// wellConditioned returns a random n×n matrix made diagonally dominant so it
// is comfortably invertible.
func wellConditioned(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(n, n, rand.New(rand.NewSource(seed)))
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		require.NoError(tb, err)
		require.NoError(tb, m.Set(i, i, v+float64(n+1)))
	}

	return m
}

// columnOf returns column j of m or fails the test.
func columnOf(tb testing.TB, m *matrix.Dense, j int) *matrix.Vector {
	tb.Helper()
	c, err := m.Column(j)
	require.NoError(tb, err)

	return c
}
