// SPDX-License-Identifier: MIT

package ops_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mlcore/matrix"
	"github.com/katalvlaran/mlcore/matrix/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrthonormalColumns checks unit norm and pairwise orthogonality of
// every non-zero column.
func assertOrthonormalColumns(t *testing.T, Q *matrix.Dense, tol float64) {
	t.Helper()
	n := Q.Cols()
	for i := 0; i < n; i++ {
		qi := columnOf(t, Q, i)
		assert.InDeltaf(t, 1, matrix.Norm(qi), tol, "‖q_%d‖", i)
		for j := i + 1; j < n; j++ {
			d, err := matrix.Dot(qi, columnOf(t, Q, j))
			require.NoError(t, err)
			assert.InDeltaf(t, 0, d, tol, "q_%d·q_%d", i, j)
		}
	}
}

func TestGramSchmidt_Reconstructs(t *testing.T) {
	t.Parallel()

	A := mustRows(t, [][]float64{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}})
	Q, R, err := ops.GramSchmidt(A)
	require.NoError(t, err)

	assertOrthonormalColumns(t, Q, epsTest)
	assert.True(t, matrix.AllClose(mustMul(t, Q, R), A, epsTest))

	// R is upper triangular.
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, _ := R.At(i, j)
			assert.Zero(t, v)
		}
	}
}

func TestGramSchmidt_TallMatrix(t *testing.T) {
	t.Parallel()

	A, err := matrix.NewRandom(9, 4, rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	Q, R, err := ops.GramSchmidt(A)
	require.NoError(t, err)

	assert.Equal(t, 9, Q.Rows())
	assert.Equal(t, 4, Q.Cols())
	assert.Equal(t, 4, R.Rows())
	assertOrthonormalColumns(t, Q, 1e-9)
	assert.True(t, matrix.AllClose(mustMul(t, Q, R), A, 1e-9))
}

// TestGramSchmidt_DependentColumnIsZero covers the near-zero residual rule.
func TestGramSchmidt_DependentColumnIsZero(t *testing.T) {
	t.Parallel()

	A := mustRows(t, [][]float64{{1, 2, 0}, {1, 2, 1}, {0, 0, 1}})
	Q, R, err := ops.GramSchmidt(A)
	require.NoError(t, err)

	q1 := columnOf(t, Q, 1)
	assert.Equal(t, []float64{0, 0, 0}, q1.Values())
	r11, _ := R.At(1, 1)
	assert.Less(t, r11, ops.DefaultTolerance)
	assert.True(t, matrix.AllClose(mustMul(t, Q, R), A, epsTest))
}

func TestGramSchmidt_Shapes(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	Q, R, err := ops.GramSchmidt(empty)
	require.NoError(t, err)
	assert.Equal(t, 3, Q.Rows())
	assert.Equal(t, 0, Q.Cols())
	assert.Equal(t, 0, R.Rows())

	_, _, err = ops.GramSchmidt(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
