// SPDX-License-Identifier: MIT

package ops_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mlcore/matrix"
	"github.com/katalvlaran/mlcore/matrix/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInverse_RoundTripsToIdentity checks round(A·A⁻¹) == I and round(A⁻¹·A) == I.
func TestInverse_RoundTripsToIdentity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 8, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := wellConditioned(t, n, int64(n))
			inv, err := ops.Inverse(A)
			require.NoError(t, err)

			id := mustIdentity(t, n)
			assert.True(t, matrix.Equal(mustRound(t, mustMul(t, A, inv)), id))
			assert.True(t, matrix.Equal(mustRound(t, mustMul(t, inv, A)), id))
		})
	}
}

func TestInverse_Known(t *testing.T) {
	t.Parallel()

	inv, err := ops.Inverse(mustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	assert.True(t, matrix.AllClose(inv, mustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), epsTight))

	// A permutation matrix needs pivoting and is its own inverse.
	P := mustRows(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	inv, err = ops.Inverse(P)
	require.NoError(t, err)
	Pt, err := matrix.Transpose(P)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(inv, Pt))

	empty, err := ops.Inverse(mustIdentity(t, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	_, err := ops.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = ops.Inverse(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = ops.Inverse(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = ops.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInverseCofactor_AgreesWithLU checks the bounded fallback against the LU path.
func TestInverseCofactor_AgreesWithLU(t *testing.T) {
	t.Parallel()

	for n := 1; n <= ops.MaxCofactorOrder; n++ {
		A := wellConditioned(t, n, int64(100+n))
		lu, err := ops.Inverse(A)
		require.NoError(t, err)
		cof, err := ops.InverseCofactor(A)
		require.NoError(t, err)
		assert.Truef(t, matrix.AllClose(cof, lu, 1e-9), "n=%d", n)
	}
}

func TestInverseCofactor_Errors(t *testing.T) {
	t.Parallel()

	_, err := ops.InverseCofactor(wellConditioned(t, ops.MaxCofactorOrder+1, 1))
	require.ErrorIs(t, err, ops.ErrCofactorOrder)

	_, err = ops.InverseCofactor(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = ops.InverseCofactor(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
