// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mlcore/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	v := matrix.NewVector(src...)
	src[0] = 99

	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 3, v.Len())
}

func TestNewVectorZeros(t *testing.T) {
	t.Parallel()

	v, err := matrix.NewVectorZeros(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Values())

	_, err = matrix.NewVectorZeros(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewVectorRandom_SeededAndBounded(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewVectorRandom(64, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := matrix.NewVectorRandom(64, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values(), "same seed must give same vector")

	for i, x := range a.Values() {
		assert.Truef(t, x >= -1 && x < 1, "index %d out of [-1,1): %v", i, x)
	}

	_, err = matrix.NewVectorRandom(3, nil)
	require.ErrorIs(t, err, matrix.ErrNilRand)
	_, err = matrix.NewVectorRandom(-2, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVector_AtSetBounds(t *testing.T) {
	t.Parallel()

	v := matrix.NewVector(1, 2)
	_, err := v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(5, 1), matrix.ErrOutOfRange)

	require.NoError(t, v.Set(1, 7))
	assert.Equal(t, []float64{1, 7}, v.Values())
}

func TestVector_ValuesAndCloneAreCopies(t *testing.T) {
	t.Parallel()

	v := matrix.NewVector(1, 2, 3)
	vals := v.Values()
	vals[0] = -1
	c := v.Clone()
	require.NoError(t, c.Set(1, -2))

	assert.Equal(t, []float64{1, 2, 3}, v.Values())
}

func TestDot(t *testing.T) {
	t.Parallel()

	got, err := matrix.Dot(matrix.NewVector(1, 2, 3), matrix.NewVector(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	got, err = matrix.Dot(matrix.NewVector(), matrix.NewVector())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = matrix.Dot(matrix.NewVector(1, 2), matrix.NewVector(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Dot(nil, matrix.NewVector(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDot_KernelsAgree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 3, 4, 5, 7, 8, 31, 128, 1001} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i], b[i] = rng.NormFloat64(), rng.NormFloat64()
		}
		ref := matrix.DotGeneric_TestOnly(a, b)
		got := matrix.DotUnrolled4_TestOnly(a, b)
		assert.InDeltaf(t, ref, got, 1e-12*float64(n+1), "n=%d", n)
	}
}

func TestActiveKernel_Known(t *testing.T) {
	t.Parallel()
	assert.Contains(t, []string{"generic", "unrolled4"}, matrix.ActiveKernel())
}

func TestScaleVecAndAddVec_DoNotMutate(t *testing.T) {
	t.Parallel()

	a := matrix.NewVector(1, -2, 3)
	b := matrix.NewVector(10, 20, 30)

	s := matrix.ScaleVec(a, 2)
	assert.Equal(t, []float64{2, -4, 6}, s.Values())
	assert.Equal(t, []float64{1, -2, 3}, a.Values())

	sum, err := matrix.AddVec(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 18, 33}, sum.Values())
	assert.Equal(t, []float64{10, 20, 30}, b.Values())

	_, err = matrix.AddVec(a, matrix.NewVector(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVector_InPlaceOps(t *testing.T) {
	t.Parallel()

	v := matrix.NewVector(1, 2, 3)
	require.NoError(t, v.AddAssign(matrix.NewVector(1, 1, 1), 0.5))
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, v.Values())

	require.NoError(t, v.Axpy(2, matrix.NewVector(1, 0, -1)))
	assert.Equal(t, []float64{3.5, 2.5, 1.5}, v.Values())

	// Self-aliasing doubles the vector.
	require.NoError(t, v.AddAssign(v, 1))
	assert.Equal(t, []float64{7, 5, 3}, v.Values())

	v.ScaleAssign(-1)
	assert.Equal(t, []float64{-7, -5, -3}, v.Values())

	before := v.Values()
	require.ErrorIs(t, v.AddAssign(matrix.NewVector(1), 1), matrix.ErrDimensionMismatch)
	assert.Equal(t, before, v.Values(), "vector must be untouched on error")
}

func TestVector_Swap(t *testing.T) {
	t.Parallel()

	v := matrix.NewVector(1, 2, 3)
	require.NoError(t, v.Swap(0, 2))
	assert.Equal(t, []float64{3, 2, 1}, v.Values())
	require.NoError(t, v.Swap(1, 1))

	require.ErrorIs(t, v.Swap(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Swap(3, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Swap(-1, 0), matrix.ErrOutOfRange)
}

func TestNormAndSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, matrix.Norm(matrix.NewVector(3, 4)))
	assert.Equal(t, 0.0, matrix.Norm(matrix.NewVector()))
	assert.InDelta(t, math.Sqrt(14), matrix.Norm(matrix.NewVector(1, -2, 3)), epsTight)
	assert.Equal(t, 6.0, matrix.Sum(matrix.NewVector(1, 2, 3)))
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1, 2.5, -3]", matrix.NewVector(1, 2.5, -3).String())
	assert.Equal(t, "[]", matrix.NewVector().String())
}

func TestVecEqual_EpsilonRule(t *testing.T) {
	t.Parallel()

	a := matrix.NewVector(1, 0, -1e-17)
	b := matrix.NewVector(1+matrix.Epsilon/2, -0.0, 1e-17)
	assert.True(t, matrix.VecEqual(a, b))
	assert.False(t, matrix.VecEqual(a, matrix.NewVector(1, 0, 1e-3)))
	assert.False(t, matrix.VecEqual(a, matrix.NewVector(1, 0)))
	assert.False(t, matrix.VecEqual(matrix.NewVector(math.NaN()), matrix.NewVector(math.NaN())))
	assert.True(t, matrix.VecEqual(nil, nil))
	assert.False(t, matrix.VecEqual(a, nil))
}

func TestVecAllClose(t *testing.T) {
	t.Parallel()

	a := matrix.NewVector(1, 2)
	assert.True(t, matrix.VecAllClose(a, matrix.NewVector(1.05, 1.95), 0.1))
	assert.False(t, matrix.VecAllClose(a, matrix.NewVector(1.2, 2), 0.1))
	assert.PanicsWithValue(t, matrix.PanicToleranceFormat_TestOnly, func() {
		matrix.VecAllClose(a, a, -1)
	})
}
