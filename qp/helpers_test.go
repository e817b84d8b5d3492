// SPDX-License-Identifier: MIT

package qp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mlcore/matrix"
	"github.com/stretchr/testify/require"
)

// svmDual bundles the SMO inputs of a linear-kernel SVM dual.
type svmDual struct {
	K          *matrix.Dense // kernel matrix
	Q          *matrix.Dense // Q[i,j] = yᵢyⱼK[i,j]
	p, l, u, y *matrix.Vector
}

// newSVMDual builds the dual of a C-SVM over the rows of X.
func newSVMDual(tb testing.TB, X [][]float64, labels []float64, C float64) svmDual {
	tb.Helper()
	Xd, err := matrix.FromRows(X)
	require.NoError(tb, err)
	K, err := matrix.Gram(Xd)
	require.NoError(tb, err)

	y := matrix.NewVector(labels...)
	yy, err := matrix.OuterProduct(y, y)
	require.NoError(tb, err)
	Q, err := matrix.Hadamard(K, yy)
	require.NoError(tb, err)

	n := len(labels)
	p, l, u := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		p[i], u[i] = -1, C
	}

	return svmDual{K: K, Q: Q, p: matrix.NewVector(p...), l: matrix.NewVector(l...), u: matrix.NewVector(u...), y: y}
}

// separable is a small linearly separable set whose hard-margin solution
// has support vectors (1,1) and (-1,-1), w = (0.5, 0.5), b = 0.
var (
	separableX = [][]float64{{1, 1}, {2, 2}, {1.5, 1}, {-1, -1}, {-2, -2}, {-1.5, -1}}
	separableY = []float64{1, 1, 1, -1, -1, -1}
)

// randomDataset returns n points in d dimensions with labels from the sign
// of the first coordinate, so both classes are present for n >= 2.
func randomDataset(n, d int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = make([]float64, d)
		for k := 0; k < d; k++ {
			X[i][k] = rng.NormFloat64()
		}
		y[i] = 1
		if i%2 == 1 {
			y[i] = -1
			X[i][0] -= 0.5
		} else {
			X[i][0] += 0.5
		}
	}

	return X, y
}

// weightedSum returns Σ yᵢαᵢ.
func weightedSum(alpha, y *matrix.Vector) float64 {
	a, ys := alpha.Values(), y.Values()
	var s float64
	for i := range a {
		s += ys[i] * a[i]
	}

	return s
}
