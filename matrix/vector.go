// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & arithmetic.
//
// Purpose:
//   - Provide the owned, fixed-length float64 sequence every kernel is built on.
//   - Keep "new value" operations (ScaleVec, AddVec) and in-place operations
//     (ScaleAssign, AddAssign, Axpy, Swap) clearly separated by name.
//   - Guarantee safety at the public surface: indexers return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewVector/Clone/Values: O(n) copy; At/Set/Len: O(1); Dot/Norm/ScaleVec/AddVec: O(n).
package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ---------- error context tags ----------

const (
	opVecAt      = "Vector.At"
	opVecSet     = "Vector.Set"
	opVecSwap    = "Vector.Swap"
	opVecAdd     = "AddVec"
	opVecAddAsgn = "Vector.AddAssign"
	opDot        = "Dot"
	opRandom     = "Random"
)

// NewVector returns a Vector holding a copy of values.
// The caller keeps ownership of the input slice; later writes to it are not observed.
// Complexity: O(n).
func NewVector(values ...float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// NewVectorZeros returns a zero-filled Vector of length n.
// Errors: ErrInvalidDimensions when n < 0.
func NewVectorZeros(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NewVectorRandom returns a Vector of length n filled with U(-1,1) draws from rng.
// Implementation:
//   - Stage 1: validate n >= 0 and rng != nil.
//   - Stage 2: fill in index order 0..n-1, one rng.Float64() per element.
//
// Behavior highlights:
//   - Never reads process-global random state: the source is injected, so a fixed
//     seed yields an identical vector on every run.
//
// Errors:
//   - ErrInvalidDimensions (n < 0), ErrNilRand (rng == nil).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVectorRandom(n int, rng *rand.Rand) (*Vector, error) {
	if n < 0 {
		return nil, matrixErrorf(opRandom, ErrInvalidDimensions)
	}
	if rng == nil {
		return nil, matrixErrorf(opRandom, ErrNilRand)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}

	return &Vector{data: data}, nil
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vector) Len() int { return len(v.data) }

// At returns v[i] or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		return 0, fmt.Errorf("%s(%d): %w", opVecAt, i, err)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return fmt.Errorf("%s(%d): %w", opVecSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent deep copy.
func (v *Vector) Clone() *Vector { return NewVector(v.data...) }

// String implements fmt.Stringer, e.g. "[1, 2.5, -3]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("]")

	return sb.String()
}

// Swap exchanges v[i] and v[j] in place.
// Errors: ErrOutOfRange if either index is outside [0, Len()).
func (v *Vector) Swap(i, j int) error {
	n := len(v.data)
	if validateIndex(i, n) != nil || validateIndex(j, n) != nil {
		return fmt.Errorf("%s(%d,%d): %w", opVecSwap, i, j, ErrOutOfRange)
	}
	v.data[i], v.data[j] = v.data[j], v.data[i]

	return nil
}

// ScaleAssign multiplies every element by k in place.
func (v *Vector) ScaleAssign(k float64) {
	for i := range v.data {
		v.data[i] *= k
	}
}

// AddAssign performs v[i] += alpha*other[i] in place.
// Implementation:
//   - Stage 1: validate other is non-nil and has the same length.
//   - Stage 2: single pass 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; v is untouched on error.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector) AddAssign(other *Vector, alpha float64) error {
	if err := ValidateSameLen(v, other); err != nil {
		return matrixErrorf(opVecAddAsgn, err)
	}
	// other may be v itself; each element is read before it is written.
	for i, x := range other.data {
		v.data[i] += alpha * x
	}

	return nil
}

// Axpy computes v = alpha*x + v in place (BLAS argument order of AddAssign).
func (v *Vector) Axpy(alpha float64, x *Vector) error { return v.AddAssign(x, alpha) }

// Dot returns Σ a[i]*b[i].
// Implementation:
//   - Stage 1: validate equal lengths (before touching any element).
//   - Stage 2: delegate to the kernel selected at init (see kernels.go).
//
// Behavior highlights:
//   - The result equals strict left-to-right summation up to floating-point
//     association; both kernels visit the same products.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b *Vector) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dotImpl(a.data, b.data), nil
}

// ScaleVec returns a new vector k*v. v is not modified.
func ScaleVec(v *Vector, k float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x * k
	}

	return &Vector{data: out}
}

// AddVec returns a new vector a+b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddVec(a, b *Vector) (*Vector, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}

	return &Vector{data: out}, nil
}

// Norm returns the Euclidean norm sqrt(Σ x_i²).
func Norm(v *Vector) float64 {
	var sq float64
	for _, x := range v.data {
		sq += x * x
	}

	return math.Sqrt(sq)
}

// Sum returns Σ v[i] in index order.
func Sum(v *Vector) float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}

	return s
}
