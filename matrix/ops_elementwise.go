// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic (Add, Sub, Hadamard, Scale, Clip) returning new matrices.
//   - The in-place counterparts AddAssign/ScaleAssign, named as such.
//   - Comparison helpers used throughout the tests (Equal, AllClose, Round).
//
// Design:
//   - Tight loops live in two private micro-kernels (ewZip, ewMap); the public
//     functions only validate and pick the scalar operation.
//
// Determinism & Performance:
//   - Fixed i→j loop order, one allocation for the output, no temporaries.

package matrix

import "math"

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opClip      = "Clip"
	opAddAssign = "Dense.AddAssign"
	opRound     = "Round"
)

// Epsilon is the machine epsilon for float64 (2^-52) used by Equal and VecEqual.
const Epsilon = 0x1p-52

// ewZip computes out[i,j] = f(a[i,j], b[i,j]) into a fresh matrix.
// Assumes a and b are non-nil with identical shape.
func ewZip(a, b *Dense, f func(x, y float64) float64) *Dense {
	out := newDense(len(a.rows), a.cols)
	var i, j int
	for i = range a.rows {
		ar, br, dst := a.rows[i].data, b.rows[i].data, out.rows[i].data
		for j = range dst {
			dst[j] = f(ar[j], br[j])
		}
	}

	return out
}

// ewMap computes out[i,j] = f(a[i,j]) into a fresh matrix. Assumes a != nil.
func ewMap(a *Dense, f func(x float64) float64) *Dense {
	out := newDense(len(a.rows), a.cols)
	var i, j int
	for i = range a.rows {
		ar, dst := a.rows[i].data, out.rows[i].data
		for j = range dst {
			dst[j] = f(ar[j])
		}
	}

	return out
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewZip(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return ewZip(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return ewZip(a, b, func(x, y float64) float64 { return x * y }), nil
}

// Scale returns k*a. a is not modified.
// Errors: ErrNilMatrix.
func Scale(a *Dense, k float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(a, func(x float64) float64 { return x * k }), nil
}

// Clip returns a copy of a with every entry clamped into [lo, hi].
// Bounds given in the wrong order are swapped. NaN entries stay NaN.
// Errors: ErrNilMatrix.
func Clip(a *Dense, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return ewMap(a, func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}

		return x
	}), nil
}

// AddAssign performs m += b in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is untouched on error.
func (m *Dense) AddAssign(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddAssign, err)
	}
	for i := range m.rows {
		// Rows of m and b are distinct slices unless b == m, where doubling is
		// still correct since each cell is read before it is written.
		_ = m.rows[i].AddAssign(&b.rows[i], 1)
	}

	return nil
}

// ScaleAssign multiplies every entry by k in place.
func (m *Dense) ScaleAssign(k float64) {
	for i := range m.rows {
		m.rows[i].ScaleAssign(k)
	}
}

// Round returns a copy with every entry rounded to the nearest integer
// (half away from zero). Negative zero is normalized to +0 so rounded
// results compare cleanly against integer fixtures.
// Errors: ErrNilMatrix.
func (m *Dense) Round() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRound, err)
	}

	return ewMap(m, func(x float64) float64 {
		return math.Round(x) + 0 // -0 + 0 == +0
	}), nil
}

// approxEqual is the machine-epsilon rule: |x-y| <= Epsilon, or both sides
// within Epsilon of zero regardless of sign.
func approxEqual(x, y float64) bool {
	if math.Abs(x-y) <= Epsilon {
		return true
	}

	return math.Abs(x) <= Epsilon && math.Abs(y) <= Epsilon
}

// Equal reports whether a and b have the same shape and every entry pair
// satisfies the machine-epsilon rule. Two nil matrices are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := range a.rows {
		if !VecEqual(&a.rows[i], &b.rows[i]) {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and |a-b| <= tol entrywise.
// Panics if tol is negative or non-finite (programmer error, like the WithX options).
func AllClose(a, b *Dense, tol float64) bool {
	mustTolerance(tol)
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := range a.rows {
		if !VecAllClose(&a.rows[i], &b.rows[i], tol) {
			return false
		}
	}

	return true
}

// VecEqual is Equal for vectors.
func VecEqual(a, b *Vector) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	for i, x := range a.data {
		if !approxEqual(x, b.data[i]) {
			return false
		}
	}

	return true
}

// VecAllClose is AllClose for vectors. Panics on an invalid tol.
func VecAllClose(a, b *Vector, tol float64) bool {
	mustTolerance(tol)
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	for i, x := range a.data {
		// Written as !(<=) so NaN on either side reports false.
		if !(math.Abs(x-b.data[i]) <= tol) {
			return false
		}
	}

	return true
}
