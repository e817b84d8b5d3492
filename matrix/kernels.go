// SPDX-License-Identifier: MIT

package matrix

// Kernel selection for the dot product.
//
// dotImpl defaults to the strict left-to-right loop. Platform init functions
// (kernels_amd64.go, kernels_arm64.go) switch to the 4-way unrolled loop when
// the CPU reports wide FP pipelines. Both kernels accumulate the same products;
// they differ only by floating-point association.
var (
	dotImpl    = dotGeneric
	kernelName = kernelGeneric
)

const (
	kernelGeneric  = "generic"
	kernelUnrolled = "unrolled4"
)

// ActiveKernel reports which dot-product kernel was selected at init.
// Useful in benchmarks and bug reports; results never depend on it beyond
// rounding of the final sum.
func ActiveKernel() string { return kernelName }

// useUnrolled installs the unrolled dot kernel.
func useUnrolled() {
	dotImpl = dotUnrolled4
	kernelName = kernelUnrolled
}

// dotGeneric is the reference strict left-to-right summation.
// Assumes len(a) == len(b).
func dotGeneric(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// dotUnrolled4 processes four products per step and folds them into one
// running sum, then finishes the tail one element at a time.
// Assumes len(a) == len(b).
func dotUnrolled4(a, b []float64) float64 {
	var (
		sum float64
		i   int
		n   = len(a)
	)
	b = b[:n] // hoist bounds check
	for ; i+3 < n; i += 4 {
		sum += a[i]*b[i] + a[i+1]*b[i+1] + a[i+2]*b[i+2] + a[i+3]*b[i+3]
	}
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}
