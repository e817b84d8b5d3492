// SPDX-License-Identifier: MIT

package ops

import "math"

const (
	// DefaultTolerance is the magnitude under which a pivot or norm counts as zero.
	DefaultTolerance = 1e-10

	// DefaultMaxSweeps bounds the cyclic Jacobi sweeps performed by EigenSym.
	DefaultMaxSweeps = 64

	// MaxCofactorOrder is the largest n accepted by InverseCofactor.
	MaxCofactorOrder = 8
)

const (
	panicToleranceInvalid = "ops: WithTolerance: tol must be finite and > 0"
	panicSweepsInvalid    = "ops: WithMaxSweeps: sweeps must be >= 1"
)

// Option configures a factorization call.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol       float64
	maxSweeps int
}

// WithTolerance sets the zero threshold for pivots and norms.
// Panics unless tol is finite and strictly positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps sets the Jacobi sweep budget of EigenSym. Panics if sweeps < 1.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 1 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, maxSweeps: DefaultMaxSweeps}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
