// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the dense kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of goroutines Gemm may use for its outer row loop.
	// 1 ⇒ fully sequential i-k-j product on the calling goroutine.
	DefaultWorkers = 1

	// DefaultParallelMinRows is the smallest row count for which Gemm fans out
	// when more than one worker is configured. Smaller products stay sequential.
	DefaultParallelMinRows = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "matrix: WithWorkers: workers must be >= 1"
	panicMinRowsInvalid  = "matrix: WithParallelMinRows: rows must be >= 0"
	panicToleranceFormat = "matrix: tolerance must be finite and non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	workers int // >= 1; DefaultWorkers
	minRows int // >= 0; DefaultParallelMinRows
}

// WithWorkers sets how many goroutines Gemm may use across output rows.
// Implementation:
//   - Stage 1: validate workers >= 1.
//   - Stage 2: return a setter that writes workers into Options.
//
// Behavior highlights:
//   - Every output cell is still accumulated in the same k order, so results
//     are bit-identical to the sequential path.
//
// Errors:
//   - Panics with a stable message when workers < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithParallelMinRows sets the row threshold under which Gemm ignores WithWorkers.
// Zero forces the parallel path whenever workers > 1 (useful in tests).
func WithParallelMinRows(rows int) Option {
	if rows < 0 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRows = rows }
}

// gatherOptions applies user options on top of the documented defaults.
// Apply order is left to right; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		minRows: DefaultParallelMinRows,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// parallel reports whether a product with the given row count should fan out.
func (o Options) parallel(rows int) bool {
	return o.workers > 1 && rows >= o.minRows && rows > 1
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// mustTolerance panics when tol is not a finite non-negative number.
func mustTolerance(tol float64) {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceFormat)
	}
}
