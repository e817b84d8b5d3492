// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes private kernels and option state to matrix_test.

var (
	DotGeneric_TestOnly   = dotGeneric
	DotUnrolled4_TestOnly = dotUnrolled4
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly  = panicWorkersInvalid
	PanicMinRowsInvalid_TestOnly  = panicMinRowsInvalid
	PanicToleranceFormat_TestOnly = panicToleranceFormat
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Workers int
	MinRows int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like Gemm does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Workers: o.workers, MinRows: o.minRows}
}

// ParallelFor_TestOnly reports whether Gemm would fan out for rows under opts.
func ParallelFor_TestOnly(rows int, opts ...Option) bool {
	return gatherOptions(opts...).parallel(rows)
}
