// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package matrix

import "golang.org/x/sys/cpu"

func init() {
	// FMA-capable cores retire the unrolled products in parallel.
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		useUnrolled()
	}
}
