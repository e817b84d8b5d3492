// SPDX-License-Identifier: MIT

//go:build arm64 && !purego

package matrix

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		useUnrolled()
	}
}
