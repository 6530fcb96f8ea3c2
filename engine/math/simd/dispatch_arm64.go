//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		active = portable{}
		return
	}

	// ASIMD is mandatory on ARMv8-A but is still checked for consistency.
	if cpu.ARM64.HasASIMD {
		active = neon{}
		return
	}
	active = portable{}
}
