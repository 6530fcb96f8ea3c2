//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		active = portable{}
		return
	}

	// SSE2 is part of the amd64 baseline; SSE4.1 adds blendvps.
	if cpu.X86.HasSSE2 {
		active = sse{hasSSE41: cpu.X86.HasSSE41}
		return
	}
	active = portable{}
}
