//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

func init() {
	if noSimdEnv() {
		detected = Scalar
		return
	}
	switch {
	case cpu.X86.HasAVX512:
		detected = AVX512
	case cpu.X86.HasAVX2:
		detected = AVX2
	default:
		// SSE2 is architecturally guaranteed on amd64.
		detected = SSE2
	}
}
