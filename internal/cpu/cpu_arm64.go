//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

func init() {
	if noSimdEnv() {
		detected = Scalar
		return
	}
	if cpu.ARM64.HasASIMD {
		detected = NEON
		return
	}
	detected = Scalar
}
