// Package cpu detects the host CPU capability tier used for kernel selection.
//
// Detection runs once at startup; the framework binds a kernel to an
// algorithm instance at construction time and never re-evaluates the tier
// per call. The STRATA_NO_SIMD environment variable forces the Scalar tier
// regardless of hardware, which is useful for testing and debugging.
package cpu

import (
	"os"
	"strconv"
)

// Tier identifies a CPU instruction-set capability level.
type Tier int

// Capability tiers, ordered from least to most capable per architecture.
const (
	// Scalar is the portable fallback available everywhere.
	Scalar Tier = iota

	// SSE2 is the x86-64 baseline (128-bit vectors).
	SSE2

	// AVX2 provides 256-bit vectors on x86-64.
	AVX2

	// AVX512 provides 512-bit vectors on x86-64.
	AVX512

	// NEON is the arm64 baseline (128-bit vectors).
	NEON
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Fallback returns the next less capable tier. Scalar falls back to itself;
// kernel lookup uses this to walk down to the portable floor.
func (t Tier) Fallback() Tier {
	switch t {
	case AVX512:
		return AVX2
	case AVX2:
		return SSE2
	case SSE2, NEON:
		return Scalar
	default:
		return Scalar
	}
}

// detected is set once by the per-architecture init in cpu_*.go.
var detected Tier

// Detected returns the capability tier of the host CPU.
func Detected() Tier {
	return detected
}

// noSimdEnv reports whether STRATA_NO_SIMD requests the scalar tier.
// Any non-empty value that does not parse as false counts as set.
func noSimdEnv() bool {
	val := os.Getenv("STRATA_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
