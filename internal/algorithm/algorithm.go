// Package algorithm implements the execution framework shared by all
// analysis algorithm families.
//
// Every family follows the same lifecycle: configure an Input and a
// Parameter, construct a batch instance, which binds exactly one kernel
// selected by (numeric precision, method variant, CPU capability tier),
// then Compute synchronously and read the shared Result. The framework
// isolates algorithm authors from dispatch and result-management
// boilerplate: families supply data types and kernels, the core drives
// validation, lazy result allocation, and kernel invocation.
//
// All failures travel through status.Status; no errors cross this API as
// panics.
package algorithm

import (
	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/status"
)

// Status is re-exported so families and kernels depend on one package.
type Status = status.Status

// Method is a family-scoped algorithm variant tag. Each family defines its
// own method constants starting at zero.
type Method int

// Environment describes the execution context a kernel is selected for.
// It is captured once, at instance construction, and never re-evaluated.
type Environment struct {
	Tier cpu.Tier
}

// DefaultEnvironment returns an Environment for the detected host CPU.
func DefaultEnvironment() Environment {
	return Environment{Tier: cpu.Detected()}
}

// Input is the constraint family input types satisfy: consistency checking
// against the family parameter. Check appends one error per failed stage
// and short-circuits dependent checks within a stage.
type Input[P any] interface {
	Check(par P) Status
}

// Result is the constraint family result types satisfy. Allocated reports
// whether output storage has been materialized; the core never lets a
// kernel run against an unallocated result.
type Result interface {
	Allocated() bool
}

// Kernel is the narrow capability one concrete implementation provides for
// a (precision, method, tier) combination. AllocateResult must be
// idempotent: unchanged configuration is a no-op, a changed configuration
// cleanly replaces the previous storage. Compute assumes the caller already
// validated the input and allocated the result; its Status reflects only
// kernel-internal outcomes.
type Kernel[I, P, R any] interface {
	AllocateResult(in I, par P, res R) Status
	Compute(in I, par P, res R) Status
}
