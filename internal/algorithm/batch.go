package algorithm

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/strata-ml/strata/internal/status"
)

// Batch is the execution core embedded by every family's batch type. It
// owns the Input and Parameter values, shares the Result handle, and holds
// the Container bound at construction.
//
// A Batch is not internally synchronized: concurrent Compute calls on one
// instance are the caller's problem. Distinct instances sharing no Result
// are independently safe.
type Batch[P any, I Input[P], R Result] struct {
	id        uuid.UUID
	input     I
	par       P
	result    R
	container *Container[I, P, R]
}

// NewBatch builds the core around an initial configuration, an empty
// result handle, and the container the instance stays bound to.
func NewBatch[P any, I Input[P], R Result](input I, par P, result R, c *Container[I, P, R]) Batch[P, I, R] {
	return Batch[P, I, R]{
		id:        uuid.New(),
		input:     input,
		par:       par,
		result:    result,
		container: c,
	}
}

// ID returns the instance identity used in error context.
func (b *Batch[P, I, R]) ID() string {
	return b.id.String()
}

// Input returns the instance's owned input for configuration.
func (b *Batch[P, I, R]) Input() *I {
	return &b.input
}

// Parameter returns the instance's owned parameter for configuration.
func (b *Batch[P, I, R]) Parameter() *P {
	return &b.par
}

// Result returns the current result handle, possibly unallocated.
func (b *Batch[P, I, R]) Result() R {
	return b.result
}

// SetResult registers caller-owned result storage. An empty handle fails
// with NullResult and leaves the prior handle unchanged.
func (b *Batch[P, I, R]) SetResult(res R) Status {
	var zero R
	if any(res) == any(zero) {
		return status.Fail(status.NullResult, fmt.Sprintf("instance %s: empty result handle", b.id))
	}
	b.result = res
	return status.New()
}

// Compute runs the computation synchronously: validate the configuration,
// materialize the result if the current configuration requires it, then
// dispatch to the bound kernel. The merged Status is the only failure
// channel; an empty Status is full success.
func (b *Batch[P, I, R]) Compute() Status {
	var s Status
	s.Merge(b.input.Check(b.par))
	if !s.OK() {
		return s
	}

	if !b.container.Supported() {
		return status.Fail(status.UnsupportedConfiguration,
			fmt.Sprintf("instance %s: no kernel registered for %s", b.id, b.container.Describe()))
	}

	// AllocateResult is idempotent: a result already sized for the current
	// configuration is untouched, a stale one is cleanly replaced.
	s.Merge(b.container.AllocateResult(b.input, b.par, b.result))
	if !s.OK() {
		return s
	}

	s.Merge(b.container.Compute(b.input, b.par, b.result))
	return s
}
