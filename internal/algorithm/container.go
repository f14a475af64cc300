package algorithm

import (
	"fmt"

	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

// Container binds an algorithm instance to one concrete kernel. Selection
// happens once, at construction; an unresolvable combination is recorded
// and surfaces as UnsupportedConfiguration on the first use, never as a
// construction failure or a crash.
type Container[I, P, R any] struct {
	kernel Kernel[I, P, R]
	key    Key
}

// NewContainer resolves a kernel from the registry for the requested
// precision and method under the environment's capability tier.
func NewContainer[I, P, R any](reg *Registry[I, P, R], prec tensor.DataType, m Method, env Environment) *Container[I, P, R] {
	c := &Container[I, P, R]{key: Key{Precision: prec, Method: m, Tier: env.Tier}}
	if kern, ok := reg.Lookup(prec, m, env.Tier); ok {
		c.kernel = kern
	}
	return c
}

// Supported reports whether a kernel was resolved at construction.
func (c *Container[I, P, R]) Supported() bool {
	return c.kernel != nil
}

// Describe names the bound combination for error context.
func (c *Container[I, P, R]) Describe() string {
	return fmt.Sprintf("precision %s, method %d, tier %s", c.key.Precision, c.key.Method, c.key.Tier)
}

func (c *Container[I, P, R]) unsupported() Status {
	return status.Fail(status.UnsupportedConfiguration, "no kernel registered for "+c.Describe())
}

// AllocateResult delegates result materialization to the bound kernel.
func (c *Container[I, P, R]) AllocateResult(in I, par P, res R) Status {
	if c.kernel == nil {
		return c.unsupported()
	}
	return c.kernel.AllocateResult(in, par, res)
}

// Compute delegates to the bound kernel. No generic validation happens
// here; the batch instance validated the input and allocated the result.
func (c *Container[I, P, R]) Compute(in I, par P, res R) Status {
	if c.kernel == nil {
		return c.unsupported()
	}
	return c.kernel.Compute(in, par, res)
}
