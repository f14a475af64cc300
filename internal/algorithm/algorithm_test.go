package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

// A minimal fake family exercising the core without numerics.

type fakeParam struct {
	scale float64
}

type fakeInput struct {
	value   float64
	missing bool
}

func (in fakeInput) Check(par fakeParam) Status {
	var s Status
	if in.missing {
		s.Add(status.NullInput, "value not set")
		return s
	}
	if par.scale == 0 {
		s.Add(status.InvalidInput, "zero scale")
	}
	return s
}

type fakeResult struct {
	out []float64
}

func (r *fakeResult) Allocated() bool {
	return r != nil && r.out != nil
}

type fakeKernel struct {
	trace     *[]string
	allocFail bool
}

func (k fakeKernel) AllocateResult(in fakeInput, par fakeParam, res *fakeResult) Status {
	*k.trace = append(*k.trace, "allocate")
	if k.allocFail {
		return status.Fail(status.AllocationFailure, "out of memory")
	}
	if !res.Allocated() {
		res.out = make([]float64, 1)
	}
	return status.New()
}

func (k fakeKernel) Compute(in fakeInput, par fakeParam, res *fakeResult) Status {
	*k.trace = append(*k.trace, "compute")
	res.out[0] = in.value * par.scale
	return status.New()
}

const fakeMethod Method = 0

func newFakeBatch(t *testing.T, reg *Registry[fakeInput, fakeParam, *fakeResult], tier cpu.Tier) *Batch[fakeParam, fakeInput, *fakeResult] {
	t.Helper()
	c := NewContainer(reg, tensor.Float64, fakeMethod, Environment{Tier: tier})
	b := NewBatch[fakeParam, fakeInput, *fakeResult](fakeInput{}, fakeParam{}, &fakeResult{}, c)
	return &b
}

func TestRegistryTierFallback(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	trace := []string{}
	reg.Register(Key{Precision: tensor.Float64, Method: fakeMethod, Tier: cpu.Scalar}, fakeKernel{trace: &trace})

	for _, tier := range []cpu.Tier{cpu.Scalar, cpu.SSE2, cpu.AVX2, cpu.AVX512, cpu.NEON} {
		_, ok := reg.Lookup(tensor.Float64, fakeMethod, tier)
		assert.True(t, ok, "scalar kernel should resolve from tier %s", tier)
	}

	_, ok := reg.Lookup(tensor.Float32, fakeMethod, cpu.AVX2)
	assert.False(t, ok, "unregistered precision should not resolve")
	_, ok = reg.Lookup(tensor.Float64, Method(99), cpu.AVX2)
	assert.False(t, ok, "unregistered method should not resolve")
}

func TestRegistryPrefersDetectedTier(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	trace := []string{}
	scalar := fakeKernel{trace: &trace}
	wide := fakeKernel{trace: &trace, allocFail: true} // distinguishable
	reg.Register(Key{Precision: tensor.Float64, Method: fakeMethod, Tier: cpu.Scalar}, scalar)
	reg.Register(Key{Precision: tensor.Float64, Method: fakeMethod, Tier: cpu.AVX2}, wide)

	k, ok := reg.Lookup(tensor.Float64, fakeMethod, cpu.AVX512)
	require.True(t, ok)
	assert.Equal(t, wide, k, "avx512 should fall back to the avx2 kernel, not scalar")
}

func TestUnsupportedConfiguration(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	b := newFakeBatch(t, reg, cpu.AVX2)
	b.Input().value = 1
	b.Parameter().scale = 2

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.UnsupportedConfiguration))
	assert.False(t, b.Result().Allocated(), "no storage should be touched")

	// Re-invoking reports the same failure, never a crash.
	s = b.Compute()
	assert.True(t, s.Has(status.UnsupportedConfiguration))
}

func TestSetResult(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	b := newFakeBatch(t, reg, cpu.Scalar)

	prior := b.Result()
	s := b.SetResult(nil)
	require.False(t, s.OK())
	assert.True(t, s.Has(status.NullResult))
	assert.Same(t, prior, b.Result(), "failed SetResult must leave the prior handle unchanged")

	shared := &fakeResult{}
	require.True(t, b.SetResult(shared).OK())
	assert.Same(t, shared, b.Result())
}

func TestComputeSequence(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	trace := []string{}
	reg.Register(Key{Precision: tensor.Float64, Method: fakeMethod, Tier: cpu.Scalar}, fakeKernel{trace: &trace})

	b := newFakeBatch(t, reg, cpu.AVX512)
	b.Input().value = 3
	b.Parameter().scale = 2

	s := b.Compute()
	require.True(t, s.OK(), "compute failed: %s", s)
	assert.Equal(t, []string{"allocate", "compute"}, trace)
	assert.Equal(t, 6.0, b.Result().out[0])

	// Second compute re-validates and re-allocates idempotently.
	trace = trace[:0]
	require.True(t, b.Compute().OK())
	assert.Equal(t, []string{"allocate", "compute"}, trace)
}

func TestComputeValidationShortCircuits(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	trace := []string{}
	reg.Register(Key{Precision: tensor.Float64, Method: fakeMethod, Tier: cpu.Scalar}, fakeKernel{trace: &trace})

	b := newFakeBatch(t, reg, cpu.Scalar)
	b.Input().missing = true

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.NullInput))
	assert.Empty(t, trace, "kernel must not run after failed validation")
	assert.False(t, b.Result().Allocated())
}

func TestComputeAllocationFailureStopsKernel(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	trace := []string{}
	reg.Register(Key{Precision: tensor.Float64, Method: fakeMethod, Tier: cpu.Scalar},
		fakeKernel{trace: &trace, allocFail: true})

	b := newFakeBatch(t, reg, cpu.Scalar)
	b.Input().value = 1
	b.Parameter().scale = 1

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.AllocationFailure))
	assert.Equal(t, []string{"allocate"}, trace)
}

func TestInstanceIdentity(t *testing.T) {
	reg := NewRegistry[fakeInput, fakeParam, *fakeResult]()
	a := newFakeBatch(t, reg, cpu.Scalar)
	b := newFakeBatch(t, reg, cpu.Scalar)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEmpty(t, a.ID())
}
