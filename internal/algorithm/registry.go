package algorithm

import (
	"sync"

	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/tensor"
)

// Key identifies one concrete kernel: the three independent selection axes.
type Key struct {
	Precision tensor.DataType
	Method    Method
	Tier      cpu.Tier
}

// Registry holds the kernels of one algorithm family. Kernel files populate
// it from init, so every combination is registered before any instance can
// be constructed.
type Registry[I, P, R any] struct {
	mu      sync.RWMutex
	kernels map[Key]Kernel[I, P, R]
}

// NewRegistry returns an empty kernel registry.
func NewRegistry[I, P, R any]() *Registry[I, P, R] {
	return &Registry[I, P, R]{kernels: make(map[Key]Kernel[I, P, R])}
}

// Register binds a kernel to a (precision, method, tier) combination.
// A later registration for the same key replaces the earlier one.
func (r *Registry[I, P, R]) Register(k Key, kern Kernel[I, P, R]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kernels[k] = kern
}

// Lookup resolves the best kernel for the combination, walking the tier
// fallback chain down to scalar. It returns false only when no kernel
// exists at any tier.
func (r *Registry[I, P, R]) Lookup(prec tensor.DataType, m Method, tier cpu.Tier) (Kernel[I, P, R], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for {
		if kern, ok := r.kernels[Key{Precision: prec, Method: m, Tier: tier}]; ok {
			return kern, true
		}
		if tier == cpu.Scalar {
			return nil, false
		}
		tier = tier.Fallback()
	}
}
