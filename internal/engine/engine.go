// Package engine defines the random-number engine collaborator referenced
// by initializer parameters.
//
// Engines are owned by the caller; algorithm parameters hold a non-owning
// reference for the duration of one computation. The interface matches
// x/exp/rand.Source so an engine plugs directly into gonum distributions.
package engine

import "golang.org/x/exp/rand"

// Engine is a deterministic pseudo-random bit stream.
type Engine interface {
	Uint64() uint64
	Seed(seed uint64)
}

// New returns a PCG-backed engine seeded with seed.
func New(seed uint64) Engine {
	return rand.NewSource(seed)
}
