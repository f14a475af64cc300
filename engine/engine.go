// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine exposes the random-number engine collaborator referenced
// by initializer parameters.
package engine

import (
	"github.com/strata-ml/strata/internal/engine"
)

// Engine is a deterministic pseudo-random bit stream. Engines are owned by
// the caller; algorithm parameters hold a non-owning reference for the
// duration of one computation.
type Engine = engine.Engine

// New returns a PCG-backed engine seeded with seed.
func New(seed uint64) Engine {
	return engine.New(seed)
}
