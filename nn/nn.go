// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the host computation-graph collaborators referenced
// by initializer algorithms.
package nn

import (
	"github.com/strata-ml/strata/internal/nn"
)

// Layer is a node of a host computation graph whose weights an initializer
// fills. The graph owns the layer; algorithm parameters reference it
// without taking ownership.
type Layer = nn.Layer
