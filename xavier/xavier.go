// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package xavier provides the public API of the Xavier (Glorot)
// neural-network parameter initializer.
//
// Example:
//
//	b := xavier.NewBatch[float32]()
//	b.Parameter().Engine = engine.New(seed)
//	b.Parameter().Layer = layer
//	if s := b.Compute(); !s.OK() {
//	    return s.Err()
//	}
//	weights := b.Result().Get(xavier.Value)
package xavier

import (
	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/initializers"
	"github.com/strata-ml/strata/internal/tensor"
	"github.com/strata-ml/strata/internal/xavier"
)

// Method selects the Xavier computation variant.
type Method = xavier.Method

// DefaultDense is the only Xavier variant.
const DefaultDense Method = xavier.DefaultDense

// DataID identifies an input object.
type DataID = initializers.DataID

// Data is the optional tensor to initialize in place.
const Data DataID = initializers.Data

// ResultID identifies a result object.
type ResultID = initializers.ResultID

// Value is the initialized tensor.
const Value ResultID = initializers.Value

// BaseParameter is the parameter view shared by all initializer families:
// the engine and layer collaborators.
type BaseParameter = initializers.Parameter

// Parameter is the Xavier parameter: the base collaborators, no extra
// knobs.
type Parameter = xavier.Parameter

// Input holds references to the external objects of the initializer.
type Input = xavier.Input

// Result holds the initializer output.
type Result = initializers.Result

// NewResult returns an empty result for sharing via SetResult.
func NewResult() *Result {
	return initializers.NewResult()
}

// Batch is a Xavier initializer algorithm instance.
type Batch[T tensor.FPType] = xavier.Batch[T]

// NewBatch constructs an instance for the detected host environment.
func NewBatch[T tensor.FPType]() *Batch[T] {
	return xavier.NewBatch[T]()
}

// NewBatchWithEnv constructs an instance for an explicit method and
// environment.
func NewBatchWithEnv[T tensor.FPType](m Method, env algorithm.Environment) *Batch[T] {
	return xavier.NewBatchWithEnv[T](m, env)
}
