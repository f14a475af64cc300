// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package zscore provides the public API of z-score normalization in the
// batch processing mode.
//
// Example:
//
//	b := zscore.NewBatch[float64](zscore.DefaultDense)
//	b.Input().Set(zscore.Data, data)
//	b.Parameter().ComputeMean = true
//	if s := b.Compute(); !s.OK() {
//	    return s.Err()
//	}
//	normalized := b.Result().Get(zscore.NormalizedData)
package zscore

import (
	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/tensor"
	"github.com/strata-ml/strata/internal/zscore"
)

// Method selects the z-score computation variant.
type Method = zscore.Method

// Computation methods.
const (
	DefaultDense Method = zscore.DefaultDense
	SumDense     Method = zscore.SumDense
)

// DataID identifies an input object.
type DataID = zscore.DataID

// Data is the input table to normalize.
const Data DataID = zscore.Data

// ResultID identifies a result object.
type ResultID = zscore.ResultID

// Result objects.
const (
	NormalizedData ResultID = zscore.NormalizedData
	Means          ResultID = zscore.Means
	Variances      ResultID = zscore.Variances
)

// Input holds references to the external data objects of the algorithm.
type Input = zscore.Input

// Parameter configures optional outputs alongside the normalized table.
type Parameter = zscore.Parameter

// Result holds the algorithm outputs.
type Result = zscore.Result

// NewResult returns an empty result for sharing via SetResult.
func NewResult() *Result {
	return zscore.NewResult()
}

// Batch is a z-score normalization algorithm instance. Construction binds
// exactly one kernel, selected by the precision T, the method, and the
// host CPU capability tier.
type Batch[T tensor.FPType] = zscore.Batch[T]

// NewBatch constructs an instance for the detected host environment.
func NewBatch[T tensor.FPType](m Method) *Batch[T] {
	return zscore.NewBatch[T](m)
}

// NewBatchWithEnv constructs an instance for an explicit environment.
func NewBatchWithEnv[T tensor.FPType](m Method, env algorithm.Environment) *Batch[T] {
	return zscore.NewBatchWithEnv[T](m, env)
}
