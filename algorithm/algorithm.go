// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algorithm provides the public API of the Strata execution
// framework: the Status type every fallible operation returns and the
// Environment that selects the CPU capability tier a kernel is bound for.
//
// Algorithm instances follow one lifecycle:
//
//	b := zscore.NewBatch[float32](zscore.DefaultDense)
//	b.Input().Set(zscore.Data, data)
//	if s := b.Compute(); !s.OK() {
//	    return s.Err()
//	}
//	normalized := b.Result().Get(zscore.NormalizedData)
package algorithm

import (
	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/status"
)

// Status is an ordered, composable collection of error descriptors.
// An empty Status is the only representation of full success.
type Status = status.Status

// StatusError is a single error descriptor inside a Status.
type StatusError = status.Error

// Code identifies a kind of computation failure.
type Code = status.Code

// Failure kinds reported by the framework.
const (
	NullResult               Code = status.NullResult
	NullParameter            Code = status.NullParameter
	NullInput                Code = status.NullInput
	NullEngine               Code = status.NullEngine
	NullLayer                Code = status.NullLayer
	InvalidInput             Code = status.InvalidInput
	AllocationFailure        Code = status.AllocationFailure
	UnsupportedConfiguration Code = status.UnsupportedConfiguration
	KernelComputationError   Code = status.KernelComputationError
)

// Tier identifies a CPU instruction-set capability level.
type Tier = cpu.Tier

// Capability tiers.
const (
	Scalar Tier = cpu.Scalar
	SSE2   Tier = cpu.SSE2
	AVX2   Tier = cpu.AVX2
	AVX512 Tier = cpu.AVX512
	NEON   Tier = cpu.NEON
)

// DetectedTier returns the capability tier of the host CPU.
func DetectedTier() Tier {
	return cpu.Detected()
}

// Environment describes the execution context a kernel is selected for.
// It is captured once, at instance construction.
type Environment = algorithm.Environment

// DefaultEnvironment returns an Environment for the detected host CPU.
func DefaultEnvironment() Environment {
	return algorithm.DefaultEnvironment()
}
