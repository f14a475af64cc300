// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense numeric storage the
// Strata algorithms compute over: data tables for analysis algorithms and
// weight tensors for initializers.
//
// Example:
//
//	data, err := tensor.FromSlice(values, tensor.Shape{rows, cols})
package tensor

import (
	"github.com/strata-ml/strata/internal/tensor"
)

// Type aliases for public API

// FPType is a constraint for the floating-point precisions algorithms are
// instantiated with.
type FPType = tensor.FPType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{100, 4} represents a table of 100 rows and 4 columns.
type Shape = tensor.Shape

// Dense is a dense row-major tensor over a shared reference-counted
// buffer. Handles retrieved from algorithm results stay valid for as long
// as any holder keeps them.
type Dense = tensor.Dense

// Creation functions

// NewDense allocates a zero-filled tensor with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return tensor.NewDense(shape, dtype)
}

// FromSlice creates a tensor from a flat Go slice in row-major order.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T FPType](data []T, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// AsSlice interprets a tensor's storage as a flat slice of the precision T.
func AsSlice[T FPType](d *Dense) []T {
	return tensor.AsSlice[T](d)
}

// DataTypeOf maps a generic precision argument to its runtime DataType.
func DataTypeOf[T FPType]() DataType {
	return tensor.DataTypeOf[T]()
}
