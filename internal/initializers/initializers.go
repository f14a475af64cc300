// Package initializers holds the types shared by all neural-network
// parameter initializer algorithms: a parameter carrying the engine and
// layer collaborators, an optional in-place input tensor, and the value
// result.
package initializers

import (
	"fmt"

	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/engine"
	"github.com/strata-ml/strata/internal/nn"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

// Parameter is the base parameter of every initializer. Engine and Layer
// are exclusively owned elsewhere; the parameter references them for the
// duration of one computation only.
type Parameter struct {
	Engine engine.Engine
	Layer  *nn.Layer
}

// DataID identifies an input object.
type DataID int

// Data is the optional tensor to initialize in place. When absent, the
// result materializes fresh storage from the layer's weights shape.
const Data DataID = iota

// Input holds references to the external objects of an initializer.
type Input struct {
	data *tensor.Dense
}

// Set stores a reference to an input object without validation.
func (in *Input) Set(id DataID, t *tensor.Dense) {
	if id == Data {
		in.data = t
	}
}

// Get returns the referenced input object, or nil if unset.
func (in Input) Get(id DataID) *tensor.Dense {
	if id == Data {
		return in.data
	}
	return nil
}

// Check validates the configuration shared by all initializers.
func (in Input) Check(par Parameter) algorithm.Status {
	var s algorithm.Status
	if par.Engine == nil {
		s.Add(status.NullEngine, "parameter engine is not set")
	}
	if par.Layer == nil {
		s.Add(status.NullLayer, "parameter layer is not set")
		return s
	}
	if err := par.Layer.WeightsShape.Validate(); err != nil {
		s.Add(status.InvalidInput, fmt.Sprintf("layer weights shape: %v", err))
		return s
	}
	if in.data != nil && !in.data.Shape().Equal(par.Layer.WeightsShape) {
		s.Add(status.InvalidInput, fmt.Sprintf("input tensor shape %v does not match layer weights shape %v",
			in.data.Shape(), par.Layer.WeightsShape))
	}
	return s
}

// ResultID identifies a result object.
type ResultID int

// Value is the initialized tensor.
const Value ResultID = iota

// Result holds the initializer output. When the input carries a tensor,
// Allocate adopts it so initialization happens in place; otherwise fresh
// storage is materialized from the layer's weights shape.
type Result struct {
	value *tensor.Dense
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// Allocated reports whether the value tensor has been materialized.
func (r *Result) Allocated() bool {
	return r != nil && r.value != nil
}

// Get returns a result object, or nil if absent.
func (r *Result) Get(id ResultID) *tensor.Dense {
	if id == Value {
		return r.value
	}
	return nil
}

// Allocate materializes the value tensor for the given configuration.
// Idempotent: matching storage is kept, stale storage is cleanly replaced.
func (r *Result) Allocate(in Input, par Parameter, dtype tensor.DataType) algorithm.Status {
	if in.data != nil {
		if in.data.DType() != dtype {
			return status.Fail(status.InvalidInput,
				fmt.Sprintf("input tensor type %s does not match computation precision %s", in.data.DType(), dtype))
		}
		if r.value == nil || !r.value.SharesBufferWith(in.data) {
			if r.value != nil {
				r.value.Release()
			}
			r.value = in.data.Clone()
		}
		return status.New()
	}

	shape := par.Layer.WeightsShape
	if r.value != nil && r.value.DType() == dtype && r.value.Shape().Equal(shape) {
		return status.New()
	}
	if r.value != nil {
		r.value.Release()
	}
	value, err := tensor.NewDense(shape, dtype)
	if err != nil {
		return status.Fail(status.AllocationFailure, err.Error())
	}
	r.value = value
	return status.New()
}
