// Package zscore implements z-score normalization in the batch processing
// mode: every column of the input table is rescaled to zero mean and unit
// standard deviation.
package zscore

import (
	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

// Method selects the z-score computation variant.
type Method int

const (
	// DefaultDense computes column means and standard deviations with the
	// two-pass algorithm.
	DefaultDense Method = iota

	// SumDense derives the moments from single-pass sums and sums of
	// squares.
	SumDense
)

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case DefaultDense:
		return "defaultDense"
	case SumDense:
		return "sumDense"
	default:
		return "unknown"
	}
}

// DataID identifies an input object.
type DataID int

// Data is the input table to normalize.
const Data DataID = iota

// Input holds references to the external data objects of the algorithm.
// References are shared, not duplicated, when the owning batch is cloned.
type Input struct {
	data *tensor.Dense
}

// Set stores a reference to an input object. No validation happens at set
// time; Compute validates the full configuration.
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

// Check validates the input against the parameter. Each failed stage
// contributes one error and short-circuits its dependent checks.
func (in Input) Check(par Parameter) algorithm.Status {
	var s algorithm.Status
	if in.data == nil {
		s.Add(status.NullInput, "data table is not set")
		return s
	}
	shape := in.data.Shape()
	if len(shape) != 2 {
		s.Add(status.InvalidInput, "data must be a two-dimensional table")
		return s
	}
	if shape[0] < 2 {
		s.Add(status.InvalidInput, "data must have at least two rows")
	}
	switch in.data.DType() {
	case tensor.Float32, tensor.Float64:
	default:
		s.Add(status.InvalidInput, "data type must be float32 or float64")
	}
	return s
}

// Parameter configures optional outputs alongside the normalized table.
type Parameter struct {
	ComputeMean     bool
	ComputeVariance bool
}

// ResultID identifies a result object.
type ResultID int

const (
	// NormalizedData is the normalized table, same shape as the input.
	NormalizedData ResultID = iota

	// Means is the 1-by-p table of column means (when requested).
	Means

	// Variances is the 1-by-p table of column variances (when requested).
	Variances
)

// Result holds the algorithm outputs. It starts empty and is materialized
// by Allocate before the kernel runs; handles retrieved from it stay valid
// for as long as any holder keeps them.
type Result struct {
	normalized *tensor.Dense
	means      *tensor.Dense
	variances  *tensor.Dense
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// Allocated reports whether the normalized table has been materialized.
func (r *Result) Allocated() bool {
	return r != nil && r.normalized != nil
}

// Get returns a result object, or nil if absent.
func (r *Result) Get(id ResultID) *tensor.Dense {
	switch id {
	case NormalizedData:
		return r.normalized
	case Means:
		return r.means
	case Variances:
		return r.variances
	default:
		return nil
	}
}

// ensure reuses cur when it already matches shape and dtype, otherwise
// releases it and materializes fresh storage.
func ensure(cur *tensor.Dense, shape tensor.Shape, dtype tensor.DataType) (*tensor.Dense, error) {
	if cur != nil && cur.DType() == dtype && cur.Shape().Equal(shape) {
		return cur, nil
	}
	if cur != nil {
		cur.Release()
	}
	return tensor.NewDense(shape, dtype)
}

// Allocate sizes and materializes the output storage for the given
// configuration. It is idempotent: an unchanged configuration is a no-op,
// a changed one cleanly replaces the previous storage.
func (r *Result) Allocate(in Input, par Parameter, dtype tensor.DataType) algorithm.Status {
	var err error
	if r.normalized, err = ensure(r.normalized, in.data.Shape(), dtype); err != nil {
		return status.Fail(status.AllocationFailure, err.Error())
	}

	momentShape := tensor.Shape{1, in.data.Cols()}
	if par.ComputeMean {
		if r.means, err = ensure(r.means, momentShape, dtype); err != nil {
			return status.Fail(status.AllocationFailure, err.Error())
		}
	} else if r.means != nil {
		r.means.Release()
		r.means = nil
	}
	if par.ComputeVariance {
		if r.variances, err = ensure(r.variances, momentShape, dtype); err != nil {
			return status.Fail(status.AllocationFailure, err.Error())
		}
	} else if r.variances != nil {
		r.variances.Release()
		r.variances = nil
	}
	return status.New()
}

// kernels is the family registry; kernel files populate it from init.
var kernels = algorithm.NewRegistry[Input, Parameter, *Result]()

// Batch is a z-score normalization algorithm instance. It binds one kernel
// at construction, selected by the precision T, the method, and the host
// CPU capability tier.
type Batch[T tensor.FPType] struct {
	algorithm.Batch[Parameter, Input, *Result]

	method Method
	env    algorithm.Environment
}

// NewBatch constructs an instance for the detected host environment.
func NewBatch[T tensor.FPType](m Method) *Batch[T] {
	return NewBatchWithEnv[T](m, algorithm.DefaultEnvironment())
}

// NewBatchWithEnv constructs an instance bound to a kernel for an explicit
// environment. An unsupported combination is reported by the first
// Compute, not here.
func NewBatchWithEnv[T tensor.FPType](m Method, env algorithm.Environment) *Batch[T] {
	c := algorithm.NewContainer(kernels, tensor.DataTypeOf[T](), algorithm.Method(m), env)
	b := &Batch[T]{method: m, env: env}
	b.Batch = algorithm.NewBatch[Parameter, Input, *Result](Input{}, Parameter{}, NewResult(), c)
	return b
}

// Method returns the algorithm variant the instance was constructed for.
func (b *Batch[T]) Method() Method {
	return b.method
}

// Clone returns an independent instance with copies of the input and
// parameter (input table references are shared, not duplicated) and a
// fresh, empty result. Previously computed output is never inherited.
func (b *Batch[T]) Clone() *Batch[T] {
	nb := NewBatchWithEnv[T](b.method, b.env)
	*nb.Input() = *b.Input()
	*nb.Parameter() = *b.Parameter()
	return nb
}
