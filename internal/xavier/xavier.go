// Package xavier implements the Xavier (Glorot) neural-network parameter
// initializer: weights are drawn from the uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
package xavier

import (
	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/initializers"
	"github.com/strata-ml/strata/internal/tensor"
)

// Method selects the Xavier computation variant.
type Method int

// DefaultDense is the only Xavier variant.
const DefaultDense Method = iota

// Parameter extends the initializer base parameter. Xavier adds no knobs
// of its own; the bound is derived from the layer.
type Parameter struct {
	initializers.Parameter
}

// Input wraps the initializer base input so validation runs against the
// Xavier parameter type.
type Input struct {
	initializers.Input
}

// Check validates the configuration.
func (in Input) Check(par Parameter) algorithm.Status {
	return in.Input.Check(par.Parameter)
}

// kernels is the family registry; kernel files populate it from init.
var kernels = algorithm.NewRegistry[Input, Parameter, *initializers.Result]()

// Batch is a Xavier initializer algorithm instance.
type Batch[T tensor.FPType] struct {
	algorithm.Batch[Parameter, Input, *initializers.Result]

	method Method
	env    algorithm.Environment
}

// NewBatch constructs an instance for the detected host environment.
func NewBatch[T tensor.FPType]() *Batch[T] {
	return NewBatchWithEnv[T](DefaultDense, algorithm.DefaultEnvironment())
}

// NewBatchWithEnv constructs an instance bound to a kernel for an explicit
// method and environment.
func NewBatchWithEnv[T tensor.FPType](m Method, env algorithm.Environment) *Batch[T] {
	c := algorithm.NewContainer(kernels, tensor.DataTypeOf[T](), algorithm.Method(m), env)
	b := &Batch[T]{method: m, env: env}
	b.Batch = algorithm.NewBatch[Parameter, Input, *initializers.Result](
		Input{}, Parameter{}, initializers.NewResult(), c)
	return b
}

// Method returns the algorithm variant the instance was constructed for.
func (b *Batch[T]) Method() Method {
	return b.method
}

// BaseParameter returns the polymorphic base view of the parameter, the
// same view every initializer family exposes.
func (b *Batch[T]) BaseParameter() *initializers.Parameter {
	return &b.Parameter().Parameter
}

// Clone returns an independent instance with copies of the input and
// parameter (engine and layer references are shared, not duplicated) and
// a fresh, empty result.
func (b *Batch[T]) Clone() *Batch[T] {
	nb := NewBatchWithEnv[T](b.method, b.env)
	*nb.Input() = *b.Input()
	*nb.Parameter() = *b.Parameter()
	return nb
}
