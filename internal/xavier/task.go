package xavier

import (
	"github.com/strata-ml/strata/internal/engine"
	"github.com/strata-ml/strata/internal/initializers"
	"github.com/strata-ml/strata/internal/nn"
	"github.com/strata-ml/strata/internal/tensor"
)

// task is the per-invocation descriptor handed to the kernel body: raw
// non-owning references to the engine, the layer under initialization, and
// the output buffer inside the result. It exists so the hot fill loop does
// not go through handle accessors on every element.
//
// A task is built fresh for each Compute and must not be retained past it;
// the parameter and result it was built from may be mutated or destroyed
// afterwards. The owning batch instance guarantees engine and layer are
// present before a task is constructed.
type task[T tensor.FPType] struct {
	engine engine.Engine
	layer  *nn.Layer
	value  []T
}

func newTask[T tensor.FPType](res *initializers.Result, par *Parameter) task[T] {
	return task[T]{
		engine: par.Engine,
		layer:  par.Layer,
		value:  tensor.AsSlice[T](res.Get(initializers.Value)),
	}
}
