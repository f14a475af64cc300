package xavier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/initializers"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

func init() {
	am := algorithm.Method(DefaultDense)
	kernels.Register(algorithm.Key{Precision: tensor.Float32, Method: am, Tier: cpu.Scalar}, uniformKernel[float32]{})
	kernels.Register(algorithm.Key{Precision: tensor.Float64, Method: am, Tier: cpu.Scalar}, uniformKernel[float64]{})
}

// uniformKernel samples the Xavier uniform distribution. Sampling is
// inherently serial per engine stream, so a single scalar kernel serves
// every tier through the fallback chain.
type uniformKernel[T tensor.FPType] struct{}

func (uniformKernel[T]) AllocateResult(in Input, par Parameter, res *initializers.Result) algorithm.Status {
	return res.Allocate(in.Input, par.Parameter, tensor.DataTypeOf[T]())
}

func (uniformKernel[T]) Compute(in Input, par Parameter, res *initializers.Result) algorithm.Status {
	td := newTask[T](res, &par)

	fanIn, fanOut := td.layer.FanIn(), td.layer.FanOut()
	if fanIn+fanOut == 0 {
		return status.Fail(status.KernelComputationError,
			fmt.Sprintf("layer %q has zero fan-in and fan-out", td.layer.Name))
	}

	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	u := distuv.Uniform{Min: -bound, Max: bound, Src: td.engine}
	for i := range td.value {
		td.value[i] = T(u.Rand())
	}
	return status.New()
}
