package zscore

import (
	"fmt"
	"math"

	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/parallel"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

// blockRows is the row-block granularity of the wide-vector kernel.
const blockRows = 256

func init() {
	tiers := []cpu.Tier{cpu.AVX2, cpu.AVX512, cpu.NEON}
	for _, m := range []Method{DefaultDense, SumDense} {
		am := algorithm.Method(m)
		for _, tier := range tiers {
			kernels.Register(algorithm.Key{Precision: tensor.Float32, Method: am, Tier: tier}, blockedKernel[float32]{method: m})
			kernels.Register(algorithm.Key{Precision: tensor.Float64, Method: am, Tier: tier}, blockedKernel[float64]{method: m})
		}
	}
}

// blockedKernel is the wide-vector implementation: contiguous row blocks
// keep the inner column loops vectorizable and feed the parallel driver.
// Registered for the vector-capable tiers; sse2 and scalar fall back to
// denseKernel.
type blockedKernel[T tensor.FPType] struct {
	method Method
}

func (k blockedKernel[T]) AllocateResult(in Input, par Parameter, res *Result) algorithm.Status {
	return allocate[T](in, par, res)
}

func (k blockedKernel[T]) Compute(in Input, par Parameter, res *Result) algorithm.Status {
	data := tensor.AsSlice[T](in.data)
	out := tensor.AsSlice[T](res.Get(NormalizedData))
	rows, cols := in.data.Rows(), in.data.Cols()
	cfg := parallel.DefaultConfig()

	nBlocks := (rows + blockRows - 1) / blockRows
	sums := make([]float64, nBlocks*cols)
	sqSums := make([]float64, nBlocks*cols)

	// First pass: per-block partial sums. Blocks are disjoint, so each
	// goroutine owns its slice of the partials.
	err := parallel.ForBlocksErr(rows, blockRows, cfg, func(begin, end int) error {
		part := sums[(begin/blockRows)*cols:]
		sqPart := sqSums[(begin/blockRows)*cols:]
		for i := begin; i < end; i++ {
			row := data[i*cols : (i+1)*cols]
			for j, v := range row {
				f := float64(v)
				part[j] += f
				sqPart[j] += f * f
			}
		}
		for j := 0; j < cols; j++ {
			if math.IsNaN(part[j]) || math.IsInf(part[j], 0) {
				return fmt.Errorf("non-finite values in rows [%d, %d)", begin, end)
			}
		}
		return nil
	})
	if err != nil {
		return status.Fail(status.KernelComputationError, err.Error())
	}

	n := float64(rows)
	m := newMoments(cols)
	for b := 0; b < nBlocks; b++ {
		for j := 0; j < cols; j++ {
			m.mean[j] += sums[b*cols+j]
		}
	}
	for j := 0; j < cols; j++ {
		m.mean[j] /= n
	}

	switch k.method {
	case SumDense:
		// Raw moments from the first pass.
		for j := 0; j < cols; j++ {
			var sumSq float64
			for b := 0; b < nBlocks; b++ {
				sumSq += sqSums[b*cols+j]
			}
			m.variance[j] = (sumSq - n*m.mean[j]*m.mean[j]) / (n - 1)
		}
	default:
		// Second pass over centered squares.
		devs := make([]float64, nBlocks*cols)
		parallel.ForBlocks(rows, blockRows, cfg, func(begin, end int) {
			part := devs[(begin/blockRows)*cols:]
			for i := begin; i < end; i++ {
				row := data[i*cols : (i+1)*cols]
				for j, v := range row {
					d := float64(v) - m.mean[j]
					part[j] += d * d
				}
			}
		})
		for j := 0; j < cols; j++ {
			var sq float64
			for b := 0; b < nBlocks; b++ {
				sq += devs[b*cols+j]
			}
			m.variance[j] = sq / (n - 1)
		}
	}

	if s := m.finish(); !s.OK() {
		return s
	}

	parallel.ForBlocks(rows, blockRows, cfg, func(begin, end int) {
		normalize(data, out, cols, m, begin, end)
	})
	writeMoments[T](res, m)
	return status.New()
}
