package zscore

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

func init() {
	for _, m := range []Method{DefaultDense, SumDense} {
		am := algorithm.Method(m)
		kernels.Register(algorithm.Key{Precision: tensor.Float32, Method: am, Tier: cpu.Scalar}, denseKernel[float32]{method: m})
		kernels.Register(algorithm.Key{Precision: tensor.Float64, Method: am, Tier: cpu.Scalar}, denseKernel[float64]{method: m})
	}
}

// allocate is shared by all kernels of the family: it pins the input data
// type to the computation precision and delegates sizing to the result.
func allocate[T tensor.FPType](in Input, par Parameter, res *Result) algorithm.Status {
	prec := tensor.DataTypeOf[T]()
	if in.data.DType() != prec {
		return status.Fail(status.InvalidInput,
			fmt.Sprintf("data type %s does not match computation precision %s", in.data.DType(), prec))
	}
	return res.Allocate(in, par, prec)
}

// moments holds per-column statistics of the input table.
type moments struct {
	mean     []float64
	variance []float64
	std      []float64
}

func newMoments(cols int) moments {
	return moments{
		mean:     make([]float64, cols),
		variance: make([]float64, cols),
		std:      make([]float64, cols),
	}
}

// finish derives std from variance and validates the domain.
func (m moments) finish() algorithm.Status {
	var s algorithm.Status
	for j := range m.mean {
		if math.IsNaN(m.mean[j]) || math.IsInf(m.mean[j], 0) {
			s.Add(status.KernelComputationError, fmt.Sprintf("non-finite values in column %d", j))
			return s
		}
		if m.variance[j] < 0 {
			// Cancellation in the raw-moment formula can leave a tiny
			// negative variance for constant columns.
			m.variance[j] = 0
		}
		m.std[j] = math.Sqrt(m.variance[j])
		if m.std[j] == 0 {
			s.Add(status.KernelComputationError, fmt.Sprintf("zero variance in column %d", j))
			return s
		}
	}
	return s
}

// normalize rescales rows [begin, end) of data into out.
func normalize[T tensor.FPType](data, out []T, cols int, m moments, begin, end int) {
	for i := begin; i < end; i++ {
		row := data[i*cols : (i+1)*cols]
		dst := out[i*cols : (i+1)*cols]
		for j := range row {
			dst[j] = T((float64(row[j]) - m.mean[j]) / m.std[j])
		}
	}
}

// writeMoments stores requested optional outputs.
func writeMoments[T tensor.FPType](res *Result, m moments) {
	if res.means != nil {
		dst := tensor.AsSlice[T](res.means)
		for j := range dst {
			dst[j] = T(m.mean[j])
		}
	}
	if res.variances != nil {
		dst := tensor.AsSlice[T](res.variances)
		for j := range dst {
			dst[j] = T(m.variance[j])
		}
	}
}

// denseKernel is the portable scalar implementation, registered for all
// tiers through the fallback chain.
type denseKernel[T tensor.FPType] struct {
	method Method
}

func (k denseKernel[T]) AllocateResult(in Input, par Parameter, res *Result) algorithm.Status {
	return allocate[T](in, par, res)
}

func (k denseKernel[T]) Compute(in Input, par Parameter, res *Result) algorithm.Status {
	data := tensor.AsSlice[T](in.data)
	out := tensor.AsSlice[T](res.Get(NormalizedData))
	rows, cols := in.data.Rows(), in.data.Cols()

	m := newMoments(cols)
	switch k.method {
	case SumDense:
		// Single pass over raw moments.
		n := float64(rows)
		for j := 0; j < cols; j++ {
			var sum, sumSq float64
			for i := 0; i < rows; i++ {
				v := float64(data[i*cols+j])
				sum += v
				sumSq += v * v
			}
			m.mean[j] = sum / n
			m.variance[j] = (sumSq - n*m.mean[j]*m.mean[j]) / (n - 1)
		}
	default:
		// Two-pass column statistics.
		col := make([]float64, rows)
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				col[i] = float64(data[i*cols+j])
			}
			mean, std := stat.MeanStdDev(col, nil)
			m.mean[j] = mean
			m.variance[j] = std * std
		}
	}

	if s := m.finish(); !s.OK() {
		return s
	}

	normalize(data, out, cols, m, 0, rows)
	writeMoments[T](res, m)
	return status.New()
}
