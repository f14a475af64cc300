package xavier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/internal/algorithm"
	"github.com/strata-ml/strata/internal/cpu"
	"github.com/strata-ml/strata/internal/engine"
	"github.com/strata-ml/strata/internal/initializers"
	"github.com/strata-ml/strata/internal/nn"
	"github.com/strata-ml/strata/internal/status"
	"github.com/strata-ml/strata/internal/tensor"
)

func denseLayer() *nn.Layer {
	return &nn.Layer{Name: "fc1", WeightsShape: tensor.Shape{16, 8}}
}

func TestComputeFillsWithinBound(t *testing.T) {
	b := NewBatch[float64]()
	b.Parameter().Engine = engine.New(1)
	b.Parameter().Layer = denseLayer()

	s := b.Compute()
	require.True(t, s.OK(), "compute failed: %s", s)

	value := b.Result().Get(initializers.Value)
	require.NotNil(t, value)
	require.True(t, value.Shape().Equal(tensor.Shape{16, 8}))

	bound := math.Sqrt(6.0 / float64(16+8))
	data := value.AsFloat64()
	distinct := map[float64]bool{}
	for i, v := range data {
		require.LessOrEqual(t, math.Abs(v), bound, "element %d out of bound", i)
		distinct[v] = true
	}
	assert.Greater(t, len(distinct), len(data)/2, "fill should not be near-constant")
}

func TestComputeFloat32(t *testing.T) {
	b := NewBatch[float32]()
	b.Parameter().Engine = engine.New(3)
	b.Parameter().Layer = denseLayer()

	require.True(t, b.Compute().OK())
	value := b.Result().Get(initializers.Value)
	assert.Equal(t, tensor.Float32, value.DType())
}

func TestDeterministicUnderSeed(t *testing.T) {
	run := func() *tensor.Dense {
		b := NewBatch[float64]()
		b.Parameter().Engine = engine.New(42)
		b.Parameter().Layer = denseLayer()
		require.True(t, b.Compute().OK())
		return b.Result().Get(initializers.Value)
	}
	assert.True(t, run().Equal(run()), "same seed must give a bit-identical fill")
}

func TestTaskReferencesAreIdentityPreserving(t *testing.T) {
	eng := engine.New(7)
	layer := denseLayer()

	b := NewBatch[float64]()
	b.Parameter().Engine = eng
	b.Parameter().Layer = layer
	require.True(t, b.Compute().OK())

	td := newTask[float64](b.Result(), b.Parameter())
	assert.Same(t, layer, td.layer, "task must reference the caller's layer, not a copy")
	if td.engine != eng {
		t.Error("task must reference the caller's engine, not a copy")
	}
	assert.Equal(t, b.Result().Get(initializers.Value).NumElements(), len(td.value))
}

func TestMissingCollaborators(t *testing.T) {
	b := NewBatch[float64]()

	// Both stages report in one pass.
	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.NullEngine))
	assert.True(t, s.Has(status.NullLayer))

	b.Parameter().Engine = engine.New(1)
	s = b.Compute()
	assert.False(t, s.Has(status.NullEngine))
	assert.True(t, s.Has(status.NullLayer))
}

func TestInPlaceInitialization(t *testing.T) {
	weights, err := tensor.NewDense(tensor.Shape{16, 8}, tensor.Float64)
	require.NoError(t, err)

	b := NewBatch[float64]()
	b.Parameter().Engine = engine.New(5)
	b.Parameter().Layer = denseLayer()
	b.Input().Set(initializers.Data, weights)

	require.True(t, b.Compute().OK())
	assert.True(t, b.Result().Get(initializers.Value).SharesBufferWith(weights),
		"result must adopt the caller's tensor")

	var nonZero int
	for _, v := range weights.AsFloat64() {
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0, "caller's tensor must be filled in place")
}

func TestInputShapeMismatch(t *testing.T) {
	wrong, err := tensor.NewDense(tensor.Shape{4, 4}, tensor.Float64)
	require.NoError(t, err)

	b := NewBatch[float64]()
	b.Parameter().Engine = engine.New(1)
	b.Parameter().Layer = denseLayer()
	b.Input().Set(initializers.Data, wrong)

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.InvalidInput))
}

func TestInputPrecisionMismatch(t *testing.T) {
	f64, err := tensor.NewDense(tensor.Shape{16, 8}, tensor.Float64)
	require.NoError(t, err)

	b := NewBatch[float32]()
	b.Parameter().Engine = engine.New(1)
	b.Parameter().Layer = denseLayer()
	b.Input().Set(initializers.Data, f64)

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.InvalidInput))
}

func TestCloneSharesCollaboratorsNotResult(t *testing.T) {
	eng := engine.New(9)
	layer := denseLayer()

	orig := NewBatch[float64]()
	orig.Parameter().Engine = eng
	orig.Parameter().Layer = layer
	require.True(t, orig.Compute().OK())

	clone := orig.Clone()
	assert.False(t, clone.Result().Allocated(), "clone must start with an empty result")
	assert.Same(t, layer, clone.Parameter().Layer)
	if clone.Parameter().Engine != eng {
		t.Error("clone must share the engine reference")
	}

	require.True(t, clone.Compute().OK())
	assert.False(t, clone.Result().Get(initializers.Value).
		SharesBufferWith(orig.Result().Get(initializers.Value)))
}

func TestBaseParameterView(t *testing.T) {
	b := NewBatch[float64]()
	b.BaseParameter().Engine = engine.New(1)
	b.BaseParameter().Layer = denseLayer()

	require.True(t, b.Compute().OK(), "base view must alias the concrete parameter")
}

func TestUnsupportedMethod(t *testing.T) {
	b := NewBatchWithEnv[float64](Method(3), algorithm.Environment{Tier: cpu.Scalar})
	b.Parameter().Engine = engine.New(1)
	b.Parameter().Layer = denseLayer()

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.UnsupportedConfiguration))
}

func TestZeroFanLayer(t *testing.T) {
	b := NewBatch[float64]()
	b.Parameter().Engine = engine.New(1)
	b.Parameter().Layer = &nn.Layer{Name: "bias", WeightsShape: tensor.Shape{8}}

	s := b.Compute()
	require.False(t, s.OK())
	assert.True(t, s.Has(status.KernelComputationError))
}
