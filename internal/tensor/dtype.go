// Package tensor provides the dense numeric storage the algorithm framework
// computes over: data tables for analysis algorithms and weight tensors for
// initializers.
package tensor

// FPType is a constraint for the floating-point precisions kernels are
// instantiated with.
type FPType interface {
	~float32 | ~float64
}

// DataType represents runtime type information for a tensor.
type DataType int

// Supported data types.
const (
	Float16 DataType = iota
	Float32
	Float64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf maps a generic precision argument to its runtime DataType.
func DataTypeOf[T FPType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported precision")
	}
}
