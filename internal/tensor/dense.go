package tensor

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/x448/float16"
)

// buffer is a reference-counted byte store shared between Dense handles.
// Results are shared by reference between an algorithm instance and any
// caller that retrieved them; the count keeps the storage alive for the
// longest holder.
type buffer struct {
	data     []byte
	refCount atomic.Int32
}

func newBuffer(size int) *buffer {
	buf := &buffer{data: make([]byte, size)}
	buf.refCount.Store(1)
	return buf
}

func (b *buffer) addRef() {
	b.refCount.Add(1)
}

func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.data = nil
	}
}

// Dense is a dense row-major tensor over a shared reference-counted buffer.
// Cloning shares the buffer; the framework provides no synchronization for
// concurrent writers to a shared Dense.
type Dense struct {
	buf   *buffer
	shape Shape
	dtype DataType
}

// NewDense allocates a zero-filled Dense with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		buf:   newBuffer(shape.NumElements() * dtype.Size()),
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// FromSlice builds a Dense from a flat slice in row-major order.
func FromSlice[T FPType](data []T, shape Shape) (*Dense, error) {
	d, err := NewDense(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(AsSlice[T](d), data)
	return d, nil
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// DType returns the tensor's data type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// Rows returns the first dimension of a 2-D table.
// Panics if the tensor is not two-dimensional.
func (d *Dense) Rows() int {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("Rows on %d-dimensional tensor", len(d.shape)))
	}
	return d.shape[0]
}

// Cols returns the second dimension of a 2-D table.
// Panics if the tensor is not two-dimensional.
func (d *Dense) Cols() int {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("Cols on %d-dimensional tensor", len(d.shape)))
	}
	return d.shape[1]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (d *Dense) AsFloat32() []float32 {
	if d.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", d.dtype))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.buf.data[0])), d.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (d *Dense) AsFloat64() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", d.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.buf.data[0])), d.NumElements())
}

// AsFloat16Bits interprets the data as raw IEEE 754 half-precision words.
// Panics if the tensor's dtype is not Float16.
func (d *Dense) AsFloat16Bits() []uint16 {
	if d.dtype != Float16 {
		panic(fmt.Sprintf("tensor dtype is %s, not float16", d.dtype))
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&d.buf.data[0])), d.NumElements())
}

// Float16At returns element i of a Float16 tensor widened to float32.
func (d *Dense) Float16At(i int) float32 {
	return float16.Frombits(d.AsFloat16Bits()[i]).Float32()
}

// SetFloat16At stores v into element i of a Float16 tensor, rounding to
// the nearest half-precision value.
func (d *Dense) SetFloat16At(i int, v float32) {
	d.AsFloat16Bits()[i] = float16.Fromfloat32(v).Bits()
}

// AsSlice interprets the data as a flat slice of the precision T.
// Panics if T does not match the tensor's dtype.
func AsSlice[T FPType](d *Dense) []T {
	if d.dtype != DataTypeOf[T]() {
		panic(fmt.Sprintf("tensor dtype is %s, requested %s", d.dtype, DataTypeOf[T]()))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&d.buf.data[0])), d.NumElements())
}

// Clone creates a handle sharing this tensor's buffer (increments the
// reference count). Writes through either handle are visible to both.
func (d *Dense) Clone() *Dense {
	d.buf.addRef()
	return &Dense{
		buf:   d.buf,
		shape: d.shape.Clone(),
		dtype: d.dtype,
	}
}

// DeepClone copies the tensor into freshly allocated storage.
func (d *Dense) DeepClone() *Dense {
	clone := &Dense{
		buf:   newBuffer(len(d.buf.data)),
		shape: d.shape.Clone(),
		dtype: d.dtype,
	}
	copy(clone.buf.data, d.buf.data)
	return clone
}

// Release decrements the buffer reference count, freeing the storage once
// the last holder releases it.
func (d *Dense) Release() {
	d.buf.release()
}

// SharesBufferWith reports whether two handles refer to the same storage.
func (d *Dense) SharesBufferWith(other *Dense) bool {
	return other != nil && d.buf == other.buf
}

// Equal reports whether two tensors have identical shape, dtype, and
// bit-for-bit identical contents.
func (d *Dense) Equal(other *Dense) bool {
	if other == nil {
		return false
	}
	if d.dtype != other.dtype || !d.shape.Equal(other.shape) {
		return false
	}
	return bytes.Equal(d.buf.data, other.buf.data)
}
