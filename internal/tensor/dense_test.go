package tensor

import (
	"math"
	"testing"
)

func TestNewDenseZeroFilled(t *testing.T) {
	d, err := NewDense(Shape{3, 4}, Float64)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if d.Rows() != 3 || d.Cols() != 4 {
		t.Errorf("shape = %dx%d, want 3x4", d.Rows(), d.Cols())
	}
	for i, v := range d.AsFloat64() {
		if v != 0 {
			t.Fatalf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewDenseInvalidShape(t *testing.T) {
	if _, err := NewDense(Shape{2, 0}, Float32); err == nil {
		t.Error("expected error for zero dimension")
	}
	if _, err := NewDense(Shape{}, Float32); err == nil {
		t.Error("expected error for empty shape")
	}
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	d, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	got := d.AsFloat32()
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], data[i])
		}
	}

	if _, err := FromSlice(data, Shape{2, 2}); err == nil {
		t.Error("expected error for length/shape mismatch")
	}
}

func TestCloneSharesBuffer(t *testing.T) {
	d, _ := NewDense(Shape{4}, Float32)
	clone := d.Clone()

	d.AsFloat32()[0] = 42
	if clone.AsFloat32()[0] != 42 {
		t.Error("clone should observe writes through the original handle")
	}
}

func TestDeepCloneIndependent(t *testing.T) {
	d, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	clone := d.DeepClone()

	d.AsFloat64()[0] = -1
	if clone.AsFloat64()[0] != 1 {
		t.Error("deep clone should not observe writes to the original")
	}
	if !clone.shape.Equal(d.shape) {
		t.Error("deep clone shape differs")
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float32{1, 2, 3}, Shape{3})
	c, _ := FromSlice([]float32{1, 2, 4}, Shape{3})

	if !a.Equal(b) {
		t.Error("identical tensors should be Equal")
	}
	if a.Equal(c) {
		t.Error("tensors with different contents should not be Equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestFloat16Accessors(t *testing.T) {
	d, err := NewDense(Shape{2, 2}, Float16)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	d.SetFloat16At(0, 1.5)
	d.SetFloat16At(3, -0.25)

	if got := d.Float16At(0); got != 1.5 {
		t.Errorf("Float16At(0) = %v, want 1.5", got)
	}
	if got := d.Float16At(3); got != -0.25 {
		t.Errorf("Float16At(3) = %v, want -0.25", got)
	}
	// Half precision rounds: 1/3 should come back close but not exact.
	d.SetFloat16At(1, 1.0/3.0)
	if diff := math.Abs(float64(d.Float16At(1)) - 1.0/3.0); diff > 1e-3 {
		t.Errorf("float16 round-trip error %v too large", diff)
	}
}

func TestAsSliceDTypeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on dtype mismatch")
		}
	}()
	d, _ := NewDense(Shape{2}, Float64)
	_ = AsSlice[float32](d)
}
