package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tensor is a dense, immutable, row-major tensor with element type T.
//
// A Tensor owns its buffer exclusively. Every operation returns a new Tensor,
// so a Tensor may be read from any number of goroutines at once.
//
// Example:
//
//	t, err := tensor.New(Shape{2, 2}, []float32{1, 2, 3, 4})
//	v, ok := t.Get(1, 1) // 4, true
type Tensor[T DType] struct {
	shape   Shape
	strides []int
	data    []T
}

// New creates a tensor of the given shape from a flat row-major value sequence.
// The values are copied.
//
// If len(values) differs from shape.NumElements() the returned error is a
// *ShapeMismatchError whose Expected and Found hold the two element counts.
func New[T DType](shape Shape, values []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	expected := shape.NumElements()
	if len(values) != expected {
		return nil, &ShapeMismatchError{
			Expected: Shape{expected},
			Found:    Shape{len(values)},
		}
	}

	data := make([]T, expected)
	copy(data, values)
	return newTensor(shape.Clone(), data), nil
}

// MustNew is like New but panics on error.
// Intended for literals in tests and examples.
func MustNew[T DType](shape Shape, values []T) *Tensor[T] {
	t, err := New(shape, values)
	if err != nil {
		panic(errors.Wrap(err, "tensor.MustNew"))
	}
	return t
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newTensor(shape.Clone(), make([]T, shape.NumElements())), nil
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// newTensor wraps an owned buffer. Callers guarantee len(data) == shape.NumElements().
func newTensor[T DType](shape Shape, data []T) *Tensor[T] {
	return &Tensor[T]{
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    data,
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// DType returns the runtime data type of the elements.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Data returns a copy of the flat row-major buffer.
func (t *Tensor[T]) Data() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	return out
}

// Get returns the element at the given coordinates.
// ok is false if any coordinate is out of bounds for its axis.
// Panics if the number of coordinates differs from the rank.
//
// Example:
//
//	t := tensor.MustNew(Shape{3, 4}, data)
//	value, ok := t.Get(1, 2) // Row 1, column 2
func (t *Tensor[T]) Get(coords ...int) (T, bool) {
	if len(coords) != len(t.shape) {
		panic(fmt.Sprintf("expected %d coordinates, got %d", len(t.shape), len(coords)))
	}

	off, ok := t.shape.offset(coords, t.strides)
	if !ok {
		var zero T
		return zero, false
	}
	return t.data[off], true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), []int(t.shape))
}
