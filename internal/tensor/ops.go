package tensor

// Add performs element-wise addition of two tensors of identical shape.
//
// Example:
//
//	a := tensor.MustNew(Shape{2, 2}, []int{1, 2, 3, 4})
//	b := tensor.MustNew(Shape{2, 2}, []int{5, 6, 7, 8})
//	c, err := tensor.Add(a, b) // [6, 8, 10, 12]
func Add[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return elementWise(a, b, func(x, y T) T { return x + y })
}

// Mul performs element-wise multiplication of two tensors of identical shape.
func Mul[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return elementWise(a, b, func(x, y T) T { return x * y })
}

// elementWise computes out[i] = op(a[i], b[i]) in flat order.
// No output is allocated unless the shapes match.
func elementWise[T DType](a, b *Tensor[T], op func(x, y T) T) (*Tensor[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, &ShapeMismatchError{
			Expected: a.shape.Clone(),
			Found:    b.shape.Clone(),
		}
	}

	out := make([]T, len(a.data))
	for i := range out {
		out[i] = op(a.data[i], b.data[i])
	}
	return newTensor(a.shape.Clone(), out), nil
}

// Transpose reverses the axis order of a tensor.
//
// The element at (i0, ..., ik) of the result is the element at (ik, ..., i0)
// of the input. Rank 0 and rank 1 tensors keep their shape and data.
//
// Example:
//
//	t := tensor.MustNew(Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	tt := tensor.Transpose(t) // Shape [3, 2], tt.Get(0, 1) == 4
func Transpose[T DType](a *Tensor[T]) *Tensor[T] {
	outShape := a.shape.Reverse()
	out := make([]T, len(a.data))
	if len(out) == 0 {
		return newTensor(outShape, out)
	}

	rank := len(a.shape)
	outStrides := outShape.ComputeStrides()

	// Walk the input in row-major order with an odometer over its coordinates.
	// Input axis j lands on output axis rank-1-j.
	coords := make([]int, rank)
	dst := 0
	for src := range a.data {
		out[dst] = a.data[src]

		for j := rank - 1; j >= 0; j-- {
			coords[j]++
			dst += outStrides[rank-1-j]
			if coords[j] < a.shape[j] {
				break
			}
			dst -= coords[j] * outStrides[rank-1-j]
			coords[j] = 0
		}
	}

	return newTensor(outShape, out)
}
