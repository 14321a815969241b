package tensor

import (
	"context"

	"github.com/born-ml/compute/internal/compute"
)

// Verify that Tensor implements the tensor capability.
var _ compute.TensorComputation[*Tensor[float32], *Tensor[float32]] = (*Tensor[float32])(nil)

// Add returns the element-wise sum of t and other.
// The future is resolved before Add returns.
func (t *Tensor[T]) Add(_ context.Context, other *Tensor[T]) *compute.Future[*Tensor[T]] {
	sum, err := Add(t, other)
	return compute.Ready(sum, err)
}

// Multiply returns the element-wise product of t and other.
// The future is resolved before Multiply returns.
func (t *Tensor[T]) Multiply(_ context.Context, other *Tensor[T]) *compute.Future[*Tensor[T]] {
	prod, err := Mul(t, other)
	return compute.Ready(prod, err)
}

// Transpose returns t with its axis order reversed.
// The future is resolved before Transpose returns and never carries an error.
func (t *Tensor[T]) Transpose(_ context.Context) *compute.Future[*Tensor[T]] {
	return compute.Ready(Transpose(t), nil)
}
