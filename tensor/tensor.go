// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/compute/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported kinds: signed and unsigned integers, floats, complex numbers.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Unknown    DataType = tensor.Unknown
	Int        DataType = tensor.Int
	Int8       DataType = tensor.Int8
	Int16      DataType = tensor.Int16
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint       DataType = tensor.Uint
	Uint8      DataType = tensor.Uint8
	Uint16     DataType = tensor.Uint16
	Uint32     DataType = tensor.Uint32
	Uint64     DataType = tensor.Uint64
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic, immutable, row-major tensor.
//
// Example:
//
//	x := tensor.MustNew(tensor.Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	y := tensor.Transpose(x)  // Shape [3 2]
type Tensor[T DType] = tensor.Tensor[T]

// ShapeMismatchError reports incompatible shapes.
type ShapeMismatchError = tensor.ShapeMismatchError

// ArithmeticError is reserved for element operator failures.
type ArithmeticError = tensor.ArithmeticError

// Errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrArithmetic    = tensor.ErrArithmetic
	ErrInvalidShape  = tensor.ErrInvalidShape
)

// Creation functions

// New creates a tensor from a shape and a flat row-major value sequence.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
func New[T DType](shape Shape, values []T) (*Tensor[T], error) {
	return tensor.New(shape, values)
}

// MustNew is like New but panics on error.
func MustNew[T DType](shape Shape, values []T) *Tensor[T] {
	return tensor.MustNew(shape, values)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Operations

// Add performs element-wise addition of two tensors of identical shape.
func Add[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Add(a, b)
}

// Mul performs element-wise multiplication of two tensors of identical shape.
func Mul[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Mul(a, b)
}

// Transpose reverses the axis order of a tensor. It never fails.
func Transpose[T DType](a *Tensor[T]) *Tensor[T] {
	return tensor.Transpose(a)
}
