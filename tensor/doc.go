// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense, immutable, generic tensors for the Born
// compute layer.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T]) over Go numeric types
//   - Shape-validated element-wise Add and Mul
//   - Transpose by full axis reversal
//   - Bounds-checked element access that never panics on out-of-range reads
//
// # Basic Usage
//
//	import "github.com/born-ml/compute/tensor"
//
//	func main() {
//	    a, err := tensor.New(tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    b := tensor.MustNew(tensor.Shape{2, 2}, []float32{5, 6, 7, 8})
//
//	    sum, err := tensor.Add(a, b)   // [6 8 10 12]
//	    t := tensor.Transpose(a)       // Shape [2 2], data [1 3 2 4]
//	    v, ok := t.Get(0, 1)           // 3, true
//	}
//
// # Capability Interface
//
// *Tensor[T] implements compute.TensorComputation. Its Add, Multiply and
// Transpose methods return futures that are already resolved:
//
//	sum, err := a.Add(ctx, b).Await(ctx)
//
// # Errors
//
// Construction with the wrong number of values and arithmetic on tensors of
// different shapes fail with *ShapeMismatchError (errors.Is(err,
// ErrShapeMismatch)). Construction reports element counts; Add and Mul report
// the full operand shapes.
//
// # Thread Safety
//
// Tensors are never mutated after construction and are safe for concurrent
// reads.
package tensor
