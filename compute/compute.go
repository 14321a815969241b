// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compute defines the capability contracts of the Born compute layer
// and the Future type every asynchronous operation returns.
//
// Operations that may suspend return a *Future. A future created with Ready
// is resolved immediately; one created with Go resolves when its goroutine
// finishes. Await blocks until the result is available or the context is
// done:
//
//	f := compute.Go(func() (int, error) { return 42, nil })
//	v, err := f.Await(ctx)
//
// Only TensorComputation has an implementation in this module (*tensor.Tensor).
// Compute, GraphComputation and NonNumericComputation are contracts for
// external implementations.
package compute

import (
	"github.com/born-ml/compute/internal/compute"
)

// Future is the result of an operation that may suspend.
type Future[T any] = compute.Future[T]

// Compute is a generic asynchronous computation from In to Out.
type Compute[In, Out any] = compute.Compute[In, Out]

// TensorComputation is the tensor arithmetic capability.
type TensorComputation[S, Out any] = compute.TensorComputation[S, Out]

// GraphComputation is the graph building and evaluation capability.
type GraphComputation[N, Out any] = compute.GraphComputation[N, Out]

// NonNumericComputation is the parse, match and query capability.
type NonNumericComputation[In, Out any] = compute.NonNumericComputation[In, Out]

// Error types.
type (
	InvalidNodeError = compute.InvalidNodeError
	EdgeExistsError  = compute.EdgeExistsError
	NonNumericError  = compute.NonNumericError
	ComputeError     = compute.ComputeError
)

// Errors.
var (
	ErrInvalidNode   = compute.ErrInvalidNode
	ErrEdgeExists    = compute.ErrEdgeExists
	ErrCycleDetected = compute.ErrCycleDetected

	ErrParse          = compute.ErrParse
	ErrPatternMatch   = compute.ErrPatternMatch
	ErrQueryExecution = compute.ErrQueryExecution
	ErrUnknown        = compute.ErrUnknown

	ErrMemoryAllocation = compute.ErrMemoryAllocation
	ErrInvalidOperation = compute.ErrInvalidOperation
	ErrDevice           = compute.ErrDevice
	ErrGeneral          = compute.ErrGeneral
)

// Ready returns a future that is already resolved with value and err.
func Ready[T any](value T, err error) *Future[T] {
	return compute.Ready(value, err)
}

// Go runs fn on a new goroutine and returns a future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	return compute.Go(fn)
}

// Then returns a future that applies fn to the successful result of f.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	return compute.Then(f, fn)
}

// MemoryAllocation wraps an allocation failure.
func MemoryAllocation(err error) error {
	return compute.MemoryAllocation(err)
}

// InvalidOperation reports an operation that cannot be applied.
func InvalidOperation(message string) error {
	return compute.InvalidOperation(message)
}

// DeviceFailure wraps an error raised by a device.
func DeviceFailure(err error) error {
	return compute.DeviceFailure(err)
}

// General reports an uncategorized computation failure.
func General(message string) error {
	return compute.General(message)
}
