// Package compute defines the capability contracts of the Born compute layer
// and the Future type through which every capability returns its result.
//
// All capability methods may suspend: they return a *Future and callers
// collect the result with Await. Backends that never suspend, such as the CPU
// path, return futures that are already resolved.
package compute

import "context"

// Compute is a generic input to output capability implemented by higher
// level callers on top of the tensor and device layers.
type Compute[In, Out any] interface {
	Compute(ctx context.Context, input In) *Future[Out]
}

// TensorComputation is the arithmetic capability of a tensor type S.
//
// Add and Multiply fail with a shape mismatch when the operands differ in
// shape. Transpose never fails.
type TensorComputation[S, Out any] interface {
	Add(ctx context.Context, other S) *Future[Out]
	Multiply(ctx context.Context, other S) *Future[Out]
	Transpose(ctx context.Context) *Future[Out]
}

// GraphComputation is an incrementally built graph with node type N.
//
// Implementations report ErrInvalidNode (via *InvalidNodeError) when an edge
// references a node that was never added, ErrEdgeExists (via
// *EdgeExistsError) for a duplicate edge and ErrCycleDetected when they
// require acyclicity and an edge would break it.
type GraphComputation[N, Out any] interface {
	AddNode(ctx context.Context, node N) *Future[struct{}]
	AddEdge(ctx context.Context, from, to N) *Future[struct{}]
	Compute(ctx context.Context) *Future[Out]
}

// NonNumericComputation is a parse, match and query capability over input In.
//
// Failures are *NonNumericError values whose Kind is ErrParse,
// ErrPatternMatch, ErrQueryExecution or ErrUnknown.
type NonNumericComputation[In, Out any] interface {
	Parse(ctx context.Context, input In) *Future[Out]
	Match(ctx context.Context, input, pattern In) *Future[Out]
	Query(ctx context.Context, input, query In) *Future[Out]
}
