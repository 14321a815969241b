package compute

import (
	"errors"
	"fmt"
)

// Graph capability errors.
var (
	ErrInvalidNode   = errors.New("invalid node reference")
	ErrEdgeExists    = errors.New("edge already exists")
	ErrCycleDetected = errors.New("cycle detected in the graph")
)

// Non-numeric capability errors.
var (
	ErrParse          = errors.New("failed to parse input")
	ErrPatternMatch   = errors.New("pattern matching error")
	ErrQueryExecution = errors.New("query execution error")
	ErrUnknown        = errors.New("unknown error occurred")
)

// Compute and device layer errors.
var (
	ErrMemoryAllocation = errors.New("failed to allocate memory for tensor")
	ErrInvalidOperation = errors.New("invalid operation on tensor")
	ErrDevice           = errors.New("device execution error")
	ErrGeneral          = errors.New("general computation error")
)

// InvalidNodeError reports a reference to a node that was never added.
type InvalidNodeError struct {
	Node any
}

// Error implements the error interface.
func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("invalid node reference: %v", e.Node)
}

// Is reports whether target is ErrInvalidNode.
func (e *InvalidNodeError) Is(target error) bool {
	return target == ErrInvalidNode
}

// EdgeExistsError reports a duplicate edge.
type EdgeExistsError struct {
	From any
	To   any
}

// Error implements the error interface.
func (e *EdgeExistsError) Error() string {
	return fmt.Sprintf("edge already exists between %v and %v", e.From, e.To)
}

// Is reports whether target is ErrEdgeExists.
func (e *EdgeExistsError) Is(target error) bool {
	return target == ErrEdgeExists
}

// NonNumericError carries the details of a parse, match or query failure.
// Kind is one of ErrParse, ErrPatternMatch, ErrQueryExecution or ErrUnknown.
type NonNumericError struct {
	Kind    error
	Details string
}

// Error implements the error interface.
func (e *NonNumericError) Error() string {
	if e.Details == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Details
}

// Unwrap returns Kind so errors.Is matches the sentinel.
func (e *NonNumericError) Unwrap() error {
	return e.Kind
}

// ComputeError is a backend-reported failure of the compute or device layer.
// Kind is one of ErrMemoryAllocation, ErrInvalidOperation, ErrDevice or
// ErrGeneral. Err is the underlying cause, if any.
//
// ComputeErrors are surfaced to the caller unchanged and never retried.
type ComputeError struct {
	Kind    error
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ComputeError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and errors.As.
func (e *ComputeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// MemoryAllocation reports a failed allocation caused by err.
func MemoryAllocation(err error) error {
	return &ComputeError{Kind: ErrMemoryAllocation, Err: err}
}

// InvalidOperation reports an operation that cannot be performed.
func InvalidOperation(message string) error {
	return &ComputeError{Kind: ErrInvalidOperation, Message: message}
}

// DeviceFailure reports a device execution failure caused by err.
func DeviceFailure(err error) error {
	return &ComputeError{Kind: ErrDevice, Err: err}
}

// General reports a computation failure that fits no other kind.
func General(message string) error {
	return &ComputeError{Kind: ErrGeneral, Message: message}
}
