package tensor

import (
	"errors"
	"fmt"
)

// Tensor errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrArithmetic    = errors.New("arithmetic operation failed")
	ErrInvalidShape  = errors.New("invalid shape")
)

// ShapeMismatchError reports incompatible shapes.
//
// The evidence differs by call site: construction reports element counts
// as one-element shapes (Expected{4}, Found{3}), while Add and Mul report the
// full shapes of the left and right operands.
type ShapeMismatchError struct {
	Expected Shape
	Found    Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: expected %v, but got %v", []int(e.Expected), []int(e.Found))
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// ArithmeticError is reserved for element operator failures such as overflow.
// None of the built-in operations produce it.
type ArithmeticError struct {
	Details string
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return "arithmetic operation failed: " + e.Details
}

// Is reports whether target is ErrArithmetic.
func (e *ArithmeticError) Is(target error) bool {
	return target == ErrArithmetic
}
