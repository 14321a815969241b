package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
		{Shape{3, 0, 2}, 0},  // Empty
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.shape.NumElements(), "Shape%v.NumElements()", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	for _, s := range []Shape{{}, {0}, {1}, {3, 4}, {2, 0, 4}, {math.MaxInt}, {math.MaxInt, math.MaxInt, 0}} {
		assert.NoError(t, s.Validate(), "Shape%v", s)
	}

	for _, s := range []Shape{{-1}, {3, -4}, {math.MaxInt/2 + 1, 2}, {math.MaxInt, math.MaxInt}} {
		err := s.Validate()
		require.Error(t, err, "Shape%v", s)
		assert.True(t, errors.Is(err, ErrInvalidShape), "Shape%v: %v", s, err)
	}
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.True(t, Shape{}.Equal(Shape{}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{6}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	assert.Equal(t, Shape{2, 3}, s)
}

func TestShapeReverse(t *testing.T) {
	assert.Equal(t, Shape{4, 3, 2}, Shape{2, 3, 4}.Reverse())
	assert.Equal(t, Shape{5}, Shape{5}.Reverse())
	assert.Equal(t, Shape{}, Shape{}.Reverse())
	assert.Equal(t, Shape{2, 3}, Shape{2, 3}.Reverse().Reverse())
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.strides, tt.shape.ComputeStrides(), "Shape%v", tt.shape)
	}
}
