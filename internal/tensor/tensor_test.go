package tensor

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Int, "int"},
		{Int32, "int32"},
		{Uint8, "uint8"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Complex128, "complex128"},
		{Unknown, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.dtype.String())
	}
}

type celsius float64

func TestInferDataType(t *testing.T) {
	assert.Equal(t, Float32, inferDataType(float32(0)))
	assert.Equal(t, Float64, inferDataType(float64(0)))
	assert.Equal(t, Int64, inferDataType(int64(0)))
	assert.Equal(t, Uint16, inferDataType(uint16(0)))
	assert.Equal(t, Complex64, inferDataType(complex64(0)))
	assert.Equal(t, Unknown, inferDataType(celsius(0)))
}

func TestNew(t *testing.T) {
	x, err := New(Shape{2, 2}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2}, x.Shape())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 4, x.NumElements())
	assert.Equal(t, Int, x.DType())

	v, ok := x.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = x.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestNewCountMismatch(t *testing.T) {
	x, err := New(Shape{2, 2}, []float64{1, 2, 3})
	require.Error(t, err)
	assert.Nil(t, x)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, Shape{4}, mismatch.Expected)
	assert.Equal(t, Shape{3}, mismatch.Found)
	assert.Equal(t, "shape mismatch: expected [4], but got [3]", err.Error())
}

func TestNewSucceedsIffCountMatches(t *testing.T) {
	shapes := []Shape{{}, {0}, {3}, {2, 3}, {2, 0, 5}, {1, 2, 3, 2}}

	for _, shape := range shapes {
		want := shape.NumElements()
		for _, n := range []int{0, 1, want - 1, want, want + 1} {
			if n < 0 {
				continue
			}
			_, err := New(shape, make([]int32, n))
			if n == want {
				assert.NoError(t, err, "shape %v with %d values", shape, n)
				continue
			}

			var mismatch *ShapeMismatchError
			require.True(t, errors.As(err, &mismatch), "shape %v with %d values", shape, n)
			assert.Equal(t, Shape{n}, mismatch.Found)
		}
	}
}

func TestNewNegativeDimension(t *testing.T) {
	_, err := New(Shape{2, -1}, []int{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
	assert.False(t, errors.Is(err, ErrShapeMismatch))
}

func TestNewOverflowingShape(t *testing.T) {
	huge := Shape{math.MaxInt/2 + 1, 2}

	x, err := New(huge, []int{})
	assert.Nil(t, x)
	assert.True(t, errors.Is(err, ErrInvalidShape), "%v", err)
	assert.False(t, errors.Is(err, ErrShapeMismatch))

	z, err := Zeros[int](huge)
	assert.Nil(t, z)
	assert.True(t, errors.Is(err, ErrInvalidShape), "%v", err)

	f, err := Full(huge, 1.0)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrInvalidShape), "%v", err)
}

func TestNewCopiesValues(t *testing.T) {
	values := []int{1, 2, 3}
	x := MustNew(Shape{3}, values)
	values[0] = 100

	v, _ := x.Get(0)
	assert.Equal(t, 1, v)

	shape := Shape{3}
	y := MustNew(shape, []int{1, 2, 3})
	shape[0] = 9
	assert.Equal(t, Shape{3}, y.Shape())
}

func TestDataReturnsCopy(t *testing.T) {
	x := MustNew(Shape{2}, []float32{1, 2})
	data := x.Data()
	data[0] = 42

	assert.Equal(t, []float32{1, 2}, x.Data())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Shape{2, 2}, []int{1})
	})
}

func TestScalarTensor(t *testing.T) {
	x := MustNew(Shape{}, []float64{3.5})
	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, 1, x.NumElements())

	v, ok := x.Get()
	require.True(t, ok)
	assert.Equal(t, 3.5, v)
}

func TestEmptyTensor(t *testing.T) {
	x, err := New(Shape{2, 0}, []int{})
	require.NoError(t, err)
	assert.Equal(t, 0, x.NumElements())

	_, ok := x.Get(0, 0)
	assert.False(t, ok)
}

func TestGetOutOfBounds(t *testing.T) {
	x := MustNew(Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})

	for _, coords := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 5}} {
		v, ok := x.Get(coords...)
		assert.False(t, ok, "coords %v", coords)
		assert.Zero(t, v, "coords %v", coords)
	}
}

func TestGetWrongRankPanics(t *testing.T) {
	x := MustNew(Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
	assert.Panics(t, func() { x.Get(1) })
	assert.Panics(t, func() { x.Get(1, 1, 1) })
}

func TestGetRowMajor(t *testing.T) {
	x := MustNew(Shape{2, 3, 2}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})

	v, ok := x.Get(1, 2, 1)
	require.True(t, ok)
	assert.Equal(t, 11, v)

	v, ok = x.Get(1, 0, 1)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestZerosAndFull(t *testing.T) {
	z, err := Zeros[float32](Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 6), z.Data())

	f, err := Full(Shape{3}, int64(7))
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7, 7}, f.Data())

	_, err = Full(Shape{-3}, 1.0)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestTensorString(t *testing.T) {
	x := MustNew(Shape{2, 3}, make([]float32, 6))
	assert.Equal(t, "Tensor[float32][2 3]", x.String())
}

func TestShapeAccessorReturnsCopy(t *testing.T) {
	x := MustNew(Shape{2, 2}, []int{1, 2, 3, 4})
	s := x.Shape()
	s[0] = 10

	assert.Equal(t, Shape{2, 2}, x.Shape())
	v, ok := x.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestConcurrentReaders(t *testing.T) {
	x := MustNew(Shape{4, 4}, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					v, ok := x.Get(i, j)
					if !ok || v != float64(i*4+j) {
						errs <- "unexpected value"
						return
					}
				}
			}
			if _, err := Add(x, x); err != nil {
				errs <- err.Error()
			}
			_ = Transpose(x)
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
