package device

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedRefCount(t *testing.T) {
	s := NewShared([]int{1, 2, 3})
	assert.Equal(t, 1, s.RefCount())
	assert.True(t, s.IsUnique())

	r := s.Retain()
	assert.Same(t, s, r)
	assert.Equal(t, 2, s.RefCount())
	assert.False(t, s.IsUnique())

	assert.False(t, s.Release())
	assert.Equal(t, []int{1, 2, 3}, s.Value())

	assert.True(t, s.Release())
	assert.Nil(t, s.Value())
	assert.Equal(t, 0, s.RefCount())
}

func TestSharedOnRelease(t *testing.T) {
	var freed []string
	s := NewSharedWithRelease("buffer", func(v string) { freed = append(freed, v) })
	s.Retain()

	s.Release()
	assert.Empty(t, freed)

	s.Release()
	assert.Equal(t, []string{"buffer"}, freed)
}

func TestSharedConcurrentConsumers(t *testing.T) {
	s := NewShared(map[string]int{"answer": 42})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		s.Retain()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.Release()
			assert.Equal(t, 42, s.Value()["answer"])
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.RefCount())
	assert.True(t, s.Release())
}

func TestSharedUseAfterFinalRelease(t *testing.T) {
	released := 0
	s := NewSharedWithRelease("buffer", func(string) { released++ })
	assert.True(t, s.Release())

	assert.Panics(t, func() { s.Release() })
	assert.Panics(t, func() { s.Retain() })
	assert.Equal(t, 0, s.RefCount())
	assert.Equal(t, 1, released)
}
