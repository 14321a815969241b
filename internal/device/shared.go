package device

import (
	"sync"
	"sync/atomic"
)

// Shared is a reference-counted, read-only handle to a computation result.
//
// Consumers that keep the value past the producer's lifetime call Retain and
// pair it with Release. The value is dropped when the count reaches zero, so
// Value must not be called after the last Release.
type Shared[R any] struct {
	value     R
	refCount  atomic.Int32
	mu        sync.Mutex // guards value on release
	onRelease func(R)
}

// NewShared wraps value in a handle with refCount = 1.
func NewShared[R any](value R) *Shared[R] {
	s := &Shared[R]{value: value}
	s.refCount.Store(1)
	return s
}

// NewSharedWithRelease is like NewShared but calls release once the last
// reference is dropped. Use it for values backed by device memory.
func NewSharedWithRelease[R any](value R, release func(R)) *Shared[R] {
	s := NewShared(value)
	s.onRelease = release
	return s
}

// Value returns the shared value.
func (s *Shared[R]) Value() R {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Retain increments the reference count and returns s for chaining.
// Panics if the value was already dropped.
func (s *Shared[R]) Retain() *Shared[R] {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			panic("device: Retain on released Shared")
		}
		if s.refCount.CompareAndSwap(n, n+1) {
			return s
		}
	}
}

// Release decrements the reference count and drops the value if it reaches 0.
// It reports whether this call dropped the value.
// Panics if the value was already dropped.
func (s *Shared[R]) Release() bool {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			panic("device: Release on released Shared")
		}
		if s.refCount.CompareAndSwap(n, n-1) {
			if n > 1 {
				return false
			}
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onRelease != nil {
		s.onRelease(s.value)
	}
	var zero R
	s.value = zero
	return true
}

// RefCount returns the current number of references.
func (s *Shared[R]) RefCount() int {
	return int(s.refCount.Load())
}

// IsUnique returns true if this handle holds the only reference.
func (s *Shared[R]) IsUnique() bool {
	return s.refCount.Load() == 1
}
