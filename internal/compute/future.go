package compute

import (
	"context"
	"fmt"
)

// Future is the result of a computation that may complete after the call
// that started it returns.
//
// Backends that never suspend hand out futures that are already resolved;
// Await on those returns immediately. A Future resolves exactly once and may
// be awaited by any number of goroutines.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Ready returns a future already resolved with value and err.
func Ready[T any](value T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: value, err: err}
	close(f.done)
	return f
}

// Go runs fn exactly once on a new goroutine and returns its future.
//
// A panic in fn resolves the future with an error wrapping ErrGeneral
// instead of crashing the process.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.value = zero
				f.err = General(fmt.Sprintf("panic in asynchronous work: %v", r))
			}
		}()
		f.value, f.err = fn()
	}()
	return f
}

// Done returns a channel that is closed once the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the result is available without blocking.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the future resolves or ctx ends.
//
// A resolved future always yields its result, even if ctx is already done.
// When ctx ends first, Await returns ctx.Err(); the underlying work keeps
// running and its result stays available to later calls.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then maps the value of f with fn once f resolves. Errors pass through
// untouched and fn is not called.
//
// A resolved f yields a resolved future without starting a goroutine.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	if f.Resolved() {
		if f.err != nil {
			var zero U
			return Ready(zero, f.err)
		}
		v, err := fn(f.value)
		return Ready(v, err)
	}

	return Go(func() (U, error) {
		<-f.done
		if f.err != nil {
			var zero U
			return zero, f.err
		}
		return fn(f.value)
	})
}
