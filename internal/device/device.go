// Package device abstracts where a computation runs.
package device

import (
	"context"
	"fmt"

	"github.com/born-ml/compute/internal/compute"
)

// Kind identifies the hardware family behind a Device.
type Kind int

// Supported device kinds.
const (
	CPU Kind = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (k Kind) String() string {
	switch k {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Work is a zero-argument unit of work handed to a Device.
type Work func() (any, error)

// Device is an execution context for units of work.
//
// Every implementation must invoke the work exactly once and resolve the
// returned future with the work's result or error, unchanged. It must not
// retry, queue behind other work in a way that reorders completion, or
// transform the result. Implementations may run the work on another
// goroutine, in which case the future resolves later.
//
// Implementations:
//   - cpu: runs the work inline on the calling goroutine
//   - webgpu: runs the work on its own goroutine (accelerator seam)
type Device interface {
	Name() string
	Kind() Kind
	Dispatch(ctx context.Context, work Work) *compute.Future[any]
}

// Execute runs a computation producing a shared result on d.
//
// The computation is invoked exactly once. Its result, or its error, is
// passed through unchanged.
//
// Example:
//
//	dev, _ := cpu.New(cpu.DefaultConfig())
//	res, err := device.Execute(ctx, dev, func() (*device.Shared[int], error) {
//	    return device.NewShared(42), nil
//	}).Await(ctx)
func Execute[R any](ctx context.Context, d Device, computation func() (*Shared[R], error)) *compute.Future[*Shared[R]] {
	f := d.Dispatch(ctx, func() (any, error) {
		res, err := computation()
		if err != nil {
			return nil, err
		}
		return res, nil
	})

	return compute.Then(f, func(v any) (*Shared[R], error) {
		if v == nil {
			return nil, nil
		}
		res, ok := v.(*Shared[R])
		if !ok {
			return nil, compute.InvalidOperation(fmt.Sprintf("device %s returned %T, want %T", d.Name(), v, res))
		}
		return res, nil
	})
}
