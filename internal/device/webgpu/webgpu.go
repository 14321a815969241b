// Package webgpu implements the accelerator device seam on top of WebGPU.
//
// The device holds a WebGPU adapter and runs each unit of work on its own
// goroutine, so its futures resolve after Dispatch returns. Kernels are not
// yet compiled for the adapter; work executes on the host.
package webgpu

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"k8s.io/klog/v2"

	"github.com/born-ml/compute/internal/compute"
	"github.com/born-ml/compute/internal/device"
)

// ErrUnavailable is returned by New when no WebGPU adapter can be acquired.
var ErrUnavailable = errors.New("webgpu: no adapter available")

// Verify that Device implements device.Device.
var _ device.Device = (*Device)(nil)

// Device is a WebGPU-backed execution context.
type Device struct {
	name    string
	release func()

	mu       sync.Mutex
	released bool
}

// New acquires a WebGPU adapter.
// Call Release when done to free GPU resources.
func New() (*Device, error) {
	a, err := probe()
	if err != nil {
		return nil, compute.DeviceFailure(err)
	}
	klog.V(2).InfoS("webgpu adapter acquired", "adapter", a.name)
	return &Device{name: a.name, release: a.release}, nil
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Useful for falling back to the CPU device:
//
//	var dev device.Device
//	if webgpu.IsAvailable() {
//	    dev, _ = webgpu.New()
//	} else {
//	    dev, _ = cpu.New(cpu.DefaultConfig())
//	}
func IsAvailable() bool {
	a, err := probe()
	if err != nil {
		return false
	}
	a.release()
	return true
}

// Name returns the device name including the adapter.
func (d *Device) Name() string {
	if d.name == "" {
		return "WebGPU"
	}
	return fmt.Sprintf("WebGPU (%s)", d.name)
}

// Kind returns device.WebGPU.
func (d *Device) Kind() device.Kind {
	return device.WebGPU
}

// Dispatch runs work once on a new goroutine.
//
// A panic in work resolves the future with an error wrapping compute.ErrDevice.
// Dispatch on a released device fails with compute.ErrInvalidOperation
// without running work.
func (d *Device) Dispatch(_ context.Context, work device.Work) *compute.Future[any] {
	d.mu.Lock()
	released := d.released
	d.mu.Unlock()
	if released {
		return compute.Ready[any](nil, compute.InvalidOperation("dispatch on released webgpu device"))
	}

	return compute.Go(func() (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				v = nil
				err = compute.DeviceFailure(fmt.Errorf("panic in work: %v", r))
			}
		}()
		return work()
	})
}

// Release frees the adapter. It is safe to call more than once.
func (d *Device) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return
	}
	d.released = true
	if d.release != nil {
		d.release()
	}
}

// adapter is an acquired WebGPU adapter and the function releasing it.
type adapter struct {
	name    string
	release func()
}
