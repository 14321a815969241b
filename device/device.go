// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device provides the execution-device abstraction.
//
// A Device accepts a unit of work and returns a future for its result.
// Execute is the typed entry point: it dispatches a computation producing a
// *Shared result and hands that result back unchanged.
//
// Example:
//
//	import (
//	    "github.com/born-ml/compute/device"
//	    "github.com/born-ml/compute/device/cpu"
//	)
//
//	func main() {
//	    d, _ := cpu.New(cpu.DefaultConfig())
//	    res, err := device.Execute(ctx, d, func() (*device.Shared[int], error) {
//	        return device.NewShared(42), nil
//	    }).Await(ctx)
//	}
//
// Available implementations:
//   - cpu: runs work inline on the calling goroutine
//   - webgpu: probes a WebGPU adapter (Windows only)
package device

import (
	"context"

	"github.com/born-ml/compute/internal/compute"
	"github.com/born-ml/compute/internal/device"
)

// Kind identifies the hardware family behind a Device.
type Kind = device.Kind

// Device kinds.
const (
	CPU    = device.CPU
	CUDA   = device.CUDA
	Vulkan = device.Vulkan
	Metal  = device.Metal
	WebGPU = device.WebGPU
)

// Work is a unit of computation handed to a Device.
type Work = device.Work

// Device is an execution target.
type Device = device.Device

// Shared is a reference-counted computation result.
type Shared[R any] = device.Shared[R]

// NewShared wraps value with a reference count of one.
func NewShared[R any](value R) *Shared[R] {
	return device.NewShared(value)
}

// NewSharedWithRelease wraps value and calls release once the last
// reference is dropped.
func NewSharedWithRelease[R any](value R, release func(R)) *Shared[R] {
	return device.NewSharedWithRelease(value, release)
}

// Execute runs computation on d and returns its result or error unchanged.
func Execute[R any](ctx context.Context, d Device, computation func() (*Shared[R], error)) *compute.Future[*Shared[R]] {
	return device.Execute(ctx, d, computation)
}
