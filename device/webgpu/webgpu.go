// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU execution device.
//
// New acquires a WebGPU adapter. Adapters are currently probed on Windows
// only; on other platforms New fails with ErrUnavailable.
//
// Example:
//
//	import "github.com/born-ml/compute/device/webgpu"
//
//	func main() {
//	    if !webgpu.IsAvailable() {
//	        return
//	    }
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//	}
package webgpu

import (
	"github.com/born-ml/compute/device"
	internalwebgpu "github.com/born-ml/compute/internal/device/webgpu"
)

// Device represents the WebGPU device implementation.
type Device = internalwebgpu.Device

// Compile-time check that Device implements device.Device.
var _ device.Device = (*Device)(nil)

// ErrUnavailable is returned by New when no adapter can be acquired.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// New creates a new WebGPU device.
// Call Release() when done to free GPU resources.
func New() (*Device, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
