// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU execution device.
//
// Work dispatched to a CPU device runs inline on the calling goroutine
// exactly once, and its result is returned unchanged.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/compute/device"
//	    "github.com/born-ml/compute/device/cpu"
//	    "github.com/born-ml/compute/tensor"
//	)
//
//	func main() {
//	    d, err := cpu.New(cpu.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    a := tensor.MustNew(tensor.Shape{2}, []float32{1, 2})
//	    res, err := device.Execute(ctx, d, func() (*device.Shared[*tensor.Tensor[float32]], error) {
//	        sum, err := tensor.Add(a, a)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return device.NewShared(sum), nil
//	    }).Await(ctx)
//	}
package cpu

import (
	"github.com/born-ml/compute/device"
	internalcpu "github.com/born-ml/compute/internal/device/cpu"
)

// Device represents the CPU device implementation.
type Device = internalcpu.Device

// Config describes the CPU a Device represents.
type Config = internalcpu.Config

// Compile-time check that Device implements device.Device.
var _ device.Device = (*Device)(nil)

// DefaultConfig returns a configuration based on the host CPU count.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// New creates a new CPU device.
//
// Example:
//
//	d, err := cpu.New(cpu.Config{Cores: 8, Threads: 16, FrequencyMHz: 3200})
func New(cfg Config) (*Device, error) {
	return internalcpu.New(cfg)
}
