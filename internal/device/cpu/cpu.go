// Package cpu implements the CPU device: work runs inline on the caller's goroutine.
package cpu

import (
	"context"
	"fmt"
	"runtime"

	"k8s.io/klog/v2"

	"github.com/born-ml/compute/internal/compute"
	"github.com/born-ml/compute/internal/device"
)

// Config describes the CPU a Device represents.
type Config struct {
	Cores        int     // Physical cores.
	Threads      int     // Hardware threads.
	FrequencyMHz float64 // Nominal clock; 0 when unknown.
}

// DefaultConfig returns a configuration based on the host CPU count.
// The clock frequency is not portable to detect and is left at 0.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Cores:        n,
		Threads:      n,
		FrequencyMHz: 0,
	}
}

// Validate checks that no field is negative.
func (c Config) Validate() error {
	if c.Cores < 0 || c.Threads < 0 || c.FrequencyMHz < 0 {
		return compute.InvalidOperation(fmt.Sprintf("cpu config has negative field: %+v", c))
	}
	return nil
}

// Verify that Device implements device.Device.
var _ device.Device = (*Device)(nil)

// Device runs work synchronously on the calling goroutine.
//
// Dispatch never suspends: the returned future is resolved before Dispatch
// returns. It adds no retry, queuing or parallelism.
type Device struct {
	cores     int
	threads   int
	frequency float64
}

// New creates a CPU device from cfg.
func New(cfg Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Device{
		cores:     cfg.Cores,
		threads:   cfg.Threads,
		frequency: cfg.FrequencyMHz,
	}, nil
}

// Cores returns the number of physical cores.
func (d *Device) Cores() int {
	return d.cores
}

// Threads returns the number of hardware threads.
func (d *Device) Threads() int {
	return d.threads
}

// Frequency returns the nominal clock in MHz.
func (d *Device) Frequency() float64 {
	return d.frequency
}

// Name returns the device name.
func (d *Device) Name() string {
	return "CPU"
}

// Kind returns device.CPU.
func (d *Device) Kind() device.Kind {
	return device.CPU
}

// Dispatch invokes work once and returns its result in a resolved future.
func (d *Device) Dispatch(_ context.Context, work device.Work) *compute.Future[any] {
	v, err := work()
	if klog.V(4).Enabled() {
		klog.V(4).InfoS("cpu dispatch finished", "cores", d.cores, "threads", d.threads, "failed", err != nil)
	}
	return compute.Ready(v, err)
}
