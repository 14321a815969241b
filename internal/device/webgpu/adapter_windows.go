//go:build windows

package webgpu

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
)

// probe requests a high-performance adapter.
func probe() (a adapter, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			a = adapter{}
			err = errors.Wrapf(ErrUnavailable, "native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	wa, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return adapter{}, errors.Wrapf(ErrUnavailable, "request adapter: %v", adapterErr)
	}

	info := wa.GetInfo()

	return adapter{
		name: fmt.Sprintf("%v", info.Device),
		release: func() {
			wa.Release()
			instance.Release()
		},
	}, nil
}
