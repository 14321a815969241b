//go:build !windows

package webgpu

import "github.com/pkg/errors"

// probe always fails: WebGPU is wired up for Windows only.
func probe() (adapter, error) {
	return adapter{}, errors.WithMessage(ErrUnavailable, "unsupported platform")
}
