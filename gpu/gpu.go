//go:build !nogpu

// Package gpu registers the wgpu compute accelerator for GPU-accelerated
// fractal sampling.
//
// Import this package to enable GPU sampling of Mandelbrot, Julia, and
// Newton grids. One compute invocation evaluates one pixel, replacing the
// CPU row-band path for grids large enough to amortize dispatch overhead.
//
// If GPU initialization fails (no Vulkan available), sampling transparently
// falls back to the CPU path. Grids below DefaultPixelThreshold pixels are
// also CPU-sampled since dispatch setup dominates at small sizes.
//
// Usage:
//
//	import _ "github.com/fractgo/fract/gpu" // enable GPU sampling
package gpu

import (
	"github.com/fractgo/fract"
)

func init() {
	if err := fract.RegisterAccelerator(NewComputeAccelerator()); err != nil {
		fract.Logger().Warn("GPU accelerator not available", "err", err)
	}
}

// SetDeviceProvider configures the accelerator to use a shared GPU device
// from an external provider instead of creating a standalone Vulkan device.
// The provider must expose HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
//
// Call this before sampling, typically right after the blank import has
// registered the accelerator.
func SetDeviceProvider(provider any) error {
	return fract.SetAcceleratorDeviceProvider(provider)
}
