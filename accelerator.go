package fract

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this sampling
// call. The sampler transparently falls back to the CPU row-band path.
var ErrFallbackToCPU = errors.New("fract: falling back to CPU sampling")

// Kind describes fractal families for accelerator capability checking.
type Kind uint32

const (
	// KindMandelbrot represents Mandelbrot escape-time sampling.
	KindMandelbrot Kind = 1 << iota

	// KindJulia represents Julia escape-time sampling.
	KindJulia

	// KindNewton represents Newton basin sampling.
	KindNewton
)

// Accelerator is an optional GPU sampling provider.
//
// When registered via RegisterAccelerator, the Sampler tries the accelerator
// first for supported fractal kinds. If the accelerator returns
// ErrFallbackToCPU or any other error, sampling transparently falls back to
// the CPU path.
//
// Output slices are the row-major backing stores of the caller's buffers,
// sized grid.Pixels(); the accelerator writes every element and retains
// nothing. Implementations are provided by GPU backend packages; users opt
// in via blank import:
//
//	import _ "github.com/fractgo/fract/gpu" // enables GPU sampling
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu-compute").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given kind.
	// This is a fast check used to skip the GPU entirely for unsupported
	// fractal families.
	CanAccelerate(kind Kind) bool

	// SampleMandelbrot fills dst with Mandelbrot escape counts.
	// Returns ErrFallbackToCPU if the grid cannot be GPU-sampled.
	SampleMandelbrot(grid *Grid, dst []int, maxItr int) error

	// SampleJulia fills dst with Julia escape counts for parameter c.
	// Returns ErrFallbackToCPU if the grid cannot be GPU-sampled.
	SampleJulia(grid *Grid, dst []int, c complex128, maxItr int) error

	// SampleNewton fills re, im, and itr with Newton refinement results.
	// Returns ErrFallbackToCPU if the grid cannot be GPU-sampled.
	SampleNewton(grid *Grid, re, im []float64, itr []int, coeffs []float64, maxItr int) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share a GPU device with an external provider instead of creating their own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers a GPU accelerator for optional GPU sampling.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration; if Init() fails, the accelerator is not registered and the
// error is returned.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    fract.RegisterAccelerator(gpu.NewComputeAccelerator())
//	}
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("fract: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	propagateLogger(a, Logger())
	return nil
}

// RegisteredAccelerator returns the currently registered accelerator, or nil
// if none.
func RegisteredAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling GPU device sharing. If no accelerator is registered
// or it doesn't support device sharing, this is a no-op.
func SetAcceleratorDeviceProvider(provider any) error {
	a := RegisteredAccelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}
