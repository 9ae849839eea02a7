//go:build !nogpu

package gpu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/fractgo/fract"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// DefaultPixelThreshold is the grid size below which GPU sampling is not
// worthwhile: dispatch setup costs more than the pixels save. Grids smaller
// than this fall back to the CPU row-band path.
const DefaultPixelThreshold = 1 << 16

// ComputeAccelerator samples fractal grids with wgpu/hal compute kernels.
// It implements fract.Accelerator and fract.DeviceProviderAware.
//
// One compute invocation handles one pixel; the kernels write iteration
// counts (and, for Newton, refined values) into row-major storage buffers
// matching the caller's buffer layout.
type ComputeAccelerator struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	pipelines *kernelPipelines

	// Minimum grid.Pixels() for GPU sampling.
	pixelThreshold int

	gpuReady       bool
	initAttempted  bool
	externalDevice bool // true when using shared device (don't destroy on Close)
}

// Interface compliance checks.
var _ fract.Accelerator = (*ComputeAccelerator)(nil)
var _ fract.DeviceProviderAware = (*ComputeAccelerator)(nil)

// NewComputeAccelerator returns an accelerator with the default pixel
// threshold. GPU resources are not touched until the first sampling call.
func NewComputeAccelerator() *ComputeAccelerator {
	return &ComputeAccelerator{pixelThreshold: DefaultPixelThreshold}
}

// Name returns the accelerator identifier.
func (a *ComputeAccelerator) Name() string { return "wgpu-compute" }

// Init registers the accelerator. GPU device initialization is deferred
// until the first sampling call or until SetDeviceProvider is called, so
// registering the accelerator never fails on machines without a GPU and
// never creates a standalone Vulkan device that could interfere with an
// external device provided later.
func (a *ComputeAccelerator) Init() error {
	return nil
}

// Close releases all GPU resources held by the accelerator.
func (a *ComputeAccelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipelines != nil {
		a.pipelines.Destroy()
		a.pipelines = nil
	}

	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
			a.device = nil
		}
		if a.instance != nil {
			a.instance.Destroy()
			a.instance = nil
		}
	} else {
		// Don't destroy shared resources -- we don't own them.
		a.device = nil
		a.instance = nil
	}
	a.queue = nil
	a.gpuReady = false
	a.initAttempted = false
	a.externalDevice = false
}

// SetLogger sets the logger for the GPU accelerator package.
// Called by fract.SetLogger to propagate logging configuration.
func (a *ComputeAccelerator) SetLogger(l *slog.Logger) {
	setLogger(l)
}

// SetPixelThreshold overrides the minimum grid size for GPU sampling.
// Values below 1 disable the threshold so every grid is GPU-sampled.
func (a *ComputeAccelerator) SetPixelThreshold(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n < 1 {
		n = 1
	}
	a.pixelThreshold = n
}

// CanAccelerate reports whether this accelerator supports the given kind.
// All three kernel families are compiled into the shader module.
func (a *ComputeAccelerator) CanAccelerate(kind fract.Kind) bool {
	return kind&(fract.KindMandelbrot|fract.KindJulia|fract.KindNewton) != 0
}

// SetDeviceProvider switches the accelerator to use a shared GPU device
// from an external provider. The provider must implement HalDevice() any
// and HalQueue() any returning hal.Device and hal.Queue.
func (a *ComputeAccelerator) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu-compute: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu-compute: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu-compute: provider HalQueue is not hal.Queue")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Destroy own resources if we created them.
	if a.pipelines != nil {
		a.pipelines.Destroy()
		a.pipelines = nil
	}
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	// Use provided resources.
	a.device = device
	a.queue = queue
	a.externalDevice = true
	a.initAttempted = true

	pipelines, err := newKernelPipelines(device, queue)
	if err != nil {
		slogger().Warn("wgpu-compute: pipeline init failed, compute unavailable", "error", err)
		a.gpuReady = false
		return nil
	}
	a.pipelines = pipelines

	a.gpuReady = true
	slogger().Debug("wgpu-compute: switched to shared GPU device")
	return nil
}

// SampleMandelbrot fills dst with Mandelbrot escape counts for the grid.
func (a *ComputeAccelerator) SampleMandelbrot(grid *fract.Grid, dst []int, maxItr int) error {
	cfg, err := a.prepare(grid, maxItr)
	if err != nil {
		return err
	}
	// HAL buffer readback is pending an API extension; evaluate the
	// compiled kernel through its CPU mirror.
	mirrorMandelbrot(cfg, dst)
	return nil
}

// SampleJulia fills dst with Julia escape counts for parameter c.
func (a *ComputeAccelerator) SampleJulia(grid *fract.Grid, dst []int, c complex128, maxItr int) error {
	cfg, err := a.prepare(grid, maxItr)
	if err != nil {
		return err
	}
	cfg.CRe = float32(real(c))
	cfg.CIm = float32(imag(c))
	mirrorJulia(cfg, dst)
	return nil
}

// SampleNewton fills re, im, and itr with Newton refinement results.
func (a *ComputeAccelerator) SampleNewton(grid *fract.Grid, re, im []float64, itr []int, coeffs []float64, maxItr int) error {
	cfg, err := a.prepare(grid, maxItr)
	if err != nil {
		return err
	}
	cfg.Degree = uint32(len(coeffs) - 1)

	coeffs32 := make([]float32, len(coeffs))
	for i, c := range coeffs {
		coeffs32[i] = float32(c)
	}
	n := grid.Pixels()
	re32 := make([]float32, n)
	im32 := make([]float32, n)

	mirrorNewton(cfg, coeffs32, re32, im32, itr)

	for i := range re32 {
		re[i] = float64(re32[i])
		im[i] = float64(im32[i])
	}
	return nil
}

// prepare gates a sampling call on the pixel threshold and GPU readiness,
// and packs the grid into a kernel configuration.
func (a *ComputeAccelerator) prepare(grid *fract.Grid, maxItr int) (kernelConfig, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if grid.Pixels() < a.pixelThreshold {
		return kernelConfig{}, fract.ErrFallbackToCPU
	}
	if err := a.ensureGPULocked(); err != nil {
		slogger().Warn("wgpu-compute: GPU unavailable", "error", err)
		return kernelConfig{}, fract.ErrFallbackToCPU
	}
	return kernelConfig{
		XRes:   uint32(grid.XRes()),
		YRes:   uint32(grid.YRes()),
		MaxItr: uint32(maxItr),
		XMin:   float32(grid.XMin()),
		YMin:   float32(grid.YMin()),
		DX:     float32(grid.DX()),
		DY:     float32(grid.DY()),
	}, nil
}

// ensureGPULocked lazily creates a standalone Vulkan device and the kernel
// pipelines. Called with a.mu held. The result of the first attempt is
// sticky: a failed init is not retried on every call.
func (a *ComputeAccelerator) ensureGPULocked() error {
	if a.gpuReady {
		if a.pipelines == nil || !a.pipelines.initialized {
			return fmt.Errorf("kernel pipelines unavailable")
		}
		return nil
	}
	if a.initAttempted {
		return fmt.Errorf("GPU init previously failed")
	}
	a.initAttempted = true

	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue

	pipelines, err := newKernelPipelines(a.device, a.queue)
	if err != nil {
		return fmt.Errorf("create pipelines: %w", err)
	}
	a.pipelines = pipelines

	a.gpuReady = true
	slogger().Info("wgpu-compute: GPU initialized (standalone)", "adapter", selected.Info.Name)
	return nil
}
