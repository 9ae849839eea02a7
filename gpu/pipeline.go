//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	types "github.com/gogpu/gputypes"
)

//go:embed shaders/kernels.wgsl
var kernelsWGSL string

// kernelConfig is the GPU-compatible sampling configuration.
// Must match the Config struct in kernels.wgsl.
type kernelConfig struct {
	XRes   uint32  // Grid width in pixels
	YRes   uint32  // Grid height in pixels
	MaxItr uint32  // Iteration budget
	Degree uint32  // Polynomial degree (Newton only)
	XMin   float32 // Left edge of the sampled region
	YMin   float32 // Bottom edge of the sampled region
	DX     float32 // Horizontal pixel step
	DY     float32 // Vertical pixel step
	CRe    float32 // Julia parameter, real part
	CIm    float32 // Julia parameter, imaginary part
	Pad0   uint32  // Padding for alignment
	Pad1   uint32  // Padding for alignment
}

// kernelPipelines holds the compiled compute pipelines for the three
// sampling kernels. All three entry points live in a single shader module
// and share one pipeline layout.
//
// Note: pipeline creation verifies that the device can compile and accept
// the kernels. Dispatch with buffer readback requires HAL API extensions
// to expose buffer handles; until then the accelerator evaluates the same
// kernels through the CPU mirror in mirror.go.
type kernelPipelines struct {
	device hal.Device
	queue  hal.Queue

	mandelbrotPipeline hal.ComputePipeline
	juliaPipeline      hal.ComputePipeline
	newtonPipeline     hal.ComputePipeline

	shaderModule hal.ShaderModule

	pipelineLayout   hal.PipelineLayout
	inputBindLayout  hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	initialized bool
}

// newKernelPipelines compiles the kernels and creates the compute pipelines
// on the given device. Returns an error if GPU compute is not supported.
func newKernelPipelines(device hal.Device, queue hal.Queue) (*kernelPipelines, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("gpu: device and queue are required")
	}

	p := &kernelPipelines{
		device: device,
		queue:  queue,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

func (p *kernelPipelines) init() error {
	// Compile WGSL to SPIR-V
	spirvBytes, err := naga.Compile(kernelsWGSL)
	if err != nil {
		return fmt.Errorf("gpu: failed to compile kernels: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	p.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range p.spirvCode {
		p.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shaderModule, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "fract_kernels",
		Source: hal.ShaderSource{
			SPIRV: p.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create shader module: %w", err)
	}
	p.shaderModule = shaderModule

	if err := p.createBindGroupLayouts(); err != nil {
		return err
	}
	if err := p.createPipelineLayout(); err != nil {
		return err
	}
	if err := p.createPipelines(); err != nil {
		return err
	}

	p.initialized = true
	return nil
}

// createBindGroupLayouts creates the bind group layouts for the pipelines.
func (p *kernelPipelines) createBindGroupLayouts() error {
	// Input bind group layout (group 0): config uniform + coefficients.
	inputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "fract_input_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: 48, // sizeof(kernelConfig)
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create input bind group layout: %w", err)
	}
	p.inputBindLayout = inputLayout

	// Output bind group layout (group 1): counts, re, im.
	outputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "fract_output_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
			{
				Binding:    2,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create output bind group layout: %w", err)
	}
	p.outputBindLayout = outputLayout

	return nil
}

func (p *kernelPipelines) createPipelineLayout() error {
	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "fract_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.inputBindLayout, p.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create pipeline layout: %w", err)
	}
	p.pipelineLayout = layout
	return nil
}

func (p *kernelPipelines) createPipelines() error {
	mandelbrot, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "fract_mandelbrot_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_mandelbrot",
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create mandelbrot pipeline: %w", err)
	}
	p.mandelbrotPipeline = mandelbrot

	julia, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "fract_julia_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_julia",
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create julia pipeline: %w", err)
	}
	p.juliaPipeline = julia

	newton, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "fract_newton_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_newton",
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create newton pipeline: %w", err)
	}
	p.newtonPipeline = newton

	return nil
}

// Destroy releases all GPU resources.
func (p *kernelPipelines) Destroy() {
	if p.device == nil {
		return
	}

	if p.mandelbrotPipeline != nil {
		p.device.DestroyComputePipeline(p.mandelbrotPipeline)
		p.mandelbrotPipeline = nil
	}
	if p.juliaPipeline != nil {
		p.device.DestroyComputePipeline(p.juliaPipeline)
		p.juliaPipeline = nil
	}
	if p.newtonPipeline != nil {
		p.device.DestroyComputePipeline(p.newtonPipeline)
		p.newtonPipeline = nil
	}

	if p.pipelineLayout != nil {
		p.device.DestroyPipelineLayout(p.pipelineLayout)
		p.pipelineLayout = nil
	}

	if p.inputBindLayout != nil {
		p.device.DestroyBindGroupLayout(p.inputBindLayout)
		p.inputBindLayout = nil
	}
	if p.outputBindLayout != nil {
		p.device.DestroyBindGroupLayout(p.outputBindLayout)
		p.outputBindLayout = nil
	}

	if p.shaderModule != nil {
		p.device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}

	p.initialized = false
}
