package fract

import "runtime"

// DefaultMaxIterations is the per-pixel iteration budget used when a sampler
// is created without WithMaxIterations.
const DefaultMaxIterations = 1000

// Option configures a Sampler during creation.
//
// Example:
//
//	// Single-threaded, default budget
//	s, _ := fract.NewSampler(grid)
//
//	// One worker per core, verbose progress
//	s, _ := fract.NewSampler(grid, fract.WithWorkers(0), fract.WithProgress(true))
type Option func(*samplerOptions)

// samplerOptions holds optional configuration for Sampler creation.
type samplerOptions struct {
	workers  int
	maxItr   int
	progress bool
	accel    Accelerator
	accelSet bool
}

// defaultSamplerOptions returns the default sampler options.
func defaultSamplerOptions() samplerOptions {
	return samplerOptions{
		workers: 1,
		maxItr:  DefaultMaxIterations,
	}
}

// WithWorkers sets how many row-band workers a sampling call spawns.
// If n is 0 or negative, GOMAXPROCS is used. The worker count never changes
// the numeric results, only the wall-clock time.
func WithWorkers(n int) Option {
	return func(o *samplerOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithMaxIterations sets the per-pixel iteration budget.
// Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *samplerOptions) {
		if n >= 1 {
			o.maxItr = n
		}
	}
}

// WithProgress enables progress and timing output through the package
// logger. Row progress is reported every 100 rows, and only on
// single-worker runs: interleaved output from concurrent workers is not
// meaningful, so multi-worker runs log only the final timing.
func WithProgress(enabled bool) Option {
	return func(o *samplerOptions) {
		o.progress = enabled
	}
}

// WithAccelerator overrides the globally registered accelerator for this
// sampler. Pass nil to force the CPU path even when an accelerator is
// registered.
func WithAccelerator(a Accelerator) Option {
	return func(o *samplerOptions) {
		o.accel = a
		o.accelSet = true
	}
}
