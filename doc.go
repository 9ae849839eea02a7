// Package fract computes escape-time and root-convergence fractals over a
// rectangular sampling of the complex plane.
//
// # Overview
//
// fract samples three fractal families: the Mandelbrot set, Julia sets, and
// Newton basins of attraction for an arbitrary real-coefficient polynomial.
// A sampling run divides the grid into contiguous row bands, processes each
// band on its own goroutine, and writes results directly into caller-owned
// row-major buffers. Workers touch disjoint row ranges, so the parallel
// phase needs no locks.
//
// # Quick Start
//
//	import "github.com/fractgo/fract"
//
//	grid, _ := fract.NewGrid(1920, 1080, -2.5, 1.0, -1.0, 1.0)
//	s, _ := fract.NewSampler(grid, fract.WithWorkers(8))
//
//	dst := fract.NewIntBuffer(grid.YRes(), grid.XRes())
//	if err := s.SampleMandelbrot(dst); err != nil {
//	    log.Fatal(err)
//	}
//
// For Newton basins, pair the sampler with the solve package, which supplies
// the polynomial's roots, and AssignRoots, which colors each pixel by the
// root its orbit converged to:
//
//	coeffs := []float64{-1, 0, 0, 1} // z^3 - 1
//	roots, _ := solve.Roots(coeffs)
//
//	re := fract.NewFloatBuffer(grid.YRes(), grid.XRes())
//	im := fract.NewFloatBuffer(grid.YRes(), grid.XRes())
//	itr := fract.NewIntBuffer(grid.YRes(), grid.XRes())
//	_ = s.SampleNewton(re, im, itr, coeffs)
//
//	basins := fract.NewIntBuffer(grid.YRes(), grid.XRes())
//	_ = fract.AssignRoots(basins, re, im, roots)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Grid, IntBuffer/FloatBuffer, Sampler, AssignRoots
//   - Kernels: EscapeIteration, JuliaIteration, NewtonRoot
//   - solve: polynomial root finding via a companion-matrix eigenproblem
//   - gpu: optional compute-shader acceleration via wgpu/hal
//
// # Buffers and Ownership
//
// All output buffers are allocated by the caller and sized YRes x XRes.
// The sampler borrows them for the duration of a call and never retains
// them afterward. Buffer indexing is bounds-checked.
//
// # Non-convergence
//
// Newton iteration that hits a zero derivative or exhausts its iteration
// budget is not an error. The pixel records the NotConverged sentinel and an
// infinite point value, and AssignRoots maps it to NoRoot. Per-pixel
// non-convergence never aborts a sampling run.
//
// # GPU Acceleration
//
// Sampling runs on the CPU by default. Import the gpu package to register
// the compute-shader accelerator:
//
//	import _ "github.com/fractgo/fract/gpu" // enables GPU sampling
//
// If no GPU is available the sampler transparently falls back to the CPU
// path.
package fract

// Version is the current version of the library.
const Version = "0.2.0"
