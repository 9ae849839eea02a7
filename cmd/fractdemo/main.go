// Command fractdemo samples the three fractal families and reports basin
// and escape statistics. It produces no images; it exists to exercise the
// sampling pipeline and to show timings across worker counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/fractgo/fract"
	"github.com/fractgo/fract/solve"

	_ "github.com/fractgo/fract/gpu" // enable GPU sampling when available
)

func main() {
	var (
		width   = flag.Int("width", 1000, "grid width in pixels")
		height  = flag.Int("height", 1000, "grid height in pixels")
		workers = flag.Int("workers", runtime.GOMAXPROCS(0), "worker goroutines")
		maxItr  = flag.Int("iterations", fract.DefaultMaxIterations, "per-pixel iteration budget")
		kind    = flag.String("kind", "all", "fractal to sample: mandelbrot, julia, newton, or all")
		verbose = flag.Bool("v", false, "enable structured logging")
	)
	flag.Parse()

	if *verbose {
		fract.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	switch *kind {
	case "mandelbrot":
		runMandelbrot(*width, *height, *workers, *maxItr)
	case "julia":
		runJulia(*width, *height, *workers, *maxItr)
	case "newton":
		runNewton(*width, *height, *workers, *maxItr)
	case "all":
		runMandelbrot(*width, *height, *workers, *maxItr)
		runJulia(*width, *height, *workers, *maxItr)
		runNewton(*width, *height, *workers, *maxItr)
	default:
		log.Fatalf("unknown kind %q", *kind)
	}
}

func runMandelbrot(width, height, workers, maxItr int) {
	grid, err := fract.NewGrid(width, height, -2.5, 1.0, -1.75, 1.75)
	if err != nil {
		log.Fatalf("mandelbrot grid: %v", err)
	}
	s, err := fract.NewSampler(grid,
		fract.WithWorkers(workers),
		fract.WithMaxIterations(maxItr),
		fract.WithProgress(true))
	if err != nil {
		log.Fatalf("mandelbrot sampler: %v", err)
	}

	counts := fract.NewIntBuffer(height, width)
	start := time.Now()
	if err := s.SampleMandelbrot(counts); err != nil {
		log.Fatalf("mandelbrot sampling: %v", err)
	}
	elapsed := time.Since(start)

	inside := 0
	for _, c := range counts.Data() {
		if c == maxItr {
			inside++
		}
	}
	fmt.Printf("mandelbrot %dx%d: %v with %d workers, %d of %d pixels in the set\n",
		width, height, elapsed, workers, inside, grid.Pixels())
}

func runJulia(width, height, workers, maxItr int) {
	// A dendrite-heavy parameter with visible escape-count structure.
	c := complex(-0.8, 0.156)

	grid, err := fract.NewGrid(width, height, -1.6, 1.6, -1.2, 1.2)
	if err != nil {
		log.Fatalf("julia grid: %v", err)
	}
	s, err := fract.NewSampler(grid,
		fract.WithWorkers(workers),
		fract.WithMaxIterations(maxItr),
		fract.WithProgress(true))
	if err != nil {
		log.Fatalf("julia sampler: %v", err)
	}

	counts := fract.NewIntBuffer(height, width)
	start := time.Now()
	if err := s.SampleJulia(counts, c); err != nil {
		log.Fatalf("julia sampling: %v", err)
	}
	elapsed := time.Since(start)

	inside := 0
	for _, k := range counts.Data() {
		if k == maxItr {
			inside++
		}
	}
	fmt.Printf("julia %dx%d (c = %v): %v with %d workers, %d of %d pixels bounded\n",
		width, height, c, elapsed, workers, inside, grid.Pixels())
}

func runNewton(width, height, workers, maxItr int) {
	// z^3 - 1 in ascending power order: three basins around the cube
	// roots of unity.
	coeffs := []float64{-1, 0, 0, 1}

	roots, err := solve.Roots(coeffs)
	if err != nil {
		log.Fatalf("newton roots: %v", err)
	}

	grid, err := fract.NewGrid(width, height, -2.0, 2.0, -2.0, 2.0)
	if err != nil {
		log.Fatalf("newton grid: %v", err)
	}
	s, err := fract.NewSampler(grid,
		fract.WithWorkers(workers),
		fract.WithMaxIterations(maxItr),
		fract.WithProgress(true))
	if err != nil {
		log.Fatalf("newton sampler: %v", err)
	}

	re := fract.NewFloatBuffer(height, width)
	im := fract.NewFloatBuffer(height, width)
	itr := fract.NewIntBuffer(height, width)

	start := time.Now()
	if err := s.SampleNewton(re, im, itr, coeffs); err != nil {
		log.Fatalf("newton sampling: %v", err)
	}
	elapsed := time.Since(start)

	basins := fract.NewIntBuffer(height, width)
	if err := fract.AssignRoots(basins, re, im, roots); err != nil {
		log.Fatalf("newton basins: %v", err)
	}

	perRoot := make([]int, len(roots))
	unconverged := 0
	for _, idx := range basins.Data() {
		if idx == fract.NoRoot {
			unconverged++
			continue
		}
		perRoot[idx]++
	}

	fmt.Printf("newton %dx%d (z^3 - 1): %v with %d workers\n", width, height, elapsed, workers)
	for i, r := range roots {
		fmt.Printf("  root %d at %.4f%+.4fi: %d pixels\n", i, real(r), imag(r), perRoot[i])
	}
	fmt.Printf("  unconverged: %d pixels\n", unconverged)
}
