package fract

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Sampler runs fractal sampling over one grid. It derives the plane step
// sizes, partitions the grid rows into bands, and spawns one goroutine per
// non-empty band for each sampling call. Workers write directly into the
// caller's buffers on strictly disjoint row ranges, so the parallel phase
// needs no locks; the goroutines are created fresh per call and joined
// before the call returns.
//
// A Sampler is immutable after creation and safe for concurrent use as long
// as concurrent calls target different output buffers.
type Sampler struct {
	grid *Grid
	opts samplerOptions
}

// NewSampler creates a sampler for the given grid.
func NewSampler(grid *Grid, opts ...Option) (*Sampler, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	o := defaultSamplerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sampler{grid: grid, opts: o}, nil
}

// Grid returns the grid the sampler was created with.
func (s *Sampler) Grid() *Grid { return s.grid }

// Workers returns the configured worker count.
func (s *Sampler) Workers() int { return s.opts.workers }

// MaxIterations returns the configured per-pixel iteration budget.
func (s *Sampler) MaxIterations() int { return s.opts.maxItr }

// SampleMandelbrot fills dst with the Mandelbrot escape count of every grid
// pixel. dst must be sized YRes x XRes; its previous contents are
// overwritten.
func (s *Sampler) SampleMandelbrot(dst *IntBuffer) error {
	if err := s.checkInt(dst); err != nil {
		return err
	}
	if a := s.accelerator(); a != nil && a.CanAccelerate(KindMandelbrot) {
		err := a.SampleMandelbrot(s.grid, dst.Data(), s.opts.maxItr)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			return err
		}
		Logger().Warn("fract: accelerator declined mandelbrot sampling, using CPU",
			"accelerator", a.Name())
	}

	g := s.grid
	maxItr := s.opts.maxItr
	s.run("mandelbrot", func(r int) {
		row := dst.Row(r)
		y := g.ymin + g.dy*float64(r)
		for c := 0; c < g.xres; c++ {
			row[c] = EscapeIteration(complex(g.xmin+g.dx*float64(c), y), maxItr)
		}
	})
	return nil
}

// SampleJulia fills dst with the Julia escape count of every grid pixel for
// the set selected by parameter c.
func (s *Sampler) SampleJulia(dst *IntBuffer, c complex128) error {
	if err := s.checkInt(dst); err != nil {
		return err
	}
	if a := s.accelerator(); a != nil && a.CanAccelerate(KindJulia) {
		err := a.SampleJulia(s.grid, dst.Data(), c, s.opts.maxItr)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			return err
		}
		Logger().Warn("fract: accelerator declined julia sampling, using CPU",
			"accelerator", a.Name())
	}

	g := s.grid
	maxItr := s.opts.maxItr
	s.run("julia", func(r int) {
		row := dst.Row(r)
		y := g.ymin + g.dy*float64(r)
		for col := 0; col < g.xres; col++ {
			row[col] = JuliaIteration(complex(g.xmin+g.dx*float64(col), y), c, maxItr)
		}
	})
	return nil
}

// SampleNewton runs Newton's method from every grid pixel for the polynomial
// with the given ascending-power coefficients. The converged real and
// imaginary parts land in re and im, and the iteration count at convergence
// in itr. Pixels that never converge carry the NotConverged count and an
// infinite point value; they do not abort the run.
func (s *Sampler) SampleNewton(re, im *FloatBuffer, itr *IntBuffer, coeffs []float64) error {
	if err := s.checkFloat(re); err != nil {
		return err
	}
	if err := s.checkFloat(im); err != nil {
		return err
	}
	if err := s.checkInt(itr); err != nil {
		return err
	}
	if len(coeffs) < 2 {
		return ErrBadPolynomial
	}
	if a := s.accelerator(); a != nil && a.CanAccelerate(KindNewton) {
		err := a.SampleNewton(s.grid, re.Data(), im.Data(), itr.Data(), coeffs, s.opts.maxItr)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			return err
		}
		Logger().Warn("fract: accelerator declined newton sampling, using CPU",
			"accelerator", a.Name())
	}

	g := s.grid
	maxItr := s.opts.maxItr
	s.run("newton", func(r int) {
		reRow, imRow, itRow := re.Row(r), im.Row(r), itr.Row(r)
		y := g.ymin + g.dy*float64(r)
		for col := 0; col < g.xres; col++ {
			x0 := complex(g.xmin+g.dx*float64(col), y)
			root, k := NewtonRoot(coeffs, x0, maxItr)
			reRow[col] = real(root)
			imRow[col] = imag(root)
			itRow[col] = k
		}
	})
	return nil
}

// run partitions the grid rows, spawns one goroutine per non-empty band,
// and joins them. fillRow must write exactly the pixels of its row.
func (s *Sampler) run(kind string, fillRow func(row int)) {
	g := s.grid
	bounds := RowBands(s.opts.workers, g.yres)

	active := 0
	for i := 0; i < len(bounds)-1; i++ {
		if bounds[i] < bounds[i+1] {
			active++
		}
	}
	// Row-level progress only makes sense when a single worker owns the
	// whole grid; concurrent workers would interleave their reports.
	rowProgress := s.opts.progress && active <= 1
	total := g.Pixels()

	if s.opts.progress {
		Logger().Info("fract: sampling", "kind", kind, "points", total, "workers", active)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < len(bounds)-1; i++ {
		lo, hi := bounds[i], bounds[i+1]
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for r := lo; r < hi; r++ {
				fillRow(r)
				if rowProgress && r != 0 && r%100 == 0 {
					Logger().Info("fract: progress", "points", r*g.xres, "total", total)
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	if s.opts.progress {
		Logger().Info("fract: sampling complete",
			"kind", kind, "points", total, "elapsed", time.Since(start))
	}
}

// accelerator resolves the accelerator for this sampler: an explicit
// WithAccelerator choice wins (including an explicit nil), otherwise the
// globally registered one is used.
func (s *Sampler) accelerator() Accelerator {
	if s.opts.accelSet {
		return s.opts.accel
	}
	return RegisteredAccelerator()
}

func (s *Sampler) checkInt(b *IntBuffer) error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.rows != s.grid.yres || b.cols != s.grid.xres {
		return fmt.Errorf("%w: buffer is %dx%d, grid needs %dx%d",
			ErrDimensionMismatch, b.rows, b.cols, s.grid.yres, s.grid.xres)
	}
	return nil
}

func (s *Sampler) checkFloat(b *FloatBuffer) error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.rows != s.grid.yres || b.cols != s.grid.xres {
		return fmt.Errorf("%w: buffer is %dx%d, grid needs %dx%d",
			ErrDimensionMismatch, b.rows, b.cols, s.grid.yres, s.grid.xres)
	}
	return nil
}
