package fract

import (
	"errors"
	"math"
	"testing"
)

func TestAssignRootsNearest(t *testing.T) {
	re := NewFloatBuffer(1, 3)
	im := NewFloatBuffer(1, 3)
	dst := NewIntBuffer(1, 3)

	re.Set(0, 0, 1.0) // exactly on roots[0]
	re.Set(0, 1, -0.9)
	re.Set(0, 2, 0.0) // equidistant: tie goes to the lower index
	roots := []complex128{1, -1}

	if err := AssignRoots(dst, re, im, roots); err != nil {
		t.Fatalf("AssignRoots() = %v", err)
	}

	if got := dst.At(0, 0); got != 0 {
		t.Errorf("pixel 0: index = %d, want 0", got)
	}
	if got := dst.At(0, 1); got != 1 {
		t.Errorf("pixel 1: index = %d, want 1", got)
	}
	if got := dst.At(0, 2); got != 0 {
		t.Errorf("equidistant pixel: index = %d, want lower index 0", got)
	}
}

func TestAssignRootsNonConverged(t *testing.T) {
	re := NewFloatBuffer(1, 2)
	im := NewFloatBuffer(1, 2)
	dst := NewIntBuffer(1, 2)

	// Pixel 0 carries the non-convergence sentinel; it must become NoRoot
	// and never win a distance comparison.
	re.Set(0, 0, math.Inf(1))
	im.Set(0, 0, math.Inf(1))
	re.Set(0, 1, 0.5)

	if err := AssignRoots(dst, re, im, []complex128{1, -1}); err != nil {
		t.Fatalf("AssignRoots() = %v", err)
	}
	if got := dst.At(0, 0); got != NoRoot {
		t.Errorf("sentinel pixel: index = %d, want NoRoot", got)
	}
	if got := dst.At(0, 1); got != 0 {
		t.Errorf("converged pixel: index = %d, want 0", got)
	}
}

func TestAssignRootsNaN(t *testing.T) {
	re := NewFloatBuffer(1, 1)
	im := NewFloatBuffer(1, 1)
	dst := NewIntBuffer(1, 1)
	re.Set(0, 0, math.NaN())

	if err := AssignRoots(dst, re, im, []complex128{0}); err != nil {
		t.Fatalf("AssignRoots() = %v", err)
	}
	if got := dst.At(0, 0); got != NoRoot {
		t.Errorf("NaN pixel: index = %d, want NoRoot", got)
	}
}

func TestAssignRootsValidation(t *testing.T) {
	re := NewFloatBuffer(2, 2)
	im := NewFloatBuffer(2, 2)
	dst := NewIntBuffer(2, 2)

	if err := AssignRoots(nil, re, im, []complex128{1}); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil dst: err = %v, want ErrNilBuffer", err)
	}
	if err := AssignRoots(dst, re, im, nil); !errors.Is(err, ErrNoRoots) {
		t.Errorf("empty roots: err = %v, want ErrNoRoots", err)
	}
	if err := AssignRoots(dst, NewFloatBuffer(3, 2), im, []complex128{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("mismatched re: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestAssignRootsComplexDistance(t *testing.T) {
	// Distance is Euclidean in the plane, not real-axis only.
	re := NewFloatBuffer(1, 1)
	im := NewFloatBuffer(1, 1)
	dst := NewIntBuffer(1, 1)
	re.Set(0, 0, 0.1)
	im.Set(0, 0, 0.9)

	roots := []complex128{1, complex(0, 1), -1}
	if err := AssignRoots(dst, re, im, roots); err != nil {
		t.Fatalf("AssignRoots() = %v", err)
	}
	if got := dst.At(0, 0); got != 1 {
		t.Errorf("index = %d, want 1 (nearest root is i)", got)
	}
}

func TestAssignRootsEndToEnd(t *testing.T) {
	// Full Newton pipeline for x^2 - 1: sampled basins map onto root
	// indices split by the imaginary axis.
	g, err := NewGrid(6, 6, -1.95, 2.05, -2.0, 2.0)
	if err != nil {
		t.Fatalf("NewGrid() = %v", err)
	}
	s, err := NewSampler(g, WithMaxIterations(200))
	if err != nil {
		t.Fatalf("NewSampler() = %v", err)
	}

	re, im := NewFloatBuffer(6, 6), NewFloatBuffer(6, 6)
	itr := NewIntBuffer(6, 6)
	if err := s.SampleNewton(re, im, itr, []float64{-1, 0, 1}); err != nil {
		t.Fatalf("SampleNewton() = %v", err)
	}

	dst := NewIntBuffer(6, 6)
	roots := []complex128{1, -1}
	if err := AssignRoots(dst, re, im, roots); err != nil {
		t.Fatalf("AssignRoots() = %v", err)
	}

	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			want := 0
			if real(g.At(r, c)) < 0 {
				want = 1
			}
			if got := dst.At(r, c); got != want {
				t.Errorf("pixel (%d,%d) at %v: basin = %d, want %d",
					r, c, g.At(r, c), got, want)
			}
		}
	}
}
