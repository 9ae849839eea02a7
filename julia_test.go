package fract

import "testing"

func TestJuliaIterationRange(t *testing.T) {
	const maxItr = 64
	c := complex(-0.8, 0.156)
	for re := -1.5; re <= 1.5; re += 0.25 {
		for im := -1.5; im <= 1.5; im += 0.25 {
			got := JuliaIteration(complex(re, im), c, maxItr)
			if got < 0 || got > maxItr {
				t.Errorf("JuliaIteration(%g%+gi) = %d, outside [0, %d]",
					re, im, got, maxItr)
			}
		}
	}
}

func TestJuliaIterationKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		x, c   complex128
		maxItr int
		want   int
	}{
		// c = 0 makes the dynamics plain squaring: |x| < 1 never escapes,
		// |x| > 2 escapes immediately.
		{"interior of unit disk, c=0", complex(0.5, 0), 0, 40, 40},
		{"outside escape radius, c=0", complex(3, 0), 0, 40, 0},
		{"origin fixed point, c=0", 0, 0, 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JuliaIteration(tt.x, tt.c, tt.maxItr); got != tt.want {
				t.Errorf("JuliaIteration(%v, %v, %d) = %d, want %d",
					tt.x, tt.c, tt.maxItr, got, tt.want)
			}
		})
	}
}

func TestJuliaDiffersFromMandelbrot(t *testing.T) {
	// The kernels differ in which argument seeds the orbit: for the same
	// plane point they generally disagree.
	x := complex(0.3, 0.3)
	c := complex(-1.2, 0.2)
	j := JuliaIteration(x, c, 256)
	m := EscapeIteration(x, 256)
	if j == m {
		t.Logf("julia and mandelbrot coincide at %v (allowed, but suspicious)", x)
	}
	if j < 0 || j > 256 {
		t.Errorf("JuliaIteration out of range: %d", j)
	}
}
