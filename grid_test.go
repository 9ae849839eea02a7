package fract

import (
	"errors"
	"math"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name                   string
		xres, yres             int
		xmin, xmax, ymin, ymax float64
		wantErr                error
	}{
		{"valid", 100, 100, -2, 2, -2, 2, nil},
		{"1x1 minimum", 1, 1, 0, 1, 0, 1, nil},
		{"zero xres", 0, 100, -2, 2, -2, 2, ErrInvalidResolution},
		{"negative yres", 100, -1, -2, 2, -2, 2, ErrInvalidResolution},
		{"inverted x bounds", 100, 100, 2, -2, -2, 2, ErrInvalidBounds},
		{"empty y extent", 100, 100, -2, 2, 1, 1, ErrInvalidBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.xres, tt.yres, tt.xmin, tt.xmax, tt.ymin, tt.ymax)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewGrid() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && g == nil {
				t.Fatal("NewGrid() returned nil grid without error")
			}
		})
	}
}

func TestGridSteps(t *testing.T) {
	g, err := NewGrid(400, 200, -2, 2, -1, 1)
	if err != nil {
		t.Fatalf("NewGrid() = %v", err)
	}
	if got := g.DX(); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("DX() = %g, want 0.01", got)
	}
	if got := g.DY(); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("DY() = %g, want 0.01", got)
	}
	if got := g.Pixels(); got != 80000 {
		t.Errorf("Pixels() = %d, want 80000", got)
	}
}

func TestGridAt(t *testing.T) {
	g, err := NewGrid(4, 4, 0, 4, 0, 4)
	if err != nil {
		t.Fatalf("NewGrid() = %v", err)
	}
	// (row, col) maps to (XMin + DX*col, YMin + DY*row).
	if got := g.At(0, 0); got != complex(0, 0) {
		t.Errorf("At(0,0) = %v, want 0", got)
	}
	if got := g.At(2, 1); got != complex(1, 2) {
		t.Errorf("At(2,1) = %v, want 1+2i", got)
	}
}

func TestGridAround(t *testing.T) {
	g, err := GridAround(complex(-0.5, 0), 3, 2, 300, 200)
	if err != nil {
		t.Fatalf("GridAround() = %v", err)
	}
	if g.XMin() != -2 || g.XMax() != 1 {
		t.Errorf("x bounds = [%g, %g], want [-2, 1]", g.XMin(), g.XMax())
	}
	if g.YMin() != -1 || g.YMax() != 1 {
		t.Errorf("y bounds = [%g, %g], want [-1, 1]", g.YMin(), g.YMax())
	}
}

func TestGridAroundRejectsEmptySpan(t *testing.T) {
	if _, err := GridAround(0, 0, 2, 100, 100); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("GridAround with zero span: err = %v, want ErrInvalidBounds", err)
	}
}
