package fract

// Grid describes a rectangular sampling of the complex plane: a pixel
// resolution in each axis and the real-valued plane bounds the pixels span.
// Step sizes are derived once at construction and immutable afterwards.
//
// Pixel (row, col) samples the point
// (XMin + DX*col, YMin + DY*row), so row 0 holds the bottom edge of the
// sampled region.
type Grid struct {
	xres, yres int
	xmin, xmax float64
	ymin, ymax float64
	dx, dy     float64
}

// NewGrid creates a grid with the given pixel resolutions and plane bounds.
// It returns ErrInvalidResolution if either resolution is below 1 and
// ErrInvalidBounds if either axis has an empty or inverted extent.
func NewGrid(xres, yres int, xmin, xmax, ymin, ymax float64) (*Grid, error) {
	if xres < 1 || yres < 1 {
		return nil, ErrInvalidResolution
	}
	if xmax <= xmin || ymax <= ymin {
		return nil, ErrInvalidBounds
	}
	return &Grid{
		xres: xres,
		yres: yres,
		xmin: xmin,
		xmax: xmax,
		ymin: ymin,
		ymax: ymax,
		dx:   (xmax - xmin) / float64(xres),
		dy:   (ymax - ymin) / float64(yres),
	}, nil
}

// GridAround creates a grid centered on a point, with half of each span on
// either side of the center. This matches the usual way a fractal view is
// described: a focus point and a zoom extent.
func GridAround(center complex128, xspan, yspan float64, xres, yres int) (*Grid, error) {
	return NewGrid(xres, yres,
		real(center)-xspan/2, real(center)+xspan/2,
		imag(center)-yspan/2, imag(center)+yspan/2)
}

// XRes returns the number of pixels along the real axis.
func (g *Grid) XRes() int { return g.xres }

// YRes returns the number of pixels along the imaginary axis.
func (g *Grid) YRes() int { return g.yres }

// XMin returns the lower real-axis bound.
func (g *Grid) XMin() float64 { return g.xmin }

// XMax returns the upper real-axis bound.
func (g *Grid) XMax() float64 { return g.xmax }

// YMin returns the lower imaginary-axis bound.
func (g *Grid) YMin() float64 { return g.ymin }

// YMax returns the upper imaginary-axis bound.
func (g *Grid) YMax() float64 { return g.ymax }

// DX returns the real-axis step between adjacent columns.
func (g *Grid) DX() float64 { return g.dx }

// DY returns the imaginary-axis step between adjacent rows.
func (g *Grid) DY() float64 { return g.dy }

// Pixels returns the total number of sample points.
func (g *Grid) Pixels() int { return g.xres * g.yres }

// At returns the complex plane coordinate sampled by pixel (row, col).
func (g *Grid) At(row, col int) complex128 {
	return complex(g.xmin+g.dx*float64(col), g.ymin+g.dy*float64(row))
}
