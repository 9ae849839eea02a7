//go:build !nogpu

package gpu

import "math"

// CPU mirrors of the compute kernels in shaders/kernels.wgsl.
//
// The mirrors reproduce the shaders exactly, including their float32
// arithmetic, so their output matches what a GPU dispatch would produce.
// They serve as the execution path while HAL buffer readback is pending
// and as the reference implementation for the shader code.

const (
	escapeRadiusSq = float32(4.0)
	newtonTol      = float32(1e-6)
	maxIntSentinel = math.MaxInt32
)

// escapeCount32 mirrors escape_count: float32 orbit iteration starting at
// (xr, xi) with additive constant (cr, ci).
func escapeCount32(cr, ci, xr, xi float32, maxItr int) int {
	for k := 0; k < maxItr; k++ {
		xr, xi = xr*xr-xi*xi+cr, 2*xr*xi+ci
		if xr*xr+xi*xi > escapeRadiusSq {
			return k
		}
	}
	return maxItr
}

// mirrorMandelbrot fills counts with escape iteration counts for every
// pixel of the configured grid, row-major.
func mirrorMandelbrot(cfg kernelConfig, counts []int) {
	xres := int(cfg.XRes)
	for row := 0; row < int(cfg.YRes); row++ {
		ci := cfg.YMin + cfg.DY*float32(row)
		base := row * xres
		for col := 0; col < xres; col++ {
			cr := cfg.XMin + cfg.DX*float32(col)
			counts[base+col] = escapeCount32(cr, ci, 0, 0, int(cfg.MaxItr))
		}
	}
}

// mirrorJulia fills counts with Julia escape counts: the orbit starts at
// the pixel point and the additive constant is (cfg.CRe, cfg.CIm).
func mirrorJulia(cfg kernelConfig, counts []int) {
	xres := int(cfg.XRes)
	for row := 0; row < int(cfg.YRes); row++ {
		xi := cfg.YMin + cfg.DY*float32(row)
		base := row * xres
		for col := 0; col < xres; col++ {
			xr := cfg.XMin + cfg.DX*float32(col)
			counts[base+col] = escapeCount32(cfg.CRe, cfg.CIm, xr, xi, int(cfg.MaxItr))
		}
	}
}

// newtonRoot32 mirrors cs_newton's per-pixel loop: Newton refinement in
// float32 with Horner evaluation of p and p'. Returns the refined point and
// iteration index, or (+Inf, +Inf) with maxIntSentinel on non-convergence.
func newtonRoot32(coeffs []float32, xr, xi float32, maxItr int) (rr, ri float32, itr int) {
	for k := 0; k < maxItr; k++ {
		var pr, pi, dpr, dpi float32
		for i := len(coeffs) - 1; i >= 0; i-- {
			dpr, dpi = xr*dpr-xi*dpi+pr, xr*dpi+xi*dpr+pi
			pr, pi = xr*pr-xi*pi+coeffs[i], xr*pi+xi*pr
		}
		if float32(math.Hypot(float64(pr), float64(pi))) < newtonTol {
			return xr, xi, k
		}
		if dpr == 0 && dpi == 0 {
			break
		}
		d := dpr*dpr + dpi*dpi
		xr, xi = xr-(pr*dpr+pi*dpi)/d, xi-(pi*dpr-pr*dpi)/d
	}
	inf := float32(math.Inf(1))
	return inf, inf, maxIntSentinel
}

// mirrorNewton fills re, im, and counts with Newton refinement results for
// every pixel of the configured grid.
func mirrorNewton(cfg kernelConfig, coeffs []float32, re, im []float32, counts []int) {
	xres := int(cfg.XRes)
	for row := 0; row < int(cfg.YRes); row++ {
		y := cfg.YMin + cfg.DY*float32(row)
		base := row * xres
		for col := 0; col < xres; col++ {
			x := cfg.XMin + cfg.DX*float32(col)
			rr, ri, itr := newtonRoot32(coeffs, x, y, int(cfg.MaxItr))
			re[base+col] = rr
			im[base+col] = ri
			counts[base+col] = itr
		}
	}
}
