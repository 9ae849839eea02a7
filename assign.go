package fract

import (
	"fmt"
	"math"
)

// NoRoot is the basin index recorded for pixels whose Newton iteration never
// converged. Non-converged pixels carry infinite point values and are
// special-cased here rather than fed into the distance comparison.
const NoRoot = -1

// AssignRoots maps each pixel's converged value to the index of the nearest
// entry in roots, writing the index into dst. Distances are Euclidean in the
// plane; ties go to the lowest index. Pixels holding non-finite values
// (the non-convergence sentinel) get NoRoot.
//
// re and im are the result buffers of a completed SampleNewton call and are
// only read; roots is never mutated. All three buffers must share the same
// dimensions.
func AssignRoots(dst *IntBuffer, re, im *FloatBuffer, roots []complex128) error {
	if dst == nil || re == nil || im == nil {
		return ErrNilBuffer
	}
	if len(roots) == 0 {
		return ErrNoRoots
	}
	if re.rows != dst.rows || re.cols != dst.cols ||
		im.rows != dst.rows || im.cols != dst.cols {
		return fmt.Errorf("%w: index %dx%d, re %dx%d, im %dx%d",
			ErrDimensionMismatch, dst.rows, dst.cols, re.rows, re.cols, im.rows, im.cols)
	}

	for r := 0; r < dst.rows; r++ {
		reRow, imRow, idxRow := re.Row(r), im.Row(r), dst.Row(r)
		for c := 0; c < dst.cols; c++ {
			x, y := reRow[c], imRow[c]
			if !isFinitePoint(x, y) {
				idxRow[c] = NoRoot
				continue
			}
			idxRow[c] = nearestRoot(x, y, roots)
		}
	}
	return nil
}

// nearestRoot returns the index of the root closest to (x, y). The strict
// comparison keeps the first-encountered index on ties.
func nearestRoot(x, y float64, roots []complex128) int {
	best := 0
	bestDist := math.Inf(1)
	for i, root := range roots {
		dx := x - real(root)
		dy := y - imag(root)
		if d := dx*dx + dy*dy; d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func isFinitePoint(x, y float64) bool {
	return !math.IsInf(x, 0) && !math.IsInf(y, 0) && !math.IsNaN(x) && !math.IsNaN(y)
}
