package fract

// RowBands divides yres grid rows into workers contiguous bands and returns
// the workers+1 boundary values 0, span, 2*span, ..., yres, where
// span = yres/workers by integer division. Consecutive boundary pairs define
// half-open row intervals [lo, hi). The final boundary is always yres, so
// the last band absorbs the division remainder and may be wider than span;
// this guarantees the bands cover every row with no gaps and no overlap.
//
// When workers exceeds yres some bands are empty (lo == hi); callers skip
// those rather than treating them as an error.
func RowBands(workers, yres int) []int {
	if workers < 1 {
		workers = 1
	}
	span := yres / workers
	bounds := make([]int, workers+1)
	for i := 0; i < workers; i++ {
		bounds[i] = span * i
	}
	bounds[workers] = yres
	return bounds
}
