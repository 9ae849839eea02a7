package fract

import "fmt"

// IntBuffer is an owned, size-tracked, row-major grid of integers.
// Sampling calls borrow a buffer for their duration and only write to it;
// the buffer is never reallocated, resized, or retained by the library.
//
// At and Set are bounds-checked and panic with the offending index and the
// buffer's dimension. Row gives unchecked slice access for hot loops that
// have already validated their range.
type IntBuffer struct {
	rows, cols int
	data       []int
}

// NewIntBuffer creates a zeroed rows x cols buffer.
func NewIntBuffer(rows, cols int) *IntBuffer {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	return &IntBuffer{
		rows: rows,
		cols: cols,
		data: make([]int, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *IntBuffer) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *IntBuffer) Cols() int { return b.cols }

// Data returns the backing slice in row-major order.
func (b *IntBuffer) Data() []int { return b.data }

// Row returns the backing slice for one row.
// The row index must be in [0, Rows).
func (b *IntBuffer) Row(row int) []int {
	return b.data[row*b.cols : (row+1)*b.cols]
}

// At returns the value at (row, col).
func (b *IntBuffer) At(row, col int) int {
	b.check(row, col)
	return b.data[row*b.cols+col]
}

// Set stores v at (row, col).
func (b *IntBuffer) Set(row, col, v int) {
	b.check(row, col)
	b.data[row*b.cols+col] = v
}

// Fill sets every element to v.
func (b *IntBuffer) Fill(v int) {
	for i := range b.data {
		b.data[i] = v
	}
}

func (b *IntBuffer) check(row, col int) {
	if row < 0 || row >= b.rows {
		panic(fmt.Sprintf("fract: row %d out of range for buffer with %d rows", row, b.rows))
	}
	if col < 0 || col >= b.cols {
		panic(fmt.Sprintf("fract: column %d out of range for buffer with %d columns", col, b.cols))
	}
}

// FloatBuffer is an owned, size-tracked, row-major grid of float64 values,
// with the same ownership and bounds-checking contract as IntBuffer.
type FloatBuffer struct {
	rows, cols int
	data       []float64
}

// NewFloatBuffer creates a zeroed rows x cols buffer.
func NewFloatBuffer(rows, cols int) *FloatBuffer {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	return &FloatBuffer{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *FloatBuffer) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *FloatBuffer) Cols() int { return b.cols }

// Data returns the backing slice in row-major order.
func (b *FloatBuffer) Data() []float64 { return b.data }

// Row returns the backing slice for one row.
// The row index must be in [0, Rows).
func (b *FloatBuffer) Row(row int) []float64 {
	return b.data[row*b.cols : (row+1)*b.cols]
}

// At returns the value at (row, col).
func (b *FloatBuffer) At(row, col int) float64 {
	b.check(row, col)
	return b.data[row*b.cols+col]
}

// Set stores v at (row, col).
func (b *FloatBuffer) Set(row, col int, v float64) {
	b.check(row, col)
	b.data[row*b.cols+col] = v
}

func (b *FloatBuffer) check(row, col int) {
	if row < 0 || row >= b.rows {
		panic(fmt.Sprintf("fract: row %d out of range for buffer with %d rows", row, b.rows))
	}
	if col < 0 || col >= b.cols {
		panic(fmt.Sprintf("fract: column %d out of range for buffer with %d columns", col, b.cols))
	}
}
