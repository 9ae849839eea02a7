package fract

import "errors"

// Package errors. Construction-time invariant violations surface as one of
// these sentinels (possibly wrapped with context) before any worker is
// spawned. Per-pixel non-convergence is reported as data, never as an error.
var (
	// ErrNilGrid is returned when a sampler is created without a grid.
	ErrNilGrid = errors.New("fract: nil grid")

	// ErrNilBuffer is returned when a required output buffer is nil.
	ErrNilBuffer = errors.New("fract: nil output buffer")

	// ErrDimensionMismatch is returned when an output buffer does not match
	// the grid's resolution.
	ErrDimensionMismatch = errors.New("fract: buffer dimensions do not match grid")

	// ErrInvalidResolution is returned when a grid resolution is below 1.
	ErrInvalidResolution = errors.New("fract: resolution must be at least 1")

	// ErrInvalidBounds is returned when plane bounds are empty or inverted.
	ErrInvalidBounds = errors.New("fract: plane bounds are empty or inverted")

	// ErrBadPolynomial is returned when a polynomial has no terms beyond a
	// constant, leaving Newton iteration without a defined step.
	ErrBadPolynomial = errors.New("fract: polynomial must have degree at least 1")

	// ErrNoRoots is returned when AssignRoots is given an empty root list.
	ErrNoRoots = errors.New("fract: root list is empty")
)
