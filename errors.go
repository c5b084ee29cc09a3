package easel

import "errors"

// Package errors. Canvas creation is the only fallible operation in the
// core; everything downstream of a valid target clips silently instead of
// failing.
var (
	// ErrInvalidDimensions is returned when a canvas width or height is
	// not positive.
	ErrInvalidDimensions = errors.New("easel: invalid dimensions")

	// ErrAllocationFailed is returned when the backend cannot allocate a
	// target, for example when the requested size exceeds a backend limit.
	ErrAllocationFailed = errors.New("easel: target allocation failed")

	// ErrCanvasClosed is returned when operations are attempted on a
	// closed canvas.
	ErrCanvasClosed = errors.New("easel: canvas is closed")

	// ErrNilDevice is returned when a nil Device is passed to NewCanvas.
	ErrNilDevice = errors.New("easel: nil device")
)
