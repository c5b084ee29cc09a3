package easel

// Target is an addressable pixel render target.
//
// Implementations clip silently: Set with out-of-range coordinates is a
// no-op and At returns Transparent. This is what lets every rasterizer
// operation be infallible once it has a valid target.
//
// Targets are NOT safe for concurrent use. A Canvas target is written by
// rasterizer calls before the interactive session starts and is only read
// (for blitting) while the viewer runs.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Set writes a single pixel. Out-of-range coordinates are ignored.
	Set(x, y int, c Color)

	// At returns the color of a single pixel.
	// Out-of-range coordinates return Transparent.
	At(x, y int) Color
}

// RawTarget is an optional interface for targets that expose their backing
// pixel buffer as RGBA bytes (4 bytes per pixel, row-major). Presenters use
// it to upload canvas content without a per-pixel copy.
type RawTarget interface {
	Target

	// Data returns the raw pixel data (RGBA format).
	Data() []uint8
}

// Device is the backend capability to allocate pixel targets.
//
// A Device outlives the targets it creates; targets are released through
// Canvas.Close. Implementations report a size ceiling by failing NewTarget
// with an error wrapping ErrAllocationFailed.
type Device interface {
	// NewTarget allocates a target of the given pixel size.
	// Dimensions are validated by the caller and are always positive here.
	NewTarget(width, height int) (Target, error)
}
