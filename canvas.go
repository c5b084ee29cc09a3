package easel

import (
	"fmt"
	"io"
)

// Default canvas colors. A fresh canvas is cleared to the background and
// its draw context starts with the foreground.
var (
	DefaultBackground = White
	DefaultForeground = Black
)

// Canvas is a fixed-size off-screen render target accumulating draw
// commands before interactive display.
//
// The canvas exclusively owns its target: dimensions are positive and
// fixed for the canvas lifetime, and all rasterizer output issued through
// Draw lands on the target, never on a window surface. The creator owns
// the canvas until handing it to the viewer, which then owns it for the
// rest of the interactive session.
type Canvas struct {
	device Device
	target Target
	dc     DrawContext
	width  int
	height int
	closed bool
}

// Ensure Canvas implements io.Closer
var _ io.Closer = (*Canvas)(nil)

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	background Color
	foreground Color
}

// WithBackground sets the color the canvas is cleared to on creation.
func WithBackground(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithForeground sets the initial draw color of the canvas draw context.
func WithForeground(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.foreground = c
	}
}

// NewCanvas allocates a canvas of the given pixel size on the device.
//
// It returns an error wrapping ErrInvalidDimensions if width or height is
// not positive, and an error wrapping ErrAllocationFailed if the device
// cannot allocate the target. On success the target is cleared to the
// background color and the draw context is reset to the foreground color.
func NewCanvas(device Device, width, height int, opts ...CanvasOption) (*Canvas, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	options := canvasOptions{
		background: DefaultBackground,
		foreground: DefaultForeground,
	}
	for _, opt := range opts {
		opt(&options)
	}

	target, err := device.NewTarget(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d: %v", ErrAllocationFailed, width, height, err)
	}

	clearTarget(target, options.background)

	c := &Canvas{
		device: device,
		target: target,
		width:  width,
		height: height,
	}
	c.dc = DrawContext{target: target, color: options.foreground}

	Logger().Debug("canvas created", "width", width, "height", height)
	return c, nil
}

// Draw returns the draw context bound to the canvas target.
// Returns nil if the canvas is closed.
func (c *Canvas) Draw() *DrawContext {
	if c.closed {
		return nil
	}
	return &c.dc
}

// Target returns the underlying render target.
// Returns nil if the canvas is closed.
func (c *Canvas) Target() Target {
	if c.closed {
		return nil
	}
	return c.target
}

// Clear fills the whole canvas with a color, erasing prior drawing. The
// draw context color is unaffected.
func (c *Canvas) Clear(col Color) error {
	if c.closed {
		return ErrCanvasClosed
	}
	clearTarget(c.target, col)
	return nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Close releases the canvas target.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if releaser, ok := c.target.(io.Closer); ok {
		if err := releaser.Close(); err != nil {
			Logger().Warn("target release failed", "err", err)
		}
	}
	c.target = nil
	c.dc = DrawContext{}
	return nil
}

// clearTarget fills the whole target, using the raw buffer when available.
func clearTarget(t Target, c Color) {
	if pm, ok := t.(interface{ Clear(Color) }); ok {
		pm.Clear(c)
		return
	}
	w, h := t.Width(), t.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.Set(x, y, c)
		}
	}
}
