// Package ebiten provides the windowed backend on top of the Ebitengine
// game library: real input, vsync presentation, and the blocking
// interactive viewer session.
//
// Targets are CPU pixmaps mirrored into a GPU texture on demand, so the
// rasterizer keeps its exact per-pixel semantics and only the finished
// canvas is uploaded.
package ebiten

import (
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/easeldraw/easel"
	"github.com/easeldraw/easel/backend"
)

// MaxTargetSide mirrors the common GPU maximum texture dimension.
const MaxTargetSide = 8192

// Device allocates texture-mirrored pixmap targets.
type Device struct{}

// NewTarget allocates a target of the given pixel size.
func (Device) NewTarget(width, height int) (easel.Target, error) {
	if width > MaxTargetSide || height > MaxTargetSide {
		return nil, fmt.Errorf("ebiten: %dx%d exceeds maximum texture side %d",
			width, height, MaxTargetSide)
	}
	return &Target{pix: easel.NewPixmap(width, height), dirty: true}, nil
}

// Target is a pixmap render target with a lazily created GPU texture.
// Pixel writes mark the target dirty; the texture is re-uploaded the next
// time a frame needs it (the upload pattern GPU canvases use: draw on the
// CPU, flush once per frame).
type Target struct {
	pix   *easel.Pixmap
	img   *eb.Image
	dirty bool
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.pix.Width() }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.pix.Height() }

// Set writes a single pixel and marks the texture stale.
func (t *Target) Set(x, y int, c easel.Color) {
	t.pix.Set(x, y, c)
	t.dirty = true
}

// At returns the color of a single pixel.
func (t *Target) At(x, y int) easel.Color {
	return t.pix.At(x, y)
}

// Data returns the raw pixel data (RGBA format).
func (t *Target) Data() []uint8 {
	return t.pix.Data()
}

// Close releases the GPU texture.
func (t *Target) Close() error {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
	return nil
}

// texture returns the up-to-date GPU texture, creating or re-uploading it
// as needed. Must be called from the game loop.
func (t *Target) texture() *eb.Image {
	if t.img == nil {
		t.img = eb.NewImage(t.pix.Width(), t.pix.Height())
		t.dirty = true
	}
	if t.dirty {
		t.img.WritePixels(t.pix.Data())
		t.dirty = false
	}
	return t.img
}

func init() {
	backend.Register("ebiten", 100, func() (easel.Device, error) {
		return Device{}, nil
	}, nil)
}

var (
	_ easel.Target    = (*Target)(nil)
	_ easel.RawTarget = (*Target)(nil)
)
