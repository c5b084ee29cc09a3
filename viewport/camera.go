package viewport

import (
	"math"

	"github.com/easeldraw/easel"
)

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Camera holds the scale and offset mapping canvas space to window space.
//
// Scale stays strictly positive: it starts from a fit computation and is
// only ever changed multiplicatively, never assigned directly during
// interaction. Multiplicative composition makes n zoom-in ticks followed
// by n zoom-out ticks cancel up to floating-point error.
type Camera struct {
	Scale  float64
	Offset easel.Point
}

// Fit initializes the camera so the canvas fits the window without
// cropping (scale is the smaller of the two axis ratios) and is centered
// (offset is half the size difference).
func (c *Camera) Fit(winW, winH, canvasW, canvasH int) {
	sx := float64(winW) / float64(canvasW)
	sy := float64(winH) / float64(canvasH)
	c.Scale = math.Min(sx, sy)
	c.Offset = easel.Pt(
		float64(winW-canvasW)/2,
		float64(winH-canvasH)/2,
	)
}

// ZoomBy multiplies the scale by factor^ticks.
func (c *Camera) ZoomBy(factor, ticks float64) {
	c.Scale *= math.Pow(factor, ticks)
}

// PanBy adds the delta to the offset (1:1 drag-follow).
func (c *Camera) PanBy(delta easel.Point) {
	c.Offset = c.Offset.Add(delta)
}

// DestRect returns the window rectangle the canvas maps onto.
//
// The size is canvasSize*Scale. The position subtracts
// canvasSize*(Scale-1)/2 from the offset, which keeps the zoom pivot at
// the canvas's own displayed center regardless of prior panning (not at
// the window center).
func (c Camera) DestRect(canvasW, canvasH int) Rect {
	cw := float64(canvasW)
	ch := float64(canvasH)
	return Rect{
		X: c.Offset.X - cw*(c.Scale-1)/2,
		Y: c.Offset.Y - ch*(c.Scale-1)/2,
		W: cw * c.Scale,
		H: ch * c.Scale,
	}
}
