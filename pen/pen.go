// Package pen provides a positioned drawing pen on top of the rasterizer:
// a movable point with a heading, thickness, and color that leaves a
// trail while it is down. It is sugar for driving a DrawContext from a
// higher-level drawing runtime; it adds no new failure modes.
package pen

import (
	"math"

	"github.com/easeldraw/easel"
)

// Pen draws line trails through a DrawContext as it moves.
type Pen struct {
	dc        *easel.DrawContext
	pos       easel.Point
	heading   float64 // radians, 0 = +x
	thickness int
	color     easel.Color
	down      bool
}

// New creates a pen at (x, y), heading right, thickness 1, drawing in the
// default foreground color, pen down.
func New(dc *easel.DrawContext, x, y float64) *Pen {
	return &Pen{
		dc:        dc,
		pos:       easel.Pt(x, y),
		thickness: 1,
		color:     easel.DefaultForeground,
		down:      true,
	}
}

// Position returns the pen position.
func (p *Pen) Position() easel.Point {
	return p.pos
}

// Heading returns the pen heading in radians.
func (p *Pen) Heading() float64 {
	return p.heading
}

// SetColor sets the trail color.
func (p *Pen) SetColor(c easel.Color) {
	p.color = c
}

// SetThickness sets the trail thickness in pixels. Values below 1 are
// clamped to 1.
func (p *Pen) SetThickness(t int) {
	if t < 1 {
		t = 1
	}
	p.thickness = t
}

// Up lifts the pen: subsequent moves leave no trail.
func (p *Pen) Up() {
	p.down = false
}

// Down lowers the pen.
func (p *Pen) Down() {
	p.down = true
}

// Jump moves the pen by (dx, dy), drawing a segment from the old to the
// new position when the pen is down.
func (p *Pen) Jump(dx, dy float64) {
	p.lineTo(p.pos.Add(easel.Pt(dx, dy)))
}

// MoveTo moves the pen to (x, y), drawing when the pen is down.
func (p *Pen) MoveTo(x, y float64) {
	p.lineTo(easel.Pt(x, y))
}

// Turn rotates the heading by angle radians.
func (p *Pen) Turn(angle float64) {
	p.heading += angle
}

// Forward moves the pen along its heading, drawing when the pen is down.
func (p *Pen) Forward(dist float64) {
	p.Jump(dist*math.Cos(p.heading), dist*math.Sin(p.heading))
}

func (p *Pen) lineTo(to easel.Point) {
	from := p.pos
	p.pos = to
	if !p.down {
		return
	}
	p.dc.SetColor(p.color)
	if p.thickness > 1 {
		p.dc.ThickLine(from.X, from.Y, to.X, to.Y, float64(p.thickness))
		return
	}
	p.dc.DrawLine(
		int(math.Round(from.X)), int(math.Round(from.Y)),
		int(math.Round(to.X)), int(math.Round(to.Y)),
	)
}
