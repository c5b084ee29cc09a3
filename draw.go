package easel

import "math"

// DrawContext carries the drawing state the rasterizer needs: the current
// target and the current color. It is an explicit value threaded through
// every operation; there is no package-level "current target" or
// "current color".
//
// All operations are infallible. Out-of-range pixels clip silently at the
// target, degenerate geometry (zero-length segments, non-positive
// thickness, empty rectangles) draws nothing, and a context without a
// target is a no-op.
type DrawContext struct {
	target Target
	color  Color
}

// NewDrawContext returns a draw context bound to the given target with the
// default foreground color.
func NewDrawContext(target Target) *DrawContext {
	return &DrawContext{target: target, color: DefaultForeground}
}

// SetColor sets the current draw color.
func (dc *DrawContext) SetColor(c Color) {
	dc.color = c
}

// Color returns the current draw color.
func (dc *DrawContext) Color() Color {
	return dc.color
}

// Target returns the target the context draws to.
func (dc *DrawContext) Target() Target {
	return dc.target
}

// DrawPoint writes a single pixel in the current color.
func (dc *DrawContext) DrawPoint(x, y int) {
	if dc.target == nil {
		return
	}
	dc.target.Set(x, y, dc.color)
}

// DrawLine draws a 1-pixel line segment using Bresenham's algorithm.
func (dc *DrawContext) DrawLine(x1, y1, x2, y2 int) {
	if dc.target == nil {
		return
	}
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		dc.target.Set(x1, y1, dc.color)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// FillCircle draws a filled circle of radius r centered at (cx, cy).
// Pixel (cx+i, cy+j) is written iff i*i+j*j <= r*r, the closed disk, so
// the produced pixel set is exactly reproducible.
func (dc *DrawContext) FillCircle(cx, cy, r int) {
	if dc.target == nil || r < 0 {
		return
	}
	rr := r * r
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			if i*i+j*j <= rr {
				dc.target.Set(cx+i, cy+j, dc.color)
			}
		}
	}
}

// StrokeCircle draws a circle outline of radius r and thickness t centered
// at (cx, cy): the annulus (r-t)^2 <= i*i+j*j <= r*r. A thickness t >= r
// degenerates to the filled disk; t <= 0 draws nothing.
func (dc *DrawContext) StrokeCircle(cx, cy, r, t int) {
	if dc.target == nil || r < 0 || t <= 0 {
		return
	}
	inner := r - t
	if inner < 0 {
		inner = 0
	}
	rr := r * r
	ii := inner * inner
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			d := i*i + j*j
			if d <= rr && d >= ii {
				dc.target.Set(cx+i, cy+j, dc.color)
			}
		}
	}
}

// FillRect draws a filled axis-aligned rectangle covering columns
// x..x+w-1 and rows y..y+h-1.
func (dc *DrawContext) FillRect(x, y, w, h int) {
	if dc.target == nil {
		return
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			dc.target.Set(x+i, y+j, dc.color)
		}
	}
}

// StrokeRect draws an axis-aligned rectangle outline of thickness t as
// four edge strips forming a closed border. The thickness is clamped to
// min(w, h); t <= 0 draws nothing.
func (dc *DrawContext) StrokeRect(x, y, w, h, t int) {
	if dc.target == nil || w <= 0 || h <= 0 || t <= 0 {
		return
	}
	if t > w {
		t = w
	}
	if t > h {
		t = h
	}
	dc.FillRect(x, y, w, t)           // top
	dc.FillRect(x, y+h-t, w, t)       // bottom
	dc.FillRect(x, y+t, t, h-2*t)     // left
	dc.FillRect(x+w-t, y+t, t, h-2*t) // right
}

// FillRotatedRect draws a filled rectangle rotated by angle radians about
// its first corner (x, y). The quad is rasterized as two flat-colored
// triangles with inclusive edge tests, so an angle of zero produces
// exactly the FillRect pixel set.
func (dc *DrawContext) FillRotatedRect(x, y, w, h int, angle float64) {
	if dc.target == nil || w <= 0 || h <= 0 {
		return
	}
	pivot := Pt(float64(x), float64(y))
	// Corners sit on the last covered pixel of each edge so that the
	// rotated quad covers the same lattice points FillRect covers.
	x1 := float64(x + w - 1)
	y1 := float64(y + h - 1)

	switch {
	case w == 1 && h == 1:
		dc.DrawPoint(x, y)
	case w == 1:
		end := Pt(pivot.X, y1).RotateAround(pivot, angle)
		dc.DrawLine(x, y, round(end.X), round(end.Y))
	case h == 1:
		end := Pt(x1, pivot.Y).RotateAround(pivot, angle)
		dc.DrawLine(x, y, round(end.X), round(end.Y))
	default:
		b := Pt(x1, pivot.Y).RotateAround(pivot, angle)
		c := Pt(x1, y1).RotateAround(pivot, angle)
		d := Pt(pivot.X, y1).RotateAround(pivot, angle)
		dc.fillQuad(pivot, b, c, d)
	}
}

// StrokeRotatedRect draws a rectangle outline rotated by angle radians
// about its first corner (x, y), each edge rendered as a thick line of
// thickness t. The two horizontal edges are pre-extended by t/2 at both
// ends before rotation so the corners form a closed mitred border instead
// of gapped or overlapping joints. The thickness is clamped to min(w, h);
// t <= 0 draws nothing.
func (dc *DrawContext) StrokeRotatedRect(x, y, w, h int, angle float64, t int) {
	if dc.target == nil || w <= 0 || h <= 0 || t <= 0 {
		return
	}
	if t > w {
		t = w
	}
	if t > h {
		t = h
	}
	ft := float64(t)
	ext := ft / 2

	pivot := Pt(float64(x), float64(y))
	x1 := float64(x + w - 1)
	y1 := float64(y + h - 1)

	edges := [4][2]Point{
		{Pt(pivot.X-ext, pivot.Y), Pt(x1+ext, pivot.Y)}, // top, extended
		{Pt(pivot.X-ext, y1), Pt(x1+ext, y1)},           // bottom, extended
		{Pt(pivot.X, pivot.Y), Pt(pivot.X, y1)},         // left
		{Pt(x1, pivot.Y), Pt(x1, y1)},                   // right
	}
	for _, e := range edges {
		a := e[0].RotateAround(pivot, angle)
		b := e[1].RotateAround(pivot, angle)
		dc.ThickLine(a.X, a.Y, b.X, b.Y, ft)
	}
}

// ThickLine draws the segment (x1, y1)-(x2, y2) as a quad of width t: the
// endpoints offset by plus/minus the unit perpendicular scaled by t/2,
// rasterized as two triangles. Zero-length segments and t <= 0 draw
// nothing.
func (dc *DrawContext) ThickLine(x1, y1, x2, y2, t float64) {
	if dc.target == nil || t <= 0 {
		return
	}
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)
	d := p2.Sub(p1)
	if d.Length() == 0 {
		return
	}
	off := d.Normalize().Perp().Mul(t / 2)
	dc.fillQuad(p1.Add(off), p2.Add(off), p2.Sub(off), p1.Sub(off))
}

// fillQuad rasterizes a convex quad as two triangles sharing the p0-p2
// diagonal. Pixels on the shared diagonal are written twice, which is
// harmless for flat color.
func (dc *DrawContext) fillQuad(p0, p1, p2, p3 Point) {
	dc.fillTriangle(p0, p1, p2)
	dc.fillTriangle(p0, p2, p3)
}

// edgeEps absorbs floating-point error in the inclusive edge tests so
// lattice points lying exactly on a triangle edge count as covered.
const edgeEps = 1e-7

// fillTriangle writes every lattice point inside or on the triangle.
func (dc *DrawContext) fillTriangle(a, b, c Point) {
	area := b.Sub(a).Cross(c.Sub(a))
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
	}

	minX := int(math.Floor(min3(a.X, b.X, c.X)))
	maxX := int(math.Ceil(max3(a.X, b.X, c.X)))
	minY := int(math.Floor(min3(a.Y, b.Y, c.Y)))
	maxY := int(math.Ceil(max3(a.Y, b.Y, c.Y)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Pt(float64(x), float64(y))
			if b.Sub(a).Cross(p.Sub(a)) >= -edgeEps &&
				c.Sub(b).Cross(p.Sub(b)) >= -edgeEps &&
				a.Sub(c).Cross(p.Sub(c)) >= -edgeEps {
				dc.target.Set(x, y, dc.color)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func round(x float64) int {
	return int(math.Round(x))
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
