package viewport

import (
	"math"
	"testing"

	"github.com/easeldraw/easel"
)

const camTol = 1e-9

func TestCameraFit(t *testing.T) {
	tests := []struct {
		name               string
		winW, winH         int
		canW, canH         int
		wantScale          float64
		wantOffX, wantOffY float64
	}{
		{"window wider than canvas", 1000, 800, 100, 100, 8, 450, 350},
		{"window taller than canvas", 800, 1000, 100, 100, 8, 350, 450},
		{"same aspect", 200, 100, 100, 50, 2, 50, 25},
		{"canvas larger than window", 100, 100, 400, 200, 0.25, -150, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.Fit(tt.winW, tt.winH, tt.canW, tt.canH)
			if math.Abs(c.Scale-tt.wantScale) > camTol {
				t.Errorf("Scale = %v, want %v", c.Scale, tt.wantScale)
			}
			if math.Abs(c.Offset.X-tt.wantOffX) > camTol ||
				math.Abs(c.Offset.Y-tt.wantOffY) > camTol {
				t.Errorf("Offset = %v, want (%v, %v)", c.Offset, tt.wantOffX, tt.wantOffY)
			}
		})
	}
}

func TestCameraFitCentersDestRect(t *testing.T) {
	// After a fit, the destination rectangle is centered in the window on
	// both axes.
	const winW, winH = 1000, 800
	const canW, canH = 300, 200

	var c Camera
	c.Fit(winW, winH, canW, canH)
	r := c.DestRect(canW, canH)

	leftGap := r.X
	rightGap := float64(winW) - (r.X + r.W)
	if math.Abs(leftGap-rightGap) > camTol {
		t.Errorf("horizontal gaps %v and %v differ", leftGap, rightGap)
	}
	topGap := r.Y
	bottomGap := float64(winH) - (r.Y + r.H)
	if math.Abs(topGap-bottomGap) > camTol {
		t.Errorf("vertical gaps %v and %v differ", topGap, bottomGap)
	}
}

func TestCameraZoomRoundTrip(t *testing.T) {
	var c Camera
	c.Fit(1000, 800, 100, 100)
	start := c.Scale

	// n ticks in followed by n ticks out cancel up to floating point.
	for i := 0; i < 10; i++ {
		c.ZoomBy(DefaultZoomFactor, 1)
	}
	for i := 0; i < 10; i++ {
		c.ZoomBy(DefaultZoomFactor, -1)
	}
	if math.Abs(c.Scale-start) > 1e-9 {
		t.Errorf("Scale after round trip = %v, want %v", c.Scale, start)
	}

	// A single fractional tick pair also cancels.
	c.ZoomBy(DefaultZoomFactor, 0.5)
	c.ZoomBy(DefaultZoomFactor, -0.5)
	if math.Abs(c.Scale-start) > 1e-9 {
		t.Errorf("Scale after fractional round trip = %v, want %v", c.Scale, start)
	}
}

func TestCameraPanRoundTrip(t *testing.T) {
	var c Camera
	c.Fit(1000, 800, 100, 100)
	start := c.Offset

	c.PanBy(easel.Pt(37, -12))
	c.PanBy(easel.Pt(-37, 12))
	if c.Offset != start {
		t.Errorf("Offset after round trip = %v, want %v", c.Offset, start)
	}
}

func TestCameraDestRect(t *testing.T) {
	// At scale 1 the destination rectangle sits exactly at the offset with
	// the canvas's own size.
	c := Camera{Scale: 1, Offset: easel.Pt(40, 30)}
	r := c.DestRect(200, 100)
	if r.X != 40 || r.Y != 30 || r.W != 200 || r.H != 100 {
		t.Errorf("DestRect at scale 1 = %+v", r)
	}

	// Doubling the scale doubles the size and keeps the displayed center
	// fixed.
	before := c.DestRect(200, 100)
	cx := before.X + before.W/2
	cy := before.Y + before.H/2

	c.Scale = 2
	after := c.DestRect(200, 100)
	if after.W != 400 || after.H != 200 {
		t.Errorf("DestRect size at scale 2 = %vx%v, want 400x200", after.W, after.H)
	}
	if math.Abs(after.X+after.W/2-cx) > camTol ||
		math.Abs(after.Y+after.H/2-cy) > camTol {
		t.Errorf("zoom moved the displayed center: %+v", after)
	}
}
