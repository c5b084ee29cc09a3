package soft

import (
	"strings"
	"testing"

	"github.com/easeldraw/easel"
	"github.com/easeldraw/easel/backend"
	"github.com/easeldraw/easel/viewport"
)

func TestDeviceNewTarget(t *testing.T) {
	target, err := Device{}.NewTarget(64, 32)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	if _, ok := target.(*easel.Pixmap); !ok {
		t.Fatalf("target is %T, want *easel.Pixmap", target)
	}
	if target.Width() != 64 || target.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", target.Width(), target.Height())
	}
}

func TestDeviceNewTargetTooLarge(t *testing.T) {
	_, err := Device{}.NewTarget(MaxTargetSide+1, 10)
	if err == nil {
		t.Fatal("oversized allocation succeeded")
	}
	if !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error = %v", err)
	}
}

func TestDeviceRegistered(t *testing.T) {
	dev, err := backend.Open("soft")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := dev.(Device); !ok {
		t.Errorf("Open returned %T, want soft.Device", dev)
	}
}

func TestWindowBlitScales(t *testing.T) {
	// A 2x2 source blitted into a 4x4 rectangle turns each source pixel
	// into a 2x2 block.
	src := easel.NewPixmap(2, 2)
	src.Set(0, 0, easel.Red)
	src.Set(1, 0, easel.Green)
	src.Set(0, 1, easel.Blue)
	src.Set(1, 1, easel.Yellow)

	win := NewWindow(8, 8)
	win.Clear(easel.Black)
	win.Blit(src, viewport.Rect{X: 2, Y: 2, W: 4, H: 4})

	fb := win.Framebuffer()
	tests := []struct {
		x, y int
		want easel.Color
	}{
		{2, 2, easel.Red}, {3, 3, easel.Red},
		{4, 2, easel.Green}, {5, 3, easel.Green},
		{2, 4, easel.Blue}, {3, 5, easel.Blue},
		{4, 4, easel.Yellow}, {5, 5, easel.Yellow},
		{0, 0, easel.Black}, {7, 7, easel.Black},
	}
	for _, tt := range tests {
		if got := fb.At(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWindowBlitClips(t *testing.T) {
	src := easel.NewPixmap(4, 4)
	src.Clear(easel.Red)

	win := NewWindow(8, 8)
	win.Clear(easel.Black)
	// Destination partly outside the window; must not panic.
	win.Blit(src, viewport.Rect{X: -4, Y: -4, W: 8, H: 8})

	fb := win.Framebuffer()
	if got := fb.At(0, 0); got != easel.Red {
		t.Errorf("in-bounds pixel = %v, want red", got)
	}
	if got := fb.At(6, 6); got != easel.Black {
		t.Errorf("pixel outside blit = %v, want black", got)
	}
}

func TestScriptReplay(t *testing.T) {
	s := NewScript(
		viewport.Frame{Held: viewport.KeyLeft},
		viewport.Frame{Held: viewport.KeyRight},
	)

	if f := s.NextFrame(); f.Held != viewport.KeyLeft {
		t.Errorf("frame 1 = %+v", f)
	}
	if f := s.NextFrame(); f.Held != viewport.KeyRight {
		t.Errorf("frame 2 = %+v", f)
	}

	// Exhausted scripts keep producing quit frames.
	for i := 0; i < 3; i++ {
		f := s.NextFrame()
		if len(f.Events) != 1 {
			t.Fatalf("exhausted frame = %+v", f)
		}
		if _, ok := f.Events[0].(viewport.Quit); !ok {
			t.Fatalf("exhausted frame event = %T, want Quit", f.Events[0])
		}
	}
}

func TestScriptAppend(t *testing.T) {
	s := NewScript()
	s.Append(viewport.Frame{Held: viewport.KeyUp})
	if f := s.NextFrame(); f.Held != viewport.KeyUp {
		t.Errorf("appended frame = %+v", f)
	}
}

func TestViewerSessionHeadless(t *testing.T) {
	// Full offscreen session: draw, view through a scripted run, inspect
	// the window framebuffer.
	canvas, err := easel.NewCanvas(Device{}, 50, 50)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer canvas.Close()

	dc := canvas.Draw()
	dc.SetColor(easel.Red)
	dc.FillRect(20, 20, 10, 10)

	win := NewWindow(100, 100)
	script := NewScript(
		viewport.Frame{},
		viewport.Frame{},
	)

	if err := viewport.Run(win, script, canvas); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if win.Presented() != 2 {
		t.Errorf("presented = %d, want 2", win.Presented())
	}

	// The canvas fits the square window at scale 2: canvas pixel (25,25)
	// lands at window (50,50), canvas (5,5) at window (10,10).
	fb := win.Framebuffer()
	if got := fb.At(50, 50); got != easel.Red {
		t.Errorf("window center = %v, want red", got)
	}
	if got := fb.At(10, 10); got != easel.DefaultBackground {
		t.Errorf("window (10,10) = %v, want canvas background", got)
	}
}
