package ebiten

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/easeldraw/easel"
	"github.com/easeldraw/easel/viewport"
)

// Default window size of the interactive viewer.
const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 800
)

// RunViewer opens a window and runs the interactive pan/zoom session for
// the canvas. It blocks until the user quits (Escape or window close) and
// releases the canvas before returning.
//
// Controls: mouse wheel zooms, primary-button drag pans, arrow keys pan
// at a fixed speed regardless of frame rate.
func RunViewer(canvas *easel.Canvas, opts ...viewport.Option) error {
	eb.SetWindowTitle("easel viewer")
	eb.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)

	s := &session{viewer: viewport.New(canvas, opts...)}
	err := eb.RunGame(s)

	// Session over: the viewer owns the canvas, so the canvas target and
	// its texture are released here.
	cerr := canvas.Close()
	if err != nil {
		return err
	}
	return cerr
}

// session adapts the viewer state machine to Ebitengine's game loop:
// Update builds one input Frame and steps the machine, Draw renders, and
// the engine presents at vsync.
type session struct {
	viewer *viewport.Viewer

	winW, winH int
	last       time.Time
}

// Update gathers this frame's input and advances the viewer.
func (s *session) Update() error {
	now := time.Now()
	var dt time.Duration
	if !s.last.IsZero() {
		dt = now.Sub(s.last)
	}
	s.last = now

	var events []viewport.Event
	if inpututil.IsKeyJustPressed(eb.KeyEscape) {
		events = append(events, viewport.Quit{})
	}
	if _, wy := eb.Wheel(); wy != 0 {
		events = append(events, viewport.Wheel{Ticks: wy})
	}
	if inpututil.IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		events = append(events, viewport.Button{Pressed: true})
	}
	if inpututil.IsMouseButtonJustReleased(eb.MouseButtonLeft) {
		events = append(events, viewport.Button{Pressed: false})
	}

	var held viewport.Key
	if eb.IsKeyPressed(eb.KeyArrowLeft) {
		held |= viewport.KeyLeft
	}
	if eb.IsKeyPressed(eb.KeyArrowRight) {
		held |= viewport.KeyRight
	}
	if eb.IsKeyPressed(eb.KeyArrowUp) {
		held |= viewport.KeyUp
	}
	if eb.IsKeyPressed(eb.KeyArrowDown) {
		held |= viewport.KeyDown
	}

	cx, cy := eb.CursorPosition()

	s.viewer.Step(s.winW, s.winH, viewport.Frame{
		DT:      dt,
		Events:  events,
		Pointer: easel.Pt(float64(cx), float64(cy)),
		Held:    held,
	})

	if s.viewer.State() == viewport.StateTerminated {
		return eb.Termination
	}
	return nil
}

// Draw renders the current camera view onto the screen.
func (s *session) Draw(screen *eb.Image) {
	s.viewer.Render(&screenWindow{screen: screen})
}

// Layout reports the window size back to the engine. The viewer's camera
// is deliberately not refitted on resize.
func (s *session) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.winW, s.winH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// screenWindow adapts the per-frame screen image to viewport.Window.
// Present is a no-op: the engine presents when Draw returns.
type screenWindow struct {
	screen *eb.Image
}

func (w *screenWindow) Size() (int, int) {
	b := w.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (w *screenWindow) Clear(c easel.Color) {
	w.screen.Fill(c.Color())
}

func (w *screenWindow) Blit(src easel.Target, dst viewport.Rect) {
	t, ok := src.(*Target)
	if !ok {
		easel.Logger().Warn("blit skipped: target is not an ebiten target")
		return
	}
	if src.Width() == 0 || src.Height() == 0 {
		return
	}
	op := &eb.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(src.Width()), dst.H/float64(src.Height()))
	op.GeoM.Translate(dst.X, dst.Y)
	w.screen.DrawImage(t.texture(), op)
}

func (w *screenWindow) Present() error { return nil }

var _ viewport.Window = (*screenWindow)(nil)
