package viewport

import (
	"github.com/easeldraw/easel"
)

// State is the viewer lifecycle state.
type State int

const (
	// StateInitializing means the camera has not been fitted yet; the
	// first Step performs the fit and moves to StateRunning.
	StateInitializing State = iota

	// StateRunning means the viewer is consuming frames.
	StateRunning

	// StateTerminated means a quit was received; the session is over.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Window is the presentation surface the viewer renders into.
//
// Implementations clear, receive one scaled blit of the canvas target per
// frame, and present at their own frame boundary. Present is the only
// blocking point of the session.
type Window interface {
	// Size returns the window size in pixels.
	Size() (int, int)

	// Clear fills the window with a color.
	Clear(c easel.Color)

	// Blit draws the source target scaled into the destination rectangle.
	Blit(src easel.Target, dst Rect)

	// Present makes the frame visible, blocking until the backend's
	// refresh boundary.
	Present() error
}

// Viewer is the interactive viewport controller: a single-threaded state
// machine owning the camera and the panning flag. It consumes one Frame
// per iteration via Step and draws via Render; the Run helper drives both
// in a loop.
//
// The camera is never recomputed on window resize: once fitted, it is
// held fixed for the rest of the session.
type Viewer struct {
	canvas *easel.Canvas
	cam    Camera
	state  State
	opts   options

	panning     bool
	pointer     easel.Point
	havePointer bool
}

// New creates a viewer for the canvas. The viewer takes ownership of the
// canvas for the duration of the session.
func New(canvas *easel.Canvas, opts ...Option) *Viewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Viewer{
		canvas: canvas,
		state:  StateInitializing,
		opts:   o,
	}
}

// State returns the current lifecycle state.
func (v *Viewer) State() State {
	return v.state
}

// Camera returns a copy of the current camera.
func (v *Viewer) Camera() Camera {
	return v.cam
}

// Step advances the state machine by one frame.
//
// In StateInitializing the camera is fitted to the given window size and
// the viewer moves to StateRunning before consuming the frame. In
// StateRunning the frame is consumed in order: events (quit, wheel zoom,
// button pan-toggle), pointer drag, held-key pan. Step is a no-op once
// terminated.
func (v *Viewer) Step(winW, winH int, f Frame) {
	switch v.state {
	case StateTerminated:
		return
	case StateInitializing:
		v.cam.Fit(winW, winH, v.canvas.Width(), v.canvas.Height())
		v.state = StateRunning
		easel.Logger().Info("viewer session started",
			"window_w", winW, "window_h", winH, "scale", v.cam.Scale)
	}

	for _, ev := range f.Events {
		switch ev := ev.(type) {
		case Quit:
			v.state = StateTerminated
			easel.Logger().Info("viewer session terminated")
			return
		case Wheel:
			v.cam.ZoomBy(v.opts.zoomFactor, ev.Ticks)
		case Button:
			v.panning = ev.Pressed
		}
	}

	if v.havePointer && v.panning {
		v.cam.PanBy(f.Pointer.Sub(v.pointer))
	}
	v.pointer = f.Pointer
	v.havePointer = true

	step := v.opts.panSpeed * f.DT.Seconds()
	if f.Held.Has(KeyLeft) {
		v.cam.Offset.X -= step
	}
	if f.Held.Has(KeyRight) {
		v.cam.Offset.X += step
	}
	if f.Held.Has(KeyUp) {
		v.cam.Offset.Y -= step
	}
	if f.Held.Has(KeyDown) {
		v.cam.Offset.Y += step
	}
}

// Render clears the window and blits the canvas into the camera's
// destination rectangle. It does nothing unless the viewer is running.
func (v *Viewer) Render(win Window) {
	if v.state != StateRunning {
		return
	}
	win.Clear(v.opts.background)
	win.Blit(v.canvas.Target(), v.cam.DestRect(v.canvas.Size()))
}

// Run drives the viewer against a window and an input source until a quit
// event arrives, then returns. This is the blocking interactive-session
// entry point for backends whose window hands control to the caller;
// callback-driven backends call Step and Render from their own loop
// instead.
func Run(win Window, src Source, canvas *easel.Canvas, opts ...Option) error {
	v := New(canvas, opts...)
	for v.state != StateTerminated {
		frame := src.NextFrame()
		w, h := win.Size()
		v.Step(w, h, frame)
		if v.state == StateTerminated {
			break
		}
		v.Render(win)
		if err := win.Present(); err != nil {
			return err
		}
	}
	return nil
}
