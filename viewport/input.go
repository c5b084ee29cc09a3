package viewport

import (
	"time"

	"github.com/easeldraw/easel"
)

// Event is one discrete input occurrence drained at the start of a frame.
// The concrete types are Quit, Wheel, and Button.
type Event interface {
	isEvent()
}

// Quit requests the end of the interactive session.
type Quit struct{}

// Wheel is a scroll-wheel movement. Ticks is the number of wheel units;
// positive zooms in, negative zooms out. Fractional values are allowed
// (precision wheels, trackpads).
type Wheel struct {
	Ticks float64
}

// Button is a primary-button transition. Pressed reports the new state.
type Button struct {
	Pressed bool
}

func (Quit) isEvent()   {}
func (Wheel) isEvent()  {}
func (Button) isEvent() {}

// Key identifies one directional pan key. Keys combine as a bit set.
type Key uint8

const (
	KeyLeft Key = 1 << iota
	KeyRight
	KeyUp
	KeyDown
)

// Has reports whether k contains key.
func (k Key) Has(key Key) bool {
	return k&key != 0
}

// Frame is the complete input for one viewer iteration, produced by a
// Source and consumed synchronously by Viewer.Step. Modeling input this
// way keeps the controller free of hidden global key-state queries.
type Frame struct {
	// DT is the time elapsed since the previous frame.
	DT time.Duration

	// Events are the input events drained since the previous frame, in
	// arrival order.
	Events []Event

	// Pointer is the pointer position in window pixels.
	Pointer easel.Point

	// Held is the snapshot of directional keys held during this frame.
	Held Key
}

// Source produces one Frame per viewer iteration.
//
// NextFrame blocks at most until the backend's frame boundary; it never
// fails. After a Quit event has been delivered the source may keep
// returning frames, but the viewer will not ask for them.
type Source interface {
	NextFrame() Frame
}
