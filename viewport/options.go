package viewport

import "github.com/easeldraw/easel"

// Defaults for viewer options.
const (
	// DefaultZoomFactor is the multiplicative scale change per wheel tick.
	DefaultZoomFactor = 1.05

	// DefaultPanSpeed is the keyboard pan speed in window pixels per second.
	DefaultPanSpeed = 300.0
)

// DefaultWindowBackground is the color the window is cleared to around the
// canvas.
var DefaultWindowBackground = easel.RGB(32, 32, 32)

// Option configures a Viewer during creation.
type Option func(*options)

type options struct {
	zoomFactor float64
	panSpeed   float64
	background easel.Color
}

func defaultOptions() options {
	return options{
		zoomFactor: DefaultZoomFactor,
		panSpeed:   DefaultPanSpeed,
		background: DefaultWindowBackground,
	}
}

// WithZoomFactor sets the per-tick zoom factor. Values <= 1 are ignored.
func WithZoomFactor(f float64) Option {
	return func(o *options) {
		if f > 1 {
			o.zoomFactor = f
		}
	}
}

// WithPanSpeed sets the keyboard pan speed in window pixels per second.
// Non-positive values are ignored.
func WithPanSpeed(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.panSpeed = s
		}
	}
}

// WithWindowBackground sets the window clear color.
func WithWindowBackground(c easel.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
