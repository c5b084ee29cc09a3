// Package viewport maps a fixed-resolution canvas onto a resizable window
// with continuous, frame-rate-independent pan and zoom.
//
// The package is a pure state machine: a Viewer consumes one Frame of
// input per iteration (elapsed time, drained events, pointer position,
// held-key snapshot) and renders through a small Window interface. It
// performs no input polling or presentation of its own; backends produce
// Frames and present the result. This keeps the controller single-threaded,
// deterministic, and fully testable without a display.
package viewport
