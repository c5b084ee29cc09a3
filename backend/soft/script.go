package soft

import "github.com/easeldraw/easel/viewport"

// Script is an input source replaying a fixed sequence of frames. Once
// the sequence is exhausted it keeps returning quit frames, so a viewer
// driven by a script always terminates.
type Script struct {
	frames []viewport.Frame
	next   int
}

// NewScript creates a source that plays the given frames in order.
func NewScript(frames ...viewport.Frame) *Script {
	return &Script{frames: frames}
}

// Append adds frames to the end of the script.
func (s *Script) Append(frames ...viewport.Frame) {
	s.frames = append(s.frames, frames...)
}

// NextFrame returns the next scripted frame, or a quit frame when the
// script has run out.
func (s *Script) NextFrame() viewport.Frame {
	if s.next >= len(s.frames) {
		return viewport.Frame{Events: []viewport.Event{viewport.Quit{}}}
	}
	f := s.frames[s.next]
	s.next++
	return f
}

var _ viewport.Source = (*Script)(nil)
