package clock

import "time"

// FrameSource supplies the timestamp handed to frame subscribers, in
// milliseconds.
type FrameSource interface {
	Now() float64
}

// RealSource reports monotonic milliseconds since it was created.
type RealSource struct {
	start time.Time
}

// NewRealSource creates a frame source anchored at the current instant.
func NewRealSource() *RealSource {
	return &RealSource{start: time.Now()}
}

func (s *RealSource) Now() float64 {
	return float64(time.Since(s.start)) / float64(time.Millisecond)
}

// StubSource is a manually advanced frame source for tests and replays.
type StubSource struct {
	now float64
}

// NewStubSource creates a stub source starting at startMs.
func NewStubSource(startMs float64) *StubSource {
	return &StubSource{now: startMs}
}

func (s *StubSource) Now() float64 {
	return s.now
}

// Advance moves the stub clock forward by ms.
func (s *StubSource) Advance(ms float64) {
	s.now += ms
}

// Set jumps the stub clock to ms.
func (s *StubSource) Set(ms float64) {
	s.now = ms
}
