package motion

import (
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi/features/math"
)

// PointerSample is the latest known pointer location in viewport px.
type PointerSample struct {
	X, Y  float64
	Valid bool
}

// Vec returns the sample as a vector.
func (p PointerSample) Vec() math.Vec2 {
	return math.Vec2{X: p.X, Y: p.Y}
}

// PointerTracker keeps only the most recent pointer move.
type PointerTracker struct {
	sample PointerSample
}

// NewPointerTracker creates a tracker whose sample starts at (x, y) and is
// not yet valid.
func NewPointerTracker(x, y float64) *PointerTracker {
	return &PointerTracker{sample: PointerSample{X: x, Y: y}}
}

// Attach subscribes to document-level pointer moves.
func (t *PointerTracker) Attach(events *platform.Events) (detach func()) {
	return events.On(platform.PointerMove, func(e platform.Event) {
		t.sample = PointerSample{X: e.X, Y: e.Y, Valid: true}
	})
}

// Sample returns the last recorded position.
func (t *PointerTracker) Sample() PointerSample {
	return t.sample
}
