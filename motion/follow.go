// Package motion holds the time- and geometry-driven presentation state:
// cursor smoothing, one-shot reveals, scroll progress, counters and the
// small text/entrance helpers. Every type here owns its state and is
// driven by a clock.Scheduler or platform.Events subscription.
package motion

import (
	"github.com/yohamta/donburi/features/math"
)

// Step moves current toward target by the fraction n. For n in (0,1] the
// result never overshoots target.
func Step(target, current, n float64) float64 {
	return current + (target-current)*n
}

// Follower is one exponentially smoothed position.
type Follower struct {
	Pos math.Vec2
	N   float64
}

// NewFollower creates a follower at start with smoothing factor n.
func NewFollower(start math.Vec2, n float64) Follower {
	return Follower{Pos: start, N: n}
}

// Update advances the follower one frame toward target.
func (f *Follower) Update(target math.Vec2) {
	f.Pos.X = Step(target.X, f.Pos.X, f.N)
	f.Pos.Y = Step(target.Y, f.Pos.Y, f.N)
}
