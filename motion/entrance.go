package motion

import (
	"github.com/automoto/motionfx/clock"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Entrance is the fade-and-rise played once an element reveals.
type Entrance struct {
	delay    float64
	distance float64
	tween    *gween.Tween
	start    float64
	last     float64
	value    float64
	started  bool
	done     bool
	cancel   func()
}

// NewEntrance creates an idle entrance lasting durationMs that rises
// distance px, starting delayMs after Play.
func NewEntrance(durationMs, delayMs, distance float64) *Entrance {
	if durationMs <= 0 {
		durationMs = 1
	}
	return &Entrance{
		delay:    delayMs,
		distance: distance,
		tween:    gween.New(0, 1, float32(durationMs), ease.OutExpo),
	}
}

// Play starts the entrance on sched. Only the first call has any effect.
func (e *Entrance) Play(sched *clock.Scheduler) {
	if e.started || sched == nil {
		return
	}
	e.started = true
	e.start = sched.Now() + e.delay
	e.last = e.start
	e.cancel = sched.Start(e.tick)
}

// Skip shows the element at rest immediately.
func (e *Entrance) Skip() {
	e.started = true
	e.finish()
}

func (e *Entrance) tick(ts float64) {
	if ts < e.start {
		return
	}
	v, finished := e.tween.Update(float32(ts - e.last))
	e.last = ts
	e.value = float64(v)
	if finished {
		e.finish()
	}
}

func (e *Entrance) finish() {
	e.value = 1
	e.done = true
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Stop cancels a running entrance.
func (e *Entrance) Stop() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Started reports whether Play or Skip has been called.
func (e *Entrance) Started() bool {
	return e.started
}

// Done reports whether the entrance has settled.
func (e *Entrance) Done() bool {
	return e.done
}

// Opacity runs 0 to 1.
func (e *Entrance) Opacity() float64 {
	return e.value
}

// OffsetY is the remaining downward offset in px.
func (e *Entrance) OffsetY() float64 {
	return e.distance * (1 - e.value)
}
