package motion

import (
	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/platform"
)

// Progress is the scrolled percentage of the document in [0, 100]. Pages no
// taller than the viewport report 0.
func Progress(m platform.Metrics) float64 {
	denom := m.DocumentHeight - m.ViewportHeight
	if denom <= 0 {
		return 0
	}
	p := m.ScrollTop / denom * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// ScrollTracker recomputes Progress at most once per frame after scroll
// or resize events.
type ScrollTracker struct {
	metrics  func() platform.Metrics
	value    float64
	dirty    bool
	computes int
}

// MountScrollTracker subscribes the tracker and computes the initial value.
func MountScrollTracker(sched *clock.Scheduler, events *platform.Events, metrics func() platform.Metrics) (*ScrollTracker, func()) {
	if sched == nil || events == nil || metrics == nil {
		platform.Logger().Warn("scroll progress inactive", "reason", "missing scheduler, event source or metrics")
		return nil, func() {}
	}
	t := &ScrollTracker{metrics: metrics}
	t.recompute()

	scope := platform.NewScope()
	markDirty := func(platform.Event) { t.dirty = true }
	scope.Defer(events.On(platform.Scroll, markDirty))
	scope.Defer(events.On(platform.Resize, markDirty))
	scope.Defer(sched.Start(func(float64) {
		if t.dirty {
			t.recompute()
		}
	}))
	return t, scope.Close
}

func (t *ScrollTracker) recompute() {
	t.value = Progress(t.metrics())
	t.dirty = false
	t.computes++
}

// Value returns the last computed percentage.
func (t *ScrollTracker) Value() float64 {
	return t.value
}

// Computes returns how many times the percentage has been recomputed.
func (t *ScrollTracker) Computes() int {
	return t.computes
}
