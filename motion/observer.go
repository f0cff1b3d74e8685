package motion

import (
	"github.com/automoto/motionfx/platform"
)

// IntersectionRatio is the visible fraction of el inside viewport. A
// zero-area element counts as fully visible when its origin is inside.
func IntersectionRatio(el, viewport platform.Rect) float64 {
	area := el.Area()
	if area == 0 {
		if viewport.Contains(el.X, el.Y) {
			return 1
		}
		return 0
	}
	return el.Intersect(viewport).Area() / area
}

type observation struct {
	id           string
	bounds       func() platform.Rect
	onFirstEnter func()
}

// Observer fires a one-shot callback the first time each observed element
// is at least threshold visible, then stops observing it.
type Observer struct {
	threshold float64
	pending   []*observation
	revealed  map[string]bool
}

// NewObserver creates an observer. threshold is clamped to [0, 1].
func NewObserver(threshold float64) *Observer {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	return &Observer{threshold: threshold, revealed: make(map[string]bool)}
}

// Threshold returns the configured visibility threshold.
func (o *Observer) Threshold() float64 {
	return o.threshold
}

// Observe starts watching id. Observing an id that is already pending or
// already revealed does nothing, and the returned unobserve is a no-op.
// An unobserve only ever removes the observation its own call created.
func (o *Observer) Observe(id string, bounds func() platform.Rect, onFirstEnter func()) (unobserve func()) {
	if bounds == nil || o.revealed[id] {
		return func() {}
	}
	for _, ob := range o.pending {
		if ob.id == id {
			return func() {}
		}
	}
	ob := &observation{id: id, bounds: bounds, onFirstEnter: onFirstEnter}
	o.pending = append(o.pending, ob)
	return func() { o.remove(ob) }
}

func (o *Observer) remove(target *observation) bool {
	for i, ob := range o.pending {
		if ob == target {
			o.pending = append(o.pending[:i:i], o.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Check evaluates every pending element against viewport in registration
// order. Elements that cross the threshold are unobserved before their
// callback runs.
func (o *Observer) Check(viewport platform.Rect) {
	if len(o.pending) == 0 {
		return
	}
	var entered []*observation
	for _, ob := range o.pending {
		ratio := IntersectionRatio(ob.bounds(), viewport)
		if ratio > 0 && ratio >= o.threshold {
			entered = append(entered, ob)
		}
	}
	for _, ob := range entered {
		if !o.remove(ob) {
			continue
		}
		o.revealed[ob.id] = true
		platform.Logger().Debug("revealed", "id", ob.id)
		if ob.onFirstEnter != nil {
			ob.onFirstEnter()
		}
	}
}

// Attach re-checks on every scroll and resize event and once immediately
// against metrics.
func (o *Observer) Attach(events *platform.Events, metrics platform.Metrics) (detach func()) {
	onChange := func(e platform.Event) { o.Check(e.Metrics.Visible()) }
	removeScroll := events.On(platform.Scroll, onChange)
	removeResize := events.On(platform.Resize, onChange)
	o.Check(metrics.Visible())
	return func() {
		removeScroll()
		removeResize()
	}
}

// Revealed reports whether id has fired.
func (o *Observer) Revealed(id string) bool {
	return o.revealed[id]
}

// Pending returns how many elements are still observed.
func (o *Observer) Pending() int {
	return len(o.pending)
}

// Disconnect stops observing everything.
func (o *Observer) Disconnect() {
	o.pending = nil
}
