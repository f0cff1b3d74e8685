package platform

import "math"

// Viewport owns the live document metrics and publishes scroll and resize
// events through Events whenever they change.
type Viewport struct {
	events  *Events
	metrics Metrics
}

// NewViewport creates a viewport of w x h showing a document docHeight tall.
func NewViewport(events *Events, w, h, docHeight float64) *Viewport {
	return &Viewport{
		events: events,
		metrics: Metrics{
			DocumentHeight: docHeight,
			ViewportWidth:  w,
			ViewportHeight: h,
		},
	}
}

// Metrics returns a snapshot of the current geometry.
func (v *Viewport) Metrics() Metrics {
	return v.metrics
}

// ScrollTo sets ScrollTop clamped to [0, MaxScroll] and dispatches a scroll
// event if it moved.
func (v *Viewport) ScrollTo(top float64) {
	top = math.Max(0, math.Min(top, v.metrics.MaxScroll()))
	if top == v.metrics.ScrollTop {
		return
	}
	v.metrics.ScrollTop = top
	v.dispatch(Scroll)
}

// ScrollBy scrolls relative to the current position.
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollTo(v.metrics.ScrollTop + dy)
}

// Resize updates the viewport size and dispatches a resize event if it
// changed. ScrollTop is re-clamped against the new size.
func (v *Viewport) Resize(w, h float64) {
	if w == v.metrics.ViewportWidth && h == v.metrics.ViewportHeight {
		return
	}
	v.metrics.ViewportWidth = w
	v.metrics.ViewportHeight = h
	v.metrics.ScrollTop = math.Min(v.metrics.ScrollTop, v.metrics.MaxScroll())
	v.dispatch(Resize)
}

// SetDocumentHeight changes the content height, e.g. after layout.
func (v *Viewport) SetDocumentHeight(h float64) {
	if h == v.metrics.DocumentHeight {
		return
	}
	v.metrics.DocumentHeight = h
	v.metrics.ScrollTop = math.Min(v.metrics.ScrollTop, v.metrics.MaxScroll())
	v.dispatch(Resize)
}

func (v *Viewport) dispatch(kind EventKind) {
	if v.events == nil {
		return
	}
	v.events.Dispatch(Event{Kind: kind, Metrics: v.metrics})
}
