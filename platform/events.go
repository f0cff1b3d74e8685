// Package platform models the host capabilities the animation core
// consumes: an event source, viewport geometry, capability queries and
// scoped teardown.
package platform

// EventKind identifies a document/window level event.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	PointerUp
	PointerEnter
	PointerLeave
	Scroll
	Resize
	eventKindCount
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointermove"
	case PointerDown:
		return "pointerdown"
	case PointerUp:
		return "pointerup"
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case Scroll:
		return "scroll"
	case Resize:
		return "resize"
	}
	return "unknown"
}

// Event carries pointer coordinates (viewport px) for pointer kinds and the
// viewport metrics at dispatch time for scroll and resize.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Metrics Metrics
}

// Listener handles one event.
type Listener func(Event)

type listener struct {
	fn   Listener
	live bool
}

// Events is a listener registry with symmetric removal. Every On returns
// the func that removes exactly that registration.
type Events struct {
	byKind [eventKindCount][]*listener
}

// NewEvents creates an empty registry.
func NewEvents() *Events {
	return &Events{}
}

// On registers fn for kind. The returned remove func is idempotent.
func (e *Events) On(kind EventKind, fn Listener) (remove func()) {
	if kind < 0 || kind >= eventKindCount || fn == nil {
		return func() {}
	}
	l := &listener{fn: fn, live: true}
	e.byKind[kind] = append(e.byKind[kind], l)
	return func() {
		if !l.live {
			return
		}
		l.live = false
		l.fn = nil
		list := e.byKind[kind]
		for i, other := range list {
			if other == l {
				e.byKind[kind] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// Dispatch runs every listener registered for ev.Kind at the time of the
// call. Listeners removed mid-dispatch are skipped.
func (e *Events) Dispatch(ev Event) {
	if ev.Kind < 0 || ev.Kind >= eventKindCount {
		return
	}
	list := e.byKind[ev.Kind]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		if l.live {
			l.fn(ev)
		}
	}
}

// ListenerCount reports the live listeners for kind.
func (e *Events) ListenerCount(kind EventKind) int {
	if kind < 0 || kind >= eventKindCount {
		return 0
	}
	return len(e.byKind[kind])
}

// TotalListeners reports live listeners across all kinds.
func (e *Events) TotalListeners() int {
	n := 0
	for _, list := range e.byKind {
		n += len(list)
	}
	return n
}
