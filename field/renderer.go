package field

import (
	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/platform"
)

// Painter is one layer of the field. Advance moves its state one fixed step;
// Paint draws it onto an already cleared surface.
type Painter interface {
	Advance()
	Paint(s *Surface) error
}

// State is the renderer lifecycle.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Renderer drives painters from the frame scheduler.
type Renderer struct {
	surface  *Surface
	painters []Painter
	state    State
	ticks    uint64
	failed   bool
	scope    *platform.Scope
}

// MountField starts painting on every frame and follows viewport resizes.
// A nil surface or scheduler leaves the field idle; the returned cancel is
// always safe to call.
func MountField(sched *clock.Scheduler, events *platform.Events, surface *Surface, painters ...Painter) (*Renderer, func()) {
	r := &Renderer{surface: surface, painters: painters, scope: platform.NewScope()}
	if sched == nil || surface == nil || len(painters) == 0 {
		platform.Logger().Debug("field: not mounted", "surface", surface != nil, "painters", len(painters))
		return r, r.stop
	}

	if events != nil {
		r.scope.Defer(events.On(platform.Resize, r.onResize))
	}
	r.scope.Defer(sched.Start(r.tick))
	r.state = Running
	return r, r.stop
}

func (r *Renderer) onResize(ev platform.Event) {
	if err := r.surface.Resize(ev.Metrics.ViewportWidth, ev.Metrics.ViewportHeight); err != nil {
		platform.Logger().Debug("field: resize skipped", "err", err)
	}
}

func (r *Renderer) tick(float64) {
	r.ticks++
	r.surface.Begin()
	for _, p := range r.painters {
		p.Advance()
		if err := p.Paint(r.surface); err != nil && !r.failed {
			r.failed = true
			platform.Logger().Warn("field: paint failed", "err", err)
		}
	}
}

func (r *Renderer) stop() {
	r.scope.Close()
	if r.state == Running {
		r.state = Stopped
	}
}

// State reports the lifecycle state.
func (r *Renderer) State() State {
	return r.state
}

// Ticks is the number of frames painted, usable as an upload version.
func (r *Renderer) Ticks() uint64 {
	return r.ticks
}

// Surface returns the canvas being painted, or nil.
func (r *Renderer) Surface() *Surface {
	return r.surface
}
