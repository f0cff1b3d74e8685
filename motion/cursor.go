package motion

import (
	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi/features/math"
)

// CursorConfig parameterises the trailing cursor.
type CursorConfig struct {
	DotSmoothing  float64
	RingSmoothing float64
	// Start is where both followers sit before the first pointer move.
	Start math.Vec2
	// RespectReducedMotion keeps the follower inert when the platform
	// reports a reduced-motion preference.
	RespectReducedMotion bool
}

// CursorState is a read-only snapshot of the cursor for drawing.
type CursorState struct {
	Dot, Ring math.Vec2
	Hovering  bool
	Pressed   bool
	Hidden    bool
	Target    string
}

// DotRadius is 4px, shrinking to 3px over interactive targets.
func (s CursorState) DotRadius() float64 {
	if s.Hovering {
		return 3
	}
	return 4
}

// DotAlpha fades the dot while pressed and hides it off-document.
func (s CursorState) DotAlpha() float64 {
	switch {
	case s.Hidden:
		return 0
	case s.Pressed:
		return 0.6
	}
	return 1
}

// RingRadius is 18px (14px pressed), scaled 1.8x while hovering.
func (s CursorState) RingRadius() float64 {
	r := 18.0
	if s.Pressed {
		r = 14
	}
	if s.Hovering {
		r *= 1.8
	}
	return r
}

// RingAlpha hides the ring off-document.
func (s CursorState) RingAlpha() float64 {
	if s.Hidden {
		return 0
	}
	return 1
}

// Cursor drives a tight dot and a lagging ring from one pointer source.
type Cursor struct {
	tracker   *PointerTracker
	dot, ring Follower
	targets   *HoverTargets
	scrollTop func() float64

	hovering bool
	pressed  bool
	hidden   bool
	target   string
}

// MountCursor builds and subscribes the cursor follower. On coarse-only or
// reduced-motion platforms nothing is constructed and it returns nil with a
// no-op cancel. targets and scrollTop may be nil.
func MountCursor(
	sched *clock.Scheduler,
	events *platform.Events,
	caps platform.Capabilities,
	targets *HoverTargets,
	scrollTop func() float64,
	cfg CursorConfig,
) (*Cursor, func()) {
	log := platform.Logger()
	if caps.CoarseOnly() {
		log.Debug("cursor follower inactive", "reason", "coarse pointer")
		return nil, func() {}
	}
	if cfg.RespectReducedMotion && caps.ReducedMotion {
		log.Debug("cursor follower inactive", "reason", "reduced motion")
		return nil, func() {}
	}
	if sched == nil || events == nil {
		log.Warn("cursor follower inactive", "reason", "missing scheduler or event source")
		return nil, func() {}
	}

	c := &Cursor{
		tracker:   NewPointerTracker(cfg.Start.X, cfg.Start.Y),
		dot:       NewFollower(cfg.Start, cfg.DotSmoothing),
		ring:      NewFollower(cfg.Start, cfg.RingSmoothing),
		targets:   targets,
		scrollTop: scrollTop,
	}

	scope := platform.NewScope()
	scope.Defer(c.tracker.Attach(events))
	scope.Defer(events.On(platform.PointerMove, func(platform.Event) { c.refreshHover() }))
	scope.Defer(events.On(platform.Scroll, func(platform.Event) { c.refreshHover() }))
	scope.Defer(events.On(platform.PointerDown, func(platform.Event) { c.pressed = true }))
	scope.Defer(events.On(platform.PointerUp, func(platform.Event) { c.pressed = false }))
	scope.Defer(events.On(platform.PointerEnter, func(platform.Event) { c.hidden = false }))
	scope.Defer(events.On(platform.PointerLeave, func(platform.Event) { c.hidden = true }))
	scope.Defer(sched.Start(c.tick))

	log.Debug("cursor follower mounted")
	return c, scope.Close
}

func (c *Cursor) tick(float64) {
	target := c.tracker.Sample().Vec()
	c.dot.Update(target)
	c.ring.Update(target)
}

func (c *Cursor) refreshHover() {
	if c.targets == nil {
		return
	}
	s := c.tracker.Sample()
	if !s.Valid {
		return
	}
	y := s.Y
	if c.scrollTop != nil {
		y += c.scrollTop()
	}
	id, ok := c.targets.Hit(s.X, y)
	c.hovering = ok
	c.target = id
}

// State returns a snapshot for drawing.
func (c *Cursor) State() CursorState {
	return CursorState{
		Dot:      c.dot.Pos,
		Ring:     c.ring.Pos,
		Hovering: c.hovering,
		Pressed:  c.pressed,
		Hidden:   c.hidden,
		Target:   c.target,
	}
}
