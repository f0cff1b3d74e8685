package components

import (
	"github.com/automoto/motionfx/clock"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi"
)

// RuntimeData is the page singleton: the frame loop, the event source and
// the shared registries every mounted component subscribes to.
type RuntimeData struct {
	Scope    *platform.Scope
	Sched    *clock.Scheduler
	Events   *platform.Events
	Viewport *platform.Viewport
	Caps     platform.Capabilities
	Hover    *motion.HoverTargets
	Reveals  *motion.Observer
	Counters *motion.Observer
	Scroller *motion.SmoothScroll
	Page     *cfg.PageConfig

	// Screen is the latest window size reported by the host.
	Screen struct{ W, H float64 }
}

// ReducedMotion reports whether animations should be skipped.
func (r *RuntimeData) ReducedMotion() bool {
	return cfg.Motion.RespectReducedMotion && r.Caps.ReducedMotion
}

var Runtime = donburi.NewComponentType[RuntimeData]()
