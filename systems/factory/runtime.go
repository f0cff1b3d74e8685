package factory

import (
	"github.com/automoto/motionfx/archetypes"
	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRuntime spawns the page singleton for a w x h window. The scope it
// owns is where every later Create* registers its teardown.
func CreateRuntime(ecs *ecs.ECS, page *cfg.PageConfig, caps platform.Capabilities, source clock.FrameSource, w, h float64) *donburi.Entry {
	layout := LayoutPage(page, cfg.Layout, w, h)

	events := platform.NewEvents()
	rt := &components.RuntimeData{
		Scope:    platform.NewScope(),
		Sched:    clock.NewScheduler(source),
		Events:   events,
		Viewport: platform.NewViewport(events, w, h, layout.Height),
		Caps:     caps,
		Hover:    motion.NewHoverTargets(int(w), int(layout.Height)),
		Reveals:  motion.NewObserver(cfg.Reveal.Threshold),
		Counters: motion.NewObserver(cfg.Counter.Threshold),
		Page:     page,
	}
	rt.Scroller = motion.NewSmoothScroll(rt.Sched, cfg.Scroll.SmoothMs, rt.Viewport.ScrollTo)
	rt.Screen.W, rt.Screen.H = w, h
	rt.Scope.Defer(rt.Scroller.Stop)
	rt.Scope.Defer(rt.Sched.Stop)
	rt.Scope.Defer(rt.Reveals.Disconnect)
	rt.Scope.Defer(rt.Counters.Disconnect)

	entry := archetypes.Runtime.Spawn(ecs)
	components.Runtime.Set(entry, rt)
	components.Input.Set(entry, &components.InputData{})
	components.Settings.Set(entry, &components.SettingsData{Debug: cfg.Debug.Overlay})
	return entry
}

// AttachObservers starts viewport observation. Call it after every observed
// element exists so the initial check sees them all.
func AttachObservers(rt *components.RuntimeData) {
	m := rt.Viewport.Metrics()
	rt.Scope.Defer(rt.Reveals.Attach(rt.Events, m))
	rt.Scope.Defer(rt.Counters.Attach(rt.Events, m))
}

// playEntrance runs e, or shows it at rest when motion is reduced.
func playEntrance(rt *components.RuntimeData, e *motion.Entrance) {
	if rt.ReducedMotion() {
		e.Skip()
		return
	}
	e.Play(rt.Sched)
}
