package factory

import (
	"github.com/automoto/motionfx/archetypes"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/field"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCursor mounts the trailing cursor. It returns nil when the page has
// no custom cursor or the platform cannot host one.
func CreateCursor(ecs *ecs.ECS, rt *components.RuntimeData) *donburi.Entry {
	if !rt.Page.Cursor {
		return nil
	}
	vp := rt.Viewport
	m := vp.Metrics()
	cursor, cancel := motion.MountCursor(rt.Sched, rt.Events, rt.Caps, rt.Hover,
		func() float64 { return vp.Metrics().ScrollTop },
		motion.CursorConfig{
			DotSmoothing:         cfg.Cursor.DotSmoothing,
			RingSmoothing:        cfg.Cursor.RingSmoothing,
			Start:                math.NewVec2(m.ViewportWidth/2, m.ViewportHeight/2),
			RespectReducedMotion: cfg.Motion.RespectReducedMotion,
		})
	rt.Scope.Defer(cancel)
	if cursor == nil {
		return nil
	}

	ring, err := colorful.Hex(cfg.Cursor.RingColor)
	if err != nil {
		platform.Logger().Warn("cursor ring colour", "err", err)
		ring = colorful.Color{R: 1, G: 1, B: 1}
	}
	hover, err := colorful.Hex(cfg.Cursor.HoverColor)
	if err != nil {
		platform.Logger().Warn("cursor hover colour", "err", err)
		hover = ring
	}

	entry := archetypes.Cursor.Spawn(ecs)
	components.Cursor.Set(entry, &components.CursorData{
		Cursor:     cursor,
		Ring:       ring,
		HoverColor: hover,
	})
	return entry
}

// CreateProgress mounts the scroll progress tracker.
func CreateProgress(ecs *ecs.ECS, rt *components.RuntimeData) *donburi.Entry {
	tracker, cancel := motion.MountScrollTracker(rt.Sched, rt.Events, rt.Viewport.Metrics)
	rt.Scope.Defer(cancel)
	if tracker == nil {
		return nil
	}
	entry := archetypes.Progress.Spawn(ecs)
	components.Progress.Set(entry, &components.ProgressData{Tracker: tracker})
	return entry
}

// CreateField mounts the aurora and particle background. Any failure leaves
// the page without a background.
func CreateField(ecs *ecs.ECS, rt *components.RuntimeData) *donburi.Entry {
	if !rt.Page.Field {
		return nil
	}
	log := platform.Logger()
	if rt.ReducedMotion() {
		log.Debug("field inactive", "reason", "reduced motion")
		return nil
	}

	m := rt.Viewport.Metrics()
	surface, err := field.NewSurface(m.ViewportWidth, m.ViewportHeight, rt.Caps.DPR())
	if err != nil {
		log.Debug("field inactive", "err", err)
		return nil
	}
	aurora, err := field.NewAurora(field.AuroraConfig(cfg.Aurora))
	if err != nil {
		log.Warn("field inactive", "err", err)
		surface.Close()
		return nil
	}
	particles, err := field.NewParticles(field.ParticleConfig(cfg.Particles))
	if err != nil {
		log.Warn("field inactive", "err", err)
		surface.Close()
		return nil
	}

	renderer, cancel := field.MountField(rt.Sched, rt.Events, surface, aurora, particles)
	rt.Scope.Defer(func() {
		cancel()
		if err := surface.Close(); err != nil {
			log.Debug("field surface close", "err", err)
		}
	})

	entry := archetypes.Field.Spawn(ecs)
	components.Field.Set(entry, &components.FieldData{Renderer: renderer})
	return entry
}

// CreateHeadline mounts the hero text effects and its entrance, timed to
// play as the preloader leaves.
func CreateHeadline(ecs *ecs.ECS, rt *components.RuntimeData, layout PageLayout) *donburi.Entry {
	h := rt.Page.Headline
	data := &components.HeadlineData{
		Config:   h,
		Entrance: motion.NewEntrance(cfg.Reveal.DurationMs, cfg.Preloader.MinDelayMs, cfg.Reveal.Distance),
	}

	if len(h.Words) > 0 {
		rot, cancel, err := motion.MountRotatingText(rt.Sched, h.Words, cfg.Text.RotateIntervalMs)
		if err != nil {
			platform.Logger().Warn("rotating text", "err", err)
		} else {
			data.Rotating = rot
			rt.Scope.Defer(cancel)
		}
	}
	if h.Tagline != "" {
		tw, cancel := motion.MountTypewriter(rt.Sched, h.Tagline, cfg.Text.TypeSpeedMs)
		data.Typewriter = tw
		rt.Scope.Defer(cancel)
	}
	rt.Scope.Defer(data.Entrance.Stop)
	playEntrance(rt, data.Entrance)

	entry := archetypes.Headline.Spawn(ecs)
	components.Headline.Set(entry, data)
	components.Bounds.Set(entry, &components.BoundsData{Rect: layout.Headline})
	return entry
}

// CreatePreloader mounts the start-up overlay. It stays in the loading
// phase until Ready is called on it.
func CreatePreloader(ecs *ecs.ECS, rt *components.RuntimeData) *donburi.Entry {
	minDelay, exit := cfg.Preloader.MinDelayMs, cfg.Preloader.ExitMs
	if rt.ReducedMotion() {
		minDelay, exit = 0, 0
	}
	p, cancel := motion.MountPreloader(rt.Sched, minDelay, exit)
	rt.Scope.Defer(cancel)

	entry := archetypes.Preloader.Spawn(ecs)
	components.Preloader.Set(entry, &components.PreloaderData{Preloader: p})
	return entry
}
