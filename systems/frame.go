package systems

import (
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/fonts"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrame ticks the scheduler once. Every animation subscribed to it
// advances here, after input and scrolling for the frame were applied.
func UpdateFrame(ecs *ecs.ECS) {
	rt := GetRuntime(ecs)
	if rt == nil {
		return
	}
	rt.Sched.Frame()
}

// UpdatePreloader releases the preloader once the page fonts are loaded.
func UpdatePreloader(ecs *ecs.ECS) {
	entry, ok := components.Preloader.First(ecs.World)
	if !ok {
		return
	}
	p := components.Preloader.Get(entry)
	if p.Phase() == motion.PreloaderLoading && fonts.Loaded(fonts.Body, fonts.Title, fonts.Hero, fonts.Stat) {
		p.Ready()
	}
}

// UpdateTilt points hovered cards towards the cursor and relaxes the rest
// back to flat.
func UpdateTilt(ecs *ecs.ECS) {
	rt := GetRuntime(ecs)
	input := GetInput(ecs)
	if rt == nil || input == nil {
		return
	}
	var state motion.CursorState
	if entry, ok := components.Cursor.First(ecs.World); ok {
		state = components.Cursor.Get(entry).Cursor.State()
	}
	scrollTop := rt.Viewport.Metrics().ScrollTop

	components.Card.Each(ecs.World, func(e *donburi.Entry) {
		card := components.Card.Get(e)
		bounds := components.Bounds.Get(e).Rect
		card.Hovered = state.Hovering && state.Target == card.HoverID
		if !card.Hovered {
			// Without the custom cursor, fall back to the raw pointer.
			card.Hovered = state.Target == "" && input.PointerInside &&
				bounds.Contains(input.PointerX, input.PointerY+scrollTop)
		}
		card.Tilt = StepTilt(card.Tilt, bounds, card.Hovered, input.PointerX, input.PointerY+scrollTop)
	})
}

// StepTilt eases a card's tilt one frame towards the pointer, or towards
// rest when the card is not hovered.
func StepTilt(cur motion.Tilt, bounds platform.Rect, hovered bool, x, y float64) motion.Tilt {
	target := motion.Tilt{XPct: 50, YPct: 50}
	if hovered {
		target = motion.TiltAt(bounds, x, y)
	}
	n := cfg.Cursor.RingSmoothing
	return motion.Tilt{
		RotateX: motion.Step(target.RotateX, cur.RotateX, n),
		RotateY: motion.Step(target.RotateY, cur.RotateY, n),
		XPct:    motion.Step(target.XPct, cur.XPct, n),
		YPct:    motion.Step(target.YPct, cur.YPct, n),
	}
}

// UpdateCursorHover eases the ring colour blend towards the hover state.
func UpdateCursorHover(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	target := 0.0
	if c.Cursor.State().Hovering {
		target = 1
	}
	c.Hover = motion.Step(target, c.Hover, cfg.Cursor.HoverEase)
}

// UpdateSettings toggles the debug overlay.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetInput(ecs)
	settings := GetSettings(ecs)
	if input == nil || settings == nil {
		return
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
	}
}
