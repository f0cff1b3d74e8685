package systems

import (
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll turns wheel, keys and the left stick into viewport scrolling.
func UpdateScroll(ecs *ecs.ECS) {
	rt := GetRuntime(ecs)
	input := GetInput(ecs)
	if rt == nil || input == nil {
		return
	}
	_, wheel := ebiten.Wheel()
	ApplyScroll(rt, input, wheel)
}

// ApplyScroll moves the viewport for one frame of input. wheel is the
// vertical wheel delta, positive away from the user.
func ApplyScroll(rt *components.RuntimeData, input *components.InputData, wheel float64) {
	vp := rt.Viewport
	m := vp.Metrics()

	switch {
	case input.JustPressed(cfg.ActionHome):
		stopSmooth(rt)
		vp.ScrollTo(0)
		return
	case input.JustPressed(cfg.ActionEnd):
		stopSmooth(rt)
		vp.ScrollTo(m.MaxScroll())
		return
	}

	dy := -wheel * cfg.Scroll.WheelStep
	if input.Current[cfg.ActionScrollUp] {
		dy -= cfg.Scroll.KeyStep
	}
	if input.Current[cfg.ActionScrollDown] {
		dy += cfg.Scroll.KeyStep
	}
	dy += input.AnalogY * cfg.Scroll.KeyStep
	page := m.ViewportHeight * 0.9
	if input.JustPressed(cfg.ActionPageUp) {
		dy -= page
	}
	if input.JustPressed(cfg.ActionPageDown) {
		dy += page
	}
	if dy != 0 {
		stopSmooth(rt)
		vp.ScrollBy(dy)
	}
}

// Manual input wins over a nav jump in flight.
func stopSmooth(rt *components.RuntimeData) {
	if rt.Scroller != nil {
		rt.Scroller.Stop()
	}
}

// ScrollToSection eases the viewport so section i sits just below the nav
// bar. Out of range indexes are ignored.
func ScrollToSection(ecs *ecs.ECS, i int) {
	rt := GetRuntime(ecs)
	if rt == nil || rt.Scroller == nil {
		return
	}
	found := false
	var top float64
	components.Section.Each(ecs.World, func(e *donburi.Entry) {
		if components.Section.Get(e).Slot.Section == i {
			top = components.Bounds.Get(e).Y - cfg.Scroll.NavHeight
			found = true
		}
	})
	if !found {
		return
	}
	m := rt.Viewport.Metrics()
	top = max(0, min(top, m.MaxScroll()))
	rt.Scroller.To(m.ScrollTop, top)
}

// UpdateViewport applies window size changes: the viewport is resized and
// the page is laid out again for the new width.
func UpdateViewport(ecs *ecs.ECS) {
	rt := GetRuntime(ecs)
	if rt == nil {
		return
	}
	m := rt.Viewport.Metrics()
	if rt.Screen.W == m.ViewportWidth && rt.Screen.H == m.ViewportHeight {
		return
	}
	Relayout(ecs, rt)
}

// Relayout recomputes the page geometry for the current screen size and
// moves every element and hover target to match.
func Relayout(ecs *ecs.ECS, rt *components.RuntimeData) {
	w, h := rt.Screen.W, rt.Screen.H
	layout := factory.LayoutPage(rt.Page, cfg.Layout, w, h)

	rt.Hover.Resize(int(w), int(layout.Height))

	components.Headline.Each(ecs.World, func(e *donburi.Entry) {
		components.Bounds.Get(e).Rect = layout.Headline
	})
	components.Section.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Section.Get(e)
		components.Bounds.Get(e).Rect = layout.Sections[s.Slot.Section].Bounds
	})
	components.Counter.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Counter.Get(e)
		components.Bounds.Get(e).Rect = layout.Sections[c.Slot.Section].Counters[c.Slot.Item]
	})
	components.Card.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Card.Get(e)
		r := layout.Sections[c.Slot.Section].Cards[c.Slot.Item]
		components.Bounds.Get(e).Rect = r
		// Re-registering an id moves it; the original unregister stays valid.
		rt.Hover.Register(c.HoverID, r)
	})

	// Geometry first: the viewport's resize events run the observers, and
	// they must see the new bounds.
	rt.Viewport.SetDocumentHeight(layout.Height)
	rt.Viewport.Resize(w, h)

	// Elements that moved into view reveal without waiting for a scroll.
	visible := rt.Viewport.Metrics().Visible()
	rt.Reveals.Check(visible)
	rt.Counters.Check(visible)
}
