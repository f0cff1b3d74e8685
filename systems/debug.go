package systems

import (
	"fmt"

	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines element bounds and prints loop statistics.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetSettings(ecs)
	rt := GetRuntime(ecs)
	if settings == nil || !settings.Debug || rt == nil {
		return
	}

	outline := func(e *donburi.Entry) {
		r := toScreen(components.Bounds.Get(e).Rect, rt)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.DebugColor, false)
	}
	components.Section.Each(ecs.World, outline)
	components.Counter.Each(ecs.World, outline)
	components.Card.Each(ecs.World, outline)

	m := rt.Viewport.Metrics()
	msg := fmt.Sprintf(
		"fps %.0f  frames %d  subs %d  listeners %d\nscroll %.0f/%.0f  hover %d  reveals pending %d  counters pending %d",
		ebiten.ActualFPS(), rt.Sched.Frames(), rt.Sched.Len(), rt.Events.TotalListeners(),
		m.ScrollTop, m.MaxScroll(), rt.Hover.Len(), rt.Reveals.Pending(), rt.Counters.Pending(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, int(cfg.Scroll.BarHeight)+8)
}
