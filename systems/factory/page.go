package factory

import (
	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage spawns every entity of page for a w x h window and returns the
// runtime. Closing runtime.Scope tears the whole page down.
func CreatePage(ecs *ecs.ECS, page *cfg.PageConfig, caps platform.Capabilities, source clock.FrameSource, w, h float64) *components.RuntimeData {
	entry := CreateRuntime(ecs, page, caps, source, w, h)
	rt := components.Runtime.Get(entry)
	layout := LayoutPage(page, cfg.Layout, w, h)

	CreateField(ecs, rt)
	CreateHeadline(ecs, rt, layout)
	CreateSections(ecs, rt, layout)
	CreateProgress(ecs, rt)
	CreateCursor(ecs, rt)
	CreatePreloader(ecs, rt)
	AttachObservers(rt)

	platform.Logger().Info("page mounted",
		"page", page.Name,
		"sections", len(page.Sections),
		"height", layout.Height,
		"subscribers", rt.Sched.Len(),
		"listeners", rt.Events.TotalListeners(),
	)
	return rt
}
