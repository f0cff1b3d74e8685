package scenes

import (
	"sync"

	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/platform"
	"github.com/automoto/motionfx/systems"
	"github.com/automoto/motionfx/systems/factory"
	"github.com/automoto/motionfx/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PageScene shows one page variant.
type PageScene struct {
	ecs          *ecs.ECS
	runtime      *components.RuntimeData
	nav          *ui.NavUI
	advance      bool
	sceneChanger SceneChanger
	index        int
	caps         platform.Capabilities
	width        float64
	height       float64
	once         sync.Once
	closeOnce    sync.Once
}

// NewPageScene creates the scene for cfg.Pages[index], wrapping around.
func NewPageScene(sc SceneChanger, index int, caps platform.Capabilities) *PageScene {
	if n := len(cfg.Pages); n > 0 {
		index = ((index % n) + n) % n
	}
	return &PageScene{
		sceneChanger: sc,
		index:        index,
		caps:         caps,
		width:        float64(cfg.C.Width),
		height:       float64(cfg.C.Height),
	}
}

// Layout records the window size; the viewport follows it on the next
// update.
func (ps *PageScene) Layout(width, height int) {
	ps.width, ps.height = float64(width), float64(height)
	if ps.runtime != nil {
		ps.runtime.Screen.W, ps.runtime.Screen.H = ps.width, ps.height
	}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	ps.nav.Update()

	input := systems.GetInput(ps.ecs)
	if input != nil && input.JustPressed(cfg.ActionNextPage) {
		ps.advance = true
	}
	if ps.advance && ps.sceneChanger != nil {
		ps.Close()
		next := NewPageScene(ps.sceneChanger, ps.index+1, ps.caps)
		next.Layout(int(ps.width), int(ps.height))
		ps.sceneChanger.ChangeScene(next)
	}
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close unmounts the page: every subscription and listener is released.
func (ps *PageScene) Close() {
	ps.closeOnce.Do(func() {
		if ps.runtime != nil {
			ps.runtime.Scope.Close()
		}
		systems.SetCursorMode(ebiten.CursorModeVisible)
	})
}

func (ps *PageScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateSettings)
	ps.ecs.AddSystem(systems.UpdateViewport)
	ps.ecs.AddSystem(systems.UpdateScroll)
	ps.ecs.AddSystem(systems.UpdatePreloader)
	ps.ecs.AddSystem(systems.UpdateFrame)
	ps.ecs.AddSystem(systems.UpdateTilt)
	ps.ecs.AddSystem(systems.UpdateCursorHover)
	ps.ecs.AddSystem(systems.UpdateCursorMode)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawField)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHeadline)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawSections)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawCounters)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawCards)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawProgress)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		ps.nav.Draw(screen)
	})
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPreloader)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawCursor)

	page := &cfg.Pages[ps.index]
	ps.runtime = factory.CreatePage(ps.ecs, page, ps.caps, clock.NewRealSource(), ps.width, ps.height)

	nav, err := ui.NewNavUI(page,
		func(section int) { systems.ScrollToSection(ps.ecs, section) },
		func() { ps.advance = true },
	)
	if err != nil {
		platform.Logger().Warn("nav bar unavailable", "error", err)
		return
	}
	ps.nav = nav
}
