package systems

import (
	"testing"

	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/automoto/motionfx/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func kinds(evs []platform.Event) []platform.EventKind {
	out := make([]platform.EventKind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func TestPointerEvents(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur PointerFrame
		want      []platform.EventKind
	}{
		{"idle outside", PointerFrame{}, PointerFrame{}, []platform.EventKind{}},
		{"enter", PointerFrame{}, PointerFrame{X: 5, Y: 5, Inside: true}, []platform.EventKind{platform.PointerEnter, platform.PointerMove}},
		{"still", PointerFrame{X: 5, Y: 5, Inside: true}, PointerFrame{X: 5, Y: 5, Inside: true}, []platform.EventKind{}},
		{"move", PointerFrame{X: 5, Y: 5, Inside: true}, PointerFrame{X: 6, Y: 5, Inside: true}, []platform.EventKind{platform.PointerMove}},
		{"press", PointerFrame{X: 5, Y: 5, Inside: true}, PointerFrame{X: 5, Y: 5, Inside: true, Down: true}, []platform.EventKind{platform.PointerDown}},
		{"release", PointerFrame{X: 5, Y: 5, Inside: true, Down: true}, PointerFrame{X: 5, Y: 5, Inside: true}, []platform.EventKind{platform.PointerUp}},
		{"leave", PointerFrame{X: 5, Y: 5, Inside: true}, PointerFrame{X: -1, Y: 5}, []platform.EventKind{platform.PointerLeave}},
		{"release outside", PointerFrame{X: 5, Y: 5, Inside: true, Down: true}, PointerFrame{X: -1, Y: 5}, []platform.EventKind{platform.PointerUp, platform.PointerLeave}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(PointerEvents(tt.prev, tt.cur, platform.Metrics{})))
		})
	}
}

func newRuntime(t *testing.T) (*ecs.ECS, *components.RuntimeData) {
	t.Helper()
	return newRuntimeWithSource(t, clock.NewStubSource(0))
}

func newRuntimeWithSource(t *testing.T, src clock.FrameSource) (*ecs.ECS, *components.RuntimeData) {
	t.Helper()
	page := &cfg.PageConfig{
		Name: "test",
		Sections: []cfg.SectionConfig{
			{ID: "a", Title: "A", Cards: []cfg.CardSpec{{Title: "one"}, {Title: "two"}, {Title: "three"}}},
			{ID: "b", Title: "B", Lines: []string{"x", "y", "z"}},
		},
	}
	e := ecs.NewECS(donburi.NewWorld())
	rt := factory.CreatePage(e, page, platform.Capabilities{}, src, 1280, 800)
	t.Cleanup(rt.Scope.Close)
	return e, rt
}

func TestApplyScroll(t *testing.T) {
	_, rt := newRuntime(t)
	input := &components.InputData{}
	max := rt.Viewport.Metrics().MaxScroll()
	require.Positive(t, max)

	ApplyScroll(rt, input, -1)
	assert.Equal(t, cfg.Scroll.WheelStep, rt.Viewport.Metrics().ScrollTop, "wheel towards the user scrolls down")

	input.Current[cfg.ActionEnd] = true
	ApplyScroll(rt, input, 0)
	assert.Equal(t, max, rt.Viewport.Metrics().ScrollTop)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionHome] = true
	ApplyScroll(rt, input, 0)
	assert.Zero(t, rt.Viewport.Metrics().ScrollTop)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionScrollDown] = true
	ApplyScroll(rt, input, 0)
	ApplyScroll(rt, input, 0)
	assert.Equal(t, 2*cfg.Scroll.KeyStep, rt.Viewport.Metrics().ScrollTop, "held keys scroll every frame")
}

func TestRelayoutFollowsWindowWidth(t *testing.T) {
	e, rt := newRuntime(t)

	var first platform.Rect
	components.Card.Each(e.World, func(entry *donburi.Entry) {
		if components.Card.Get(entry).Slot.Item == 2 {
			first = components.Bounds.Get(entry).Rect
		}
	})
	before := rt.Viewport.Metrics().DocumentHeight

	rt.Screen.W, rt.Screen.H = 500, 800
	UpdateViewport(e)

	var after platform.Rect
	components.Card.Each(e.World, func(entry *donburi.Entry) {
		if components.Card.Get(entry).Slot.Item == 2 {
			after = components.Bounds.Get(entry).Rect
		}
	})
	assert.Greater(t, after.Y, first.Y, "cards wrap onto more rows")
	assert.Greater(t, rt.Viewport.Metrics().DocumentHeight, before)
	assert.Equal(t, 500.0, rt.Viewport.Metrics().ViewportWidth)
	assert.Equal(t, 3, rt.Hover.Len(), "targets moved, not duplicated")

	id, ok := rt.Hover.Hit(after.X+1, after.Y+1)
	assert.True(t, ok)
	assert.Equal(t, factory.CardHoverID(components.Slot{Section: 0, Item: 2}), id)
}

func TestStepTiltRelaxes(t *testing.T) {
	card := platform.Rect{X: 0, Y: 0, W: 100, H: 100}
	tilt := motion.Tilt{XPct: 50, YPct: 50}
	for i := 0; i < 200; i++ {
		tilt = StepTilt(tilt, card, true, 100, 100)
	}
	assert.InDelta(t, 5, tilt.RotateX, 1e-3)
	assert.InDelta(t, 5, tilt.RotateY, 1e-3)

	for i := 0; i < 200; i++ {
		tilt = StepTilt(tilt, card, false, 0, 0)
	}
	assert.InDelta(t, 0, tilt.RotateX, 1e-3)
	assert.InDelta(t, 50, tilt.XPct, 1e-3)
}

func TestUpdateSettingsTogglesDebug(t *testing.T) {
	e, _ := newRuntime(t)
	input := GetInput(e)
	settings := GetSettings(e)
	require.NotNil(t, input)
	require.NotNil(t, settings)
	start := settings.Debug

	input.Current[cfg.ActionToggleDebug] = true
	UpdateSettings(e)
	assert.Equal(t, !start, settings.Debug)

	input.Previous = input.Current
	UpdateSettings(e)
	assert.Equal(t, !start, settings.Debug, "held key toggles once")
}

func TestFadePremultiplies(t *testing.T) {
	c := fade(cfg.White, 0.5)
	assert.Equal(t, uint8(127), c.R)
	assert.Equal(t, uint8(127), c.A)
	assert.Equal(t, cfg.White, fade(cfg.White, 2))
}

func sectionTop(e *ecs.ECS, i int) float64 {
	var top float64
	components.Section.Each(e.World, func(entry *donburi.Entry) {
		if components.Section.Get(entry).Slot.Section == i {
			top = components.Bounds.Get(entry).Y
		}
	})
	return top
}

func TestScrollToSectionEases(t *testing.T) {
	src := clock.NewStubSource(0)
	e, rt := newRuntimeWithSource(t, src)

	ScrollToSection(e, 1)
	require.True(t, rt.Scroller.Active())

	m := rt.Viewport.Metrics()
	want := min(sectionTop(e, 1)-cfg.Scroll.NavHeight, m.MaxScroll())

	src.Advance(100)
	rt.Sched.Frame()
	mid := rt.Viewport.Metrics().ScrollTop
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, want)

	for i := 0; i < 60; i++ {
		src.Advance(16)
		rt.Sched.Frame()
	}
	assert.False(t, rt.Scroller.Active())
	assert.Equal(t, want, rt.Viewport.Metrics().ScrollTop)
}

func TestManualScrollCancelsNavJump(t *testing.T) {
	src := clock.NewStubSource(0)
	e, rt := newRuntimeWithSource(t, src)

	ScrollToSection(e, 1)
	src.Advance(100)
	rt.Sched.Frame()

	ApplyScroll(rt, &components.InputData{}, 1)
	assert.False(t, rt.Scroller.Active())

	ScrollToSection(e, 99)
	assert.False(t, rt.Scroller.Active())
}

func TestTallerWindowKeepsPushedSectionHidden(t *testing.T) {
	e, rt := newRuntime(t)
	require.False(t, rt.Reveals.Revealed("a"))

	rt.Screen.H = 1000
	UpdateViewport(e)

	assert.Equal(t, 1000+cfg.Layout.Margin, sectionTop(e, 0))
	assert.Equal(t, 1000.0, rt.Viewport.Metrics().ViewportHeight)
	assert.False(t, rt.Reveals.Revealed("a"), "section below the taller hero is still off-screen")

	rt.Viewport.ScrollTo(400)
	assert.True(t, rt.Reveals.Revealed("a"))
}
