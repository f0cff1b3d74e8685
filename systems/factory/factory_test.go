package factory

import (
	"testing"

	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var desktop = platform.Capabilities{FinePointer: true, Hover: true, DevicePixelRatio: 1}

func statsPage() *cfg.PageConfig {
	return &cfg.PageConfig{
		Name:     "stats",
		Headline: cfg.HeadlineConfig{Name: "Stats", Prefix: "I build", Words: []string{"a", "b"}, Tagline: "hello"},
		Sections: []cfg.SectionConfig{
			{
				ID:       "numbers",
				Title:    "Numbers",
				Lines:    []string{"one", "two"},
				Counters: []cfg.CounterSpec{{Label: "Clients", Target: 12, DurationMs: 1000}},
				Cards:    []cfg.CardSpec{{Title: "Card"}},
			},
		},
		Cursor: true,
		Field:  true,
	}
}

func TestLayoutPage(t *testing.T) {
	l := cfg.LayoutConfig{
		Margin: 100, TitleGap: 50, LineHeight: 20,
		CounterWidth: 200, CounterHeight: 100,
		CardWidth: 300, CardHeight: 150, CardGap: 50,
	}
	page := &cfg.PageConfig{Sections: []cfg.SectionConfig{{
		Lines:    []string{"a", "b"},
		Counters: make([]cfg.CounterSpec, 5),
	}}}

	out := LayoutPage(page, l, 1200, 800)
	assert.Equal(t, platform.Rect{X: 100, Y: 0, W: 1000, H: 800}, out.Headline)
	require.Len(t, out.Sections, 1)

	s := out.Sections[0]
	assert.Equal(t, 900.0, s.Title.Y)
	require.Len(t, s.Lines, 2)
	assert.Equal(t, 950.0, s.Lines[0].Y)
	assert.Equal(t, 970.0, s.Lines[1].Y)

	// (1000+50)/(200+50) = 4 per row
	require.Len(t, s.Counters, 5)
	assert.Equal(t, platform.Rect{X: 100, Y: 1040, W: 200, H: 100}, s.Counters[0])
	assert.Equal(t, platform.Rect{X: 850, Y: 1040, W: 200, H: 100}, s.Counters[3])
	assert.Equal(t, platform.Rect{X: 100, Y: 1190, W: 200, H: 100}, s.Counters[4])
	assert.Empty(t, s.Cards)

	assert.Equal(t, 900.0, s.Bounds.Y)
	assert.Equal(t, 1340.0-900.0, s.Bounds.H)
	assert.Equal(t, 1440.0, out.Height)
}

func TestLayoutNarrowViewportStacks(t *testing.T) {
	l := cfg.Layout
	page := &cfg.PageConfig{Sections: []cfg.SectionConfig{{Cards: make([]cfg.CardSpec, 3)}}}
	out := LayoutPage(page, l, 200, 600)
	cards := out.Sections[0].Cards
	require.Len(t, cards, 3)
	assert.Equal(t, cards[0].X, cards[1].X, "one card per row")
	assert.Greater(t, cards[1].Y, cards[0].Y)
}

func newPage(t *testing.T, page *cfg.PageConfig, caps platform.Capabilities) (*ecs.ECS, *components.RuntimeData, *clock.StubSource) {
	t.Helper()
	src := clock.NewStubSource(0)
	e := ecs.NewECS(donburi.NewWorld())
	rt := CreatePage(e, page, caps, src, 1280, 800)
	require.NotNil(t, rt)
	return e, rt, src
}

func TestCreatePageUnmountReleasesEverything(t *testing.T) {
	e, rt, src := newPage(t, statsPage(), desktop)

	_, ok := components.Field.First(e.World)
	assert.True(t, ok, "field mounted")
	_, ok = components.Cursor.First(e.World)
	assert.True(t, ok, "cursor mounted")
	assert.Positive(t, rt.Events.TotalListeners())
	assert.Positive(t, rt.Sched.Len())
	assert.Equal(t, 1, rt.Hover.Len())

	for i := 0; i < 5; i++ {
		src.Advance(16)
		rt.Sched.Frame()
	}

	rt.Scope.Close()
	assert.Zero(t, rt.Events.TotalListeners())
	assert.Zero(t, rt.Events.ListenerCount(platform.Resize))
	assert.Zero(t, rt.Sched.Len())
	assert.Zero(t, rt.Hover.Len())
	assert.Zero(t, rt.Reveals.Pending())
	assert.Zero(t, rt.Counters.Pending())

	rt.Scope.Close()
}

func TestCountersStartWhenScrolledIntoView(t *testing.T) {
	e, rt, src := newPage(t, statsPage(), desktop)
	defer rt.Scope.Close()

	entry, ok := components.Counter.First(e.World)
	require.True(t, ok)
	c := components.Counter.Get(entry)
	assert.False(t, c.Counter.State().Started, "below the fold")

	rt.Viewport.ScrollTo(600)
	assert.True(t, c.Counter.State().Started)
	assert.True(t, rt.Reveals.Revealed("numbers"))

	for i := 0; i < 10; i++ {
		src.Advance(100)
		rt.Sched.Frame()
	}
	assert.Equal(t, 12, c.Counter.Count())
	assert.True(t, c.Counter.State().Done)

	rt.Viewport.ScrollTo(0)
	rt.Viewport.ScrollTo(600)
	assert.Equal(t, 12, c.Counter.Count(), "does not restart")
}

func TestSectionChildrenEnterStaggered(t *testing.T) {
	e, rt, src := newPage(t, statsPage(), desktop)
	defer rt.Scope.Close()

	sec, ok := components.Section.First(e.World)
	require.True(t, ok)
	card, ok := components.Card.First(e.World)
	require.True(t, ok)
	s := components.Section.Get(sec)
	cd := components.Card.Get(card)

	assert.False(t, s.Entrance.Started())
	rt.Viewport.ScrollTo(600)
	assert.True(t, s.Entrance.Started())
	assert.True(t, cd.Entrance.Started())

	src.Advance(cfg.Reveal.DurationMs + 10*cfg.Reveal.StaggerMs)
	rt.Sched.Frame()
	src.Advance(16)
	rt.Sched.Frame()
	assert.True(t, s.Entrance.Done())
	assert.True(t, cd.Entrance.Done())
}

func TestReducedMotionSkipsAnimation(t *testing.T) {
	old := cfg.Motion.RespectReducedMotion
	cfg.Motion.RespectReducedMotion = true
	t.Cleanup(func() { cfg.Motion.RespectReducedMotion = old })

	caps := desktop
	caps.ReducedMotion = true
	e, rt, _ := newPage(t, statsPage(), caps)
	defer rt.Scope.Close()

	_, ok := components.Field.First(e.World)
	assert.False(t, ok, "no field")
	_, ok = components.Cursor.First(e.World)
	assert.False(t, ok, "no cursor")

	entry, ok := components.Counter.First(e.World)
	require.True(t, ok)
	c := components.Counter.Get(entry)
	rt.Viewport.ScrollTo(600)
	assert.Equal(t, 12, c.Counter.Count(), "jumps to target")

	sec, _ := components.Section.First(e.World)
	assert.Equal(t, 1.0, components.Section.Get(sec).Entrance.Opacity())
}

func TestCoarsePointerHasNoCursor(t *testing.T) {
	e, rt, _ := newPage(t, statsPage(), platform.Capabilities{DevicePixelRatio: 2})
	defer rt.Scope.Close()

	_, ok := components.Cursor.First(e.World)
	assert.False(t, ok)
	_, ok = components.Field.First(e.World)
	assert.True(t, ok, "field does not depend on the pointer")
}

func TestPageFlagsDisableOverlays(t *testing.T) {
	page := statsPage()
	page.Cursor = false
	page.Field = false
	e, rt, _ := newPage(t, page, desktop)
	defer rt.Scope.Close()

	_, ok := components.Cursor.First(e.World)
	assert.False(t, ok)
	_, ok = components.Field.First(e.World)
	assert.False(t, ok)
	_, ok = components.Progress.First(e.World)
	assert.True(t, ok)
}

func TestEveryPageVariantMounts(t *testing.T) {
	for i := range cfg.Pages {
		page := &cfg.Pages[i]
		t.Run(page.Name, func(t *testing.T) {
			_, rt, src := newPage(t, page, desktop)
			src.Advance(16)
			rt.Sched.Frame()
			rt.Viewport.ScrollTo(rt.Viewport.Metrics().MaxScroll())
			rt.Scope.Close()
			assert.Zero(t, rt.Events.TotalListeners())
		})
	}
}

func TestCardHoverIDUsesCardPrefix(t *testing.T) {
	assert.Equal(t, "card:1:2", CardHoverID(components.Slot{Section: 1, Item: 2}))
}
