package factory

import (
	"fmt"

	"github.com/automoto/motionfx/archetypes"
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/automoto/motionfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSections spawns every section with its counters and cards. Children
// enter staggered when their section first reveals.
func CreateSections(ecs *ecs.ECS, rt *components.RuntimeData, layout PageLayout) {
	for i, sec := range rt.Page.Sections {
		sl := layout.Sections[i]
		children := createChildren(ecs, rt, i, sec, sl)

		entry := archetypes.Section.Spawn(ecs)
		data := &components.SectionData{
			Slot:     components.Slot{Section: i},
			ID:       sec.ID,
			Title:    sec.Title,
			Lines:    sec.Lines,
			Entrance: motion.NewEntrance(cfg.Reveal.DurationMs, 0, cfg.Reveal.Distance),
		}
		components.Section.Set(entry, data)
		components.Bounds.Set(entry, &components.BoundsData{Rect: sl.Bounds})

		rt.Scope.Defer(data.Entrance.Stop)
		rt.Scope.Defer(rt.Reveals.Observe(sec.ID, boundsOf(entry), func() {
			platform.Logger().Debug("section revealed", "id", sec.ID)
			playEntrance(rt, data.Entrance)
			for _, e := range children {
				playEntrance(rt, e)
			}
		}))
	}
}

func createChildren(ecs *ecs.ECS, rt *components.RuntimeData, section int, sec cfg.SectionConfig, sl SectionLayout) []*motion.Entrance {
	var entrances []*motion.Entrance
	stagger := func() *motion.Entrance {
		delay := float64(len(entrances)+1) * cfg.Reveal.StaggerMs
		e := motion.NewEntrance(cfg.Reveal.DurationMs, delay, cfg.Reveal.Distance)
		entrances = append(entrances, e)
		rt.Scope.Defer(e.Stop)
		return e
	}

	for j, spec := range sec.Counters {
		createCounter(ecs, rt, components.Slot{Section: section, Item: j}, spec, sl.Counters[j], stagger())
	}
	for j, spec := range sec.Cards {
		createCard(ecs, rt, components.Slot{Section: section, Item: j}, spec, sl.Cards[j], stagger())
	}
	return entrances
}

func createCounter(ecs *ecs.ECS, rt *components.RuntimeData, slot components.Slot, spec cfg.CounterSpec, rect platform.Rect, entrance *motion.Entrance) (*donburi.Entry, bool) {
	duration := spec.DurationMs
	if duration <= 0 {
		duration = cfg.Counter.DefaultDurationMs
	}
	counter, err := motion.NewCounter(spec.Target, duration)
	if err != nil {
		platform.Logger().Warn("counter skipped", "label", spec.Label, "err", err)
		return nil, false
	}

	entry := archetypes.Counter.Spawn(ecs)
	components.Counter.Set(entry, &components.CounterData{
		Slot:     slot,
		Label:    spec.Label,
		Suffix:   spec.Suffix,
		Counter:  counter,
		Entrance: entrance,
	})
	components.Bounds.Set(entry, &components.BoundsData{Rect: rect})

	id := fmt.Sprintf("%s:%d:%d", tags.HoverCounter, slot.Section, slot.Item)
	rt.Scope.Defer(counter.Stop)
	rt.Scope.Defer(rt.Counters.Observe(id, boundsOf(entry), func() {
		if rt.ReducedMotion() {
			counter.Complete()
			return
		}
		counter.Trigger(rt.Sched)
	}))
	return entry, true
}

func createCard(ecs *ecs.ECS, rt *components.RuntimeData, slot components.Slot, spec cfg.CardSpec, rect platform.Rect, entrance *motion.Entrance) *donburi.Entry {
	id := CardHoverID(slot)
	entry := archetypes.Card.Spawn(ecs)
	components.Card.Set(entry, &components.CardData{
		Slot:     slot,
		Title:    spec.Title,
		Subtitle: spec.Subtitle,
		HoverID:  id,
		Tilt:     motion.Tilt{XPct: 50, YPct: 50},
		Entrance: entrance,
	})
	components.Bounds.Set(entry, &components.BoundsData{Rect: rect})
	rt.Scope.Defer(rt.Hover.Register(id, rect))
	return entry
}

// CardHoverID is the hover target id of the card in slot.
func CardHoverID(slot components.Slot) string {
	return fmt.Sprintf("%s:%d:%d", tags.HoverCard, slot.Section, slot.Item)
}

// boundsOf reads the entry's current rect so observers follow relayouts.
func boundsOf(entry *donburi.Entry) func() platform.Rect {
	return func() platform.Rect {
		if !entry.Valid() {
			return platform.Rect{}
		}
		return components.Bounds.Get(entry).Rect
	}
}
