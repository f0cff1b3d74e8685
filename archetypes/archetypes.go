package archetypes

import (
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Runtime = newArchetype(
		components.Runtime,
		components.Input,
		components.Settings,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
		components.Bounds,
	)
	Counter = newArchetype(
		tags.Counter,
		components.Counter,
		components.Bounds,
	)
	Card = newArchetype(
		tags.Card,
		components.Card,
		components.Bounds,
	)
	Headline = newArchetype(
		components.Headline,
		components.Bounds,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Field = newArchetype(
		components.Field,
	)
	Preloader = newArchetype(
		components.Preloader,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
