package systems

import (
	"github.com/automoto/motionfx/components"
	"github.com/yohamta/donburi/ecs"
)

// GetRuntime returns the page singleton, or nil before it is spawned.
func GetRuntime(ecs *ecs.ECS) *components.RuntimeData {
	entry, ok := components.Runtime.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Runtime.Get(entry)
}

func GetInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

func GetSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}
