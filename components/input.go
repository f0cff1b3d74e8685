package components

import (
	cfg "github.com/automoto/motionfx/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions, plus the raw pointer state the platform events are derived from.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	PointerX, PointerY float64
	PointerInside      bool
	PointerDown        bool
	Touching           bool
	AnalogY            float64
}

// JustPressed reports an action that went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
