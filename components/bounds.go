package components

import (
	"github.com/automoto/motionfx/platform"
	"github.com/yohamta/donburi"
)

// BoundsData is an element's rect in document coordinates.
type BoundsData struct {
	platform.Rect
}

var Bounds = donburi.NewComponentType[BoundsData]()
