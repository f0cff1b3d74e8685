package components

import (
	"github.com/automoto/motionfx/motion"
	"github.com/yohamta/donburi"
)

// Slot locates an element in the page layout.
type Slot struct {
	Section int
	Item    int
}

type SectionData struct {
	Slot     Slot
	ID       string
	Title    string
	Lines    []string
	Entrance *motion.Entrance
}

var Section = donburi.NewComponentType[SectionData]()

type CounterData struct {
	Slot     Slot
	Label    string
	Suffix   string
	Counter  *motion.Counter
	Entrance *motion.Entrance
}

var Counter = donburi.NewComponentType[CounterData]()

// CardData is a card that tilts towards the pointer while hovered.
type CardData struct {
	Slot     Slot
	Title    string
	Subtitle string
	HoverID  string
	Tilt     motion.Tilt
	Hovered  bool
	Entrance *motion.Entrance
}

var Card = donburi.NewComponentType[CardData]()
