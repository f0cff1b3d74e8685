package tags

import "github.com/yohamta/donburi"

var (
	Section = donburi.NewTag().SetName("Section")
	Counter = donburi.NewTag().SetName("Counter")
	Card    = donburi.NewTag().SetName("Card")
)

// Element id prefixes
const (
	HoverCard    = "card"
	HoverCounter = "counter"
)
