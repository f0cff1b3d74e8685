package components

import (
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/field"
	"github.com/automoto/motionfx/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

type CursorData struct {
	Cursor *motion.Cursor
	// Hover eases between 0 and 1 and blends Ring towards HoverColor.
	Hover      float64
	Ring       colorful.Color
	HoverColor colorful.Color
}

var Cursor = donburi.NewComponentType[CursorData]()

type ProgressData struct {
	Tracker *motion.ScrollTracker
}

var Progress = donburi.NewComponentType[ProgressData]()

// FieldData holds the canvas renderer and the ebiten image its pixels are
// uploaded to. Version is the renderer tick last uploaded.
type FieldData struct {
	Renderer *field.Renderer
	Image    *ebiten.Image
	Version  uint64
}

var Field = donburi.NewComponentType[FieldData]()

type HeadlineData struct {
	Config     cfg.HeadlineConfig
	Rotating   *motion.RotatingText
	Typewriter *motion.Typewriter
	Entrance   *motion.Entrance
}

var Headline = donburi.NewComponentType[HeadlineData]()

type PreloaderData struct {
	*motion.Preloader
}

var Preloader = donburi.NewComponentType[PreloaderData]()

type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
