package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/fonts"
	"github.com/automoto/motionfx/platform"
	"github.com/automoto/motionfx/scenes"
	"github.com/automoto/motionfx/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene         Scene
	width, height int
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() (*Game, error) {
	loads := []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Body, goregular.TTF, 18},
		{fonts.Small, goregular.TTF, 13},
		{fonts.Title, gobold.TTF, 32},
		{fonts.Stat, gobold.TTF, 44},
		{fonts.Hero, gobold.TTF, 64},
	}
	for _, l := range loads {
		if err := fonts.LoadFontWithSize(l.name, l.ttf, l.size); err != nil {
			return nil, err
		}
	}

	return &Game{width: config.C.Width, height: config.C.Height}, nil
}

func (g *Game) Update() error {
	// Capabilities need the window, so the first scene starts with the loop.
	if g.scene == nil {
		g.scene = scenes.NewPageScene(g, 0, systems.DetectCapabilities())
		g.scene.Layout(g.width, g.height)
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.scene.Draw(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	g.width, g.height = width, height
	if g.scene != nil {
		g.scene.Layout(width, height)
	}
	return width, height
}

func main() {
	level := slog.LevelInfo
	if os.Getenv("MOTIONFX_DEBUG") != "" {
		level = slog.LevelDebug
		config.Debug.Overlay = true
	}
	platform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
