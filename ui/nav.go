package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/motionfx/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NavEntry is one link in the nav bar.
type NavEntry struct {
	Label   string
	Section int
}

// NavEntries lists the sections worth linking to, in page order. Sections
// without a title have nothing to show in the bar.
func NavEntries(page *cfg.PageConfig) []NavEntry {
	if page == nil {
		return nil
	}
	var out []NavEntry
	for i, s := range page.Sections {
		if s.Title == "" {
			continue
		}
		out = append(out, NavEntry{Label: s.Title, Section: i})
	}
	return out
}

// NavUI is the bar pinned to the top of the page: a link per section and a
// button to the next page variant.
type NavUI struct {
	UI *ebitenui.UI

	OnSection  func(section int)
	OnNextPage func()

	face text.Face
}

// NewNavUI builds the bar for page.
func NewNavUI(page *cfg.PageConfig, onSection func(int), onNextPage func()) (*NavUI, error) {
	nav := &NavUI{OnSection: onSection, OnNextPage: onNextPage}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	nav.face = &text.GoTextFace{Source: src, Size: 14}

	nav.build(page)
	return nav, nil
}

func (nav *NavUI) build(page *cfg.PageConfig) {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 12, Right: 12}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 10, 18, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, entry := range NavEntries(page) {
		section := entry.Section
		bar.AddChild(nav.button(entry.Label, linkImage(), func() {
			if nav.OnSection != nil {
				nav.OnSection(section)
			}
		}))
	}
	bar.AddChild(nav.button("Next page", accentImage(), func() {
		if nav.OnNextPage != nil {
			nav.OnNextPage()
		}
	}))

	root.AddChild(bar)
	nav.UI = &ebitenui.UI{Container: root}
}

func (nav *NavUI) button(label string, img *widget.ButtonImage, clicked func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 28),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &nav.face, &widget.ButtonTextColor{
			Idle:    cfg.Muted,
			Hover:   cfg.White,
			Pressed: cfg.Violet,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			clicked()
		}),
	)
}

// Update handles clicks.
func (nav *NavUI) Update() {
	if nav == nil || nav.UI == nil {
		return
	}
	nav.UI.Update()
}

// Draw renders the bar over the page.
func (nav *NavUI) Draw(screen *ebiten.Image) {
	if nav == nil || nav.UI == nil {
		return
	}
	nav.UI.Draw(screen)
}

func linkImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{0, 0, 0, 0}),
		Hover:    image.NewNineSliceColor(color.RGBA{102, 126, 234, 60}),
		Pressed:  image.NewNineSliceColor(color.RGBA{102, 126, 234, 110}),
		Disabled: image.NewNineSliceColor(color.RGBA{0, 0, 0, 0}),
	}
}

func accentImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{102, 126, 234, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{118, 75, 162, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{80, 100, 200, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
	}
}
