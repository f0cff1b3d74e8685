package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/fonts"
	"github.com/automoto/motionfx/motion"
	"github.com/automoto/motionfx/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	fieldDrawOp = &ebiten.DrawImageOptions{}
	textOp      = &text.DrawOptions{}
)

// DrawField uploads the canvas pixels when the renderer painted a new frame
// and draws them behind everything else.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Field.First(ecs.World)
	if !ok {
		return
	}
	f := components.Field.Get(entry)
	surface := f.Renderer.Surface()
	if surface == nil {
		return
	}

	if f.Renderer.Ticks() != f.Version || f.Image == nil {
		uploadField(f, surface.Image())
		f.Version = f.Renderer.Ticks()
	}
	if f.Image == nil {
		return
	}

	fieldDrawOp.GeoM.Reset()
	fieldDrawOp.GeoM.Scale(1/surface.DPR(), 1/surface.DPR())
	screen.DrawImage(f.Image, fieldDrawOp)
}

func uploadField(f *components.FieldData, img image.Image) {
	b := img.Bounds()
	if f.Image != nil && f.Image.Bounds().Size() != b.Size() {
		f.Image.Deallocate()
		f.Image = nil
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		f.Image = ebiten.NewImageFromImage(img)
		return
	}
	if f.Image == nil {
		f.Image = ebiten.NewImage(b.Dx(), b.Dy())
	}
	f.Image.WritePixels(rgba.Pix)
}

// DrawHeadline draws the hero: name, rotating word and typed tagline.
func DrawHeadline(ecs *ecs.ECS, screen *ebiten.Image) {
	rt := GetRuntime(ecs)
	entry, ok := components.Headline.First(ecs.World)
	if rt == nil || !ok {
		return
	}
	h := components.Headline.Get(entry)
	r := toScreen(components.Bounds.Get(entry).Rect, rt)
	alpha := h.Entrance.Opacity()
	y := r.Y + r.H*0.38 + h.Entrance.OffsetY()

	drawText(screen, h.Config.Name, fonts.Hero.Face(), r.X, y, cfg.White, alpha)
	y += 72
	if h.Rotating != nil {
		line := h.Config.Prefix + " " + h.Rotating.Word()
		drawText(screen, line, fonts.Title.Face(), r.X, y, cfg.Indigo, alpha)
		y += 48
	}
	if h.Typewriter != nil {
		line := h.Typewriter.Text()
		if !h.Typewriter.Done() {
			line += "|"
		}
		drawText(screen, line, fonts.Body.Face(), r.X, y, cfg.Muted, alpha)
	}
}

// DrawSections draws section titles and body lines.
func DrawSections(ecs *ecs.ECS, screen *ebiten.Image) {
	rt := GetRuntime(ecs)
	if rt == nil {
		return
	}
	vis := rt.Viewport.Metrics().Visible()
	components.Section.Each(ecs.World, func(e *donburi.Entry) {
		bounds := components.Bounds.Get(e).Rect
		if bounds.Intersect(vis).Area() == 0 {
			return
		}
		s := components.Section.Get(e)
		r := toScreen(bounds, rt)
		alpha := s.Entrance.Opacity()
		y := r.Y + s.Entrance.OffsetY()

		drawText(screen, s.Title, fonts.Title.Face(), r.X, y, cfg.White, alpha)
		y += cfg.Layout.TitleGap
		for _, line := range s.Lines {
			drawText(screen, line, fonts.Body.Face(), r.X, y, cfg.Muted, alpha)
			y += cfg.Layout.LineHeight
		}
	})
}

// DrawCounters draws each statistic with its current count.
func DrawCounters(ecs *ecs.ECS, screen *ebiten.Image) {
	rt := GetRuntime(ecs)
	if rt == nil {
		return
	}
	components.Counter.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Counter.Get(e)
		r := toScreen(components.Bounds.Get(e).Rect, rt)
		if r.Y > rt.Screen.H || r.Y+r.H < 0 {
			return
		}
		alpha := c.Entrance.Opacity()
		y := r.Y + c.Entrance.OffsetY()
		fillRect(screen, r.X, y, r.W, r.H, fade(cfg.CardFill, alpha))
		drawText(screen, fmt.Sprintf("%d%s", c.Counter.Count(), c.Suffix), fonts.Stat.Face(), r.X+20, y+16, cfg.White, alpha)
		drawText(screen, c.Label, fonts.Small.Face(), r.X+20, y+r.H-36, cfg.Muted, alpha)
	})
}

// DrawCards draws the tilting cards. The tilt skews the outline and moves
// the shine highlight to the pointer.
func DrawCards(ecs *ecs.ECS, screen *ebiten.Image) {
	rt := GetRuntime(ecs)
	if rt == nil {
		return
	}
	components.Card.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Card.Get(e)
		r := toScreen(components.Bounds.Get(e).Rect, rt)
		if r.Y > rt.Screen.H || r.Y+r.H < 0 {
			return
		}
		alpha := c.Entrance.Opacity()
		r.Y += c.Entrance.OffsetY()

		fillRect(screen, r.X, r.Y, r.W, r.H, fade(cfg.CardFill, alpha))
		edge := cfg.CardEdge
		if c.Hovered {
			edge = cfg.Indigo
		}
		strokeQuad(screen, tiltQuad(r, c.Tilt), fade(edge, alpha))
		if c.Hovered {
			sx := r.X + r.W*c.Tilt.XPct/100
			sy := r.Y + r.H*c.Tilt.YPct/100
			vector.FillCircle(screen, float32(sx), float32(sy), float32(r.W*0.25), fade(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.08*alpha), true)
		}
		drawText(screen, c.Title, fonts.Body.Face(), r.X+20, r.Y+r.H-64, cfg.White, alpha)
		drawText(screen, c.Subtitle, fonts.Small.Face(), r.X+20, r.Y+r.H-36, cfg.Muted, alpha)
	})
}

// tiltQuad returns the card corners (tl, tr, br, bl) leaning by the tilt.
// Each degree of rotation moves the near edge by MaxTilt/5 px.
func tiltQuad(r platform.Rect, t motion.Tilt) [4][2]float64 {
	k := cfg.Layout.MaxTilt / 5
	dx := t.RotateX * k // top edge shifts horizontally
	dy := t.RotateY * k // left/right edges shift vertically
	return [4][2]float64{
		{r.X + dx, r.Y + dy},
		{r.X + r.W + dx, r.Y - dy},
		{r.X + r.W - dx, r.Y + r.H + dy},
		{r.X - dx, r.Y + r.H - dy},
	}
}

// DrawProgress draws the scroll progress bar across the top.
func DrawProgress(ecs *ecs.ECS, screen *ebiten.Image) {
	rt := GetRuntime(ecs)
	entry, ok := components.Progress.First(ecs.World)
	if rt == nil || !ok {
		return
	}
	p := components.Progress.Get(entry)
	w := rt.Screen.W
	h := float64(cfg.Scroll.BarHeight)
	fillRect(screen, 0, 0, w, h, cfg.Scroll.TrackColor)
	fillRect(screen, 0, 0, w*p.Tracker.Value()/100, h, cfg.Scroll.BarColor)
}

// DrawCursor draws the dot and the trailing ring.
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	s := c.Cursor.State()

	r, g, b := c.Ring.BlendLab(c.HoverColor, c.Hover).Clamped().RGB255()
	ring := fade(color.RGBA{R: r, G: g, B: b, A: 255}, s.RingAlpha())
	vector.StrokeCircle(screen, float32(s.Ring.X), float32(s.Ring.Y), float32(s.RingRadius()), cfg.Cursor.RingWidth, ring, true)
	vector.FillCircle(screen, float32(s.Dot.X), float32(s.Dot.Y), float32(s.DotRadius()), fade(cfg.Cursor.DotColor, s.DotAlpha()), true)
}

// DrawPreloader draws the start-up overlay until it is hidden.
func DrawPreloader(ecs *ecs.ECS, screen *ebiten.Image) {
	rt := GetRuntime(ecs)
	entry, ok := components.Preloader.First(ecs.World)
	if rt == nil || !ok {
		return
	}
	p := components.Preloader.Get(entry)
	if p.Phase() == motion.PreloaderHidden {
		return
	}
	alpha := p.Opacity()
	fillRect(screen, 0, 0, rt.Screen.W, rt.Screen.H, fade(cfg.Preloader.Background, alpha))

	barW := 200 * p.Scale()
	x := (rt.Screen.W - barW) / 2
	y := rt.Screen.H / 2
	fillRect(screen, x, y, barW, 2, fade(cfg.Muted, 0.2*alpha))
	fillRect(screen, x, y, barW*p.Bar(), 2, fade(cfg.Preloader.BarColor, alpha))
}

func toScreen(r platform.Rect, rt *components.RuntimeData) platform.Rect {
	r.Y -= rt.Viewport.Metrics().ScrollTop
	return r
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func strokeQuad(dst *ebiten.Image, q [4][2]float64, c color.Color) {
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		vector.StrokeLine(dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, c, true)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	*textOp = text.DrawOptions{}
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(c)
	textOp.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, textOp)
}
