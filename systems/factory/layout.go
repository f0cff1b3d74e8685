package factory

import (
	"math"

	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/platform"
)

// SectionLayout places one section and its children.
type SectionLayout struct {
	Bounds   platform.Rect
	Title    platform.Rect
	Lines    []platform.Rect
	Counters []platform.Rect
	Cards    []platform.Rect
}

// PageLayout is the document geometry for one width.
type PageLayout struct {
	Width    float64
	Height   float64
	Headline platform.Rect
	Sections []SectionLayout
}

// LayoutPage stacks the headline and sections top to bottom for a viewport
// of width w. The headline fills heroHeight; counters and cards wrap into
// rows that fit between the margins.
func LayoutPage(page *cfg.PageConfig, l cfg.LayoutConfig, w, heroHeight float64) PageLayout {
	out := PageLayout{
		Width:    w,
		Headline: platform.Rect{X: l.Margin, Y: 0, W: math.Max(w-2*l.Margin, 0), H: heroHeight},
	}
	y := heroHeight
	inner := math.Max(w-2*l.Margin, 0)

	for _, sec := range page.Sections {
		top := y + l.Margin
		s := SectionLayout{
			Title: platform.Rect{X: l.Margin, Y: top, W: inner, H: l.TitleGap},
		}
		cy := top + l.TitleGap
		for range sec.Lines {
			s.Lines = append(s.Lines, platform.Rect{X: l.Margin, Y: cy, W: inner, H: l.LineHeight})
			cy += l.LineHeight
		}
		if len(sec.Lines) > 0 {
			cy += l.CardGap
		}
		var rows float64
		s.Counters, rows = grid(len(sec.Counters), l.Margin, cy, inner, l.CounterWidth, l.CounterHeight, l.CardGap)
		cy += rows
		s.Cards, rows = grid(len(sec.Cards), l.Margin, cy, inner, l.CardWidth, l.CardHeight, l.CardGap)
		cy += rows

		s.Bounds = platform.Rect{X: l.Margin, Y: top, W: inner, H: cy - top}
		out.Sections = append(out.Sections, s)
		y = cy
	}
	out.Height = y + l.Margin
	return out
}

// grid lays n cells of cw x ch into rows of the given width and returns the
// cells and the total height used, including a trailing gap.
func grid(n int, x, y, width, cw, ch, gap float64) ([]platform.Rect, float64) {
	if n == 0 {
		return nil, 0
	}
	perRow := int((width + gap) / (cw + gap))
	if perRow < 1 {
		perRow = 1
	}
	cells := make([]platform.Rect, n)
	for i := range cells {
		col, row := i%perRow, i/perRow
		cells[i] = platform.Rect{
			X: x + float64(col)*(cw+gap),
			Y: y + float64(row)*(ch+gap),
			W: cw,
			H: ch,
		}
	}
	rows := (n + perRow - 1) / perRow
	return cells, float64(rows) * (ch + gap)
}
