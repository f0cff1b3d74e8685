// Package field renders the animated canvas background: an aurora wave
// gradient and a drifting particle layer on a gg raster surface.
package field

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// ErrNoSurface reports a canvas that cannot be drawn on yet.
var ErrNoSurface = errors.New("field: surface unavailable")

// Surface is a device-pixel-ratio scaled raster canvas. Painters draw in
// logical px; the surface applies the ratio.
type Surface struct {
	ctx  *gg.Context
	dpr  float64
	w, h float64
}

// NewSurface allocates a w x h logical canvas at dpr.
func NewSurface(w, h, dpr float64) (*Surface, error) {
	if dpr <= 0 {
		dpr = 1
	}
	pw, ph := devicePixels(w, dpr), devicePixels(h, dpr)
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrNoSurface, w, h)
	}
	return &Surface{ctx: gg.NewContext(pw, ph), dpr: dpr, w: w, h: h}, nil
}

func devicePixels(v, dpr float64) int {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Ceil(v * dpr))
}

// Resize reallocates the backing pixmap when the logical size changes.
// Degenerate sizes leave the surface untouched and return ErrNoSurface.
func (s *Surface) Resize(w, h float64) error {
	pw, ph := devicePixels(w, s.dpr), devicePixels(h, s.dpr)
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrNoSurface, w, h)
	}
	s.w, s.h = w, h
	return s.ctx.Resize(pw, ph)
}

// Size returns the logical size.
func (s *Surface) Size() (w, h float64) {
	return s.w, s.h
}

// PixelSize returns the backing pixmap size.
func (s *Surface) PixelSize() (w, h int) {
	return s.ctx.Width(), s.ctx.Height()
}

// DPR returns the device pixel ratio.
func (s *Surface) DPR() float64 {
	return s.dpr
}

// Begin clears the canvas and resets the transform to logical px.
func (s *Surface) Begin() *gg.Context {
	s.ctx.Clear()
	s.ctx.Identity()
	s.ctx.Scale(s.dpr, s.dpr)
	return s.ctx
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.ctx.Close()
}
