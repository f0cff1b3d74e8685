package field

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// parseStops converts hex colour strings into gg colours with alpha a.
func parseStops(hexes []string, a float64) ([]gg.RGBA, error) {
	out := make([]gg.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colour stop %q: %w", h, err)
		}
		out = append(out, toRGBA(c, a))
	}
	return out, nil
}

func toRGBA(c colorful.Color, a float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}
