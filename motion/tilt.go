package motion

import "github.com/automoto/motionfx/platform"

// Tilt is the 3D lean of a card toward the pointer, in degrees, plus the
// pointer position inside the card as percentages for the shine highlight.
type Tilt struct {
	RotateX, RotateY float64
	XPct, YPct       float64
}

// TiltAt computes the lean for a pointer at (x, y) over card. A degenerate
// card yields no tilt.
func TiltAt(card platform.Rect, x, y float64) Tilt {
	if card.W <= 0 || card.H <= 0 {
		return Tilt{XPct: 50, YPct: 50}
	}
	xp := (x - card.X) / card.W * 100
	yp := (y - card.Y) / card.H * 100
	return Tilt{
		RotateX: (yp - 50) * 0.1,
		RotateY: (xp - 50) * 0.1,
		XPct:    xp,
		YPct:    yp,
	}
}
