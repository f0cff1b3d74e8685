package platform

import "math"

// Rect is an axis-aligned rectangle in document or viewport px.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside or on the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Intersect returns the overlapping area of r and o (zero size if disjoint).
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Area returns W*H, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Metrics is the document/viewport geometry that scroll progress and
// visibility are derived from.
type Metrics struct {
	ScrollTop      float64
	DocumentHeight float64
	ViewportWidth  float64
	ViewportHeight float64
}

// MaxScroll is the largest valid ScrollTop, never negative.
func (m Metrics) MaxScroll() float64 {
	return math.Max(0, m.DocumentHeight-m.ViewportHeight)
}

// Visible is the viewport expressed in document coordinates.
func (m Metrics) Visible() Rect {
	return Rect{X: 0, Y: m.ScrollTop, W: m.ViewportWidth, H: m.ViewportHeight}
}
