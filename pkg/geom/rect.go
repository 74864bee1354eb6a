// Package geom holds the integer axis-aligned rectangles used for car bodies,
// the road band and collision tests.
package geom

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y)
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the rectangles share a region of positive area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClampInside moves r the least distance needed to lie inside bounds.
// On an axis where r is larger than bounds, r is centered on bounds instead.
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = clampAxis(r.X, r.W, bounds.X, bounds.W)
	r.Y = clampAxis(r.Y, r.H, bounds.Y, bounds.H)
	return r
}

func clampAxis(pos, size, min, span int) int {
	switch {
	case size >= span:
		return min + span/2 - size/2
	case pos < min:
		return min
	case pos+size > min+span:
		return min + span - size
	default:
		return pos
	}
}
