// Package render turns frames into backend-neutral draw primitives. The
// desktop shell paints them with Ebiten; Rasterize paints them into an
// image.RGBA for PNG output.
package render

import "image/color"

// Colors of the scene
var (
	White   = color.RGBA{255, 255, 255, 255}
	Black   = color.RGBA{0, 0, 0, 255}
	Gray    = color.RGBA{100, 100, 100, 255}
	SkyBlue = color.RGBA{135, 206, 235, 255}
	Red     = color.RGBA{255, 0, 0, 255}
)

// Primitive is one filled shape or label. Concrete types are Rect, Polygon,
// Circle and Text.
type Primitive interface {
	Fill() color.RGBA
}

// Point is a position in screen pixels
type Point struct {
	X, Y float64
}

// Rect is a filled axis-aligned rectangle
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Polygon is a filled convex polygon
type Polygon struct {
	Points []Point
	Color  color.RGBA
}

// Circle is a filled circle
type Circle struct {
	CX, CY, R float64
	Color     color.RGBA
}

// Text is a single line label with its top-left corner at (X, Y).
// Scale is relative to the backend's base font size.
type Text struct {
	X, Y  float64
	Label string
	Scale float64
	Color color.RGBA
}

func (r Rect) Fill() color.RGBA    { return r.Color }
func (p Polygon) Fill() color.RGBA { return p.Color }
func (c Circle) Fill() color.RGBA  { return c.Color }
func (t Text) Fill() color.RGBA    { return t.Color }
