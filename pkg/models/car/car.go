package car

import (
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/geom"
)

// Palette colors
var (
	Blue   = color.RGBA{0, 0, 255, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
)

// TrafficPalette is the set of colors obstacle cars are painted with
var TrafficPalette = []color.RGBA{Red, Yellow, Green}

// Car is any car on the road, the player's or an obstacle.
// Speed means forward velocity for the player and extra downward drift for an obstacle.
type Car struct {
	X, Y          int // Top-left corner in screen pixels
	Width, Height int
	Color         color.RGBA
	Speed         int
}

// NewCar creates a stationary car with its top-left corner at (x, y)
func NewCar(x, y, width, height int, c color.RGBA) Car {
	return Car{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Color:  c,
	}
}

// Rect returns the car's bounding box
func (c Car) Rect() geom.Rect {
	return geom.NewRect(c.X, c.Y, c.Width, c.Height)
}

// SetRect moves the car to the position of r. The size is left unchanged.
func (c *Car) SetRect(r geom.Rect) {
	c.X = r.X
	c.Y = r.Y
}

// CenterAt moves the car so its center is at (cx, cy)
func (c *Car) CenterAt(cx, cy int) {
	c.X = cx - c.Width/2
	c.Y = cy - c.Height/2
}
