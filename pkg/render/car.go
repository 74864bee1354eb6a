package render

import (
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/models/car"
)

// Reference size the car icon is designed at
const (
	iconWidth  = 40.0
	iconHeight = 60.0
)

// CarIcon returns the top-down car drawing for c, scaled to the car's size:
// a body with a pointed bonnet, a dark windshield and two rear wheels.
// The player and the obstacles share it.
func CarIcon(c car.Car) []Primitive {
	sx := float64(c.Width) / iconWidth
	sy := float64(c.Height) / iconHeight
	ox, oy := float64(c.X), float64(c.Y)

	pt := func(x, y float64) Point {
		return Point{X: ox + x*sx, Y: oy + y*sy}
	}
	rect := func(x, y, w, h float64, paint color.RGBA) Rect {
		return Rect{X: ox + x*sx, Y: oy + y*sy, W: w * sx, H: h * sy, Color: paint}
	}
	// Wheels stay round on stretched cars
	wheelR := 5 * min(sx, sy)

	return []Primitive{
		rect(0, 10, 40, 40, c.Color),
		Polygon{Points: []Point{pt(0, 10), pt(20, 0), pt(40, 10)}, Color: c.Color},
		rect(5, 15, 30, 20, Black),
		Circle{CX: ox + 10*sx, CY: oy + 50*sy, R: wheelR, Color: Black},
		Circle{CX: ox + 30*sx, CY: oy + 50*sy, R: wheelR, Color: Black},
	}
}
