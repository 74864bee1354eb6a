package render

import (
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/geom"
	"github.com/golangdaddy/roadrush/pkg/road"
)

// Backdrop returns the static part of the scene: sky, asphalt and the two
// white edge lines. It only depends on the road geometry, so shells can build
// it once.
func Backdrop(rd *road.Road, screenWidth, screenHeight int) []Primitive {
	left, right := rd.EdgeLines()
	return []Primitive{
		Rect{W: float64(screenWidth), H: float64(screenHeight), Color: SkyBlue},
		fromRect(rd.Band(), Gray),
		fromRect(left, White),
		fromRect(right, White),
	}
}

func fromRect(r geom.Rect, c color.RGBA) Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H), Color: c}
}
