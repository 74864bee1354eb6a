package game

import (
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// paint draws render primitives onto the screen in order
func paint(screen *ebiten.Image, prims []render.Primitive, face text.Face) {
	for _, p := range prims {
		switch p := p.(type) {
		case render.Rect:
			vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Color, false)
		case render.Circle:
			vector.FillCircle(screen, float32(p.CX), float32(p.CY), float32(p.R), p.Color, true)
		case render.Polygon:
			fillPolygon(screen, p)
		case render.Text:
			op := &text.DrawOptions{}
			op.GeoM.Scale(p.Scale, p.Scale)
			op.GeoM.Translate(p.X, p.Y)
			op.ColorScale.ScaleWithColor(p.Color)
			text.Draw(screen, p.Label, face, op)
		}
	}
}

// fillPolygon fills a closed polygon path
func fillPolygon(screen *ebiten.Image, p render.Polygon) {
	if len(p.Points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(p.Points[0].X), float32(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(p.Color)
	vector.FillPath(screen, &path, nil, op)
}
