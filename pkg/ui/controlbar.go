package ui

import (
	"image"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/player"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// flashTicks is how long a button stays highlighted after a click
const flashTicks = 8

// Button is one clickable control. It either issues a driving command or
// requests a restart.
type Button struct {
	Label   string
	Bounds  image.Rectangle
	Command player.Command
	Restart bool

	flash int
}

// ControlBar is the row of buttons under the road:
// Left, Right, Accelerate, Brake and Restart
type ControlBar struct {
	buttons []*Button
	bounds  image.Rectangle
	face    text.Face
}

// NewControlBar lays the buttons out evenly in a bar of the given width and
// height whose top edge is at y
func NewControlBar(width, y, height int) *ControlBar {
	layout := []Button{
		{Label: "< Left", Command: player.MoveLeft},
		{Label: "Right >", Command: player.MoveRight},
		{Label: "Accelerate", Command: player.Accelerate},
		{Label: "Brake", Command: player.Brake},
		{Label: "Restart", Restart: true},
	}

	cb := &ControlBar{
		bounds: image.Rect(0, y, width, y+height),
		face:   text.NewGoXFace(bitmapfont.Face),
	}
	const margin = 8
	slot := width / len(layout)
	for i, proto := range layout {
		b := proto
		b.Bounds = image.Rect(i*slot+margin, y+margin, (i+1)*slot-margin, y+height-margin)
		cb.buttons = append(cb.buttons, &b)
	}
	return cb
}

// Poll returns the commands and restart request clicked or tapped this tick
func (cb *ControlBar) Poll() (player.CommandSet, bool) {
	var points []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Pt(x, y))
	}

	for _, b := range cb.buttons {
		if b.flash > 0 {
			b.flash--
		}
	}
	return cb.Press(points...)
}

// Press resolves screen points to button presses
func (cb *ControlBar) Press(points ...image.Point) (player.CommandSet, bool) {
	var cmds player.CommandSet
	restart := false
	for _, pt := range points {
		for _, b := range cb.buttons {
			if !pt.In(b.Bounds) {
				continue
			}
			b.flash = flashTicks
			if b.Restart {
				restart = true
			} else {
				cmds = cmds.With(b.Command)
			}
		}
	}
	return cmds, restart
}

// Draw renders the bar
func (cb *ControlBar) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(cb.bounds.Min.X), float32(cb.bounds.Min.Y),
		float32(cb.bounds.Dx()), float32(cb.bounds.Dy()),
		color.RGBA{20, 20, 30, 255}, false)

	face := cb.face
	for _, b := range cb.buttons {
		fill := color.RGBA{60, 60, 80, 255}
		if b.flash > 0 {
			fill = color.RGBA{100, 150, 255, 255}
		}
		x, y := float32(b.Bounds.Min.X), float32(b.Bounds.Min.Y)
		w, h := float32(b.Bounds.Dx()), float32(b.Bounds.Dy())
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{150, 150, 170, 255}, false)

		// Center the label in the button
		labelScale := 1.5
		labelWidth := text.Advance(b.Label, face) * labelScale
		labelHeight := face.Metrics().HAscent * labelScale
		op := &text.DrawOptions{}
		op.GeoM.Scale(labelScale, labelScale)
		op.GeoM.Translate(
			float64(b.Bounds.Min.X)+float64(b.Bounds.Dx())/2-labelWidth/2,
			float64(b.Bounds.Min.Y)+float64(b.Bounds.Dy())/2-labelHeight/2,
		)
		op.ColorScale.ScaleWithColor(color.RGBA{230, 230, 240, 255})
		text.Draw(screen, b.Label, face, op)
	}
}
