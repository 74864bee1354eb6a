package render

import (
	"fmt"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sim"
)

// HUD layout
const (
	hudX         = 10
	hudLineGap   = 40
	hudTextScale = 2.0
)

// Scene builds the primitives of whole frames for one screen configuration
type Scene struct {
	settings config.Settings
	road     *road.Road
	backdrop []Primitive
}

// NewScene prepares the static backdrop for the given settings
func NewScene(s config.Settings) *Scene {
	rd := road.NewRoad(s)
	return &Scene{
		settings: s,
		road:     rd,
		backdrop: Backdrop(rd, s.ScreenWidth, s.ScreenHeight),
	}
}

// Size returns the frame size in pixels
func (sc *Scene) Size() (int, int) {
	return sc.settings.ScreenWidth, sc.settings.ScreenHeight
}

// Frame returns the primitives for f in painting order: backdrop, lane
// markers, player, obstacles, HUD
func (sc *Scene) Frame(f sim.FrameState) []Primitive {
	markers := sc.road.MarkersAt(f.Scroll)
	prims := make([]Primitive, 0, len(sc.backdrop)+len(markers)+5*(len(f.Obstacles)+1)+4)
	prims = append(prims, sc.backdrop...)
	for _, m := range markers {
		prims = append(prims, fromRect(m, White))
	}

	prims = append(prims, CarIcon(f.Player)...)
	for _, o := range f.Obstacles {
		prims = append(prims, CarIcon(o)...)
	}

	return append(prims, sc.HUD(f)...)
}

// HUD returns the score, speed and high score labels, plus the game over
// banner when the run has ended
func (sc *Scene) HUD(f sim.FrameState) []Primitive {
	hud := []Primitive{
		Text{X: hudX, Y: hudX, Label: fmt.Sprintf("Score: %d", f.Score), Scale: hudTextScale, Color: White},
		Text{X: hudX, Y: hudX + hudLineGap, Label: fmt.Sprintf("Speed: %d", f.Speed), Scale: hudTextScale, Color: White},
		Text{X: hudX, Y: hudX + 2*hudLineGap, Label: fmt.Sprintf("High Score: %d", f.HighScore), Scale: hudTextScale, Color: White},
	}
	if f.GameOver {
		hud = append(hud, Text{
			X:     float64(sc.settings.ScreenWidth/2 - 70),
			Y:     float64(sc.settings.ScreenHeight/2 - 18),
			Label: "Game Over!",
			Scale: hudTextScale,
			Color: Red,
		})
	}
	return hud
}
