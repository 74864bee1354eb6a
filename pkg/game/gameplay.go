package game

import (
	"log"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/player"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/sim"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameplayScreen runs one driving session: it samples the keyboard and the
// control bar once per tick, steps the session and draws the resulting frame
type GameplayScreen struct {
	session  *sim.Session
	scene    *render.Scene
	controls *ui.ControlBar
	face     text.Face

	frame sim.FrameState
}

// NewGameplayScreen creates the screen for an existing session
func NewGameplayScreen(s config.Settings, session *sim.Session) *GameplayScreen {
	return &GameplayScreen{
		session:  session,
		scene:    render.NewScene(s),
		controls: ui.NewControlBar(s.ScreenWidth, s.ScreenHeight, s.ControlBarHeight),
		face:     text.NewGoXFace(bitmapfont.Face),
		frame:    session.Frame(),
	}
}

// Update handles input and advances the session by one tick
func (gs *GameplayScreen) Update() error {
	cmds, restart := pollKeyboard()
	clicked, clickedRestart := gs.controls.Poll()
	cmds |= clicked
	restart = restart || clickedRestart

	wasOver := gs.frame.GameOver
	gs.frame = gs.session.Tick(cmds, restart)

	switch {
	case restart:
		log.Printf("[Gameplay] Restarted (high score %d)", gs.frame.HighScore)
	case gs.frame.GameOver && !wasOver:
		log.Printf("[Gameplay] Crashed at tick %d with score %d", gs.frame.Tick, gs.frame.Score)
	}
	return nil
}

// Draw renders the road, the cars, the HUD and the control bar
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	paint(screen, gs.scene.Frame(gs.frame), gs.face)
	gs.controls.Draw(screen)
}

// pollKeyboard samples the driving keys. Steering repeats while held; speed
// changes and restarts fire once per key press.
func pollKeyboard() (player.CommandSet, bool) {
	var cmds player.CommandSet
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		cmds = cmds.With(player.MoveLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		cmds = cmds.With(player.MoveRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		cmds = cmds.With(player.Accelerate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		cmds = cmds.With(player.Brake)
	}
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	return cmds, restart
}
