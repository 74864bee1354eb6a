package game

import (
	"log"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	settings      config.Settings
	currentScreen Screen
}

// NewGame creates a new game instance with a fresh session
func NewGame(s config.Settings, opts ...sim.Option) (*Game, error) {
	session, err := sim.NewSession(s, opts...)
	if err != nil {
		return nil, err
	}

	log.Printf("Game started: %dx%d road, %d obstacles", s.ScreenWidth, s.ScreenHeight, s.ObstacleCount)
	return &Game{
		settings:      s,
		currentScreen: NewGameplayScreen(s, session),
	}, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the road plus the control bar below it
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.settings.ScreenWidth, g.settings.ScreenHeight + g.settings.ControlBarHeight
}

// WindowSize returns the initial window size
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
