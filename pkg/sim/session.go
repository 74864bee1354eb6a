// Package sim runs the per-tick simulation of one driving session: input,
// road scroll, traffic, collisions and scoring.
package sim

import (
	"math/rand"
	"time"

	"github.com/golangdaddy/roadrush/pkg/collision"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/player"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/traffic"
)

// State is the phase of a session
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// RandSource supplies obstacle spawn randomness
type RandSource = traffic.RandSource

// Option customizes a new session
type Option func(*options)

type options struct {
	rng RandSource
}

// WithRand injects the random source used for obstacle spawns
func WithRand(rng RandSource) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// Session is the complete state of one game. It is not safe for concurrent
// use; Manager serializes access when sessions are shared.
type Session struct {
	player  *player.Controller
	traffic *traffic.Manager
	road    *road.Road

	state     State
	score     int
	highScore int
	tick      uint64
}

// NewSession validates the settings and creates a session in the playing state
func NewSession(s config.Settings, opts ...Option) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rd := road.NewRoad(s)
	return &Session{
		player:  player.NewController(s, rd.Band()),
		traffic: traffic.NewManager(s, o.rng),
		road:    rd,
		state:   StatePlaying,
	}, nil
}

// State returns the current phase
func (s *Session) State() State {
	return s.state
}

// Score returns the current score
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score of the session
func (s *Session) HighScore() int {
	return s.highScore
}

// Tick runs one simulation step. A restart request is honored first, in any
// state. While the game is over and no restart is requested, nothing moves
// and the input is ignored.
func (s *Session) Tick(cmds player.CommandSet, restart bool) FrameState {
	if restart {
		s.Restart()
	}
	if s.state == StateGameOver {
		return s.Frame()
	}

	s.tick++

	s.player.ApplyInputs(cmds)
	s.player.ClampToRoad()

	speed := s.player.Speed()
	s.road.Advance(speed)
	s.traffic.Advance(speed)

	if collision.Detect(s.player.Car(), s.traffic.Cars()) {
		s.state = StateGameOver
	}

	if s.state == StatePlaying {
		s.score += speed
	}
	s.highScore = max(s.highScore, s.score)

	return s.Frame()
}

// Restart starts a new run. The high score is kept.
func (s *Session) Restart() {
	s.state = StatePlaying
	s.score = 0
	s.road.Reset()
	s.player.Respawn()
	s.traffic.ResetAll()
}

// Frame returns everything a renderer needs to draw the current state
func (s *Session) Frame() FrameState {
	p := s.player.Car()
	return FrameState{
		Tick:      s.tick,
		Player:    p,
		Obstacles: s.traffic.Snapshot(),
		Scroll:    s.road.Scroll(),
		Speed:     p.Speed,
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  s.state == StateGameOver,
	}
}
