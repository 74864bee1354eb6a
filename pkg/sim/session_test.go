package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/player"
)

// zeroRand spawns every obstacle at the far left of the road, well clear of
// the player's spawn point, with no drift
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.Default(), WithRand(zeroRand{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

var none = player.NewCommandSet()

func TestNewSessionRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		s := config.Default()
		s.ScreenWidth, s.ScreenHeight = dims[0], dims[1]
		if _, err := NewSession(s); !errors.Is(err, config.ErrInvalidConfiguration) {
			t.Errorf("%dx%d: expected ErrInvalidConfiguration, got %v", dims[0], dims[1], err)
		}
	}
}

func TestInitialState(t *testing.T) {
	s := newTestSession(t)
	f := s.Frame()

	if f.GameOver || s.State() != StatePlaying {
		t.Fatal("new session should be playing")
	}
	if f.Score != 0 || f.HighScore != 0 || f.Scroll != 0 || f.Speed != 0 {
		t.Errorf("unexpected initial frame %+v", f)
	}
	if len(f.Obstacles) != 5 {
		t.Errorf("expected 5 obstacles, got %d", len(f.Obstacles))
	}
}

func TestAccelerateScenario(t *testing.T) {
	s := newTestSession(t)

	f := s.Tick(player.NewCommandSet(player.Accelerate), false)
	if f.Speed != 1 || f.Score != 1 {
		t.Fatalf("expected speed 1 and score 1, got speed %d score %d", f.Speed, f.Score)
	}
	if f.Scroll != 1 {
		t.Errorf("expected scroll 1, got %d", f.Scroll)
	}

	for i := 0; i < 9; i++ {
		f = s.Tick(player.NewCommandSet(player.Accelerate), false)
	}
	if f.Speed != 10 {
		t.Fatalf("expected speed 10, got %d", f.Speed)
	}
	for i := 0; i < 3; i++ {
		f = s.Tick(player.NewCommandSet(player.Accelerate), false)
		if f.Speed != 10 {
			t.Fatalf("expected speed to stay at 10, got %d", f.Speed)
		}
	}
}

func TestObstaclesMoveWithPlayerSpeed(t *testing.T) {
	s := newTestSession(t)
	before := s.Frame().Obstacles

	f := s.Tick(player.NewCommandSet(player.Accelerate), false)
	for i, o := range f.Obstacles {
		if o.Y != before[i].Y+1 {
			t.Errorf("obstacle %d y=%d, want %d", i, o.Y, before[i].Y+1)
		}
	}
}

func crash(t *testing.T, s *Session) {
	t.Helper()
	obstacle := &s.traffic.Cars()[0]
	obstacle.SetRect(s.player.Car().Rect())
	obstacle.Speed = 0
}

func TestCollisionFreezesScore(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 3; i++ {
		s.Tick(player.NewCommandSet(player.Accelerate), false)
	}
	if s.Score() != 6 {
		t.Fatalf("expected score 6 before the crash, got %d", s.Score())
	}

	crash(t, s)
	f := s.Tick(none, false)
	if !f.GameOver || s.State() != StateGameOver {
		t.Fatal("expected game over after overlapping an obstacle")
	}
	if f.Score != 6 {
		t.Errorf("score should not grow on the crash tick, got %d", f.Score)
	}

	frozen := f
	for i := 0; i < 10; i++ {
		f = s.Tick(player.NewCommandSet(player.Accelerate, player.MoveLeft), false)
	}
	if f.Score != 6 || f.HighScore != 6 {
		t.Errorf("expected score and high score frozen at 6, got %d / %d", f.Score, f.HighScore)
	}
	if f.Player != frozen.Player || f.Scroll != frozen.Scroll || f.Tick != frozen.Tick {
		t.Error("entities moved while the game was over")
	}
}

func TestRestartResets(t *testing.T) {
	for _, gameOver := range []bool{false, true} {
		s := newTestSession(t)
		spawn := s.Frame().Player

		for i := 0; i < 7; i++ {
			s.Tick(player.NewCommandSet(player.Accelerate, player.MoveLeft), false)
		}
		if gameOver {
			crash(t, s)
			s.Tick(none, false)
			if s.State() != StateGameOver {
				t.Fatal("expected game over")
			}
		}
		best := s.HighScore()

		f := s.Tick(none, true)
		if f.GameOver {
			t.Errorf("gameOver=%v: still over after restart", gameOver)
		}
		if f.Score != 0 || f.Scroll != 0 || f.Speed != 0 {
			t.Errorf("gameOver=%v: expected zeroed score/scroll/speed, got %d/%d/%d", gameOver, f.Score, f.Scroll, f.Speed)
		}
		if f.Player.X != spawn.X || f.Player.Y != spawn.Y {
			t.Errorf("gameOver=%v: expected player at spawn (%d, %d), got (%d, %d)", gameOver, spawn.X, spawn.Y, f.Player.X, f.Player.Y)
		}
		if f.HighScore != best || best == 0 {
			t.Errorf("gameOver=%v: high score should survive restart, got %d want %d", gameOver, f.HighScore, best)
		}
		for i, o := range f.Obstacles {
			if o.Y != -200 {
				t.Errorf("gameOver=%v: obstacle %d not respawned, y=%d", gameOver, i, o.Y)
			}
		}
	}
}

func TestScoreProperties(t *testing.T) {
	s, err := NewSession(config.Default(), WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	input := rand.New(rand.NewSource(11))
	all := []player.Command{player.MoveLeft, player.MoveRight, player.Accelerate, player.Brake}

	prev := s.Frame()
	maxSeen := 0
	for i := 0; i < 5000; i++ {
		var cmds player.CommandSet
		for _, c := range all {
			if input.Intn(3) == 0 {
				cmds = cmds.With(c)
			}
		}
		restart := input.Intn(400) == 0

		f := s.Tick(cmds, restart)

		if f.Scroll < 0 || f.Scroll >= 40 {
			t.Fatalf("tick %d: scroll %d out of range", i, f.Scroll)
		}
		if r := f.Player.Rect(); r.X < 50 || r.Right() > 750 {
			t.Fatalf("tick %d: player %v off the road", i, r)
		}
		if !restart {
			if prev.GameOver && f.Score != prev.Score {
				t.Fatalf("tick %d: score changed from %d to %d while game over", i, prev.Score, f.Score)
			}
			if f.Score < prev.Score {
				t.Fatalf("tick %d: score dropped from %d to %d", i, prev.Score, f.Score)
			}
		}
		maxSeen = max(maxSeen, f.Score)
		if f.HighScore != maxSeen {
			t.Fatalf("tick %d: high score %d, max observed %d", i, f.HighScore, maxSeen)
		}
		prev = f
	}
}
