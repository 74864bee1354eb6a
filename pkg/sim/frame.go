package sim

import "github.com/golangdaddy/roadrush/pkg/models/car"

// FrameState is a read-only snapshot handed to renderers after every tick
type FrameState struct {
	Tick      uint64    // Number of simulated ticks since the session started
	Player    car.Car   // Player car, already clamped to the road
	Obstacles []car.Car // Copies of the obstacle slots, in slot order
	Scroll    int       // Road scroll offset in [0, tile period)
	Speed     int       // Player speed
	Score     int
	HighScore int
	GameOver  bool
}
