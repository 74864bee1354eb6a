// Package traffic manages the fixed pool of obstacle cars that drive down the road.
package traffic

import (
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/models/car"
)

// RandSource supplies the randomness for spawning. *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Manager owns the obstacle slots. Slots are never reallocated: a car that
// leaves the screen is respawned in place, so indexes and pointers stay valid.
type Manager struct {
	cars []car.Car
	rng  RandSource

	screenHeight int
	minX, maxX   int
	minY, maxY   int
	maxDrift     int
}

// NewManager creates the pool, paints every car from the traffic palette and
// gives each one a spawn position
func NewManager(s config.Settings, rng RandSource) *Manager {
	m := &Manager{
		cars:         make([]car.Car, s.ObstacleCount),
		rng:          rng,
		screenHeight: s.ScreenHeight,
		minX:         s.RoadInset,
		maxX:         s.ScreenWidth - s.RoadInset - s.CarWidth,
		minY:         s.SpawnMinY,
		maxY:         s.SpawnMaxY,
		maxDrift:     s.MaxDrift,
	}

	for i := range m.cars {
		paint := car.TrafficPalette[rng.Intn(len(car.TrafficPalette))]
		m.cars[i] = car.NewCar(0, 0, s.CarWidth, s.CarHeight, paint)
		m.Reset(i)
	}

	return m
}

// Cars returns the slots. Elements are the live cars, so &Cars()[i] is a
// stable handle to slot i. Callers must not append to the slice.
func (m *Manager) Cars() []car.Car {
	return m.cars
}

// Snapshot returns a copy of every car
func (m *Manager) Snapshot() []car.Car {
	out := make([]car.Car, len(m.cars))
	copy(out, m.cars)
	return out
}

// Reset respawns slot i above the screen with a new lane position and drift
func (m *Manager) Reset(i int) {
	c := &m.cars[i]
	c.X = m.randInt(m.minX, m.maxX)
	c.Y = m.randInt(m.minY, m.maxY)
	c.Speed = m.randInt(0, m.maxDrift)
}

// ResetAll respawns every slot
func (m *Manager) ResetAll() {
	for i := range m.cars {
		m.Reset(i)
	}
}

// Advance moves every car down by the player's speed plus its own drift and
// respawns cars whose top edge has passed the bottom of the screen
func (m *Manager) Advance(playerSpeed int) {
	for i := range m.cars {
		c := &m.cars[i]
		c.Y += playerSpeed + c.Speed
		if c.Y > m.screenHeight {
			m.Reset(i)
		}
	}
}

// randInt returns a uniform integer in [lo, hi]
func (m *Manager) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo+1)
}
