// Package player turns driver commands into movement of the player's car.
package player

import (
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/geom"
	"github.com/golangdaddy/roadrush/pkg/models/car"
)

// Controller owns the player's car
type Controller struct {
	car car.Car

	maxSpeed int
	moveStep int
	bounds   geom.Rect // Road band, full screen height
	spawnX   int       // Spawn center
	spawnY   int
}

// NewController creates a stationary blue car at the spawn point
func NewController(s config.Settings, bounds geom.Rect) *Controller {
	pc := &Controller{
		car:      car.NewCar(0, 0, s.CarWidth, s.CarHeight, car.Blue),
		maxSpeed: s.MaxSpeed,
		moveStep: s.MoveStep,
		bounds:   bounds,
		spawnX:   s.ScreenWidth / 2,
		spawnY:   s.ScreenHeight - s.SpawnOffset,
	}
	pc.Respawn()
	return pc
}

// Car returns a copy of the player's car
func (pc *Controller) Car() car.Car {
	return pc.car
}

// Speed returns the current forward speed
func (pc *Controller) Speed() int {
	return pc.car.Speed
}

// ApplyInput applies a single command
func (pc *Controller) ApplyInput(cmd Command) {
	switch cmd {
	case MoveLeft:
		pc.car.X -= pc.moveStep
	case MoveRight:
		pc.car.X += pc.moveStep
	case Accelerate:
		pc.car.Speed = min(pc.car.Speed+1, pc.maxSpeed)
	case Brake:
		pc.car.Speed = max(pc.car.Speed-1, 0)
	}
}

// ApplyInputs applies every command in the set once, in the fixed order
// left, right, accelerate, brake
func (pc *Controller) ApplyInputs(set CommandSet) {
	for _, cmd := range set.Commands() {
		pc.ApplyInput(cmd)
	}
}

// ClampToRoad pulls the car back inside the road band and the screen
func (pc *Controller) ClampToRoad() {
	pc.car.SetRect(pc.car.Rect().ClampInside(pc.bounds))
}

// Respawn centers the car on the spawn point and stops it
func (pc *Controller) Respawn() {
	pc.car.CenterAt(pc.spawnX, pc.spawnY)
	pc.car.Speed = 0
}
