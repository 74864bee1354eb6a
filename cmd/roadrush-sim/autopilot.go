package main

import (
	"github.com/golangdaddy/roadrush/pkg/geom"
	"github.com/golangdaddy/roadrush/pkg/models/car"
	"github.com/golangdaddy/roadrush/pkg/player"
	"github.com/golangdaddy/roadrush/pkg/sim"
)

// Autopilot drives a session: it holds a cruising speed and steers away from
// the nearest car coming down its column
type Autopilot struct {
	TargetSpeed int
	Lookahead   int       // How far above the player a car counts as a threat
	Road        geom.Rect // Band the player is confined to
}

// Decide returns the commands for the next tick
func (a Autopilot) Decide(f sim.FrameState) player.CommandSet {
	var cmds player.CommandSet
	switch {
	case f.Speed < a.TargetSpeed:
		cmds = cmds.With(player.Accelerate)
	case f.Speed > a.TargetSpeed:
		cmds = cmds.With(player.Brake)
	}

	threat, ok := a.nearestThreat(f.Player, f.Obstacles)
	if !ok {
		return cmds
	}

	pc, _ := f.Player.Rect().Center()
	tc, _ := threat.Rect().Center()
	roomLeft := f.Player.X - a.Road.X
	roomRight := a.Road.Right() - f.Player.Rect().Right()

	// Dodge away from the threat, unless the wall is in the way
	goRight := tc < pc || (tc == pc && roomRight >= roomLeft)
	if goRight && roomRight < threat.Width && roomLeft > roomRight {
		goRight = false
	} else if !goRight && roomLeft < threat.Width && roomRight > roomLeft {
		goRight = true
	}

	if goRight {
		cmds = cmds.With(player.MoveRight)
	} else {
		cmds = cmds.With(player.MoveLeft)
	}
	return cmds
}

// nearestThreat finds the closest car above the player whose column overlaps
// the player's
func (a Autopilot) nearestThreat(p car.Car, obstacles []car.Car) (car.Car, bool) {
	var best car.Car
	found := false
	for _, o := range obstacles {
		if o.X >= p.X+p.Width || p.X >= o.X+o.Width {
			continue
		}
		gap := p.Y - (o.Y + o.Height)
		if gap > a.Lookahead || o.Y > p.Y+p.Height {
			continue
		}
		if !found || o.Y > best.Y {
			best, found = o, true
		}
	}
	return best, found
}
