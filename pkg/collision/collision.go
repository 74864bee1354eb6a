// Package collision tests the player's car against traffic.
package collision

import "github.com/golangdaddy/roadrush/pkg/models/car"

// Detect reports whether the player overlaps any obstacle
func Detect(player car.Car, obstacles []car.Car) bool {
	return FirstHit(player, obstacles) >= 0
}

// FirstHit returns the index of the first obstacle overlapping the player, or -1
func FirstHit(player car.Car, obstacles []car.Car) int {
	body := player.Rect()
	for i, o := range obstacles {
		if body.Intersects(o.Rect()) {
			return i
		}
	}
	return -1
}
