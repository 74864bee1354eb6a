package car

import (
	"testing"

	"github.com/golangdaddy/roadrush/pkg/geom"
)

func TestCenterAt(t *testing.T) {
	c := NewCar(0, 0, 40, 60, Blue)
	c.CenterAt(400, 500)

	if c.X != 380 || c.Y != 470 {
		t.Fatalf("expected top-left (380, 470), got (%d, %d)", c.X, c.Y)
	}
	cx, cy := c.Rect().Center()
	if cx != 400 || cy != 500 {
		t.Errorf("expected center (400, 500), got (%d, %d)", cx, cy)
	}
}

func TestSetRectKeepsSize(t *testing.T) {
	c := NewCar(10, 20, 40, 60, Red)
	c.SetRect(geom.NewRect(70, 80, 999, 999))

	if c.X != 70 || c.Y != 80 {
		t.Errorf("expected position (70, 80), got (%d, %d)", c.X, c.Y)
	}
	if c.Width != 40 || c.Height != 60 {
		t.Errorf("size changed to %dx%d", c.Width, c.Height)
	}
}
