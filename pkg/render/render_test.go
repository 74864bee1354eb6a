package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/models/car"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sim"
)

func bounds(p Primitive) (minX, minY, maxX, maxY float64) {
	switch p := p.(type) {
	case Rect:
		return p.X, p.Y, p.X + p.W, p.Y + p.H
	case Circle:
		return p.CX - p.R, p.CY - p.R, p.CX + p.R, p.CY + p.R
	case Polygon:
		minX, minY = p.Points[0].X, p.Points[0].Y
		maxX, maxY = minX, minY
		for _, pt := range p.Points[1:] {
			minX, maxX = min(minX, pt.X), max(maxX, pt.X)
			minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
		}
	}
	return minX, minY, maxX, maxY
}

func TestCarIconStaysInsideCar(t *testing.T) {
	cars := []car.Car{
		car.NewCar(100, 200, 40, 60, car.Blue),
		car.NewCar(-30, -150, 40, 60, car.Red),
		car.NewCar(0, 0, 80, 90, car.Green),
	}

	for _, c := range cars {
		icon := CarIcon(c)
		if len(icon) != 5 {
			t.Fatalf("expected 5 primitives, got %d", len(icon))
		}
		if icon[0].Fill() != c.Color || icon[1].Fill() != c.Color {
			t.Errorf("body and bonnet should use the car color")
		}
		for i, p := range icon {
			x0, y0, x1, y1 := bounds(p)
			if x0 < float64(c.X) || y0 < float64(c.Y) ||
				x1 > float64(c.X+c.Width) || y1 > float64(c.Y+c.Height) {
				t.Errorf("car %v: primitive %d (%v) leaves the car rect", c.Rect(), i, p)
			}
		}
	}
}

func TestSceneFrame(t *testing.T) {
	s := config.Default()
	sc := NewScene(s)

	f := sim.FrameState{
		Player:    car.NewCar(380, 470, 40, 60, car.Blue),
		Obstacles: []car.Car{car.NewCar(100, 50, 40, 60, car.Red)},
		Scroll:    10,
		Score:     42,
		Speed:     3,
		HighScore: 99,
	}

	prims := sc.Frame(f)
	if prims[0].Fill() != SkyBlue {
		t.Errorf("expected sky first, got %v", prims[0])
	}

	var labels []string
	markers := 0
	for _, p := range prims {
		switch p := p.(type) {
		case Text:
			labels = append(labels, p.Label)
		case Rect:
			if p.W == 10 && p.H == 20 && p.X == 395 {
				markers++
				if p.Y != -30 && int(p.Y-(-30))%40 != 0 {
					t.Errorf("marker at unexpected y=%v", p.Y)
				}
			}
		}
	}
	if markers != 16 {
		t.Errorf("expected 16 lane markers, got %d", markers)
	}
	want := "Score: 42|Speed: 3|High Score: 99"
	if got := strings.Join(labels, "|"); got != want {
		t.Errorf("HUD labels = %q, want %q", got, want)
	}

	f.GameOver = true
	hud := sc.HUD(f)
	last, ok := hud[len(hud)-1].(Text)
	if !ok || last.Label != "Game Over!" || last.Color != Red {
		t.Errorf("expected red game over banner, got %v", hud[len(hud)-1])
	}
	if last.X != 330 || last.Y != 282 {
		t.Errorf("banner at (%v, %v), want (330, 282)", last.X, last.Y)
	}
}

func TestSceneMarkersFollowRoad(t *testing.T) {
	s := config.Default()
	s.MarkerWidth, s.MarkerLength, s.TilePeriod = 6, 24, 50
	sc := NewScene(s)

	for _, scroll := range []int{0, 17, 49} {
		var got []Rect
		for _, p := range sc.Frame(sim.FrameState{Scroll: scroll}) {
			if r, ok := p.(Rect); ok && r.W == 6 && r.H == 24 && r.Color == White {
				got = append(got, r)
			}
		}

		want := road.NewRoad(s).MarkersAt(scroll)
		if len(got) != len(want) {
			t.Fatalf("scroll %d: %d markers drawn, road has %d", scroll, len(got), len(want))
		}
		for i := range want {
			if got[i] != fromRect(want[i], White) {
				t.Errorf("scroll %d: marker %d drawn at %v, road has %v", scroll, i, got[i], want[i])
			}
		}
	}
}

func TestRasterize(t *testing.T) {
	s := config.Default()
	sc := NewScene(s)
	f := sim.FrameState{Player: car.NewCar(380, 470, 40, 60, car.Blue)}

	img := Rasterize(sc.Frame(f), s.ScreenWidth, s.ScreenHeight)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("expected 800x600 image, got %v", b)
	}

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"sky", 10, 300, SkyBlue},
		{"asphalt", 100, 300, Gray},
		{"edge line", 65, 300, White},
		{"player body", 382, 515, car.Blue},
		{"windshield", 400, 500, Black},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d, %d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	s := config.Default()
	sc := NewScene(s)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := WritePNG(path, sc.Frame(sim.FrameState{GameOver: true}), s.ScreenWidth, s.ScreenHeight); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	var buf bytes.Buffer
	img := Rasterize(sc.Frame(sim.FrameState{}), 80, 60)
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("decoded size %v, want 80x60", b)
	}
}
