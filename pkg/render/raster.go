package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSegments is the number of edges used to approximate a circle
const circleSegments = 24

// Rasterize paints the primitives, in order, into a new width x height image
func Rasterize(prims []Primitive, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over

	for _, p := range prims {
		switch p := p.(type) {
		case Rect:
			r := image.Rect(round(p.X), round(p.Y), round(p.X+p.W), round(p.Y+p.H))
			draw.Draw(dst, r, image.NewUniform(p.Color), image.Point{}, draw.Over)
		case Polygon:
			fillPath(z, dst, p.Points, p.Color)
		case Circle:
			fillPath(z, dst, circlePoints(p), p.Color)
		case Text:
			drawText(dst, p)
		}
	}
	return dst
}

func fillPath(z *vector.Rasterizer, dst *image.RGBA, pts []Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func circlePoints(c Circle) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{X: c.CX + c.R*math.Cos(a), Y: c.CY + c.R*math.Sin(a)}
	}
	return pts
}

// drawText renders the label with the 7x13 fixed font and scales it up
// with nearest-neighbor sampling to keep the pixel look
func drawText(dst *image.RGBA, t Text) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	w := font.MeasureString(face, t.Label).Ceil()
	h := metrics.Height.Ceil()
	if w == 0 || h == 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(t.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(t.Label)

	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}
	x, y := round(t.X), round(t.Y)
	target := image.Rect(x, y, x+round(float64(w)*scale), y+round(float64(h)*scale))
	xdraw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

// WritePNG rasterizes the primitives and saves them as a PNG file
func WritePNG(path string, prims []Primitive, width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := EncodePNG(file, Rasterize(prims, width, height)); err != nil {
		return err
	}
	return file.Close()
}

func round(v float64) int {
	return int(math.Round(v))
}
