package card

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Shape is the kind of a decorative glyph
type Shape int

const (
	Circle Shape = iota
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Point is a position expressed as fractions of the card width and height
type Point struct {
	X, Y float64
}

// Glyph is one decorative shape in card-relative coordinates.
// Circles use Points[0] as centre and Radius as a fraction of the card width.
type Glyph struct {
	Name   string
	Shape  Shape
	Points []Point
	Radius float64
	Color  color.NRGBA
}

// sunRadius is 30px on a 512px wide card
const sunRadius = 30.0 / 512.0

// Glyphs returns the "image" pictogram drawn on the front card, in paint order
func Glyphs() []Glyph {
	return []Glyph{
		{
			Name:   "sun",
			Shape:  Circle,
			Points: []Point{{0.7, 0.3}},
			Radius: sunRadius,
			Color:  color.NRGBA{R: 255, G: 193, B: 7, A: 255}, // amber
		},
		{
			Name:   "mountain",
			Shape:  Triangle,
			Points: []Point{{0, 1}, {0.3, 0.4}, {0.6, 1}},
			Color:  color.NRGBA{R: 76, G: 175, B: 80, A: 255}, // green
		},
		{
			Name:   "peak",
			Shape:  Triangle,
			Points: []Point{{0.4, 1}, {0.7, 0.2}, {1, 1}},
			Color:  color.NRGBA{R: 139, G: 195, B: 74, A: 255}, // light green
		},
	}
}

// Vertices returns the glyph points scaled to a w x h card
func (g Glyph) Vertices(w, h float64) []gg.Point {
	out := make([]gg.Point, len(g.Points))
	for i, p := range g.Points {
		out[i] = gg.Point{X: p.X * w, Y: p.Y * h}
	}
	return out
}

// Draw paints the glyph onto a w x h card context
func (g Glyph) Draw(dc *gg.Context, w, h float64) {
	pts := g.Vertices(w, h)
	if len(pts) == 0 {
		return
	}
	dc.SetColor(g.Color)
	switch g.Shape {
	case Circle:
		dc.DrawCircle(pts[0].X, pts[0].Y, g.Radius*w)
	case Triangle:
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}
	dc.Fill()
}
