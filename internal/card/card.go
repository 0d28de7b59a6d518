package card

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Card represents one rounded "photo" of the stack
type Card struct {
	Width       int
	Height      int
	Fill        color.NRGBA // Fill.A is the card opacity
	CornerRatio float64     // corner radius as a fraction of Width
	Decorated   bool        // draw the sun and mountains on top
}

// Radius returns the corner radius in pixels
func (c Card) Radius() float64 {
	return c.CornerRatio * float64(c.Width)
}

// Build renders the card onto a transparent canvas of exactly Width x Height
func (c Card) Build() (*image.NRGBA, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("invalid card size %dx%d", c.Width, c.Height)
	}

	dc := gg.NewContext(c.Width, c.Height)
	dc.SetColor(c.Fill)
	dc.DrawRoundedRectangle(0, 0, float64(c.Width), float64(c.Height), c.Radius())
	dc.Fill()

	if c.Decorated {
		for _, g := range Glyphs() {
			g.Draw(dc, float64(c.Width), float64(c.Height))
		}
	}

	return imaging.Clone(dc.Image()), nil
}
