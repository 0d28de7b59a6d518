package deck

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/irah/galleria-icongen/internal/card"
	"github.com/irah/galleria-icongen/internal/config"
)

// Layer is one card of the stack with its placement
type Layer struct {
	Name   string
	Card   card.Card
	Angle  float64 // degrees, counter-clockwise
	Offset image.Point
}

// Deck represents the photo stack drawn on the master icon
type Deck struct {
	Size       int
	Background config.Background
	Layers     []Layer // back to front
}

// NewDeck builds the stack described by the configuration
func NewDeck(cfg *config.Config) (*Deck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	w := int(float64(cfg.MasterSize) * cfg.Card.WidthRatio)
	h := int(float64(cfg.MasterSize) * cfg.Card.HeightRatio)

	d := &Deck{
		Size:       cfg.MasterSize,
		Background: cfg.Background,
	}
	for _, l := range cfg.Layers {
		d.Layers = append(d.Layers, Layer{
			Name: l.Name,
			Card: card.Card{
				Width:       w,
				Height:      h,
				Fill:        color.NRGBA{R: cfg.Card.Fill.R, G: cfg.Card.Fill.G, B: cfg.Card.Fill.B, A: l.Alpha},
				CornerRatio: cfg.Card.CornerRatio,
				Decorated:   l.Decorated,
			},
			Angle:  l.Angle,
			Offset: image.Pt(int(cfg.Scale(l.OffsetX)), int(cfg.Scale(l.OffsetY))),
		})
	}
	return d, nil
}

// Placement returns the top-left corner for an image of the given bounds
// centred on the canvas and shifted by offset.
func (d *Deck) Placement(bounds image.Rectangle, offset image.Point) image.Point {
	c := float64(d.Size) / 2
	x := c - float64(bounds.Dx())/2 + float64(offset.X)
	y := c - float64(bounds.Dy())/2 + float64(offset.Y)
	return image.Pt(int(x), int(y))
}

// Compose renders the master icon: gradient, then each layer back to front
func (d *Deck) Compose() (*image.NRGBA, error) {
	master, err := Gradient(d.Size, d.Size, d.Background.Top, d.Background.Bottom)
	if err != nil {
		return nil, fmt.Errorf("error rendering background: %w", err)
	}

	for _, l := range d.Layers {
		img, err := l.Card.Build()
		if err != nil {
			return nil, fmt.Errorf("error building %s card: %w", l.Name, err)
		}
		r := card.Rotate(img, l.Angle)
		master = Over(master, r.Image, d.Placement(r.Bounds, l.Offset))
	}

	if b := master.Bounds(); b.Dx() != b.Dy() {
		return nil, fmt.Errorf("master icon is not square: %dx%d", b.Dx(), b.Dy())
	}
	return master, nil
}

// Compose builds the master icon for the configuration
func Compose(cfg *config.Config) (*image.NRGBA, error) {
	d, err := NewDeck(cfg)
	if err != nil {
		return nil, err
	}
	return d.Compose()
}

// Over composites src onto dst at pt using source-over blending
func Over(dst, src image.Image, pt image.Point) *image.NRGBA {
	return imaging.Overlay(dst, src, pt, 1.0)
}
