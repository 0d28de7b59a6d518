package card

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rotated is a rotated image together with its expanded bounding box
type Rotated struct {
	Image  *image.NRGBA
	Bounds image.Rectangle
}

// Size returns the width and height of the rotated bounding box
func (r Rotated) Size() (int, int) {
	return r.Bounds.Dx(), r.Bounds.Dy()
}

// Rotate turns img counter-clockwise by degrees about its centre. The canvas
// grows to the rotated bounding box and uncovered pixels stay transparent.
func Rotate(img image.Image, degrees float64) Rotated {
	out := imaging.Rotate(img, degrees, color.NRGBA{})
	return Rotated{Image: out, Bounds: out.Bounds()}
}
