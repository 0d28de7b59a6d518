package deck

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irah/galleria-icongen/internal/config"
)

// toColorful lifts an 8-bit colour into go-colorful's unit range
func toColorful(c config.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// truncate maps a unit channel back to 8 bits without rounding, so a row
// matches int(top + (bottom-top)*t) for each channel.
func truncate(v float64) uint8 {
	x := v*255 + 1e-9
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}

// RowColor returns the gradient colour of row y out of height rows
func RowColor(top, bottom config.RGB, y, height int) color.NRGBA {
	t := float64(y) / float64(height)
	c := toColorful(top).BlendRgb(toColorful(bottom), t)
	return color.NRGBA{R: truncate(c.R), G: truncate(c.G), B: truncate(c.B), A: 255}
}

// Gradient renders an opaque vertical gradient from top to bottom
func Gradient(width, height int, top, bottom config.RGB) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid gradient size %dx%d", width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := RowColor(top, bottom, y, height)
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, c.A
		}
	}
	return img, nil
}
