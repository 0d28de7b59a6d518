package export

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// CircleMask returns an anti-aliased mask of the circle inscribed in a size x size square
func CircleMask(size int) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	r := float32(size) / 2
	ellipse(z, r, r, r)
	return rasterize(z, size)
}

// RoundedRectMask returns a size x size mask with corners rounded by radius
func RoundedRectMask(size int, radius float64) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	s := float32(size)
	r := float32(radius)
	if r > s/2 {
		r = s / 2
	}
	if r <= 0 {
		z.MoveTo(0, 0)
		z.LineTo(s, 0)
		z.LineTo(s, s)
		z.LineTo(0, s)
		z.ClosePath()
		return rasterize(z, size)
	}

	k := r * (1 - kappa)
	z.MoveTo(r, 0)
	z.LineTo(s-r, 0)
	z.CubeTo(s-k, 0, s, k, s, r)
	z.LineTo(s, s-r)
	z.CubeTo(s, s-k, s-k, s, s-r, s)
	z.LineTo(r, s)
	z.CubeTo(k, s, 0, s-k, 0, s-r)
	z.LineTo(0, r)
	z.CubeTo(0, k, k, 0, r, 0)
	z.ClosePath()
	return rasterize(z, size)
}

func ellipse(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

func rasterize(z *vector.Rasterizer, size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// ApplyMask copies src through mask onto a fully transparent canvas of the mask's size
func ApplyMask(src image.Image, mask *image.Alpha) *image.NRGBA {
	b := mask.Bounds()
	dst := image.NewNRGBA(b)
	draw.DrawMask(dst, b, src, src.Bounds().Min, mask, b.Min, draw.Over)
	return dst
}
