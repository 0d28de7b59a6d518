package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/irah/galleria-icongen/internal/config"
)

// Variant is one output shape written for every tier
type Variant struct {
	Name     string
	FileName string
	Mask     func(size int) *image.Alpha
}

// Result lists the files written for a tier
type Result struct {
	Tier  config.Tier
	Dir   string
	Files []string
}

// Exporter derives the per-tier launcher icons from a master image
type Exporter struct {
	cfg      *config.Config
	Variants []Variant
}

// New returns an Exporter writing the round and standard variants
func New(cfg *config.Config) *Exporter {
	return &Exporter{
		cfg: cfg,
		Variants: []Variant{
			{Name: "round", FileName: cfg.Icon.RoundName, Mask: CircleMask},
			{Name: "standard", FileName: cfg.Icon.StandardName, Mask: func(size int) *image.Alpha {
				return RoundedRectMask(size, cfg.Icon.CornerRatio*float64(size))
			}},
		},
	}
}

// Resize shrinks the master to size x size with Lanczos3. It never upscales.
func Resize(master image.Image, size int) (image.Image, error) {
	b := master.Bounds()
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	if size > b.Dx() || size > b.Dy() {
		return nil, fmt.Errorf("icon size %d exceeds master %dx%d", size, b.Dx(), b.Dy())
	}
	out := resize.Thumbnail(uint(size), uint(size), master, resize.Lanczos3)
	if got := out.Bounds(); got.Dx() != size || got.Dy() != size {
		return nil, fmt.Errorf("resized master is %dx%d, want %dx%d (master must be square)",
			got.Dx(), got.Dy(), size, size)
	}
	return out, nil
}

// Render produces one variant of the master at the given size
func Render(master image.Image, size int, v Variant) (*image.NRGBA, error) {
	resized, err := Resize(master, size)
	if err != nil {
		return nil, err
	}
	return ApplyMask(resized, v.Mask(size)), nil
}

// ExportTier writes every variant of a tier into its directory
func (e *Exporter) ExportTier(master image.Image, tier config.Tier) (Result, error) {
	dir := e.cfg.TierDir(tier)
	res := Result{Tier: tier, Dir: dir}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return res, fmt.Errorf("error creating %s: %w", dir, err)
	}

	resized, err := Resize(master, tier.Size)
	if err != nil {
		return res, fmt.Errorf("tier %s: %w", tier.Name, err)
	}

	for _, v := range e.Variants {
		img := ApplyMask(resized, v.Mask(tier.Size))
		path := filepath.Join(dir, v.FileName)
		if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return res, fmt.Errorf("error writing %s: %w", path, err)
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}

// Run exports every configured tier in order, stopping at the first failure.
// onTier, if set, is called after each tier is written.
func (e *Exporter) Run(master image.Image, onTier func(Result)) ([]Result, error) {
	var results []Result
	for _, tier := range e.cfg.Tiers {
		res, err := e.ExportTier(master, tier)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if onTier != nil {
			onTier(res)
		}
	}
	return results, nil
}
