package validator

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/irah/galleria-icongen/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ResDir  string
	Tiers   []config.Tier
	Files   []string
	Results ValidationResults
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		ResDir:  cfg.ResDir,
		Tiers:   cfg.Tiers,
		Files:   []string{cfg.Icon.RoundName, cfg.Icon.StandardName},
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	info, err := os.Stat(v.ResDir)
	if os.IsNotExist(err) {
		return v.Results, fmt.Errorf("resource directory not found: %s", v.ResDir)
	}
	if err != nil {
		return v.Results, fmt.Errorf("error reading %s: %w", v.ResDir, err)
	}
	if !info.IsDir() {
		return v.Results, fmt.Errorf("%s is not a directory", v.ResDir)
	}

	for _, tier := range v.Tiers {
		v.validateTier(tier)
	}

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateTier checks that a tier directory holds exactly the expected icons
func (v *Validator) validateTier(tier config.Tier) {
	dir := filepath.Join(v.ResDir, tier.Name)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		v.errorf("%s directory not found", tier.Name)
		return
	}
	if err != nil {
		v.errorf("error reading %s directory: %v", tier.Name, err)
		return
	}

	expected := make(map[string]bool)
	for _, name := range v.Files {
		expected[name] = true
		v.validateIcon(tier, filepath.Join(dir, name))
	}

	// Other launcher resources may share the folder, only flag PNGs we could have left behind
	for _, entry := range entries {
		if entry.IsDir() || expected[entry.Name()] {
			continue
		}
		if filepath.Ext(entry.Name()) == ".png" {
			v.warnf("%s: unexpected file %s", tier.Name, entry.Name())
		}
	}
}

// validateIcon checks one generated PNG
func (v *Validator) validateIcon(tier config.Tier, path string) {
	label := filepath.Join(tier.Name, filepath.Base(path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		v.errorf("%s is missing", label)
		return
	}

	img, err := imaging.Open(path)
	if err != nil {
		v.errorf("%s is not a valid image: %v", label, err)
		return
	}

	size := img.Bounds().Size()
	if size != image.Pt(tier.Size, tier.Size) {
		v.errorf("%s is %dx%d, expected %dx%d", label, size.X, size.Y, tier.Size, tier.Size)
		return
	}

	if !hasAlpha(img) {
		v.errorf("%s has no alpha channel", label)
		return
	}

	b := img.Bounds()
	for _, p := range []image.Point{
		b.Min,
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	} {
		if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0 {
			v.errorf("%s corner (%d,%d) is not transparent", label, p.X, p.Y)
			return
		}
	}

	if _, _, _, a := img.At(b.Min.X+size.X/2, b.Min.Y+size.Y/2).RGBA(); a == 0 {
		v.warnf("%s is transparent at the centre", label)
	}
}

// hasAlpha reports whether a decoded PNG carried an alpha channel. The PNG
// decoder returns *image.RGBA for truecolour images without one.
func hasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return true
	}
	return false
}
