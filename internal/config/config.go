package config

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ReferenceSize is the master size the layer offsets are expressed in.
const ReferenceSize = 1024

// RGB is an opaque 8-bit colour
type RGB struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
}

// Background describes the vertical gradient behind the card stack
type Background struct {
	Top    RGB `toml:"top"`
	Bottom RGB `toml:"bottom"`
}

// CardSpec sizes every card relative to the master canvas
type CardSpec struct {
	WidthRatio  float64 `toml:"width_ratio"`
	HeightRatio float64 `toml:"height_ratio"`
	CornerRatio float64 `toml:"corner_ratio"` // of card width
	Fill        RGB     `toml:"fill"`
}

// Layer is one card of the stack. Offsets are pixels at ReferenceSize.
type Layer struct {
	Name      string  `toml:"name"`
	Alpha     uint8   `toml:"alpha"`
	Angle     float64 `toml:"angle"`
	OffsetX   int     `toml:"offset_x"`
	OffsetY   int     `toml:"offset_y"`
	Decorated bool    `toml:"decorated"`
}

// Tier is one named output density bucket
type Tier struct {
	Name string `toml:"name"`
	Size int    `toml:"size"`
}

// IconSpec names the output files and shapes the standard variant
type IconSpec struct {
	RoundName    string  `toml:"round_name"`
	StandardName string  `toml:"standard_name"`
	CornerRatio  float64 `toml:"corner_ratio"` // of tier size
}

// Config represents every constant the generator runs with
type Config struct {
	ResDir     string     `toml:"res_dir"`
	MasterSize int        `toml:"master_size"`
	Background Background `toml:"background"`
	Card       CardSpec   `toml:"card"`
	Layers     []Layer    `toml:"layers"` // back to front
	Tiers      []Tier     `toml:"tiers"`
	Icon       IconSpec   `toml:"icon"`
}

// DefaultResDir returns the Android resource directory relative to the working directory
func DefaultResDir() string {
	return filepath.Join("app", "src", "main", "res")
}

// Default returns the fixed configuration
func Default() *Config {
	return &Config{
		ResDir:     DefaultResDir(),
		MasterSize: ReferenceSize,
		Background: Background{
			Top:    RGB{103, 58, 183}, // deep purple 500
			Bottom: RGB{63, 81, 181},  // indigo 500
		},
		Card: CardSpec{
			WidthRatio:  0.5,
			HeightRatio: 0.45,
			CornerRatio: 0.1,
			Fill:        RGB{255, 255, 255},
		},
		Layers: []Layer{
			{Name: "back", Alpha: 128, Angle: 15, OffsetX: -40, OffsetY: -40},
			{Name: "mid", Alpha: 180, Angle: -10, OffsetX: 30, OffsetY: -20},
			{Name: "front", Alpha: 255, Decorated: true},
		},
		Tiers: []Tier{
			{Name: "mipmap-mdpi", Size: 48},
			{Name: "mipmap-hdpi", Size: 72},
			{Name: "mipmap-xhdpi", Size: 96},
			{Name: "mipmap-xxhdpi", Size: 144},
			{Name: "mipmap-xxxhdpi", Size: 192},
		},
		Icon: IconSpec{
			RoundName:    "ic_launcher_round.png",
			StandardName: "ic_launcher.png",
			CornerRatio:  0.2,
		},
	}
}

// Scale converts a pixel length at ReferenceSize to the configured master size
func (c *Config) Scale(px int) float64 {
	return float64(px) * float64(c.MasterSize) / ReferenceSize
}

// TierDir returns the output directory of a tier
func (c *Config) TierDir(t Tier) string {
	return filepath.Join(c.ResDir, t.Name)
}

// Validate rejects geometry that would produce degenerate images
func (c *Config) Validate() error {
	if c.ResDir == "" {
		return fmt.Errorf("res_dir is required")
	}
	if c.MasterSize <= 0 {
		return fmt.Errorf("master_size must be positive, got %d", c.MasterSize)
	}
	for name, r := range map[string]float64{
		"card.width_ratio":  c.Card.WidthRatio,
		"card.height_ratio": c.Card.HeightRatio,
		"card.corner_ratio": c.Card.CornerRatio,
		"icon.corner_ratio": c.Icon.CornerRatio,
	} {
		if r <= 0 || r > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %g", name, r)
		}
	}
	if int(float64(c.MasterSize)*c.Card.WidthRatio) < 1 || int(float64(c.MasterSize)*c.Card.HeightRatio) < 1 {
		return fmt.Errorf("master_size %d is too small for the card ratios", c.MasterSize)
	}
	if len(c.Layers) == 0 {
		return fmt.Errorf("at least one layer is required")
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("at least one tier is required")
	}
	seen := make(map[string]bool)
	for _, t := range c.Tiers {
		if t.Name == "" {
			return fmt.Errorf("tier name is required")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate tier: %s", t.Name)
		}
		seen[t.Name] = true
		if t.Size <= 0 {
			return fmt.Errorf("tier %s: size must be positive, got %d", t.Name, t.Size)
		}
		if t.Size > c.MasterSize {
			return fmt.Errorf("tier %s: size %d exceeds master size %d", t.Name, t.Size, c.MasterSize)
		}
	}
	if c.Icon.RoundName == "" || c.Icon.StandardName == "" {
		return fmt.Errorf("icon file names are required")
	}
	if c.Icon.RoundName == c.Icon.StandardName {
		return fmt.Errorf("round and standard icons must use different file names")
	}
	return nil
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
