package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/irah/galleria-icongen/internal/config"
	"github.com/irah/galleria-icongen/internal/deck"
)

func corners(size int) []image.Point {
	return []image.Point{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}}
}

func solid(size int, c color.NRGBA) *image.NRGBA {
	return imaging.New(size, size, c)
}

func TestCircleMask(t *testing.T) {
	for _, size := range []int{48, 72, 192} {
		m := CircleMask(size)
		for _, p := range corners(size) {
			if a := m.AlphaAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d corner %v = %d, want 0", size, p, a)
			}
		}
		if a := m.AlphaAt(size/2, size/2).A; a < 250 {
			t.Errorf("size %d centre = %d, want opaque", size, a)
		}
		// middle of each edge is inside the circle
		if a := m.AlphaAt(size/2, 1).A; a == 0 {
			t.Errorf("size %d top edge is empty", size)
		}
	}
}

func TestRoundedRectMask(t *testing.T) {
	size := 96
	m := RoundedRectMask(size, 0.2*float64(size))
	for _, p := range corners(size) {
		if a := m.AlphaAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v = %d, want 0", p, a)
		}
	}
	// the rounded square covers more than the circle does
	for _, p := range []image.Point{{size / 2, 0}, {0, size / 2}, {10, 10}} {
		if a := m.AlphaAt(p.X, p.Y).A; a < 250 {
			t.Errorf("pixel %v = %d, want opaque", p, a)
		}
	}
}

func TestRoundedRectMaskWithoutRadius(t *testing.T) {
	m := RoundedRectMask(8, 0)
	for _, p := range corners(8) {
		if a := m.AlphaAt(p.X, p.Y).A; a < 250 {
			t.Errorf("corner %v = %d, want opaque for a square mask", p, a)
		}
	}
}

func TestApplyMask(t *testing.T) {
	src := solid(48, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out := ApplyMask(src, CircleMask(48))

	if got := out.NRGBAAt(24, 24); got.A < 250 || got.R < 9 || got.R > 11 || got.B < 29 || got.B > 31 {
		t.Errorf("centre = %v, want source colour", got)
	}
	for _, p := range corners(48) {
		if got := out.NRGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("corner %v = %v, want transparent", p, got)
		}
	}
	// the source is left alone
	if got := src.NRGBAAt(0, 0); got.A != 255 {
		t.Errorf("source corner changed to %v", got)
	}
}

func TestResize(t *testing.T) {
	master := solid(256, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	out, err := Resize(master, 48)
	if err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if got := out.Bounds().Size(); got != image.Pt(48, 48) {
		t.Errorf("size = %v, want 48x48", got)
	}

	if _, err := Resize(master, 512); err == nil {
		t.Error("Resize() upscaled, want error")
	}
	if _, err := Resize(master, 0); err == nil {
		t.Error("Resize(0) = nil error, want error")
	}
	if _, err := Resize(imaging.New(256, 128, color.White), 64); err == nil {
		t.Error("Resize() of a non-square master = nil error, want error")
	}
}

func TestRender(t *testing.T) {
	cfg := config.Default()
	master := solid(256, color.NRGBA{R: 255, A: 255})
	for _, v := range New(cfg).Variants {
		img, err := Render(master, 72, v)
		if err != nil {
			t.Fatalf("%s: Render() = %v", v.Name, err)
		}
		if got := img.Bounds().Size(); got != image.Pt(72, 72) {
			t.Errorf("%s: size = %v", v.Name, got)
		}
		if a := img.NRGBAAt(0, 0).A; a != 0 {
			t.Errorf("%s: corner alpha = %d, want 0", v.Name, a)
		}
	}
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.ResDir = filepath.Join(t.TempDir(), "app", "src", "main", "res")
	return cfg
}

func listFiles(t *testing.T, root string) []string {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}

func TestRunWritesEveryTier(t *testing.T) {
	cfg := testConfig(t)
	master, err := deck.Compose(cfg)
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	var seen []string
	results, err := New(cfg).Run(master, func(r Result) { seen = append(seen, r.Tier.Name) })
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(results) != 5 || len(seen) != 5 {
		t.Fatalf("got %d results and %d callbacks, want 5", len(results), len(seen))
	}

	files := listFiles(t, cfg.ResDir)
	if len(files) != 10 {
		t.Fatalf("got %d files, want 10: %v", len(files), files)
	}

	for _, tier := range cfg.Tiers {
		for _, name := range []string{cfg.Icon.RoundName, cfg.Icon.StandardName} {
			path := filepath.Join(cfg.TierDir(tier), name)
			img, err := imaging.Open(path)
			if err != nil {
				t.Fatalf("opening %s: %v", path, err)
			}
			if got := img.Bounds().Size(); got != image.Pt(tier.Size, tier.Size) {
				t.Errorf("%s: size = %v, want %dx%d", path, got, tier.Size, tier.Size)
			}
			if _, ok := img.(*image.NRGBA); !ok {
				t.Errorf("%s: decoded as %T, want RGBA with alpha", path, img)
			}
			for _, p := range corners(tier.Size) {
				if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0 {
					t.Errorf("%s: corner %v alpha = %d, want 0", path, p, a)
				}
			}
			if _, _, _, a := img.At(tier.Size/2, tier.Size/2).RGBA(); a == 0 {
				t.Errorf("%s: centre is transparent", path)
			}
		}
	}
}

func TestRunIsRepeatable(t *testing.T) {
	cfg := testConfig(t)
	cfg.MasterSize = 256
	master, err := deck.Compose(cfg)
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	e := New(cfg)
	if _, err := e.Run(master, nil); err != nil {
		t.Fatalf("first Run() = %v", err)
	}
	first := listFiles(t, cfg.ResDir)

	before := append([]uint8(nil), master.Pix...)
	if _, err := e.Run(master, nil); err != nil {
		t.Fatalf("second Run() = %v", err)
	}
	second := listFiles(t, cfg.ResDir)

	if len(first) != 10 || len(second) != len(first) {
		t.Fatalf("files after runs: %d then %d, want 10", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("file %d: %s then %s", i, first[i], second[i])
		}
	}
	for i := range before {
		if master.Pix[i] != before[i] {
			t.Fatal("Run() modified the master image")
		}
	}
}

func TestRunFailsOnUnwritableDir(t *testing.T) {
	cfg := config.Default()
	blocker := filepath.Join(t.TempDir(), "res")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.ResDir = blocker

	results, err := New(cfg).Run(solid(1024, color.NRGBA{A: 255}), nil)
	if err == nil {
		t.Fatal("Run() = nil error, want error")
	}
	if len(results) != 0 {
		t.Errorf("got %d results after failure, want 0", len(results))
	}
}
