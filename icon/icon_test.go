package icon

import (
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
)

func TestGenerate_BaseSize(t *testing.T) {
	img := Generate(128, colormap.ClassicTheme)

	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Fatalf("bounds = %v, want 128x128", bounds)
	}

	// Corners lie outside the disc and stay transparent.
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0 {
		t.Error("corner should be transparent")
	}

	// The center is the needle hub, fully opaque.
	_, _, _, a = img.At(64, 64).RGBA()
	if a == 0 {
		t.Error("center should be opaque")
	}
}

func TestGenerate_Resizes(t *testing.T) {
	for _, size := range []int{16, 32, 48, 64} {
		img := Generate(size, colormap.ClassicTheme)
		if got := img.Bounds().Dx(); got != size {
			t.Errorf("Generate(%d) width = %d", size, got)
		}
	}
}

func TestGenerate_ThemeDrivesGradient(t *testing.T) {
	gray := colormap.Theme{
		Name:   "gray",
		Good:   colormap.RGB{R: 0.5, G: 0.5, B: 0.5},
		Warn:   colormap.RGB{R: 0.5, G: 0.5, B: 0.5},
		Danger: colormap.RGB{R: 0.5, G: 0.5, B: 0.5},
	}
	img := Generate(128, gray).(*image.NRGBA)

	// With a grayscale theme no saturated pixel can appear.
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			max := maxU8(c.R, c.G, c.B)
			min := minU8(c.R, c.G, c.B)
			if int(max)-int(min) > 40 {
				t.Fatalf("saturated pixel %v at (%d,%d) despite grayscale theme", c, x, y)
			}
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysdeck.png")

	if err := Save(path, 64, colormap.ClassicTheme); err != nil {
		t.Fatalf("Save: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("saved width = %d, want 64", img.Bounds().Dx())
	}
}

func TestSave_BadExtension(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "icon.nope"), 32, colormap.ClassicTheme); err == nil {
		t.Error("expected error for unknown image format")
	}
}

func TestPreview(t *testing.T) {
	img := Generate(128, colormap.ClassicTheme)
	out := Preview(img, 20, 10)

	if !strings.Contains(out, "▀") {
		t.Error("preview missing half-block glyphs")
	}
	rows := strings.Count(out, "\n") + 1
	if rows > 10 {
		t.Errorf("preview has %d rows, want at most 10", rows)
	}
	if !strings.Contains(out, "\033[38;2;") {
		t.Error("preview missing 24-bit color sequences")
	}
}

func TestPreview_DegenerateSizes(t *testing.T) {
	img := Generate(32, colormap.ClassicTheme)
	if out := Preview(img, 0, 10); out != "" {
		t.Errorf("zero cols should render nothing, got %q", out)
	}
	if out := Preview(img, 10, 0); out != "" {
		t.Errorf("zero rows should render nothing, got %q", out)
	}
}

func maxU8(vals ...uint8) uint8 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minU8(vals ...uint8) uint8 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
