// Package icon generates the sysdeck application icon: a dark dial with a
// health-gradient sweep, a needle, and activity bars. The same gradient that
// colors the live tiles colors the icon, so a theme change carries through.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
)

const (
	// baseSize is the master render size; other sizes are resampled from it.
	baseSize = 128

	// Dial sweep, matching the gauge tiles: bottom-left over the top to
	// bottom-right.
	sweepStart = 0.75 * math.Pi
	sweepEnd   = 2.25 * math.Pi

	// sweepSegments is the number of gradient steps along the dial.
	sweepSegments = 60

	// needlePercent is where the needle points on the static icon.
	needlePercent = 70.0
)

var (
	colorBackground = color.NRGBA{R: 0x1E, G: 0x1B, B: 0x2E, A: 0xFF}
	colorBorder     = color.NRGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF}
	colorNeedle     = color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
)

// Generate renders the icon at the given pixel size using the theme's
// health gradient. Sizes other than the base are resampled with Lanczos.
func Generate(size int, theme colormap.Theme) image.Image {
	img := render(theme)
	if size == baseSize || size <= 0 {
		return img
	}
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// Save renders the icon and writes it to path. The format follows the file
// extension, as with imaging.Save.
func Save(path string, size int, theme colormap.Theme) error {
	img := Generate(size, theme)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("icon: save %s: %w", filepath.Base(path), err)
	}
	return nil
}

func render(theme colormap.Theme) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, baseSize, baseSize))

	c := float64(baseSize) / 2
	fillDisc(img, c, c, c-2, colorBackground)
	fillRing(img, c, c, c-2, c-5, colorBorder)

	// Gradient sweep: each segment carries the health color of its own
	// position along the dial.
	outer := c - 12
	inner := c - 24
	for i := 0; i < sweepSegments; i++ {
		frac := float64(i) / float64(sweepSegments-1)
		angle := sweepStart + frac*(sweepEnd-sweepStart)
		rgb := colormap.MapPercentToColor(frac*100, theme)
		drawRadialTick(img, c, c, inner, outer, angle, toNRGBA(rgb))
	}

	// Needle.
	needleAngle := sweepStart + needlePercent/100*(sweepEnd-sweepStart)
	drawNeedle(img, c, c, inner-4, needleAngle)

	// Activity bars along the bottom, stepping up the gradient.
	barHeights := []float64{10, 16, 22, 28}
	barWidth := 8.0
	startX := c - (float64(len(barHeights))*(barWidth+4)-4)/2
	baseY := float64(baseSize) - 22
	for i, h := range barHeights {
		rgb := colormap.MapPercentToColor(float64(i)/float64(len(barHeights)-1)*100, theme)
		x := startX + float64(i)*(barWidth+4)
		fillRect(img, x, baseY-h, x+barWidth, baseY, toNRGBA(rgb))
	}

	return img
}

func toNRGBA(rgb colormap.RGB) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(rgb.R) * 255)),
		G: uint8(math.Round(clamp01(rgb.G) * 255)),
		B: uint8(math.Round(clamp01(rgb.B) * 255)),
		A: 0xFF,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func fillDisc(img *image.NRGBA, cx, cy, r float64, col color.NRGBA) {
	fillRing(img, cx, cy, r, 0, col)
}

func fillRing(img *image.NRGBA, cx, cy, rOuter, rInner float64, col color.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x)-cx+0.5, float64(y)-cy+0.5)
			if d <= rOuter && d >= rInner {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 float64, col color.NRGBA) {
	for y := int(y0); y < int(y1); y++ {
		for x := int(x0); x < int(x1); x++ {
			if image.Pt(x, y).In(img.Bounds()) {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

// drawRadialTick paints a thick line from the inner to the outer radius at
// the given angle.
func drawRadialTick(img *image.NRGBA, cx, cy, rInner, rOuter, angle float64, col color.NRGBA) {
	steps := int(rOuter - rInner)
	for i := 0; i <= steps; i++ {
		r := rInner + float64(i)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		stamp(img, x, y, 1, col)
	}
}

func drawNeedle(img *image.NRGBA, cx, cy, length, angle float64) {
	steps := int(length)
	for i := 0; i <= steps; i++ {
		r := float64(i)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		// Taper: thick at the hub, thin at the tip.
		thickness := 2 - int(2*r/length)
		stamp(img, x, y, thickness, colorNeedle)
	}
	fillDisc(img, cx, cy, 4, colorNeedle)
}

// stamp paints a small square centered on a fractional pixel position.
func stamp(img *image.NRGBA, x, y float64, radius int, col color.NRGBA) {
	px, py := int(math.Round(x)), int(math.Round(y))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if image.Pt(px+dx, py+dy).In(img.Bounds()) {
				img.SetNRGBA(px+dx, py+dy, col)
			}
		}
	}
}
