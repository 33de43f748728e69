// Package colormap maps health percentages to colors along a three-stop
// gradient. A Theme provides the good/warn/danger reference stops and
// MapPercentToColor interpolates between them so gauges fade smoothly from
// healthy to critical instead of jumping at fixed thresholds.
package colormap

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Interpolation breakpoints: at or below warnStart the color is the good
// stop; the warn stop is reached exactly at dangerStart.
const (
	warnStart   = 50.0
	dangerStart = 75.0
	bandWidth   = 25.0
)

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R float64
	G float64
	B float64
}

// Theme holds the three reference stops a health gradient is built from.
// Values are immutable once constructed; mapping never mutates the theme.
type Theme struct {
	Name   string
	Good   RGB
	Warn   RGB
	Danger RGB
}

// MapPercentToColor returns the gradient color for a health percentage.
// The input is clamped to [0, 100]. Up to 50 the good stop is returned
// unchanged; between 50 and 75 the color interpolates linearly toward the
// warn stop, reaching it exactly at 75; above 75 it interpolates from warn
// to danger, saturating at 100. The function is total and pure.
func MapPercentToColor(percent float64, theme Theme) RGB {
	p := clampPercent(percent)

	switch {
	case p <= warnStart:
		return theme.Good
	case p <= dangerStart:
		return blend(theme.Good, theme.Warn, (p-warnStart)/bandWidth)
	default:
		return blend(theme.Warn, theme.Danger, (p-dangerStart)/bandWidth)
	}
}

// blend interpolates each channel linearly between a and b with factor t.
// The endpoints are returned verbatim: BlendRgb computes a + t*(b-a), which
// can land one ulp off b at t=1, and the stops must round-trip exactly.
func blend(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	m := a.colorful().BlendRgb(b.colorful(), t)
	return RGB{R: m.R, G: m.G, B: m.B}
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Hex returns the color as a #rrggbb string suitable for lipgloss.
func (c RGB) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// ParseHex parses a #rrggbb (or #rgb) string into an RGB value.
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("colormap: parse %q: %w", s, err)
	}
	return RGB{R: col.R, G: col.G, B: col.B}, nil
}
