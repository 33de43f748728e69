package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
)

// radialGeometry describes one of the circular visualization modes as an
// angle sweep. Angles are radians with y pointing down, so 0.5π is the
// bottom of the circle.
type radialGeometry struct {
	start, end float64
	height     int
	// bottomCenter anchors the circle center on the last row, for sweeps
	// that only use the upper half.
	bottomCenter bool
}

var (
	// gauge: 270° sweep from bottom-left over the top to bottom-right.
	gaugeGeometry = radialGeometry{start: 0.75 * math.Pi, end: 2.25 * math.Pi, height: 5}
	// arc: 180° sweep across the top half only.
	arcGeometry = radialGeometry{start: math.Pi, end: 2 * math.Pi, height: 4, bottomCenter: true}
	// ring: full circle starting at 12 o'clock.
	ringGeometry = radialGeometry{start: -0.5 * math.Pi, end: 1.5 * math.Pi, height: 5}
)

// radialSamples is the number of points drawn along the sweep. High enough
// that adjacent points land in adjacent cells at typical tile widths.
const radialSamples = 96

// renderRadial draws a tile as a swept arc of colored dots with the value
// centered inside. Filled dots take the health color of their own position
// along the sweep, giving the gradient trail the dial modes are known for.
func renderRadial(d TileData, theme colormap.Theme, width int, geo radialGeometry) string {
	if width < 9 {
		width = 9
	}

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, geo.height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	cy := float64(geo.height-1) / 2
	ry := cy
	if geo.bottomCenter {
		cy = float64(geo.height - 1)
		ry = cy
	}
	cx := float64(width-1) / 2
	// Terminal cells are roughly twice as tall as wide.
	rx := math.Min(cx, 2*ry)

	fillFrac := clamp01(d.Percent / 100)

	for i := 0; i < radialSamples; i++ {
		frac := float64(i) / float64(radialSamples-1)
		angle := geo.start + frac*(geo.end-geo.start)
		x := int(math.Round(cx + rx*math.Cos(angle)))
		y := int(math.Round(cy + ry*math.Sin(angle)))
		if x < 0 || x >= width || y < 0 || y >= geo.height {
			continue
		}

		if d.OK && frac <= fillFrac {
			grid[y][x] = cell{r: '●', style: healthStyle(frac*100, theme)}
		} else if grid[y][x].r == ' ' {
			grid[y][x] = cell{r: '·', style: dimStyle}
		}
	}

	// Overlay the value in the middle of the dial.
	value := "N/A"
	valueStyle := dimStyle
	if d.OK {
		value = fmt.Sprintf("%.0f%%", math.Max(0, math.Min(100, d.Percent)))
		valueStyle = healthStyle(d.Percent, theme)
	}
	valueRow := geo.height / 2
	if geo.bottomCenter {
		valueRow = geo.height - 1
	}
	startX := (width - len(value)) / 2
	for i, r := range value {
		if x := startX + i; x >= 0 && x < width {
			grid[valueRow][x] = cell{r: r, style: valueStyle}
		}
	}

	var sb strings.Builder
	sb.WriteString(d.Label)
	for _, row := range grid {
		sb.WriteString("\n")
		for _, c := range row {
			if c.r == ' ' {
				sb.WriteString(" ")
				continue
			}
			sb.WriteString(c.style.Render(string(c.r)))
		}
	}

	if d.Detail != "" {
		sb.WriteString("\n")
		sb.WriteString(d.Detail)
	}

	return sb.String()
}
