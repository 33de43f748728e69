package widgets

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
)

// TileData holds everything a metric tile needs to render itself.
type TileData struct {
	// Label is the tile heading, e.g. "CPU".
	Label string
	// Percent is the value from 0 to 100.
	Percent float64
	// Detail is an optional secondary line, e.g. "3.2/16G".
	Detail string
	// OK is false when the metric source is unavailable; the tile renders
	// dimmed with an N/A value.
	OK bool
	// History contains recent samples for the sparkline row, oldest first.
	History []float64
}

// RenderTile draws a metric tile in the given mode. Width is the inner
// character width available to the tile body.
func RenderTile(mode VisMode, d TileData, theme colormap.Theme, width int) string {
	switch mode {
	case ModeBar:
		return RenderBar(d, theme, width)
	case ModeGauge:
		return renderRadial(d, theme, width, gaugeGeometry)
	case ModeArc:
		return renderRadial(d, theme, width, arcGeometry)
	case ModeRing:
		return renderRadial(d, theme, width, ringGeometry)
	case ModeMinimal:
		return RenderMinimal(d, theme, width)
	default:
		// Out-of-range values (a corrupt cycle, a zero value) still draw.
		return RenderBar(d, theme, width)
	}
}

// healthStyle returns a foreground style colored by the metric's health.
func healthStyle(percent float64, theme colormap.Theme) lipgloss.Style {
	hex := colormap.MapPercentToColor(percent, theme).Hex()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// dimStyle is used for unavailable metrics and empty chart regions.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
