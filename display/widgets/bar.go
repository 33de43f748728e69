package widgets

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
	"gitlab.com/tinyland/lab/sysdeck/internal/format"
)

const (
	barFilledChar = "█"
	barEmptyChar  = "░"
)

// RenderBar draws the default tile: a heading, a horizontal block bar with
// the percentage, a detail line, and a sparkline of recent samples.
//
//	CPU
//	████████░░░░░░░░  42%
//	2400MHz
//	▁▂▃▅▆▅▃▂
func RenderBar(d TileData, theme colormap.Theme, width int) string {
	if width < 8 {
		width = 8
	}

	var sb strings.Builder
	sb.WriteString(d.Label)
	sb.WriteString("\n")

	// Reserve room for " 100%" after the bar.
	barWidth := width - 5
	if barWidth < 4 {
		barWidth = 4
	}

	if !d.OK {
		sb.WriteString(dimStyle.Render(strings.Repeat(barEmptyChar, barWidth) + "  N/A"))
	} else {
		percent := math.Max(0, math.Min(100, d.Percent))
		filled := int(math.Round(percent / 100.0 * float64(barWidth)))
		style := healthStyle(percent, theme)
		sb.WriteString(style.Render(strings.Repeat(barFilledChar, filled)))
		sb.WriteString(strings.Repeat(barEmptyChar, barWidth-filled))
		sb.WriteString(fmt.Sprintf(" %3.0f%%", percent))
	}

	if d.Detail != "" {
		sb.WriteString("\n")
		sb.WriteString(format.Truncate(d.Detail, width))
	}

	if d.OK && len(d.History) > 1 {
		sb.WriteString("\n")
		sb.WriteString(RenderSparkline(SparklineConfig{
			Data:  d.History,
			Width: width,
			Min:   0,
			Max:   100,
			Theme: theme,
		}))
	}

	return sb.String()
}

// RenderMinimal draws a single compact line: label, value, and a thin bar.
//
//	CPU  42% ▰▰▰▱▱▱▱▱
func RenderMinimal(d TileData, theme colormap.Theme, width int) string {
	if !d.OK {
		return d.Label + "  " + dimStyle.Render("N/A")
	}

	percent := math.Max(0, math.Min(100, d.Percent))
	head := fmt.Sprintf("%s %3.0f%% ", d.Label, percent)

	barWidth := width - len([]rune(head))
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(math.Round(percent / 100.0 * float64(barWidth)))

	style := healthStyle(percent, theme)
	return head +
		style.Render(strings.Repeat("▰", filled)) +
		strings.Repeat("▱", barWidth-filled)
}
