package tui

import "github.com/charmbracelet/lipgloss"

// Chrome colors. Tile contents are colored by the health gradient; the
// frame stays muted so the data carries the color.
const (
	colorMuted  = lipgloss.Color("#6B7280") // Gray
	colorAccent = lipgloss.Color("#06B6D4") // Cyan
)

// Styles used throughout the dashboard.
var (
	styleTile        lipgloss.Style
	styleFocusedTile lipgloss.Style
	styleHeader      lipgloss.Style
	styleFooter      lipgloss.Style
	styleWarning     lipgloss.Style
)

func init() {
	styleTile = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)

	styleFocusedTile = styleTile.
		BorderForeground(colorAccent)

	styleHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleWarning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EAB308"))
}
