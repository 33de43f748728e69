package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
)

// sparkBlocks contains 8 unicode block characters ordered lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineConfig controls the history row under a bar tile.
type SparklineConfig struct {
	// Data points to render, oldest first.
	Data []float64
	// Width is the number of characters to render. If 0, uses len(Data).
	Width int
	// Min and Max bound the scale. If Min == Max, auto-scale from the data.
	Min float64
	Max float64
	// Theme colors each column by its own value's health.
	Theme colormap.Theme
}

// RenderSparkline renders a unicode sparkline where every column carries the
// health color of its own sample, so a load spike shows up as a red blip in
// an otherwise green row.
func RenderSparkline(cfg SparklineConfig) string {
	if len(cfg.Data) == 0 {
		return ""
	}

	data := cfg.Data
	width := cfg.Width
	if width <= 0 {
		width = len(data)
	}
	if width < len(data) {
		data = data[len(data)-width:]
	}

	minVal, maxVal := cfg.Min, cfg.Max
	if minVal == maxVal {
		minVal, maxVal = data[0], data[0]
		for _, v := range data {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	var sb strings.Builder
	if width > len(data) {
		sb.WriteString(strings.Repeat(" ", width-len(data)))
	}

	for _, v := range data {
		var normalized float64
		if maxVal > minVal {
			normalized = clamp01((v - minVal) / (maxVal - minVal))
		} else {
			normalized = 0.5
		}
		idx := int(normalized * float64(len(sparkBlocks)-1))

		style := healthStyle(normalized*100, cfg.Theme)
		sb.WriteString(style.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}
