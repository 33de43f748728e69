// Package widgets renders sysdeck tiles as terminal strings. Each metric
// tile can be drawn in one of five visualization modes; I/O tiles have a
// fixed two-row rate display.
package widgets

import (
	"fmt"
)

// VisMode selects how a metric tile is drawn.
type VisMode int

const (
	ModeBar VisMode = iota
	ModeGauge
	ModeArc
	ModeRing
	ModeMinimal
)

// visModeNames maps modes to their config-file names, in cycle order.
var visModeNames = []string{"bar", "gauge", "arc", "ring", "minimal"}

// String returns the mode's config-file name.
func (m VisMode) String() string {
	if m < 0 || int(m) >= len(visModeNames) {
		return "bar"
	}
	return visModeNames[m]
}

// Cycle returns the next mode, wrapping after the last one.
func (m VisMode) Cycle() VisMode {
	return VisMode((int(m) + 1) % len(visModeNames))
}

// ParseVisMode converts a config-file name into a VisMode.
func ParseVisMode(s string) (VisMode, error) {
	for i, name := range visModeNames {
		if name == s {
			return VisMode(i), nil
		}
	}
	return ModeBar, fmt.Errorf("widgets: unknown visualization mode %q", s)
}

// AllModes returns every mode in cycle order.
func AllModes() []VisMode {
	modes := make([]VisMode, len(visModeNames))
	for i := range modes {
		modes[i] = VisMode(i)
	}
	return modes
}
