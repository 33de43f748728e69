// Package format provides the human-readable number and string formatting
// used by sysdeck tiles: byte rates for I/O displays, byte sizes for detail
// rows, and width-safe truncation.
package format

import (
	"fmt"
	"strings"
)

const (
	kib = 1024.0
	mib = kib * 1024
	gib = mib * 1024
)

// ByteRate formats a bytes-per-second value with a unit chosen at powers of
// 1024. Negative inputs are treated as zero. A value exactly on a threshold
// promotes to the larger unit, so 1023 renders as "1023 B/s" and 1024 as
// "1.0 KB/s". B/s uses no decimals; larger units use one.
func ByteRate(bytesPerSecond float64) string {
	v := bytesPerSecond
	if v < 0 {
		v = 0
	}

	switch {
	case v < kib:
		return fmt.Sprintf("%.0f B/s", v)
	case v < mib:
		return fmt.Sprintf("%.1f KB/s", v/kib)
	case v < gib:
		return fmt.Sprintf("%.1f MB/s", v/mib)
	default:
		return fmt.Sprintf("%.1f GB/s", v/gib)
	}
}

// Bytes formats a byte count using the same 1024-based unit ladder.
func Bytes(n uint64) string {
	v := float64(n)
	switch {
	case v < kib:
		return fmt.Sprintf("%.0f B", v)
	case v < mib:
		return fmt.Sprintf("%.1f KB", v/kib)
	case v < gib:
		return fmt.Sprintf("%.1f MB", v/mib)
	default:
		return fmt.Sprintf("%.1f GB", v/gib)
	}
}

// GiBPair formats a used/total pair in gibibytes, e.g. "3.2/16G".
func GiBPair(used, total uint64) string {
	return fmt.Sprintf("%.1f/%.0fG", float64(used)/gib, float64(total)/gib)
}

// Truncate limits a string to maxWidth runes, appending an ellipsis when it
// had to cut. Widths under 4 hard-truncate without the suffix.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}

	if maxWidth < 4 {
		return string(runes[:maxWidth])
	}

	return string(runes[:maxWidth-3]) + "..."
}

// PadRight pads s with spaces to exactly width runes, truncating if longer.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
