package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
	"gitlab.com/tinyland/lab/sysdeck/internal/format"
)

// IOData holds the two byte rates an I/O tile displays.
type IOData struct {
	// Label is the tile heading, e.g. "DISK" or "NET".
	Label string
	// ReadLabel and WriteLabel prefix the rate rows, e.g. "R"/"W" or "↓"/"↑".
	ReadLabel  string
	WriteLabel string
	ReadBps    float64
	WriteBps   float64
	// OK is false when no counters have been sampled yet.
	OK bool
}

// ioHot is the rate at which an I/O row renders in the danger color. Rates
// scale linearly into the health gradient below it.
const ioHot = 500 * 1024 * 1024 // 500 MB/s

// RenderIO draws an I/O tile: two right-aligned rate rows colored by how
// busy the channel is.
//
//	DISK
//	R   1.5 KB/s
//	W 204.0 MB/s
func RenderIO(d IOData, theme colormap.Theme, width int) string {
	var sb strings.Builder
	sb.WriteString(d.Label)
	sb.WriteString("\n")

	if !d.OK {
		sb.WriteString(dimStyle.Render(d.ReadLabel + " --\n" + d.WriteLabel + " --"))
		return sb.String()
	}

	sb.WriteString(ioRow(d.ReadLabel, d.ReadBps, theme, width))
	sb.WriteString("\n")
	sb.WriteString(ioRow(d.WriteLabel, d.WriteBps, theme, width))
	return sb.String()
}

func ioRow(label string, bps float64, theme colormap.Theme, width int) string {
	rate := format.ByteRate(bps)

	// Right-align the rate by padding the label out to the remaining width,
	// keeping at least one space between the two.
	head := width - len([]rune(rate))
	if head < len([]rune(label))+1 {
		head = len([]rune(label)) + 1
	}

	percent := clamp01(bps/ioHot) * 100
	return format.PadRight(label, head) + healthStyle(percent, theme).Render(rate)
}
