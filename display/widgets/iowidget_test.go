package widgets

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
)

func TestRenderIO(t *testing.T) {
	out := RenderIO(IOData{
		Label:      "DISK",
		ReadLabel:  "R",
		WriteLabel: "W",
		ReadBps:    1536,
		WriteBps:   512,
		OK:         true,
	}, colormap.ClassicTheme, 16)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "DISK" {
		t.Errorf("heading = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "R ") || !strings.Contains(lines[1], "1.5 KB/s") {
		t.Errorf("read row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "W ") || !strings.Contains(lines[2], "512 B/s") {
		t.Errorf("write row = %q", lines[2])
	}
}

func TestRenderIO_RightAligned(t *testing.T) {
	out := RenderIO(IOData{
		Label:      "NET",
		ReadLabel:  "↓",
		WriteLabel: "↑",
		ReadBps:    0,
		WriteBps:   1 << 30,
		OK:         true,
	}, colormap.ClassicTheme, 16)

	lines := strings.Split(out, "\n")
	if !strings.HasSuffix(lines[1], "0 B/s") {
		t.Errorf("read row should end with the rate: %q", lines[1])
	}
	if got := len([]rune(lines[1])); got != 16 {
		t.Errorf("read row should pad out to the tile width, got %d runes: %q", got, lines[1])
	}
	if !strings.Contains(lines[2], "1.0 GB/s") {
		t.Errorf("write row = %q", lines[2])
	}
}

func TestRenderIO_NoSamplesYet(t *testing.T) {
	out := RenderIO(IOData{Label: "DISK", ReadLabel: "R", WriteLabel: "W"}, colormap.ClassicTheme, 16)

	if !strings.Contains(out, "--") {
		t.Errorf("unsampled tile should show placeholders:\n%s", out)
	}
	if strings.Contains(out, "B/s") {
		t.Errorf("unsampled tile should not show rates:\n%s", out)
	}
}
