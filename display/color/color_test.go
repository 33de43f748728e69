package color

import (
	"os"
	"testing"
)

func TestShouldDisableColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !ShouldDisableColor() {
		t.Error("NO_COLOR set should disable color")
	}

	// Even an empty value counts per the spec.
	t.Setenv("NO_COLOR", "")
	if !ShouldDisableColor() {
		t.Error("empty NO_COLOR should still disable color")
	}
}

func TestShouldDisableColor_NonTTY(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	// Test binaries run with stdout piped, so this exercises the non-TTY
	// branch on every CI run.
	if !ShouldDisableColor() {
		t.Skip("stdout is a terminal")
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[1;38;5;208mbold orange\x1b[0m tail", "bold orange tail"},
		// 24-bit half-block cell as emitted by the icon preview.
		{"\x1b[38;2;10;20;30m\x1b[48;2;1;2;3m▀\x1b[0m", "▀"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripANSI(tt.in); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
