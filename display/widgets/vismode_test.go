package widgets

import "testing"

func TestVisModeString(t *testing.T) {
	tests := []struct {
		mode VisMode
		want string
	}{
		{ModeBar, "bar"},
		{ModeGauge, "gauge"},
		{ModeArc, "arc"},
		{ModeRing, "ring"},
		{ModeMinimal, "minimal"},
		{VisMode(99), "bar"},
		{VisMode(-1), "bar"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("VisMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestVisModeCycle(t *testing.T) {
	mode := ModeBar
	seen := map[VisMode]bool{}
	for i := 0; i < len(AllModes()); i++ {
		if seen[mode] {
			t.Fatalf("cycle revisited %v before covering all modes", mode)
		}
		seen[mode] = true
		mode = mode.Cycle()
	}
	if mode != ModeBar {
		t.Errorf("cycle should wrap back to bar, got %v", mode)
	}
}

func TestParseVisMode(t *testing.T) {
	for _, mode := range AllModes() {
		got, err := ParseVisMode(mode.String())
		if err != nil {
			t.Errorf("ParseVisMode(%q): %v", mode.String(), err)
		}
		if got != mode {
			t.Errorf("ParseVisMode(%q) = %v, want %v", mode.String(), got, mode)
		}
	}

	if _, err := ParseVisMode("hologram"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
