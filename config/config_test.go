package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Layout != "compact" {
		t.Errorf("default layout: got %q", cfg.Layout)
	}
	if cfg.VisMode != "bar" {
		t.Errorf("default vis_mode: got %q", cfg.VisMode)
	}
	if cfg.Theme != "classic" {
		t.Errorf("default theme: got %q", cfg.Theme)
	}
	if cfg.Autostart {
		t.Error("autostart should default to false")
	}
}

func TestLoad_ParsesAllKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := strings.Join([]string{
		"# comment line",
		"layout=wide",
		"vis_mode=ring",
		"theme=nord",
		"autostart=true",
		"tile_cpu=gauge",
		"tile_ram=minimal",
		"order_wide=temp,gpu,ram,cpu",
		"not a key value line",
		"unknown_key=whatever",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Layout != "wide" || cfg.VisMode != "ring" || cfg.Theme != "nord" || !cfg.Autostart {
		t.Errorf("scalar keys not applied: %+v", cfg)
	}
	if cfg.TileModes["cpu"] != "gauge" || cfg.TileModes["ram"] != "minimal" {
		t.Errorf("tile modes not applied: %v", cfg.TileModes)
	}
	want := []string{"temp", "gpu", "ram", "cpu"}
	if !reflect.DeepEqual(cfg.TileOrders["wide"], want) {
		t.Errorf("order_wide = %v, want %v", cfg.TileOrders["wide"], want)
	}
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := "layout=hexagonal\nvis_mode=hologram\ntile_cpu=hologram\norder_hexagonal=a,b\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Layout != "compact" {
		t.Errorf("invalid layout should keep default, got %q", cfg.Layout)
	}
	if cfg.VisMode != "bar" {
		t.Errorf("invalid vis_mode should keep default, got %q", cfg.VisMode)
	}
	if len(cfg.TileModes) != 0 {
		t.Errorf("invalid tile mode should be dropped, got %v", cfg.TileModes)
	}
	if len(cfg.TileOrders) != 0 {
		t.Errorf("order for unknown layout should be dropped, got %v", cfg.TileOrders)
	}
}

func TestLoad_OrderEntriesTrimmedAndFiltered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := strings.Join([]string{
		"order_mini=cpu, ram ,gpu",
		"order_wide=flux,cpu,,warp",
		"order_compact= , ,",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.TileOrder("mini"); !reflect.DeepEqual(got, []string{"cpu", "ram", "gpu"}) {
		t.Errorf("padded entries should be trimmed, got %v", got)
	}
	if got := cfg.TileOrder("wide"); !reflect.DeepEqual(got, []string{"cpu"}) {
		t.Errorf("unknown tile names should be dropped, got %v", got)
	}
	// All entries invalid: the layout keeps its default order.
	if _, ok := cfg.TileOrders["compact"]; ok {
		t.Errorf("empty order should not be stored, got %v", cfg.TileOrders["compact"])
	}
	if got := cfg.TileOrder("compact"); len(got) != 8 {
		t.Errorf("compact should fall back to its default order, got %v", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Layout = "vertical"
	cfg.VisMode = "gauge"
	cfg.Theme = "gruvbox"
	cfg.Autostart = true
	cfg.SetTileMode("net", "minimal")
	cfg.SetTileOrder("mini", []string{"gpu", "cpu", "ram"})

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if loaded.Layout != "vertical" || loaded.VisMode != "gauge" || loaded.Theme != "gruvbox" || !loaded.Autostart {
		t.Errorf("round trip lost scalars: %+v", loaded)
	}
	if loaded.TileModes["net"] != "minimal" {
		t.Errorf("round trip lost tile mode: %v", loaded.TileModes)
	}
	if !reflect.DeepEqual(loaded.TileOrders["mini"], []string{"gpu", "cpu", "ram"}) {
		t.Errorf("round trip lost tile order: %v", loaded.TileOrders)
	}
}

func TestTileMode_GlobalFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VisMode = "arc"

	if got := cfg.TileMode("cpu"); got != "arc" {
		t.Errorf("expected global fallback arc, got %q", got)
	}

	cfg.SetTileMode("cpu", "ring")
	if got := cfg.TileMode("cpu"); got != "ring" {
		t.Errorf("expected override ring, got %q", got)
	}
}

func TestSetTileMode_GlobalValueRemovesOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VisMode = "bar"
	cfg.SetTileMode("ram", "gauge")

	cfg.SetTileMode("ram", "bar")
	if _, ok := cfg.TileModes["ram"]; ok {
		t.Error("setting the global mode should remove the override")
	}
}

func TestTileOrder_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.TileOrder("mini"); !reflect.DeepEqual(got, []string{"cpu", "ram", "gpu"}) {
		t.Errorf("mini default order = %v", got)
	}
	// Unknown layouts fall back to compact's order.
	if got := cfg.TileOrder("bogus"); len(got) != 8 {
		t.Errorf("unknown layout should use compact order, got %v", got)
	}
}

func TestTileOrder_ReturnsCopy(t *testing.T) {
	cfg := DefaultConfig()
	order := cfg.TileOrder("mini")
	order[0] = "mutated"

	if cfg.TileOrder("mini")[0] == "mutated" {
		t.Error("TileOrder must return a copy")
	}
}

func TestSwapTiles(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SwapTiles("mini", "cpu", "gpu")
	if got := cfg.TileOrder("mini"); !reflect.DeepEqual(got, []string{"gpu", "ram", "cpu"}) {
		t.Errorf("after swap: %v", got)
	}

	// Swapping with a tile not in the layout is a no-op.
	cfg.SwapTiles("mini", "cpu", "swap")
	if got := cfg.TileOrder("mini"); !reflect.DeepEqual(got, []string{"gpu", "ram", "cpu"}) {
		t.Errorf("swap with absent tile should not change order: %v", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.Layout = "circle"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid layout")
	}

	cfg = DefaultConfig()
	cfg.Theme = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty theme")
	}
}
