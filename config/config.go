// Package config provides configuration persistence for sysdeck.
//
// Settings live in a flat key=value file (~/.config/sysdeck/config) so the
// file stays hand-editable and diff-friendly. Unknown keys are ignored and
// invalid values fall back to defaults: a broken config file should never
// keep the widget from starting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Layouts is the closed set of tile arrangements, in cycle order.
var Layouts = []string{"compact", "wide", "vertical", "mini"}

// VisModes is the closed set of visualization mode names, in cycle order.
// display/widgets owns the rendering for each; config only validates names.
var VisModes = []string{"bar", "gauge", "arc", "ring", "minimal"}

// Tiles is the closed set of tile names an order may reference.
var Tiles = []string{"cpu", "ram", "swap", "gpu", "vram", "temp", "disk", "net"}

// defaultOrders maps each layout to the tiles it shows, in order.
var defaultOrders = map[string][]string{
	"compact":  {"cpu", "ram", "swap", "gpu", "vram", "disk", "net", "temp"},
	"wide":     {"cpu", "ram", "gpu", "temp"},
	"vertical": {"cpu", "ram", "swap", "gpu", "vram", "temp", "disk", "net"},
	"mini":     {"cpu", "ram", "gpu"},
}

// Config holds all persisted sysdeck settings.
type Config struct {
	// Layout selects the tile arrangement: one of Layouts.
	Layout string

	// VisMode is the global default visualization mode: one of VisModes.
	VisMode string

	// Theme is the active theme name resolved via the colormap registry.
	Theme string

	// Autostart mirrors whether the XDG autostart entry is wanted.
	Autostart bool

	// TileModes holds per-tile visualization overrides, keyed by tile name.
	// A tile absent from this map uses VisMode.
	TileModes map[string]string

	// TileOrders holds per-layout tile orderings. A layout absent from this
	// map uses its default order.
	TileOrders map[string][]string

	// path is where Save writes; set by Load.
	path string
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Layout:     "compact",
		VisMode:    "bar",
		Theme:      "classic",
		TileModes:  make(map[string]string),
		TileOrders: make(map[string][]string),
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sysdeck", "config")
}

// ThemeFilePath returns the standard user theme file location.
func ThemeFilePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sysdeck", "themes.yaml")
}

// Load reads the config file at path, merging recognized keys over the
// defaults. A missing file returns defaults with no error. Values that fail
// validation are dropped rather than reported.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		cfg.apply(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return cfg, nil
}

// apply sets a single key, ignoring anything unrecognized or invalid.
func (c *Config) apply(key, value string) {
	switch {
	case key == "layout":
		if validLayout(value) {
			c.Layout = value
		}
	case key == "vis_mode":
		if validVisMode(value) {
			c.VisMode = value
		}
	case key == "theme":
		if value != "" {
			c.Theme = value
		}
	case key == "autostart":
		c.Autostart = value == "true"
	case strings.HasPrefix(key, "tile_"):
		tile := strings.TrimPrefix(key, "tile_")
		if tile != "" && validVisMode(value) {
			c.TileModes[tile] = value
		}
	case strings.HasPrefix(key, "order_"):
		layout := strings.TrimPrefix(key, "order_")
		if !validLayout(layout) {
			return
		}
		// Unknown tile names are dropped; an order with none left falls
		// back to the layout default.
		var order []string
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if validTile(name) {
				order = append(order, name)
			}
		}
		if len(order) > 0 {
			c.TileOrders[layout] = order
		}
	}
}

// Save writes the config back to the path it was loaded from, creating the
// directory if needed. Keys are emitted in a stable order so saves diff
// cleanly.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config: no path set, use Load first")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "layout=%s\n", c.Layout)
	fmt.Fprintf(&b, "vis_mode=%s\n", c.VisMode)
	fmt.Fprintf(&b, "theme=%s\n", c.Theme)
	fmt.Fprintf(&b, "autostart=%t\n", c.Autostart)

	tiles := make([]string, 0, len(c.TileModes))
	for tile := range c.TileModes {
		tiles = append(tiles, tile)
	}
	sort.Strings(tiles)
	for _, tile := range tiles {
		fmt.Fprintf(&b, "tile_%s=%s\n", tile, c.TileModes[tile])
	}

	layouts := make([]string, 0, len(c.TileOrders))
	for layout := range c.TileOrders {
		layouts = append(layouts, layout)
	}
	sort.Strings(layouts)
	for _, layout := range layouts {
		fmt.Fprintf(&b, "order_%s=%s\n", layout, strings.Join(c.TileOrders[layout], ","))
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(c.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.path, err)
	}
	return nil
}

// TileMode returns the visualization mode for a tile, falling back to the
// global default when no override is set.
func (c *Config) TileMode(tile string) string {
	if mode, ok := c.TileModes[tile]; ok {
		return mode
	}
	return c.VisMode
}

// SetTileMode records a per-tile override. Setting a tile to the global
// default removes the override instead, keeping the file minimal.
func (c *Config) SetTileMode(tile, mode string) {
	if !validVisMode(mode) {
		return
	}
	if mode == c.VisMode {
		delete(c.TileModes, tile)
		return
	}
	c.TileModes[tile] = mode
}

// ClearTileMode removes a per-tile override so the tile follows the global
// default again.
func (c *Config) ClearTileMode(tile string) {
	delete(c.TileModes, tile)
}

// TileOrder returns the tile ordering for a layout, falling back to the
// layout's default order. The returned slice is a copy.
func (c *Config) TileOrder(layout string) []string {
	order, ok := c.TileOrders[layout]
	if !ok {
		order, ok = defaultOrders[layout]
		if !ok {
			order = defaultOrders["compact"]
		}
	}
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// SetTileOrder records a custom tile ordering for a layout.
func (c *Config) SetTileOrder(layout string, order []string) {
	if !validLayout(layout) {
		return
	}
	c.TileOrders[layout] = append([]string(nil), order...)
}

// SwapTiles exchanges the positions of two tiles in a layout's order. Tiles
// not present in the order are left untouched.
func (c *Config) SwapTiles(layout, a, b string) {
	order := c.TileOrder(layout)
	ia, ib := -1, -1
	for i, name := range order {
		switch name {
		case a:
			ia = i
		case b:
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return
	}
	order[ia], order[ib] = order[ib], order[ia]
	c.SetTileOrder(layout, order)
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if !validLayout(c.Layout) {
		return fmt.Errorf("config: layout must be one of %v, got %q", Layouts, c.Layout)
	}
	if !validVisMode(c.VisMode) {
		return fmt.Errorf("config: vis_mode must be one of %v, got %q", VisModes, c.VisMode)
	}
	if c.Theme == "" {
		return fmt.Errorf("config: theme must not be empty")
	}
	for tile, mode := range c.TileModes {
		if !validVisMode(mode) {
			return fmt.Errorf("config: tile_%s has invalid mode %q", tile, mode)
		}
	}
	return nil
}

// Path returns the file path this config saves to.
func (c *Config) Path() string {
	return c.path
}

// SetPath overrides the save path. Used when constructing a config that was
// never loaded from disk.
func (c *Config) SetPath(path string) {
	c.path = path
}

func validLayout(s string) bool {
	for _, l := range Layouts {
		if s == l {
			return true
		}
	}
	return false
}

func validTile(s string) bool {
	for _, t := range Tiles {
		if s == t {
			return true
		}
	}
	return false
}

func validVisMode(s string) bool {
	for _, m := range VisModes {
		if s == m {
			return true
		}
	}
	return false
}
