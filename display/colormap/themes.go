package colormap

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Predefined themes. Each provides the three gradient stops; everything in
// between is derived by MapPercentToColor.
var (
	// ClassicTheme is the default green/amber/red gradient.
	ClassicTheme = Theme{
		Name:   "classic",
		Good:   mustHex("#22C55E"),
		Warn:   mustHex("#EAB308"),
		Danger: mustHex("#EF4444"),
	}

	// AuroraTheme shifts the healthy range toward cyan for dark backgrounds.
	AuroraTheme = Theme{
		Name:   "aurora",
		Good:   mustHex("#06B6D4"),
		Warn:   mustHex("#A78BFA"),
		Danger: mustHex("#FB7185"),
	}

	// GruvboxTheme uses the gruvbox palette's faded green/yellow/red.
	GruvboxTheme = Theme{
		Name:   "gruvbox",
		Good:   mustHex("#B8BB26"),
		Warn:   mustHex("#FABD2F"),
		Danger: mustHex("#FB4934"),
	}

	// NordTheme uses the nord palette's frost and aurora colors.
	NordTheme = Theme{
		Name:   "nord",
		Good:   mustHex("#A3BE8C"),
		Warn:   mustHex("#EBCB8B"),
		Danger: mustHex("#BF616A"),
	}
)

// builtinThemes is the canonical ordered list of predefined themes.
var builtinThemes = []Theme{ClassicTheme, AuroraTheme, GruvboxTheme, NordTheme}

// themeFileEntry is the on-disk shape of one theme in the user theme file.
type themeFileEntry struct {
	Good   string `yaml:"good"`
	Warn   string `yaml:"warn"`
	Danger string `yaml:"danger"`
}

// Registry resolves theme names to Theme values. It always contains the
// built-in themes and may be extended from a user theme file.
type Registry struct {
	themes map[string]Theme
	order  []string
}

// NewRegistry returns a Registry seeded with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme)}
	for _, t := range builtinThemes {
		r.themes[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r
}

// LoadFile merges themes from a YAML file into the registry. The file maps
// theme names to good/warn/danger hex stops. A missing file is not an error;
// user themes with the same name override built-ins.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("colormap: read theme file: %w", err)
	}

	var entries map[string]themeFileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("colormap: parse theme file: %w", err)
	}

	// Deterministic merge order regardless of map iteration.
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := entries[name]
		theme, err := themeFromEntry(name, entry)
		if err != nil {
			return err
		}
		if _, exists := r.themes[name]; !exists {
			r.order = append(r.order, name)
		}
		r.themes[name] = theme
	}

	return nil
}

func themeFromEntry(name string, entry themeFileEntry) (Theme, error) {
	good, err := ParseHex(entry.Good)
	if err != nil {
		return Theme{}, fmt.Errorf("colormap: theme %q good stop: %w", name, err)
	}
	warn, err := ParseHex(entry.Warn)
	if err != nil {
		return Theme{}, fmt.Errorf("colormap: theme %q warn stop: %w", name, err)
	}
	danger, err := ParseHex(entry.Danger)
	if err != nil {
		return Theme{}, fmt.Errorf("colormap: theme %q danger stop: %w", name, err)
	}
	return Theme{Name: name, Good: good, Warn: warn, Danger: danger}, nil
}

// Get returns the theme with the given name. Unknown names return the
// classic theme, mirroring how unknown config values fall back to defaults.
func (r *Registry) Get(name string) Theme {
	if t, ok := r.themes[name]; ok {
		return t
	}
	return ClassicTheme
}

// Names returns all registered theme names: built-ins first in their
// canonical order, then user themes in merge order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Next returns the theme after the given name, wrapping around. Unknown
// names start the cycle from the beginning.
func (r *Registry) Next(name string) Theme {
	for i, n := range r.order {
		if n == name {
			return r.themes[r.order[(i+1)%len(r.order)]]
		}
	}
	return r.themes[r.order[0]]
}

func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
