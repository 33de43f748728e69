package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// desktopEntry is the XDG autostart file template. Exec is filled with the
// running binary's path so the entry survives relocations of the source tree.
const desktopEntry = `[Desktop Entry]
Type=Application
Name=sysdeck
Comment=System resource widget
Exec=%s
Terminal=true
Categories=System;Monitor;
X-GNOME-Autostart-enabled=true
`

// AutostartPath returns the XDG autostart entry location for sysdeck.
func AutostartPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "autostart", "sysdeck.desktop")
}

// EnableAutostart writes the autostart desktop entry pointing at execPath.
// An empty execPath resolves to the current executable.
func EnableAutostart(path, execPath string) error {
	if execPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("config: resolve executable: %w", err)
		}
		execPath = exe
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create autostart directory: %w", err)
	}

	entry := fmt.Sprintf(desktopEntry, execPath)
	if err := os.WriteFile(path, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("config: write autostart entry: %w", err)
	}
	return nil
}

// DisableAutostart removes the autostart entry. A missing file is not an
// error: disabled is disabled.
func DisableAutostart(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: remove autostart entry: %w", err)
	}
	return nil
}

// AutostartEnabled reports whether the autostart entry exists on disk.
func AutostartEnabled(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SetAutostart toggles the autostart entry and records the state in the
// config. The config is not saved; callers decide when to persist.
func (c *Config) SetAutostart(enabled bool, path string) error {
	if enabled {
		if err := EnableAutostart(path, ""); err != nil {
			return err
		}
	} else {
		if err := DisableAutostart(path); err != nil {
			return err
		}
	}
	c.Autostart = enabled
	return nil
}
