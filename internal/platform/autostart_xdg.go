//go:build !darwin && !windows

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func defaultAutostartLocation() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart"), nil
}

// Enable writes an XDG desktop entry.
func (autostart *Autostart) Enable() error {
	if err := os.MkdirAll(autostart.location, 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}
	if err := os.WriteFile(autostart.entryPath(), []byte(autostart.desktopEntry()), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

// Disable removes the desktop entry. A missing entry is not an error.
func (autostart *Autostart) Disable() error {
	if err := os.Remove(autostart.entryPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

// Enabled reports whether the desktop entry exists.
func (autostart *Autostart) Enabled() bool {
	_, err := os.Stat(autostart.entryPath())
	return err == nil
}

func (autostart *Autostart) entryPath() string {
	return filepath.Join(autostart.location, entryName(autostart.appName)+".desktop")
}

func (autostart *Autostart) desktopEntry() string {
	execLine := autostart.execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`, autostart.appName, execLine)
}
