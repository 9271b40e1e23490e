//go:build darwin

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func defaultAutostartLocation() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents"), nil
}

// Enable writes a LaunchAgent plist with RunAtLoad.
func (autostart *Autostart) Enable() error {
	if err := os.MkdirAll(autostart.location, 0o755); err != nil {
		return fmt.Errorf("enable autostart: create LaunchAgents dir: %w", err)
	}
	if err := os.WriteFile(autostart.plistPath(), []byte(autostart.plist()), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write plist: %w", err)
	}
	return nil
}

// Disable removes the plist. A missing plist is not an error.
func (autostart *Autostart) Disable() error {
	if err := os.Remove(autostart.plistPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove plist: %w", err)
	}
	return nil
}

// Enabled reports whether the plist exists.
func (autostart *Autostart) Enabled() bool {
	_, err := os.Stat(autostart.plistPath())
	return err == nil
}

func (autostart *Autostart) label() string {
	return "com.danaoverlay." + entryName(autostart.appName)
}

func (autostart *Autostart) plistPath() string {
	return filepath.Join(autostart.location, autostart.label()+".plist")
}

func (autostart *Autostart) plist() string {
	escape := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;").Replace
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, escape(autostart.label()), escape(autostart.execPath))
}
