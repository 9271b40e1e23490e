package platform

import (
	"fmt"
	"os"
	"strings"
)

// Autostart registers the running executable to launch at login.
type Autostart struct {
	appName  string
	execPath string
	location string
}

// NewAutostart describes the login entry for appName pointing at the current
// executable.
func NewAutostart(appName string) (*Autostart, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, fmt.Errorf("autostart: app name is empty")
	}
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("autostart: resolve executable: %w", err)
	}
	location, err := defaultAutostartLocation()
	if err != nil {
		return nil, fmt.Errorf("autostart: %w", err)
	}
	return &Autostart{appName: appName, execPath: execPath, location: location}, nil
}

// Set enables or disables the login entry.
func (autostart *Autostart) Set(enabled bool) error {
	if enabled {
		return autostart.Enable()
	}
	return autostart.Disable()
}

func entryName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
