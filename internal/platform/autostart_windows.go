//go:build windows

package platform

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

func defaultAutostartLocation() (string, error) {
	return runKeyPath, nil
}

// Enable adds a value under the current user's Run key.
func (autostart *Autostart) Enable() error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, autostart.location, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("enable autostart: open run key: %w", err)
	}
	defer key.Close()

	command := `"` + strings.Trim(autostart.execPath, `"`) + `"`
	if err := key.SetStringValue(autostart.appName, command); err != nil {
		return fmt.Errorf("enable autostart: set value: %w", err)
	}
	return nil
}

// Disable deletes the Run value. A missing value is not an error.
func (autostart *Autostart) Disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, autostart.location, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("disable autostart: open run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(autostart.appName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("disable autostart: delete value: %w", err)
	}
	return nil
}

// Enabled reports whether the Run value exists.
func (autostart *Autostart) Enabled() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, autostart.location, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()
	_, _, err = key.GetStringValue(autostart.appName)
	return err == nil
}
