//go:build darwin

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// UF_HIDDEN from <sys/stat.h>.
const ufHidden = 0x8000

type flagHider struct{}

func newFileHider() FileHider {
	return flagHider{}
}

func (flagHider) SupportsHiddenAttribute() bool {
	return true
}

// Hide sets the Finder hidden flag on path.
func (flagHider) Hide(path string) error {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Flags&ufHidden != 0 {
		return nil
	}
	if err := unix.Chflags(path, int(stat.Flags|ufHidden)); err != nil {
		return fmt.Errorf("chflags %s: %w", path, err)
	}
	return nil
}

// Unhide is a no-op: hidden files remain writable on macOS.
func (flagHider) Unhide(string) error {
	return nil
}
