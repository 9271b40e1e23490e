//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type attributeHider struct{}

func newFileHider() FileHider {
	return attributeHider{}
}

func (attributeHider) SupportsHiddenAttribute() bool {
	return true
}

// Hide sets FILE_ATTRIBUTE_HIDDEN on path.
func (attributeHider) Hide(path string) error {
	return updateAttributes(path, func(attributes uint32) uint32 {
		return attributes | windows.FILE_ATTRIBUTE_HIDDEN
	})
}

// Unhide clears FILE_ATTRIBUTE_HIDDEN so the file can be replaced.
func (attributeHider) Unhide(path string) error {
	return updateAttributes(path, func(attributes uint32) uint32 {
		return attributes &^ windows.FILE_ATTRIBUTE_HIDDEN
	})
}

func updateAttributes(path string, update func(uint32) uint32) error {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}
	attributes, err := windows.GetFileAttributes(pathPtr)
	if err != nil {
		return fmt.Errorf("get file attributes: %w", err)
	}
	next := update(attributes)
	if next == attributes {
		return nil
	}
	if err := windows.SetFileAttributes(pathPtr, next); err != nil {
		return fmt.Errorf("set file attributes: %w", err)
	}
	return nil
}
