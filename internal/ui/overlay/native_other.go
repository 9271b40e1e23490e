//go:build !windows

package overlay

import "danaoverlay/internal/core/model"

// Fyne exposes no portable way to move or stack windows, so the overlay keeps
// its toolkit placement outside Windows.
func (overlay *Window) applyNativeStyle() {}

func (overlay *Window) nativePosition() (model.Position, bool) {
	return model.Position{}, false
}

func (overlay *Window) nativeMoveTo(model.Position) bool {
	return false
}
