//go:build windows

package overlay

import (
	"syscall"
	"unsafe"

	"danaoverlay/internal/core/model"

	"fyne.io/fyne/v2/driver"
)

const (
	gwlExStyle  int32 = -20
	wsExLayered       = 0x00080000
	wsExToolWin       = 0x00000080
	lwaAlpha          = 0x2

	hwndTopmost   = ^uintptr(0)
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32DLL.NewProc("SetWindowPos")
	procGetWindowRect              = user32DLL.NewProc("GetWindowRect")
)

type rect struct {
	left, top, right, bottom int32
}

// applyNativeStyle keeps the overlay above other windows, out of the taskbar
// and translucent.
func (overlay *Window) applyNativeStyle() {
	overlay.withHWND(func(hwnd uintptr) {
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), style|wsExLayered|wsExToolWin)
		if overlay.config.Opacity > 0 {
			procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(overlay.config.Opacity), uintptr(lwaAlpha))
		}
		procSetWindowPos.Call(hwnd, hwndTopmost, 0, 0, 0, 0, swpNoSize|swpNoMove|swpNoActivate)
	})
}

func (overlay *Window) nativePosition() (model.Position, bool) {
	var position model.Position
	found := false
	overlay.withHWND(func(hwnd uintptr) {
		var bounds rect
		result, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&bounds)))
		if result == 0 {
			return
		}
		position = model.Position{X: int(bounds.left), Y: int(bounds.top)}
		found = true
	})
	return position, found
}

func (overlay *Window) nativeMoveTo(position model.Position) bool {
	moved := false
	overlay.withHWND(func(hwnd uintptr) {
		result, _, _ := procSetWindowPos.Call(hwnd, 0,
			int32ToUintptr(int32(position.X)), int32ToUintptr(int32(position.Y)),
			0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
		moved = result != 0
	})
	return moved
}

func (overlay *Window) withHWND(fn func(hwnd uintptr)) {
	nativeWindow, ok := overlay.window.(driver.NativeWindow)
	if !ok {
		return
	}

	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}
		fn(hwnd)
	})
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(value)
}
