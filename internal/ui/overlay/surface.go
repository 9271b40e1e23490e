package overlay

import (
	"danaoverlay/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// surface receives pointer input over the whole overlay.
type surface struct {
	widget.BaseWidget
	overlay *Window
	content fyne.CanvasObject

	dragging  bool
	dragStart model.Position
	dragged   fyne.Delta
}

var (
	_ fyne.DoubleTappable    = (*surface)(nil)
	_ fyne.SecondaryTappable = (*surface)(nil)
	_ fyne.Scrollable        = (*surface)(nil)
	_ fyne.Draggable         = (*surface)(nil)
)

func newSurface(overlay *Window, content fyne.CanvasObject) *surface {
	item := &surface{overlay: overlay, content: content}
	item.ExtendBaseWidget(item)
	return item
}

func (item *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(item.content)
}

// DoubleTapped starts or stops the timer.
func (item *surface) DoubleTapped(*fyne.PointEvent) {
	item.overlay.controller.Toggle()
}

// TappedSecondary opens the context menu.
func (item *surface) TappedSecondary(event *fyne.PointEvent) {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(item)
	if canvas == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(item.overlay.menu(), canvas, event.AbsolutePosition)
}

// Scrolled rescales by one notch per wheel event.
func (item *surface) Scrolled(event *fyne.ScrollEvent) {
	item.overlay.scroll(wheelNotches(event.Scrolled.DY))
}

// Dragged moves the native window where the platform allows it.
func (item *surface) Dragged(event *fyne.DragEvent) {
	if !item.dragging {
		start, ok := item.overlay.nativePosition()
		if !ok {
			return
		}
		item.dragging = true
		item.dragStart = start
		item.dragged = fyne.Delta{}
	}
	item.dragged.DX += event.Dragged.DX
	item.dragged.DY += event.Dragged.DY
	item.overlay.nativeMoveTo(item.dragTarget())
}

// DragEnd persists the final position.
func (item *surface) DragEnd() {
	if !item.dragging {
		return
	}
	item.dragging = false
	if position, ok := item.overlay.nativePosition(); ok {
		item.overlay.controller.Move(position)
		return
	}
	item.overlay.controller.Move(item.dragTarget())
}

func (item *surface) dragTarget() model.Position {
	scale := item.overlay.window.Canvas().Scale()
	return model.Position{
		X: item.dragStart.X + int(item.dragged.DX*scale),
		Y: item.dragStart.Y + int(item.dragged.DY*scale),
	}
}

func wheelNotches(deltaY float32) int {
	switch {
	case deltaY > 0:
		return 1
	case deltaY < 0:
		return -1
	default:
		return 0
	}
}
