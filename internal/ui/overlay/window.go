package overlay

import (
	"image/color"

	"danaoverlay/internal/core/interval"
	"danaoverlay/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Controller is the subset of the timer controller the overlay drives.
type Controller interface {
	Toggle()
	Start()
	Stop()
	Rescale(notches int) float64
	Move(position model.Position)
}

// Callbacks handles context menu entries that open other windows.
type Callbacks struct {
	OnSetWork   func()
	OnSetPause  func()
	OnSetRounds func()
	OnExit      func()
}

// Config defines overlay visuals.
type Config struct {
	Scale    float64
	Opacity  uint8
	Position *model.Position
}

// Window is the borderless timer label.
type Window struct {
	window     fyne.Window
	controller Controller
	callbacks  Callbacks
	config     Config
	background *canvas.Rectangle
	statusText *canvas.Text
	timeText   *canvas.Text
	surface    *surface
	snapshot   interval.Snapshot
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the overlay window. Call Render to draw the first snapshot.
func New(app fyne.App, controller Controller, config Config, callbacks Callbacks) *Window {
	window := app.NewWindow("DanaOverlay")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	if !model.ValidScale(config.Scale) {
		config.Scale = model.DefaultScaleFactor
	}

	background := canvas.NewRectangle(color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: config.Opacity})

	statusText := canvas.NewText("", idleColor)
	statusText.Alignment = fyne.TextAlignCenter
	statusText.TextStyle = fyne.TextStyle{Bold: true}

	timeText := canvas.NewText("", idleColor)
	timeText.Alignment = fyne.TextAlignCenter
	timeText.TextStyle = fyne.TextStyle{Bold: true}

	overlay := &Window{
		window:     window,
		controller: controller,
		callbacks:  callbacks,
		config:     config,
		background: background,
		statusText: statusText,
		timeText:   timeText,
		snapshot:   interval.Snapshot{Phase: interval.PhaseIdle},
	}

	labels := container.New(&labelLayout{}, statusText, timeText)
	overlay.surface = newSurface(overlay, labels)
	window.SetContent(container.NewStack(background, overlay.surface))

	overlay.applyScale()
	return overlay
}

// Show displays the overlay and restores the saved position where supported.
func (overlay *Window) Show() {
	overlay.window.Show()
	overlay.applyNativeStyle()
	if overlay.config.Position != nil {
		overlay.nativeMoveTo(*overlay.config.Position)
	}
}

// Window exposes the underlying Fyne window, mainly for dialogs.
func (overlay *Window) Window() fyne.Window {
	return overlay.window
}

// Render draws a snapshot. It must run on the UI thread.
func (overlay *Window) Render(snapshot interval.Snapshot) {
	overlay.snapshot = snapshot
	textColor := hintColor(snapshot.Hint())

	overlay.statusText.Text = snapshot.StatusText()
	overlay.statusText.Color = textColor
	overlay.statusText.TextSize = statusFontSize(overlay.config.Scale)

	text := snapshot.TimeText()
	overlay.timeText.Text = text
	overlay.timeText.Color = textColor
	overlay.timeText.TextSize = timeFontSize(text, overlay.config.Scale)

	overlay.statusText.Refresh()
	overlay.timeText.Refresh()
}

// SetScale resizes the overlay, for example after an external settings edit.
func (overlay *Window) SetScale(scale float64) {
	if !model.ValidScale(scale) || scale == overlay.config.Scale {
		return
	}
	overlay.config.Scale = scale
	overlay.applyScale()
}

func (overlay *Window) applyScale() {
	size := windowSize(overlay.config.Scale)
	overlay.window.SetFixedSize(false)
	overlay.window.Resize(size)
	overlay.window.SetFixedSize(true)
	overlay.Render(overlay.snapshot)
}

func (overlay *Window) scroll(notches int) {
	if notches == 0 {
		return
	}
	overlay.SetScale(overlay.controller.Rescale(notches))
}

func (overlay *Window) menu() *fyne.Menu {
	item := func(label string, action func()) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() {
			if action != nil {
				action()
			}
		})
	}
	return fyne.NewMenu("",
		item("▶ Start", overlay.controller.Start),
		item("⏹ Stop", overlay.controller.Stop),
		fyne.NewMenuItemSeparator(),
		item("⏱ Set Work Time", overlay.callbacks.OnSetWork),
		item("☕ Set Pause Time", overlay.callbacks.OnSetPause),
		item("🔄 Set Total Rounds", overlay.callbacks.OnSetRounds),
		fyne.NewMenuItemSeparator(),
		item("❌ Exit", overlay.callbacks.OnExit),
	)
}

// labelLayout stacks the status line above the time, both centered.
type labelLayout struct{}

func (layout *labelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	status := objects[0]
	timer := objects[1]

	statusSize := status.MinSize()
	timerSize := timer.MinSize()
	used := statusSize.Height + timerSize.Height
	top := (size.Height - used) / 2
	if top < 0 {
		top = 0
	}

	status.Move(fyne.NewPos(0, top))
	status.Resize(fyne.NewSize(size.Width, statusSize.Height))
	timer.Move(fyne.NewPos(0, top+statusSize.Height))
	timer.Resize(fyne.NewSize(size.Width, timerSize.Height))
}

func (layout *labelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	statusSize := objects[0].MinSize()
	timerSize := objects[1].MinSize()
	width := statusSize.Width
	if timerSize.Width > width {
		width = timerSize.Width
	}
	return fyne.NewSize(width, statusSize.Height+timerSize.Height)
}
