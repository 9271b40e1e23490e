package preferences

import (
	"strconv"

	"danaoverlay/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window edits one interval value at a time.
type Window struct {
	window   fyne.Window
	prompt   *widget.Label
	entry    *widget.Entry
	unit     *widget.Select
	field    Field
	onSubmit func(Field, int) error
}

// New creates the editor window. onSubmit receives seconds for durations and
// a count for rounds; a returned error keeps the window open.
func New(app fyne.App, onSubmit func(Field, int) error) *Window {
	window := app.NewWindow("DanaOverlay Settings")

	unitOptions := make([]string, 0, len(model.Units))
	for _, unit := range model.Units {
		unitOptions = append(unitOptions, string(unit))
	}

	prefs := &Window{
		window:   window,
		prompt:   widget.NewLabel(""),
		entry:    widget.NewEntry(),
		unit:     widget.NewSelect(unitOptions, nil),
		onSubmit: onSubmit,
	}
	prefs.entry.OnSubmitted = func(string) { prefs.handleSave() }

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	form := container.NewVBox(prefs.prompt, prefs.entry, prefs.unit)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 180))
	window.SetFixedSize(true)
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Edit fills the editor for a field with its current value and shows it.
func (prefs *Window) Edit(field Field, intervals model.Intervals) {
	prefs.field = field
	prefs.window.SetTitle(field.Title())
	prefs.prompt.SetText(field.Prompt())

	current := field.Current(intervals)
	if field.IsDuration() {
		value, unit := model.SplitSeconds(current)
		prefs.entry.SetText(strconv.Itoa(value))
		prefs.unit.SetSelected(string(unit))
		prefs.unit.Show()
	} else {
		prefs.entry.SetText(strconv.Itoa(current))
		prefs.unit.Hide()
	}

	prefs.window.Show()
	prefs.window.RequestFocus()
	prefs.window.Canvas().Focus(prefs.entry)
}

// Hide closes the editor without saving.
func (prefs *Window) Hide() {
	prefs.window.Hide()
}

func (prefs *Window) handleSave() {
	value, err := parseEntry(prefs.field, prefs.entry.Text, model.Unit(prefs.unit.Selected))
	if err == nil && prefs.onSubmit != nil {
		err = prefs.onSubmit(prefs.field, value)
	}
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}
	prefs.window.Hide()
}
