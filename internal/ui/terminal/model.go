// Package terminal renders the timer in a terminal with bubbletea.
package terminal

import (
	"fmt"

	"danaoverlay/internal/core/interval"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controller is the subset of the timer controller the terminal drives.
type Controller interface {
	Toggle()
	Stop()
	Rescale(notches int) float64
	Snapshot() interval.Snapshot
}

type dispatchMsg func()

// Dispatch wraps work for the program's event loop. Pass the result to
// tea.Program.Send so scheduler ticks run on the same goroutine as input.
func Dispatch(fn func()) tea.Msg {
	return dispatchMsg(fn)
}

// Model is the bubbletea model of the timer.
type Model struct {
	controller Controller
	snapshot   interval.Snapshot
	scale      float64
	keys       keyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model rendering at the given scale.
func NewModel(controller Controller, scale float64) Model {
	return Model{
		controller: controller,
		snapshot:   controller.Snapshot(),
		scale:      scale,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg()
		m.snapshot = m.controller.Snapshot()
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Stop):
		m.controller.Stop()
	case key.Matches(msg, m.keys.Grow):
		m.scale = m.controller.Rescale(1)
	case key.Matches(msg, m.keys.Shrink):
		m.scale = m.controller.Rescale(-1)
	default:
		return m, nil
	}
	m.snapshot = m.controller.Snapshot()
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	style := themeFor(m.snapshot.Hint(), m.scale)

	lines := []string{style.Time.Render(m.snapshot.TimeText())}
	if status := m.snapshot.StatusText(); status != "" {
		lines = append([]string{style.Status.Render(status)}, lines...)
	}
	body := style.Frame.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	footer := lipgloss.JoinVertical(lipgloss.Left,
		style.Dim.Render(fmt.Sprintf("scale %.1fx", m.scale)),
		m.help.View(m.keys),
	)
	view := lipgloss.JoinVertical(lipgloss.Center, body, footer)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
