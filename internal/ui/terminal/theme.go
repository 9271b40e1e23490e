package terminal

import (
	"danaoverlay/internal/core/interval"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Frame  lipgloss.Style
	Status lipgloss.Style
	Time   lipgloss.Style
	Dim    lipgloss.Style
}

var palette = map[interval.ColorHint]lipgloss.Color{
	interval.HintIdle:    lipgloss.Color("#ffffff"),
	interval.HintWorking: lipgloss.Color("#27ae60"),
	interval.HintPausing: lipgloss.Color("#e67e22"),
}

const baseFrameWidth = 24

func themeFor(hint interval.ColorHint, scale float64) theme {
	accent, ok := palette[hint]
	if !ok {
		accent = palette[interval.HintIdle]
	}
	width := int(float64(baseFrameWidth) * scale)
	return theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(lipgloss.Color("#1e1e1e")).
			Padding(0, 1).
			Width(width).
			Align(lipgloss.Center),
		Status: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Time:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
