package overlay

import (
	"image/color"
	"strings"

	"danaoverlay/internal/core/interval"

	"fyne.io/fyne/v2"
)

const (
	baseWidth  = float32(500)
	baseHeight = float32(160)

	baseStatusSize = float32(16)
	digitsSize     = float32(90)
	clockSize      = float32(75)
	longClockSize  = float32(55)
	wordSize       = float32(55)
	minFontSize    = float32(4)
)

var (
	idleColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	workingColor = color.NRGBA{R: 0x27, G: 0xae, B: 0x60, A: 255}
	pausingColor = color.NRGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 255}
)

func windowSize(scale float64) fyne.Size {
	return fyne.NewSize(baseWidth*float32(scale), baseHeight*float32(scale))
}

func hintColor(hint interval.ColorHint) color.NRGBA {
	switch hint {
	case interval.HintWorking:
		return workingColor
	case interval.HintPausing:
		return pausingColor
	default:
		return idleColor
	}
}

func statusFontSize(scale float64) float32 {
	return clampFont(baseStatusSize * float32(scale))
}

// timeFontSize shrinks longer clock formats so HH:MM:SS still fits.
func timeFontSize(text string, scale float64) float32 {
	size := wordSize
	switch {
	case strings.Contains(text, ":"):
		size = clockSize
		if len(text) > 5 {
			size = longClockSize
		}
	case text != "" && isDigits(text):
		size = digitsSize
	}
	return clampFont(size * float32(scale))
}

func isDigits(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func clampFont(size float32) float32 {
	if size < minFontSize {
		return minFontSize
	}
	return size
}
