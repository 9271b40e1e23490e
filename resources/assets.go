package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

// Icon names match the color hints of the interval machine.
const (
	IconIdle    = "idle"
	IconWorking = "working"
	IconPausing = "pausing"
)

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns the Fyne resource for an icon name.
func Icon(name string) (fyne.Resource, error) {
	path := iconDir + name + ".svg"
	if cached, ok := iconCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := iconFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(name+".svg", data)
	iconCache.Store(path, resource)
	return resource, nil
}

// MustIcon returns an icon or panics.
func MustIcon(name string) fyne.Resource {
	resource, err := Icon(name)
	if err != nil {
		panic(err)
	}
	return resource
}
