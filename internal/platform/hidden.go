package platform

// FileHider applies the OS "hidden file" attribute where one exists.
type FileHider interface {
	SupportsHiddenAttribute() bool
	Hide(path string) error
	Unhide(path string) error
}

// NewFileHider returns the hider for the current OS.
func NewFileHider() FileHider {
	return newFileHider()
}

// NoopHider returns a hider that reports no support and does nothing.
func NoopHider() FileHider {
	return noopHider{}
}

type noopHider struct{}

func (noopHider) SupportsHiddenAttribute() bool { return false }

func (noopHider) Hide(string) error { return nil }

func (noopHider) Unhide(string) error { return nil }
