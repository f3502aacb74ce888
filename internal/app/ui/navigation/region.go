//go:generate mockgen -source=region.go -destination=region_mock.go -package=navigation
package navigation

import "kadry/internal/app/ui/content"

// Region is the display area whose content is replaced wholesale on every render
type Region interface {
	Replace(c content.Content)
}

// Menu is the optional overlay navigation menu
type Menu interface {
	Open()
	Close()
	IsOpen() bool
}

// Buffer is a Region that keeps the last content it received
type Buffer struct {
	current  content.Content
	replaced int
}

// NewBuffer creates an empty buffer region
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Replace stores c as the current content
func (b *Buffer) Replace(c content.Content) {
	b.current = c
	b.replaced++
}

// Content returns the last stored content
func (b *Buffer) Content() content.Content {
	return b.current
}

// Replaced returns how many times content was written
func (b *Buffer) Replaced() int {
	return b.replaced
}
