package render

import "errors"

// ErrEmptyContent indicates there was no text to lay out.
var ErrEmptyContent = errors.New("render: empty content")

// Renderer turns generated markdown into a downloadable document.
type Renderer interface {
	Render(title, content string) ([]byte, error)
}
