// Package tui renders course content for the terminal.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/lsobral/solid/pkg/ports"
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// NewRenderer returns a ports.Renderer that renders Markdown using glamour.
// It auto-detects light/dark backgrounds and wraps to the terminal width.
func NewRenderer() ports.Renderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth()),
	)
	if err != nil {
		// Glamour only fails on invalid options; fall back to passthrough
		// rather than losing the lesson text.
		return ports.RendererFunc(func(markdown string) (string, error) {
			return markdown, nil
		})
	}

	return ports.RendererFunc(func(markdown string) (string, error) {
		return r.Render(markdown)
	})
}

// renderWidth picks a wrap width from the terminal, clamped so prose stays
// readable on very wide windows.
func renderWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}
