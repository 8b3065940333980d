package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// Word wrap follows the terminal width when stdout is a terminal.
func NewRenderer() func(string) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, _ := glamour.NewTermRenderer(opts...)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
