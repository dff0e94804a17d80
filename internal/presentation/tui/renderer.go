package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders Markdown for the terminal.
// When stdout is not a terminal, or glamour cannot be set up, the Markdown
// is returned unchanged so it can be piped into files.
func NewRenderer() func(string) (string, error) {
	plain := func(markdown string) (string, error) { return markdown, nil }
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return plain
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		opts = append(opts, glamour.WithWordWrap(w))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return plain
	}
	return r.Render
}
