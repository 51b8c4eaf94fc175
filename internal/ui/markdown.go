package ui

import (
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// DefaultWrapWidth is the word-wrap column for rendered markdown.
const DefaultWrapWidth = 80

// MarkdownRenderer turns markdown into display text.
type MarkdownRenderer interface {
	Render(in string) (string, error)
}

// PlainRenderer returns markdown unchanged. Used when the destination is not
// a terminal.
type PlainRenderer struct{}

func (PlainRenderer) Render(in string) (string, error) {
	return in, nil
}

// NewGlamourRenderer creates a terminal markdown renderer that picks a light
// or dark theme from the terminal background.
func NewGlamourRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

// NewMarkdownRenderer picks glamour for terminals and PlainRenderer otherwise.
// If glamour cannot be initialised the plain renderer is used.
func NewMarkdownRenderer(out io.Writer) MarkdownRenderer {
	if !IsTerminal(out) {
		return PlainRenderer{}
	}
	r, err := NewGlamourRenderer(DefaultWrapWidth)
	if err != nil {
		return PlainRenderer{}
	}
	return r
}

// RenderMarkdown renders content, falling back to the raw markdown if the
// renderer fails.
func RenderMarkdown(content string, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

// IsTerminal reports whether w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
