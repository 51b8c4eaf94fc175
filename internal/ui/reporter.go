// Package ui prints diagnostics and summaries for the command line.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes leveled, styled diagnostic lines to a single writer.
// Debug lines are dropped unless verbose is set.
type Reporter struct {
	out     io.Writer
	verbose bool
	styles  labelStyles
}

// NewReporter creates a Reporter writing to out. Colors are only emitted when
// out is a color-capable terminal.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	if out == nil {
		panic("out is required")
	}
	return &Reporter{
		out:     out,
		verbose: verbose,
		styles:  newLabelStyles(lipgloss.NewRenderer(out)),
	}
}

// Verbose reports whether debug output is enabled.
func (r *Reporter) Verbose() bool {
	return r.verbose
}

// Errorf prints an "Error:" line.
func (r *Reporter) Errorf(format string, args ...any) {
	r.line(r.styles.errorLabel.Render("Error:"), format, args...)
}

// Warnf prints a "Warning:" line.
func (r *Reporter) Warnf(format string, args ...any) {
	r.line(r.styles.warningLabel.Render("Warning:"), format, args...)
}

// Infof prints an unlabeled line with the message styled as informational.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.infoLabel.Render(fmt.Sprintf(format, args...)))
}

// Debugf prints a dimmed line when verbose is enabled.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.out, r.styles.debugLine.Render(fmt.Sprintf(format, args...)))
}

// Print writes s verbatim, adding a trailing newline if it lacks one.
func (r *Reporter) Print(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(r.out, s)
}

func (r *Reporter) line(label, format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", label, fmt.Sprintf(format, args...))
}
