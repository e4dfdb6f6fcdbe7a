// Package ui renders user-facing output with consistent styling. Data goes
// to stdout, status and errors to stderr, and every color passes through the
// renderer so one flag can turn them all off.
package ui

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// todoSpanRe picks out TODO(...) groups inside paragraph lines.
var todoSpanRe = regexp.MustCompile(`TODO\([^\)]*\)`)

// Renderer handles all terminal output with consistent styling.
type Renderer struct {
	out       io.Writer
	err       io.Writer
	noColor   bool
	quiet     bool
	highlight *regexp.Regexp
}

// NewRenderer creates a new Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// Option is a functional option for configuring the Renderer.
type Option func(*Renderer)

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		r.out = w
	}
}

// WithError sets the error writer.
func WithError(w io.Writer) Option {
	return func(r *Renderer) {
		r.err = w
	}
}

// WithNoColor disables color output.
func WithNoColor(noColor bool) Option {
	return func(r *Renderer) {
		r.noColor = noColor
	}
}

// WithQuiet enables quiet mode (suppresses status messages).
func WithQuiet(quiet bool) Option {
	return func(r *Renderer) {
		r.quiet = quiet
	}
}

// WithHighlight sets a pattern to highlight in paragraph output.
func WithHighlight(pattern string) Option {
	return func(r *Renderer) {
		if pattern != "" {
			r.highlight, _ = regexp.Compile("(?i)(" + pattern + ")")
		}
	}
}

// NewRendererWithOptions creates a new Renderer with the given options.
func NewRendererWithOptions(opts ...Option) *Renderer {
	r := NewRenderer()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Out returns the data writer, for renderers that stream their own output.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Err returns the status writer.
func (r *Renderer) Err() io.Writer {
	return r.err
}

// render applies styling if color is enabled.
func (r *Renderer) render(style lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return style.Render(text)
}

// --- Status and Messages ---

// Status prints a status message (suppressed in quiet mode).
func (r *Renderer) Status(format string, args ...any) {
	if r.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.err, r.render(StatusStyle, msg))
}

// Info prints an informational message.
func (r *Renderer) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, msg)
}

// Success prints a success message.
func (r *Renderer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, r.render(SuccessStyle, msg))
}

// Warning prints a warning message.
func (r *Renderer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.err, r.render(WarningStyle, "Warning: "+msg))
}

// Error prints an error message.
func (r *Renderer) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.err, r.render(ErrorStyle, "Error: "+msg))
}

// Section prints a section title.
func (r *Renderer) Section(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.render(SectionTitleStyle, title))
}

// Newline prints a blank line.
func (r *Renderer) Newline() {
	fmt.Fprintln(r.out)
}

// NoResults prints a "nothing found" message.
func (r *Renderer) NoResults() {
	fmt.Fprintln(r.out, r.render(MutedStyle, "Nothing found."))
}

// --- Todo Listing ---

// MeetingHeading prints a meeting id heading, preceded by a blank line.
func (r *Renderer) MeetingHeading(id string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.render(MeetingStyle, id))
}

// NoteHeading prints a note filename under its meeting heading.
func (r *Renderer) NoteHeading(name string) {
	fmt.Fprintln(r.out, r.render(NoteStyle, name))
}

// TodoParagraph prints a numbered paragraph with its TODO spans colored. An
// extra highlight pattern, when configured, is applied on top.
func (r *Renderer) TodoParagraph(index int, lines []string) {
	fmt.Fprintln(r.out, r.render(IndexStyle, fmt.Sprintf("%d.", index)))
	for _, line := range lines {
		if !r.noColor {
			line = todoSpanRe.ReplaceAllStringFunc(line, func(m string) string {
				return TodoStyle.Render(m)
			})
			if r.highlight != nil {
				line = r.highlight.ReplaceAllStringFunc(line, func(m string) string {
					return HighlightStyle.Render(m)
				})
			}
		}
		fmt.Fprintln(r.out, line)
	}
}

// --- Agenda Listing ---

// AgendaEntry prints one meeting occurrence as a single line.
func (r *Renderer) AgendaEntry(start, end, meeting, summary string) {
	times := r.render(TimeStyle, fmt.Sprintf("%s - %s", start, end))
	id := r.render(LabelStyle, meeting)
	if summary != "" {
		fmt.Fprintf(r.out, "%s  %s  %s\n", times, id, summary)
		return
	}
	fmt.Fprintf(r.out, "%s  %s\n", times, id)
}

// List prints items one per line with a two-space indent.
func (r *Renderer) List(items []string) {
	for _, item := range items {
		fmt.Fprintf(r.out, "  %s\n", item)
	}
}
