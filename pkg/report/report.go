package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cleanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dirtyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Divider returns the section separator used in the report file.
func Divider() string {
	return strings.Repeat("-", statusWidth)
}

// Report fans run output out to a condensed console view and the full
// report file. Either sink may be nil.
type Report struct {
	console *ConsoleSink
	file    Sink
}

func New(console *ConsoleSink, file Sink) *Report {
	return &Report{console: console, file: file}
}

// Console prints to the console only.
func (r *Report) Console(line string) {
	if r.console != nil {
		r.console.Print(line)
	}
}

// File prints to the report file only.
func (r *Report) File(line string) {
	if r.file != nil {
		r.file.Print(line)
	}
}

// Both prints the same line to console and file.
func (r *Report) Both(line string) {
	r.Console(line)
	r.File(line)
}

// Status shows a transient console progress line. Nothing reaches the
// file.
func (r *Report) Status(line string) {
	if r.console != nil {
		r.console.Status(line)
	}
}

// Outcome prints a backup summary line: colored on the console by
// whether the backup came back clean, plain in the file.
func (r *Report) Outcome(line string, clean bool) {
	style := dirtyStyle
	if clean {
		style = cleanStyle
	}
	r.Console(style.Render(line))
	r.File(line)
}

// Failure reports a backup whose comparison could not run at all.
func (r *Report) Failure(line string) {
	r.Console(failStyle.Render(line))
	r.File(line)
}
