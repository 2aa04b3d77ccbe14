// Package report routes run output to an interactive console view, a
// plain report file, or both, and renders the summary lines.
package report

import (
	"fmt"
	"io"
)

// statusWidth pads console output so a finished line fully overwrites
// a transient status line left on the same row.
const statusWidth = 80

// Sink receives finished report lines.
type Sink interface {
	Print(line string)
}

// ConsoleSink writes to an interactive console. Print lines lead with
// a carriage return and padding so they replace any status line still
// on the row.
type ConsoleSink struct {
	W io.Writer
}

func (c *ConsoleSink) Print(line string) {
	fmt.Fprintf(c.W, "\r%-*s\n", statusWidth, line)
}

// Status shows a transient progress line without advancing the row.
// The next Print or Status overwrites it.
func (c *ConsoleSink) Status(line string) {
	fmt.Fprintf(c.W, "\r%-*s", statusWidth, line)
}

// FileSink appends plain lines to the report artifact.
type FileSink struct {
	W io.Writer
}

func (f *FileSink) Print(line string) {
	fmt.Fprintln(f.W, line)
}
