// Package printer renders automaton generations and command results for the
// terminal.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	cyan  = color.New(color.FgCyan)
	dim   = color.New(color.Faint)
	bold  = color.New(color.Bold)
)

// SetColor forces colored output on or off regardless of the terminal.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Rows prints generations as a space-time diagram, keeping the center cell
// in a fixed column.
type Rows struct {
	w       io.Writer
	on, off string
	// anchor is the column, in cells, the center cell is printed in.
	anchor int
}

// NewRows returns a Rows printer. anchor must be at least the largest center
// index that will be printed; for a run of n generations from a window
// centered at c that is c+n.
func NewRows(w io.Writer, on, off string, anchor int) *Rows {
	return &Rows{w: w, on: on, off: off, anchor: anchor}
}

// Write prints one generation. Active cells are green, the center cell is
// emphasized.
func (r *Rows) Write(gen int, states []bool, center int) error {
	var b strings.Builder
	b.WriteString(dim.Sprintf("%4d ", gen))
	if pad := r.anchor - center; pad > 0 {
		b.WriteString(strings.Repeat(strings.Repeat(" ", len(r.off)), pad))
	}
	for i, s := range states {
		sym := r.off
		if s {
			sym = green.Sprint(r.on)
		}
		if i == center {
			sym = bold.Sprint(sym)
		}
		b.WriteString(sym)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Bits prints a sampled center column as a 0/1 string.
func Bits(w io.Writer, bits []bool) error {
	var b strings.Builder
	for _, bit := range bits {
		if bit {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Success prints a success message in green with a checkmark prefix.
func Success(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprintln(w, msg)
}

// Failure prints a failure title in red followed by indented details.
func Failure(w io.Writer, title string, details []string) {
	red.Fprintln(w, title)
	for _, d := range details {
		fmt.Fprintf(w, "  %s\n", d)
	}
}

// Step prints a progress message.
func Step(w io.Writer, format string, a ...any) {
	cyan.Fprintf(w, "→ %s\n", fmt.Sprintf(format, a...))
}
