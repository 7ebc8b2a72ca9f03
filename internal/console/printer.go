// Package console writes human-readable status lines for command-line tools.
//
// Lines are prefixed with a symbol and, when the destination is a terminal,
// coloured: success is green (✔), warnings are yellow (⚠) and errors are
// red (✗).
package console

import (
	"fmt"
	"io"
	"os"

	fcolor "github.com/fatih/color"
	"golang.org/x/term"
)

type style struct {
	symbol string
	attr   fcolor.Attribute
}

var (
	successStyle = style{symbol: "✔ ", attr: fcolor.FgGreen}
	warningStyle = style{symbol: "⚠ ", attr: fcolor.FgYellow}
	errorStyle   = style{symbol: "✗ ", attr: fcolor.FgRed}
)

// Printer writes styled status lines to a single writer.
type Printer struct {
	w       io.Writer
	colored bool
}

// New returns a Printer writing to w. Colour is enabled only when w is a
// terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, colored: isTerminal(w)}
}

// NewPlain returns a Printer that never emits colour codes.
func NewPlain(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Successf(format string, args ...any) { p.write(successStyle, format, args...) }
func (p *Printer) Warningf(format string, args ...any) { p.write(warningStyle, format, args...) }
func (p *Printer) Errorf(format string, args ...any)   { p.write(errorStyle, format, args...) }

func (p *Printer) write(s style, format string, args ...any) {
	line := s.symbol + fmt.Sprintf(format, args...)

	var err error
	if p.colored {
		c := fcolor.New(s.attr)
		c.EnableColor()
		_, err = c.Fprintln(p.w, line)
	} else {
		_, err = fmt.Fprintln(p.w, line)
	}

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "console: failed to print message: %v\n", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
