// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

// Package plainterm is the simplest implementation of the terminal.Terminal
// interface. It has no line editing and no colour. It is used when the
// input is not a terminal, for example when commands are piped to the
// debugger.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher6809/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal reads lines from an io.Reader and writes feedback to an
// io.Writer. The mode of any real terminal is left alone.
type PlainTerminal struct {
	input    io.Reader
	output   io.Writer
	isTTY    bool
	silenced bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. A nil reader or writer is replaced by stdin or stdout.
// If the reader is a terminal device the prompt is printed before every read.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	pt := &PlainTerminal{
		input:  input,
		output: output,
	}
	if f, ok := input.(*os.File); ok {
		pt.isTTY = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface. Tab
// completion is not supported.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
		// the terminal has already shown what was typed
		return
	case terminal.StyleError:
		fmt.Fprintf(pt.output, "* %s\n", s)
		return
	}

	if pt.silenced {
		return
	}

	if style == terminal.StyleHelp {
		fmt.Fprintf(pt.output, "  %s\n", s)
		return
	}
	fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if pt.isTTY {
		io.WriteString(pt.output, prompt.String())
	}
	return pt.input.Read(buffer)
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.isTTY
}
