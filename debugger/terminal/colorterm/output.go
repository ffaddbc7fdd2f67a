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

package colorterm

import (
	"github.com/jetsetilly/gopher6809/debugger/terminal"
)

func styledPrompt(prompt terminal.Prompt) string {
	switch prompt.Type {
	case terminal.PromptTypeCycle:
		return dimPens["yellow"] + prompt.String() + ansiOff
	case terminal.PromptTypeConfirm:
		return pens["blue"] + prompt.String() + ansiOff
	}
	return penStyles["bold"] + prompt.String() + ansiOff
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the prompt is printed without a trailing newline so we always need to
	// return to the start of the line
	ct.Print("\r")

	switch style {
	case terminal.StyleEcho:
		ct.Print(dimPens["white"])
	case terminal.StyleCPUStep:
		ct.Print(pens["yellow"])
	case terminal.StyleCycle:
		ct.Print(dimPens["yellow"])
	case terminal.StyleInstrument:
		ct.Print(pens["cyan"])
	case terminal.StyleScript:
		ct.Print(pens["magenta"])
	case terminal.StyleError:
		ct.Print(pens["red"])
		ct.Print("* ")
	case terminal.StyleHelp:
		ct.Print(dimPens["white"])
		ct.Print("  ")
	case terminal.StyleFeedback:
		ct.Print(dimPens["white"])
	}

	ct.Print(s)
	ct.Print(ansiOff)
	ct.Print("\r\n")
}
