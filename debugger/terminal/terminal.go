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

package terminal

import "errors"

// Input is the source of debugger commands.
type Input interface {
	// TermRead fills the buffer with the next line of input, including the
	// trailing newline, and returns the number of bytes used. The prompt is
	// shown if the implementation has somewhere to show it.
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive is false for input that does not come from a person, such
	// as a script. The debugger echoes non-interactive input.
	IsInteractive() bool
}

// Errors returned by TermRead() instead of a line of input.
var (
	// ctrl-c was pressed while waiting for input
	UserInterrupt = errors.New("user interrupt")

	// the script being played back has run out of lines
	ScriptEnd = errors.New("end of script")
)

// Output is the destination of debugger feedback.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal is the complete interface required by the debugger.
type Terminal interface {
	Input
	Output

	// Initialise is called once before the first call to TermRead().
	Initialise() error

	// CleanUp returns the terminal to the state it was in before
	// Initialise(), for example by restoring canonical mode.
	CleanUp()

	// RegisterTabCompletion gives the terminal a way of completing partial
	// input. Terminals without line editing can ignore it.
	RegisterTabCompletion(TabCompletion)

	// Silence suppresses output. Lines printed with StyleError are shown
	// regardless.
	Silence(silenced bool)
}

// TabCompletion completes the last word of a line of input. The
// commandline.Commands type is an implementation.
type TabCompletion interface {
	Complete(input string) string
}
