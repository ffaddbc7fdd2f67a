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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher6809/debugger/commandline"
	"github.com/jetsetilly/gopher6809/debugger/script"
	"github.com/jetsetilly/gopher6809/debugger/terminal"
	"github.com/jetsetilly/gopher6809/disassembly"
	"github.com/jetsetilly/gopher6809/hardware"
)

// the maximum depth of nested scripts
const maxScriptDepth = 10

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	commands    commandline.Commands
	breakpoints breakpoints

	// scribe records commands to a script file
	scribe script.Scribe

	// the number of scripts currently being run
	scriptDepth int

	// os.Interrupt signals are sent to this channel while the emulation is
	// running
	interrupt chan os.Signal

	quit bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. Use the Start() method to actually begin the session.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if m == nil {
		return nil, errors.New("debugger: no machine")
	}
	if term == nil {
		return nil, errors.New("debugger: no terminal")
	}

	dbg := &Debugger{
		m:         m,
		term:      term,
		commands:  debuggerCommands(),
		interrupt: make(chan os.Signal, 1),
	}

	return dbg, nil
}

// Start the main debugger sequence. The initScript is run before the user is
// asked for input. It can be the empty string.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(dbg.commands)

	signal.Notify(dbg.interrupt, os.Interrupt)
	defer signal.Stop(dbg.interrupt)

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	err := dbg.inputLoop(dbg.term)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	// make sure any recording is completed
	return dbg.scribe.EndSession()
}

func (dbg *Debugger) prompt() terminal.Prompt {
	if !dbg.m.CPU.InstructionBoundary() {
		return terminal.Prompt{
			Type:    terminal.PromptTypeCycle,
			Content: dbg.m.CPU.LastResult.String(),
		}
	}

	e, _ := disassembly.Decode(dbg.m.Mem, dbg.m.CPU.PC.Value())
	return terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: e.String(),
	}
}

// inputLoop reads and processes input until the input is exhausted or the
// QUIT command is given.
func (dbg *Debugger) inputLoop(inp terminal.Input) error {
	buffer := make([]byte, 256)

	for !dbg.quit {
		n, err := inp.TermRead(buffer, dbg.prompt())
		if err != nil {
			switch {
			case errors.Is(err, terminal.ScriptEnd):
				return nil
			case errors.Is(err, io.EOF):
				return nil
			case errors.Is(err, terminal.UserInterrupt):
				dbg.quit = true
				return nil
			}
			return err
		}

		// some terminals will return more than one line of input
		for _, line := range strings.Split(string(buffer[:n]), "\n") {
			if !inp.IsInteractive() && strings.TrimSpace(line) != "" {
				dbg.printLine(terminal.StyleEcho, "%s", strings.TrimSpace(line))
			}
			if err := dbg.parseInput(line); err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			}
			if dbg.quit {
				break
			}
		}
	}

	return nil
}

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(sty, s)
}

// print multiline output one line at a time
func (dbg *Debugger) printLines(sty terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}
