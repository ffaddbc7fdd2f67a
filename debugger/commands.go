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
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher6809/debugger/commandline"
	"github.com/jetsetilly/gopher6809/debugger/govern"
	"github.com/jetsetilly/gopher6809/debugger/script"
	"github.com/jetsetilly/gopher6809/debugger/terminal"
	"github.com/jetsetilly/gopher6809/disassembly"
	"github.com/jetsetilly/gopher6809/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6809/logger"
)

// parseInput splits the input into commands and checks them for correctness
// before processing them.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Remaining() == 0 {
		return nil
	}

	if err := dbg.commands.ValidateTokens(tokens); err != nil {
		return err
	}

	// the RECORD command itself is not recorded
	cmd, _ := tokens.Peek()
	if strings.ToUpper(cmd) != cmdRecord {
		dbg.scribe.WriteInput(tokens.String())
	}

	if err := dbg.processTokens(tokens); err != nil {
		dbg.scribe.Rollback()
		return err
	}

	return nil
}

// parse an optional numeric argument
func optionalValue(tokens *commandline.Tokens, def uint64) uint64 {
	tok, ok := tokens.Get()
	if !ok {
		return def
	}
	v, _ := commandline.ParseValue(tok)
	return v
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	switch command {
	case cmdHelp:
		kw, ok := tokens.Get()
		if !ok {
			dbg.printLines(terminal.StyleHelp, dbg.commands.String())
			return nil
		}
		cmd, _ := dbg.commands.Lookup(kw)
		dbg.printLine(terminal.StyleHelp, "%s", cmd.String())
		dbg.printLine(terminal.StyleHelp, "%s", cmd.Help)

	case cmdQuit:
		dbg.quit = true

	case cmdReset:
		kw, ok := tokens.Get()
		if !ok {
			if err := dbg.m.Reset(); err != nil {
				return err
			}
			dbg.printResult()
			return nil
		}
		if strings.ToUpper(kw) == "ON" {
			dbg.m.CPU.AssertReset()
		} else {
			dbg.m.CPU.ClearReset()
		}

	case cmdNMI, cmdFIRQ, cmdIRQ, cmdHalt:
		kw, _ := tokens.Get()
		on := strings.ToUpper(kw) == "ON"
		switch command {
		case cmdNMI:
			if on {
				dbg.m.CPU.AssertNMI()
			} else {
				dbg.m.CPU.ClearNMI()
			}
		case cmdFIRQ:
			if on {
				dbg.m.CPU.AssertFIRQ()
			} else {
				dbg.m.CPU.ClearFIRQ()
			}
		case cmdIRQ:
			dbg.m.IRQ = on
		case cmdHalt:
			if on {
				dbg.m.CPU.AssertHalt()
			} else {
				dbg.m.CPU.ClearHalt()
			}
		}

	case cmdStep:
		n := optionalValue(tokens, 1)
		for range n {
			if err := dbg.m.StepInstruction(); err != nil {
				return err
			}
			dbg.printResult()
		}

	case cmdCycle:
		n := optionalValue(tokens, 1)
		for range n {
			if err := dbg.m.Step(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleCycle, "%d: %s", dbg.m.CPU.Cycles, dbg.m.CPU.Bus)
			if dbg.m.CPU.LastResult.Final {
				dbg.printResult()
			}
		}

	case cmdRun:
		return dbg.run(optionalValue(tokens, 0))

	case cmdRegs:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.m.CPU)
		l := dbg.m.CPU.Lines()
		dbg.printLine(terminal.StyleInstrument, "RESET=%v NMI=%v FIRQ=%v IRQ=%v HALT=%v (NMI armed=%v)",
			l.Reset, l.NMI, l.FIRQ, l.IRQ, l.Halt, l.NMIArmed)
		dbg.printLine(terminal.StyleInstrument, "cycles=%d", dbg.m.CPU.Cycles)

	case cmdPC:
		tok, _ := tokens.Get()
		addr, _ := commandline.ParseAddress(tok)
		if err := dbg.m.CPU.LoadPC(addr); err != nil {
			return err
		}

	case cmdPeek:
		tok, _ := tokens.Get()
		addr, _ := commandline.ParseAddress(tok)
		dbg.peek(addr, int(optionalValue(tokens, 1)))

	case cmdPoke:
		tok, _ := tokens.Get()
		addr, _ := commandline.ParseAddress(tok)
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			v, _ := commandline.ParseValue(tok)
			if v > 0xff {
				return fmt.Errorf("poke value too large (%s)", tok)
			}
			if err := dbg.m.Mem.Poke(addr, uint8(v)); err != nil {
				return err
			}
			addr++
		}

	case cmdDisasm:
		addr := dbg.m.CPU.PC.Value()
		if tok, ok := tokens.Get(); ok {
			addr, _ = commandline.ParseAddress(tok)
		}
		n := optionalValue(tokens, 10)

		entries, err := disassembly.Linear(dbg.m.Mem, addr, int(n))
		s := strings.Builder{}
		_ = disassembly.Write(&s, entries, disassembly.WriteAttr{ByteCode: true, Notes: true})
		if s.Len() > 0 {
			dbg.printLines(terminal.StyleFeedback, s.String())
		}
		if err != nil {
			return err
		}

	case cmdBreak:
		tok, ok := tokens.Get()
		if !ok {
			dbg.printLines(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}
		addr, _ := commandline.ParseAddress(tok)
		if err := dbg.breakpoints.add(addr); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %04x", addr)

	case cmdClear:
		tok, ok := tokens.Get()
		if !ok {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		addr, _ := commandline.ParseAddress(tok)
		if err := dbg.breakpoints.drop(addr); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint removed at %04x", addr)

	case cmdInput:
		if dbg.m.Console == nil {
			return errors.New("no console device")
		}
		dbg.m.Console.Receive([]uint8(tokens.Remainder() + "\n")...)

	case cmdLog:
		if kw, ok := tokens.Get(); ok && strings.ToUpper(kw) == "CLEAR" {
			logger.Clear()
			return nil
		}
		s := strings.Builder{}
		logger.Write(&s)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
			return nil
		}
		dbg.printLines(terminal.StyleFeedback, s.String())

	case cmdMemviz:
		fn, _ := tokens.Get()
		if err := dbg.memviz(fn); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", fn)

	case cmdScript:
		fn, _ := tokens.Get()
		return dbg.runScript(fn)

	case cmdRecord:
		fn, ok := tokens.Get()
		if !ok {
			if !dbg.scribe.IsActive() {
				return errors.New("not recording")
			}
			fn := dbg.scribe.Filename()
			if err := dbg.scribe.EndSession(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "recording to %s ended", fn)
			return nil
		}
		if err := dbg.scribe.StartSession(fn); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "recording to %s", fn)
	}

	return nil
}

// printResult prints the most recent CPU result in the CPUStep style.
func (dbg *Debugger) printResult() {
	res := dbg.m.CPU.LastResult

	s := strings.Builder{}
	if res.Sequence != execution.Instruction || res.Defn == nil {
		s.WriteString(res.String())
	} else {
		e, _ := disassembly.Decode(dbg.m.Mem, res.Address)
		s.WriteString(e.String())
		s.WriteString(fmt.Sprintf(" (%d cycles)", res.Cycles))
	}

	if res.Error != "" {
		s.WriteString(fmt.Sprintf(" ! %s", res.Error))
	}

	dbg.printLine(terminal.StyleCPUStep, "%s", s.String())
}

// peek prints the contents of memory in rows of eight bytes.
func (dbg *Debugger) peek(addr uint16, n int) {
	const rowLen = 8

	for row := 0; row < n; row += rowLen {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%04x ", addr))
		for i := row; i < min(n, row+rowLen); i++ {
			v, err := dbg.m.Mem.Peek(addr)
			if err != nil {
				s.WriteString(" --")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", v))
			}
			addr++
		}
		dbg.printLine(terminal.StyleInstrument, "%s", s.String())
	}
}

// run the emulation until a breakpoint is reached, until the user interrupts
// or until the limit is reached. a limit of zero means no limit.
func (dbg *Debugger) run(limit uint64) error {
	var count uint64
	var reason string

	// drain any interrupt that occurred before the RUN command
	select {
	case <-dbg.interrupt:
	default:
	}

	err := dbg.m.Run(func() (govern.State, error) {
		count++
		if limit > 0 && count >= limit {
			reason = fmt.Sprintf("%d instructions", count)
			return govern.Ending, nil
		}
		if pc := dbg.m.CPU.PC.Value(); dbg.breakpoints.check(pc) {
			reason = fmt.Sprintf("breakpoint at %04x", pc)
			return govern.Ending, nil
		}
		select {
		case <-dbg.interrupt:
			reason = "interrupted"
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	dbg.printResult()
	dbg.printLine(terminal.StyleFeedback, "stopped: %s", reason)

	return nil
}

// runScript runs the named file as a Lua script or as a list of debugger
// commands depending on the file extension.
func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return errors.New("too many nested scripts")
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	dbg.scribe.StartPlayback()
	defer dbg.scribe.EndPlayback()

	if strings.ToLower(filepath.Ext(filename)) == ".lua" {
		l := script.NewLua(&scriptHost{dbg: dbg})
		defer l.Close()
		return l.Run(filename)
	}

	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	scr, err := script.RescribeScript(filename)
	if err != nil {
		return err
	}

	return dbg.inputLoop(scr)
}
