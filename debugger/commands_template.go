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
	"github.com/jetsetilly/gopher6809/debugger/commandline"
)

// debugger keywords
const (
	cmdBreak  = "BREAK"
	cmdClear  = "CLEAR"
	cmdCycle  = "CYCLE"
	cmdDisasm = "DISASM"
	cmdFIRQ   = "FIRQ"
	cmdHalt   = "HALT"
	cmdHelp   = "HELP"
	cmdInput  = "INPUT"
	cmdIRQ    = "IRQ"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdNMI    = "NMI"
	cmdPC     = "PC"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdQuit   = "QUIT"
	cmdRecord = "RECORD"
	cmdRegs   = "REGS"
	cmdReset  = "RESET"
	cmdRun    = "RUN"
	cmdScript = "SCRIPT"
	cmdStep   = "STEP"
)

var onOff = commandline.Arg{Typ: commandline.ArgKeyword, Req: true, Keywords: []string{"ON", "OFF"}}

func debuggerCommands() commandline.Commands {
	cmds := []commandline.Command{
		{Name: cmdBreak, Args: []commandline.Arg{{Typ: commandline.ArgAddress}},
			Help: "add a breakpoint at the address. with no address the list of breakpoints is shown"},
		{Name: cmdClear, Args: []commandline.Arg{{Typ: commandline.ArgAddress}},
			Help: "remove the breakpoint at the address. with no address all breakpoints are removed"},
		{Name: cmdCycle, Args: []commandline.Arg{{Typ: commandline.ArgValue}},
			Help: "run the CPU for one cycle (or the number of cycles specified) and show bus activity"},
		{Name: cmdDisasm, Args: []commandline.Arg{{Typ: commandline.ArgAddress}, {Typ: commandline.ArgValue}},
			Help: "disassemble instructions starting at the address. defaults to the program counter"},
		{Name: cmdFIRQ, Args: []commandline.Arg{onOff},
			Help: "assert or clear the FIRQ line"},
		{Name: cmdHalt, Args: []commandline.Arg{onOff},
			Help: "assert or clear the HALT line"},
		{Name: cmdInput, Args: []commandline.Arg{{Typ: commandline.ArgString, Req: true}},
			Help: "send a line of text to the console device"},
		{Name: cmdIRQ, Args: []commandline.Arg{onOff},
			Help: "assert or clear the IRQ line. the console device can also assert the IRQ line"},
		{Name: cmdLog, Args: []commandline.Arg{{Typ: commandline.ArgKeyword, Keywords: []string{"CLEAR"}}},
			Help: "show the log or clear it"},
		{Name: cmdMemviz, Args: []commandline.Arg{{Typ: commandline.ArgFile, Req: true}},
			Help: "write a graphviz representation of the CPU state to a file"},
		{Name: cmdNMI, Args: []commandline.Arg{onOff},
			Help: "assert or clear the NMI line. NMI is triggered by assertion"},
		{Name: cmdPC, Args: []commandline.Arg{{Typ: commandline.ArgAddress, Req: true}},
			Help: "set the program counter. only allowed at an instruction boundary"},
		{Name: cmdPeek, Args: []commandline.Arg{{Typ: commandline.ArgAddress, Req: true}, {Typ: commandline.ArgValue}},
			Help: "show the contents of memory at the address. reading does not affect devices"},
		{Name: cmdPoke, Args: []commandline.Arg{{Typ: commandline.ArgAddress, Req: true}, {Typ: commandline.ArgValues, Req: true}},
			Help: "write one or more values to memory starting at the address"},
		{Name: cmdQuit,
			Help: "leave the debugger"},
		{Name: cmdRecord, Args: []commandline.Arg{{Typ: commandline.ArgFile}},
			Help: "record commands to a new script file. with no filename the recording is ended"},
		{Name: cmdRegs,
			Help: "show the CPU registers and the state of the hardware lines"},
		{Name: cmdReset, Args: []commandline.Arg{{Typ: commandline.ArgKeyword, Keywords: []string{"ON", "OFF"}}},
			Help: "reset the machine. with an argument the RESET line is asserted or cleared"},
		{Name: cmdRun, Args: []commandline.Arg{{Typ: commandline.ArgValue}},
			Help: "run until a breakpoint is reached or until the number of instructions have been executed"},
		{Name: cmdScript, Args: []commandline.Arg{{Typ: commandline.ArgFile, Req: true}},
			Help: "run the script file. files with the .lua extension are run as Lua scripts"},
		{Name: cmdStep, Args: []commandline.Arg{{Typ: commandline.ArgValue}},
			Help: "run the CPU for one instruction (or the number of instructions specified)"},
	}

	names := make([]string, 0, len(cmds)+1)
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	names = append(names, cmdHelp)

	cmds = append(cmds, commandline.Command{
		Name: cmdHelp,
		Args: []commandline.Arg{{Typ: commandline.ArgKeyword, Keywords: names}},
		Help: "list commands or show help for a command",
	})

	return commandline.NewCommands(cmds...)
}
