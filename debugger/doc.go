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

// Package debugger implements a reaction-based debugger for the 6809 machine
// found in the hardware package. Input is read from a terminal, as defined by
// the terminal package, and the commands are checked by the commandline
// package before being acted upon.
//
// Commands can also be read from a script file. A script file with the .lua
// extension is run by the Lua interpreter. Any other file is a plain list of
// debugger commands, as written by the RECORD command.
//
// The RUN command runs the emulation until a breakpoint is reached, until a
// number of instructions have been executed or until the user interrupts with
// CTRL-C.
package debugger
