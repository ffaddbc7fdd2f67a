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

// Package script allows the debugger to record and replay debugging scripts.
// In this package we refer to this as scribing and rescribing.
//
// Scripts can of course be handwritten and be rescribed as though they had
// been scribed by the debugger. In this instance however, there is a risk that
// there will be errors - invalid commands will not be written to the script
// file by the Scribe type. On Rescribing, invalid commands will attempt to be
// replayed and the appropriate error message printed to the terminal. Comment
// lines begin with the # symbol.
//
// The Rescribe type satisfies the terminal.Input and is used as a source for
// the debugger packages input loop.
//
// Lua scripts are also supported. The Lua type runs a script with access to a
// small number of functions provided by a Host implementation. The functions
// are:
//
//	cmd(string)        run a debugger command
//	peek(addr)         read a byte from memory without side effects
//	poke(addr, value)  write a byte to memory without side effects
//	reg(name)          the value of a CPU register (A, B, D, X, Y, U, S, PC, DP, CC)
//	print(...)         output to the debugger terminal
package script
