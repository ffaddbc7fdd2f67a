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

// Package commandline helps the debugger to make sense of user input. Input is
// divided into tokens with TokeniseInput() and checked against the list of
// available commands with Commands.Validate(). The Commands type also
// provides tab completion.
//
// Numeric arguments can be written in decimal, in hex with either the 0x or $
// prefix, or in binary with the 0b prefix.
package commandline
