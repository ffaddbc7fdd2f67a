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

// Package disassembly decodes 6809 machine code into a human readable form.
// Decoding never has side effects: memory is accessed with read-only reads,
// so memory mapped devices are not disturbed.
//
// Decode() produces a single Entry for the instruction at an address.
// Linear() decodes a sequence of instructions, each one following on from the
// previous one, without regard to the flow of the program. Data in the middle
// of a program will be decoded as though it were instructions.
package disassembly
