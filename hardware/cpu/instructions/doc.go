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

// Package instructions defines the table of instruction definitions for the
// 6809. There is one Definition for every opcode in each of the three opcode
// pages, including those opcodes that have no documented meaning.
//
// The table is built once when the package is initialised and is never
// changed. Use Lookup() to find the definition for an opcode, or
// GetDefinitions() for the entire table.
//
// Cycle counts and byte counts include the opcode and, for the two extended
// pages, the prefix byte. For instructions that use indexed addressing the
// counts are the minimum possible. The additional bytes and cycles depend on
// the post-byte and are decided during execution.
package instructions
