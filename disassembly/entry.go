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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16

	// the definition of the decoded instruction. may be nil if the entry
	// could not be decoded because of a memory error
	Defn *instructions.Definition

	// every byte of the instruction including any prefix byte
	Data []uint8

	// string representations of the instruction
	Bytecode string
	Operator string
	Operand  string

	// notes about unusual instructions
	Notes string
}

// Length returns the number of bytes in the instruction.
func (e *Entry) Length() int {
	return len(e.Data)
}

// Next returns the address of the instruction that follows this one in
// memory.
func (e *Entry) Next() uint16 {
	return e.Address + uint16(len(e.Data))
}

func (e *Entry) String() string {
	s := fmt.Sprintf("%04x  %-6s %s", e.Address, e.Operator, e.Operand)
	return strings.TrimRight(s, " ")
}

func (e *Entry) bytecode() {
	b := strings.Builder{}
	for i, v := range e.Data {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%02x", v))
	}
	e.Bytecode = b.String()
}
