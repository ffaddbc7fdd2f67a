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

// Package cpubus defines the interface between the CPU and the memory system
// it is attached to.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory implementation decides how the address space is mapped. The
// CPU need not care which device it is reading from or writing to.
//
// The readOnly flag is true when the read is being made by a tool, such as the
// disassembler, rather than the CPU itself. A read of a memory mapped device
// with readOnly set should not cause any side-effects in the device.
type Memory interface {
	Read(address uint16, readOnly bool) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// AddressError is returned (wrapped) by a Memory implementation when an
// address is not connected to anything. The CPU does not treat this as a
// failure. The access is noted in the execution result and the CPU continues.
var AddressError = errors.New("address not mapped")
