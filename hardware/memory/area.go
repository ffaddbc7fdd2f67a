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

package memory

import "fmt"

// Area defines the operations for a region of memory. All addresses are
// absolute and are guaranteed to be between the Origin() and Memtop() of the
// area.
type Area interface {
	Label() string
	Origin() uint16
	Memtop() uint16

	// Read and Write are the operations used by the CPU. A Read() may have
	// side effects for some areas (reading a device register for example)
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// Peek and Poke are the debugger operations. they never have side effects
	// other than changing the value of the memory location with Poke()
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// AreaInfo provides the basic information about a memory area. Area
// implementations can embed AreaInfo to satisfy the Label(), Origin() and
// Memtop() functions of the Area interface.
type AreaInfo struct {
	label  string
	origin uint16
	memtop uint16
}

// NewAreaInfo is the preferred method of initialisation for the AreaInfo type.
func NewAreaInfo(label string, origin uint16, memtop uint16) AreaInfo {
	return AreaInfo{
		label:  label,
		origin: origin,
		memtop: memtop,
	}
}

func (ai AreaInfo) String() string {
	return fmt.Sprintf("%04x -> %04x %s", ai.origin, ai.memtop, ai.label)
}

// Label implements the Area interface.
func (ai AreaInfo) Label() string {
	return ai.label
}

// Origin implements the Area interface.
func (ai AreaInfo) Origin() uint16 {
	return ai.origin
}

// Memtop implements the Area interface.
func (ai AreaInfo) Memtop() uint16 {
	return ai.memtop
}

// Size returns the number of bytes in the area.
func (ai AreaInfo) Size() int {
	return int(ai.memtop) - int(ai.origin) + 1
}
