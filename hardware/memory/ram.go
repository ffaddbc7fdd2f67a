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

import (
	"fmt"
	"strings"
)

// RAM is a read/write area of memory.
type RAM struct {
	AreaInfo
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM area.
func NewRAM(origin uint16, memtop uint16) *RAM {
	ram := &RAM{
		AreaInfo: NewAreaInfo("RAM", origin, memtop),
	}
	ram.memory = make([]uint8, ram.Size())
	return ram
}

// String returns a hex dump of the first 128 bytes of the area.
func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 8 && y*16 < len(ram.memory); y++ {
		s.WriteString(fmt.Sprintf("%03x- | ", (int(ram.origin)>>4)+y))
		for x := 0; x < 16 && y*16+x < len(ram.memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Clear sets all bytes in the area to zero.
func (ram *RAM) Clear() {
	clear(ram.memory)
}

// Read implements the Area interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address-ram.origin], nil
}

// Write implements the Area interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address-ram.origin] = data
	return nil
}

// Peek implements the Area interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address-ram.origin], nil
}

// Poke implements the Area interface.
func (ram *RAM) Poke(address uint16, value uint8) error {
	ram.memory[address-ram.origin] = value
	return nil
}
