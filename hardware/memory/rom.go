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

	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
)

// ROM is a read-only area of memory. The contents can be changed by the
// debugger with Poke() but not by the CPU.
type ROM struct {
	AreaInfo
	memory []uint8
}

// NewROM is the preferred method of initialisation for the ROM area. The size
// of the area is the length of the data. The data is copied.
func NewROM(origin uint16, data []uint8) (*ROM, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("rom: no data")
	}
	if int(origin)+len(data) > 0x10000 {
		return nil, fmt.Errorf("rom: %d bytes at %04x does not fit in the address space", len(data), origin)
	}

	rom := &ROM{
		AreaInfo: NewAreaInfo("ROM", origin, uint16(int(origin)+len(data)-1)),
		memory:   make([]uint8, len(data)),
	}
	copy(rom.memory, data)

	return rom, nil
}

// Read implements the Area interface.
func (rom *ROM) Read(address uint16) (uint8, error) {
	return rom.memory[address-rom.origin], nil
}

// Write implements the Area interface. Always returns an error.
func (rom *ROM) Write(address uint16, data uint8) error {
	return fmt.Errorf("rom: write %02x to %04x: %w", data, address, cpubus.AddressError)
}

// Peek implements the Area interface.
func (rom *ROM) Peek(address uint16) (uint8, error) {
	return rom.memory[address-rom.origin], nil
}

// Poke implements the Area interface.
func (rom *ROM) Poke(address uint16, value uint8) error {
	rom.memory[address-rom.origin] = value
	return nil
}
