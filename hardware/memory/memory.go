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

	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
)

// Memory is the address space of the machine. It implements both the
// cpubus.Memory and cpubus.DebuggerBus interfaces.
type Memory struct {
	areas []Area

	// the index into the areas slice for every address, plus one. zero
	// indicates that the address is unmapped
	memmap []uint16
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// address space is completely unmapped.
func NewMemory() *Memory {
	return &Memory{
		memmap: make([]uint16, 0x10000),
	}
}

// NewFlatMemory returns a Memory instance with RAM covering the entire
// address space.
func NewFlatMemory() *Memory {
	mem := NewMemory()
	_ = mem.AddArea(NewRAM(0x0000, 0xffff))
	return mem
}

// AddArea maps the area into the address space. The area takes precedence over
// any area previously mapped to the same addresses.
func (mem *Memory) AddArea(area Area) error {
	if area.Origin() > area.Memtop() {
		return fmt.Errorf("memory: %s: origin %04x is after memtop %04x", area.Label(), area.Origin(), area.Memtop())
	}

	mem.areas = append(mem.areas, area)
	idx := uint16(len(mem.areas))
	for a := int(area.Origin()); a <= int(area.Memtop()); a++ {
		mem.memmap[a] = idx
	}

	return nil
}

// Unmap the range of addresses, origin to memtop inclusive.
func (mem *Memory) Unmap(origin uint16, memtop uint16) {
	for a := int(origin); a <= int(memtop); a++ {
		mem.memmap[a] = 0
	}
}

// MapAddress returns the area the address is mapped to. Returns false if the
// address is not mapped.
func (mem *Memory) MapAddress(address uint16) (Area, bool) {
	idx := mem.memmap[address]
	if idx == 0 {
		return nil, false
	}
	return mem.areas[idx-1], true
}

func (mem *Memory) unmapped(address uint16) error {
	return fmt.Errorf("memory: %04x: %w", address, cpubus.AddressError)
}

// Read implements the cpubus.Memory interface. If readOnly is true then the
// read is performed with Peek() and has no side effects.
func (mem *Memory) Read(address uint16, readOnly bool) (uint8, error) {
	area, ok := mem.MapAddress(address)
	if !ok {
		return 0, mem.unmapped(address)
	}
	if readOnly {
		return area.Peek(address)
	}
	return area.Read(address)
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	area, ok := mem.MapAddress(address)
	if !ok {
		return mem.unmapped(address)
	}
	return area.Write(address, data)
}

// Peek implements the cpubus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	area, ok := mem.MapAddress(address)
	if !ok {
		return 0, mem.unmapped(address)
	}
	return area.Peek(address)
}

// Poke implements the cpubus.DebuggerBus interface.
func (mem *Memory) Poke(address uint16, value uint8) error {
	area, ok := mem.MapAddress(address)
	if !ok {
		return mem.unmapped(address)
	}
	return area.Poke(address, value)
}

// Clear all RAM areas.
func (mem *Memory) Clear() {
	for _, a := range mem.areas {
		if ram, ok := a.(*RAM); ok {
			ram.Clear()
		}
	}
}

// String returns the memory map. Each line is a contiguous run of addresses
// mapped to the same area.
func (mem *Memory) String() string {
	s := strings.Builder{}

	start := 0
	for a := 1; a <= len(mem.memmap); a++ {
		if a < len(mem.memmap) && mem.memmap[a] == mem.memmap[start] {
			continue
		}

		label := "unmapped"
		if idx := mem.memmap[start]; idx != 0 {
			label = mem.areas[idx-1].Label()
		}
		s.WriteString(fmt.Sprintf("%04x -> %04x %s\n", start, a-1, label))
		start = a
	}

	return strings.TrimSuffix(s.String(), "\n")
}
