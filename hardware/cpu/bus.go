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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
)

// Access is the type of bus activity during a cycle.
type Access int

// List of bus access types.
const (
	Idle Access = iota
	Read
	Write
)

func (a Access) String() string {
	switch a {
	case Idle:
		return "idle"
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return "unknown access"
}

// IdleAddress is the address on the bus during a don't-care cycle.
const IdleAddress = uint16(0xffff)

// Bus describes the bus activity of a single cycle.
type Bus struct {
	Address uint16
	Data    uint8
	Access  Access
}

func (b Bus) String() string {
	if b.Access == Idle {
		return "idle"
	}
	return fmt.Sprintf("%s %04x=%02x", b.Access, b.Address, b.Data)
}

// read8Bit reads from the memory and records the bus activity. errors wrapping
// cpubus.AddressError are noted in the LastResult but are not returned
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address, false)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return 0, fmt.Errorf("cpu: %w", err)
		}
		mc.LastResult.Error = err.Error()
	}
	mc.Bus = Bus{Address: address, Data: v, Access: Read}
	return v, nil
}

// write8Bit writes to the memory and records the bus activity. errors
// wrapping cpubus.AddressError are noted in the LastResult but are not
// returned
func (mc *CPU) write8Bit(address uint16, v uint8) error {
	err := mc.mem.Write(address, v)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.LastResult.Error = err.Error()
	}
	mc.Bus = Bus{Address: address, Data: v, Access: Write}
	return nil
}

// read8BitPC reads the byte pointed to by the PC and advances the PC
//
// side-effects:
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Value())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// readOperand reads the byte pointed to by the PC as part of the instruction's
// operand
//
// side-effects:
//   - updates LastResult.InstructionData
func (mc *CPU) readOperand() (uint8, error) {
	v, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = (mc.LastResult.InstructionData << 8) | uint16(v)
	return v, nil
}

// Peek reads memory without side-effects and without any bus activity being
// recorded. Used by the disassembler.
func (mc *CPU) Peek(address uint16) (uint8, error) {
	if mc.mem == nil {
		return 0, NotPlumbed
	}
	return mc.mem.Read(address, true)
}
