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

	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
)

// decoder reads successive bytes of an instruction. the first error is
// remembered and any further reads return zero
type decoder struct {
	mem cpubus.Memory
	e   *Entry
	err error
}

func (d *decoder) next() uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.mem.Read(d.e.Next(), true)
	if err != nil {
		d.err = err
		return 0
	}
	d.e.Data = append(d.e.Data, v)
	return v
}

func (d *decoder) next16() uint16 {
	hi := d.next()
	lo := d.next()
	return (uint16(hi) << 8) | uint16(lo)
}

// Decode the instruction at the address. The entry is returned even if there
// is an error but it will be incomplete.
func Decode(mem cpubus.Memory, address uint16) (*Entry, error) {
	e := &Entry{Address: address}
	d := &decoder{mem: mem, e: e}

	page := instructions.Unprefixed
	opcode := d.next()
	if p, ok := instructions.PageFromPrefix(opcode); ok {
		page = p
		opcode = d.next()
	}

	if d.err != nil {
		e.bytecode()
		return e, fmt.Errorf("disassembly: %04x: %w", address, d.err)
	}

	defn := instructions.Lookup(page, opcode)
	e.Defn = defn
	e.Operator = defn.Mnemonic

	switch {
	case !defn.IsValid():
		e.Notes = "invalid opcode"
	case defn.Undocumented:
		e.Notes = "undocumented"
	}

	switch defn.AddressingMode {
	case instructions.Immediate:
		switch defn.Operator {
		case instructions.Psh, instructions.Pul:
			e.Operand = stackList(d.next(), defn.Register)
		case instructions.Tfr, instructions.Exg:
			pb := d.next()
			e.Operand = fmt.Sprintf("%s,%s", cpu.RegisterName(pb>>4), cpu.RegisterName(pb&0x0f))
		default:
			if defn.Register.Is16Bit() {
				e.Operand = fmt.Sprintf("#$%04x", d.next16())
			} else {
				e.Operand = fmt.Sprintf("#$%02x", d.next())
			}
		}
	case instructions.Direct:
		e.Operand = fmt.Sprintf("<$%02x", d.next())
	case instructions.Extended:
		e.Operand = fmt.Sprintf("$%04x", d.next16())
	case instructions.Relative:
		off := uint16(int16(int8(d.next())))
		e.Operand = fmt.Sprintf("$%04x", e.Next()+off)
	case instructions.LongRelative:
		off := d.next16()
		e.Operand = fmt.Sprintf("$%04x", e.Next()+off)
	case instructions.Indexed:
		e.Operand = d.indexed()
	}

	e.bytecode()

	if d.err != nil {
		return e, fmt.Errorf("disassembly: %04x: %w", address, d.err)
	}

	return e, nil
}

var indexRegisters = [4]string{"X", "Y", "U", "S"}

func signedHex8(v uint8) string {
	if v&0x80 == 0x80 {
		return fmt.Sprintf("-$%02x", -int(int8(v)))
	}
	return fmt.Sprintf("$%02x", v)
}

func (d *decoder) indexed() string {
	pb := d.next()
	reg := indexRegisters[(pb>>5)&0x03]

	if pb&0x80 == 0 {
		off := int(pb & 0x1f)
		if off&0x10 == 0x10 {
			off -= 0x20
		}
		return fmt.Sprintf("%d,%s", off, reg)
	}

	if !cpu.IndexedPostbyteLegal(pb) {
		d.e.Notes = "illegal post-byte"
		return "," + reg
	}

	var s string

	switch pb & 0x0f {
	case 0x0:
		s = fmt.Sprintf(",%s+", reg)
	case 0x1:
		s = fmt.Sprintf(",%s++", reg)
	case 0x2:
		s = fmt.Sprintf(",-%s", reg)
	case 0x3:
		s = fmt.Sprintf(",--%s", reg)
	case 0x4:
		s = fmt.Sprintf(",%s", reg)
	case 0x5:
		s = fmt.Sprintf("B,%s", reg)
	case 0x6:
		s = fmt.Sprintf("A,%s", reg)
	case 0x8:
		s = fmt.Sprintf("%s,%s", signedHex8(d.next()), reg)
	case 0x9:
		s = fmt.Sprintf("$%04x,%s", d.next16(), reg)
	case 0xb:
		s = fmt.Sprintf("D,%s", reg)
	case 0xc:
		off := uint16(int16(int8(d.next())))
		s = fmt.Sprintf("$%04x,PCR", d.e.Next()+off)
	case 0xd:
		off := d.next16()
		s = fmt.Sprintf("$%04x,PCR", d.e.Next()+off)
	case 0xf:
		s = fmt.Sprintf("$%04x", d.next16())
	}

	if pb&0x10 == 0x10 {
		s = fmt.Sprintf("[%s]", s)
	}

	return s
}

// the registers selected by the PSH/PUL post-byte, from bit 0 to bit 7. bit 6
// is the other stack pointer
var stackBits = [8]string{"CC", "A", "B", "DP", "X", "Y", "", "PC"}

func stackList(pb uint8, stack instructions.Register) string {
	other := "U"
	if stack == instructions.U {
		other = "S"
	}

	l := make([]string, 0, 8)
	for i, r := range stackBits {
		if pb&(1<<i) == 0 {
			continue
		}
		if i == 6 {
			r = other
		}
		l = append(l, r)
	}
	return strings.Join(l, ",")
}

// Linear decodes count instructions, starting at the address. Each
// instruction begins at the address following the previous instruction.
func Linear(mem cpubus.Memory, address uint16, count int) ([]*Entry, error) {
	entries := make([]*Entry, 0, count)
	for range count {
		e, err := Decode(mem, address)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
		address = e.Next()
	}
	return entries, nil
}
