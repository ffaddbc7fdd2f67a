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
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
)

// accumulator returns the 8bit register for the instruction register
func (mc *CPU) accumulator(r instructions.Register) *registers.Register {
	if r == instructions.B {
		return &mc.B
	}
	return &mc.A
}

// word returns the value of the 16bit register for the instruction register
func (mc *CPU) word(r instructions.Register) uint16 {
	switch r {
	case instructions.D:
		return mc.D.Value()
	case instructions.X:
		return mc.X.Value()
	case instructions.Y:
		return mc.Y.Value()
	case instructions.U:
		return mc.U.Value()
	case instructions.S:
		return mc.S.Value()
	}
	return 0
}

// loadWord loads the 16bit register for the instruction register
func (mc *CPU) loadWord(r instructions.Register, v uint16) {
	switch r {
	case instructions.D:
		mc.D.Load(v)
	case instructions.X:
		mc.X.Load(v)
	case instructions.Y:
		mc.Y.Load(v)
	case instructions.U:
		mc.U.Load(v)
	case instructions.S:
		mc.loadS(v)
	}
}

// alu8 performs the two operand 8bit operation and updates the condition
// codes. returns the result and whether the result should be stored in the
// accumulator
func (mc *CPU) alu8(op instructions.Operator, a, b uint8) (uint8, bool) {
	var carry uint16
	if mc.CC.Carry {
		carry = 1
	}

	switch op {
	case instructions.Add:
		r := uint16(a) + uint16(b)
		mc.CC = mc.CC.Add8(a, b, r)
		return uint8(r), true
	case instructions.Adc:
		r := uint16(a) + uint16(b) + carry
		mc.CC = mc.CC.Add8(a, b, r)
		return uint8(r), true
	case instructions.Sub:
		r := uint16(a) - uint16(b)
		mc.CC = mc.CC.Sub8(a, b, r)
		return uint8(r), true
	case instructions.Sbc:
		r := uint16(a) - uint16(b) - carry
		mc.CC = mc.CC.Sub8(a, b, r)
		return uint8(r), true
	case instructions.Cmp:
		r := uint16(a) - uint16(b)
		mc.CC = mc.CC.Sub8(a, b, r)
		return a, false
	case instructions.And:
		r := a & b
		mc.CC = mc.CC.Logic8(r)
		return r, true
	case instructions.Bit:
		mc.CC = mc.CC.Logic8(a & b)
		return a, false
	case instructions.Eor:
		r := a ^ b
		mc.CC = mc.CC.Logic8(r)
		return r, true
	case instructions.Or:
		r := a | b
		mc.CC = mc.CC.Logic8(r)
		return r, true
	case instructions.Ld:
		mc.CC = mc.CC.Logic8(b)
		return b, true
	}

	return a, false
}

// alu16 performs the two operand 16bit operation and updates the condition
// codes. returns the result and whether the result should be stored in the
// register
func (mc *CPU) alu16(op instructions.Operator, a, b uint16) (uint16, bool) {
	switch op {
	case instructions.Add:
		r := uint32(a) + uint32(b)
		mc.CC = mc.CC.Add16(a, b, r)
		return uint16(r), true
	case instructions.Sub:
		r := uint32(a) - uint32(b)
		mc.CC = mc.CC.Sub16(a, b, r)
		return uint16(r), true
	case instructions.Cmp:
		r := uint32(a) - uint32(b)
		mc.CC = mc.CC.Sub16(a, b, r)
		return a, false
	case instructions.Ld:
		mc.CC = mc.CC.Logic16(b)
		return b, true
	}

	return a, false
}

// unary performs the single operand operation and updates the condition
// codes
func (mc *CPU) unary(op instructions.Operator, v uint8) uint8 {
	var r uint8

	switch op {
	case instructions.Neg:
		w := uint16(0) - uint16(v)
		mc.CC = mc.CC.Sub8(0, v, w)
		return uint8(w)
	case instructions.Com:
		r = ^v
		mc.CC = mc.CC.Logic8(r)
		mc.CC.Carry = true
	case instructions.Lsr:
		r = v >> 1
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Carry = v&0x01 == 0x01
	case instructions.Ror:
		r = v >> 1
		if mc.CC.Carry {
			r |= 0x80
		}
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Carry = v&0x01 == 0x01
	case instructions.Asr:
		r = (v >> 1) | (v & 0x80)
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Carry = v&0x01 == 0x01
	case instructions.Asl:
		r = v << 1
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Overflow = (v^(v<<1))&0x80 == 0x80
		mc.CC.Carry = v&0x80 == 0x80
	case instructions.Rol:
		r = v << 1
		if mc.CC.Carry {
			r |= 0x01
		}
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Overflow = (v^(v<<1))&0x80 == 0x80
		mc.CC.Carry = v&0x80 == 0x80
	case instructions.Dec:
		r = v - 1
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Overflow = v == 0x80
	case instructions.Inc:
		r = v + 1
		mc.CC = mc.CC.NZ8(r)
		mc.CC.Overflow = v == 0x7f
	case instructions.Tst:
		r = v
		mc.CC = mc.CC.Logic8(r)
	case instructions.Clr:
		r = 0
		mc.CC = mc.CC.Logic8(r)
		mc.CC.Carry = false
	}

	return r
}

func unaryAccumulator(mc *CPU) error {
	acc := mc.accumulator(mc.defn.Register)
	acc.Load(mc.unary(mc.defn.Operator, acc.Value()))
	return nil
}

// readMemory is the first cycle of a memory read-modify-write instruction.
// TST has no write cycle so the flags are set here
func readMemory(mc *CPU) error {
	v, err := mc.readEA(0)
	if err != nil {
		return err
	}
	mc.operand = v
	if mc.defn.Operator == instructions.Tst {
		mc.unary(instructions.Tst, v)
	}
	return nil
}

func writeMemory(mc *CPU) error {
	return mc.write8Bit(mc.ea.Value(), mc.unary(mc.defn.Operator, mc.operand))
}

func operate8(mc *CPU) error {
	v, err := mc.readEA(0)
	if err != nil {
		return err
	}
	acc := mc.accumulator(mc.defn.Register)
	if r, ok := mc.alu8(mc.defn.Operator, acc.Value(), v); ok {
		acc.Load(r)
	}
	return nil
}

func readHi(mc *CPU) error {
	v, err := mc.readEA(0)
	if err != nil {
		return err
	}
	mc.offset.LoadHi(v)
	return nil
}

func operate16(mc *CPU) error {
	v, err := mc.readEA(1)
	if err != nil {
		return err
	}
	mc.offset.LoadLo(v)
	if r, ok := mc.alu16(mc.defn.Operator, mc.word(mc.defn.Register), mc.offset.Value()); ok {
		mc.loadWord(mc.defn.Register, r)
	}
	return nil
}

// ORCC and ANDCC
func operateCC(mc *CPU) error {
	v, err := mc.readEA(0)
	if err != nil {
		return err
	}
	if mc.defn.Operator == instructions.Or {
		mc.CC.Load(mc.CC.Value() | v)
	} else {
		mc.CC.Load(mc.CC.Value() & v)
	}
	return nil
}

func store8(mc *CPU) error {
	v := mc.accumulator(mc.defn.Register).Value()
	mc.CC = mc.CC.Logic8(v)
	return mc.write8Bit(mc.ea.Value(), v)
}

func storeHi(mc *CPU) error {
	v := mc.word(mc.defn.Register)
	mc.CC = mc.CC.Logic16(v)
	return mc.write8Bit(mc.ea.Value(), uint8(v>>8))
}

func storeLo(mc *CPU) error {
	v := mc.word(mc.defn.Register)
	return mc.write8Bit(mc.ea.Value()+1, uint8(v))
}

func lea(mc *CPU) error {
	v := mc.ea.Value()
	switch mc.defn.Register {
	case instructions.X:
		mc.X.Load(v)
		mc.CC.Zero = v == 0
	case instructions.Y:
		mc.Y.Load(v)
		mc.CC.Zero = v == 0
	case instructions.U:
		mc.U.Load(v)
	case instructions.S:
		mc.loadS(v)
	}
	return nil
}

// decimal adjust of the A register after a BCD addition
func daa(mc *CPU) error {
	a := mc.A.Value()
	msn := a & 0xf0
	lsn := a & 0x0f

	var cf uint16
	if lsn > 0x09 || mc.CC.HalfCarry {
		cf |= 0x06
	}
	if msn > 0x80 && lsn > 0x09 {
		cf |= 0x60
	}
	if msn > 0x90 || mc.CC.Carry {
		cf |= 0x60
	}

	r := cf + uint16(a)
	mc.A.Load(uint8(r))

	// the carry flag is only ever set by DAA, never cleared
	mc.CC = mc.CC.Logic8(uint8(r))
	mc.CC.Carry = mc.CC.Carry || r&0x100 == 0x100
	return nil
}

// sign extend B into A
func sex(mc *CPU) error {
	if mc.B.IsNegative() {
		mc.A.Load(0xff)
	} else {
		mc.A.Load(0x00)
	}
	mc.CC = mc.CC.NZ16(mc.D.Value())
	return nil
}

func mul(mc *CPU) error {
	r := uint16(mc.A.Value()) * uint16(mc.B.Value())
	mc.D.Load(r)
	mc.CC.Zero = r == 0
	mc.CC.Carry = r&0x80 == 0x80
	return nil
}

func abx(mc *CPU) error {
	mc.X.Add(uint16(mc.B.Value()))
	return nil
}
