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

package instructions

// the table of definitions. indexed by page and then by opcode
var table = buildTable()

// timing for one addressing mode of a group of opcodes
type timing struct {
	mode   AddressingMode
	cycles int
	bytes  int
}

// opcode rows are grouped by addressing mode. the low nibble selects the
// operator and the high nibble selects the mode (and for the two operand
// instructions, the accumulator)
var (
	unaryDirect   = timing{mode: Direct, cycles: 6, bytes: 2}
	unaryInherent = timing{mode: Inherent, cycles: 2, bytes: 1}
	unaryIndexed  = timing{mode: Indexed, cycles: 6, bytes: 2}
	unaryExtended = timing{mode: Extended, cycles: 7, bytes: 3}

	byteImmediate = timing{mode: Immediate, cycles: 2, bytes: 2}
	byteDirect    = timing{mode: Direct, cycles: 4, bytes: 2}
	byteIndexed   = timing{mode: Indexed, cycles: 4, bytes: 2}
	byteExtended  = timing{mode: Extended, cycles: 5, bytes: 3}
)

// column of an opcode row
var unaryOperators = map[uint8]Operator{
	0x0: Neg, 0x3: Com, 0x4: Lsr, 0x6: Ror, 0x7: Asr, 0x8: Asl,
	0x9: Rol, 0xa: Dec, 0xc: Inc, 0xd: Tst, 0xf: Clr,
}

var byteOperators = map[uint8]Operator{
	0x0: Sub, 0x1: Cmp, 0x2: Sbc, 0x4: And, 0x5: Bit, 0x6: Ld,
	0x7: St, 0x8: Eor, 0x9: Adc, 0xa: Or, 0xb: Add,
}

func effectOf(op Operator) EffectCategory {
	switch op {
	case St:
		return Write
	case Neg, Com, Lsr, Ror, Asr, Asl, Rol, Dec, Inc, Clr:
		return Modify
	case Nop, Daa, Sex, Exg, Tfr, Abx, Mul, Lea:
		return Internal
	case Psh, Pul:
		return Stack
	case Jmp:
		return Flow
	case Bsr, Jsr, Rts:
		return Subroutine
	case Sync, Rti, Cwai, Swi, Swi2, Swi3, Reset:
		return Interrupt
	}
	if op.IsBranch() {
		return Flow
	}
	return Read
}

func mnemonic(op Operator, reg Register, mode AddressingMode) string {
	s := op.String() + reg.String()
	if mode == LongRelative {
		s = "L" + s
	}
	return s
}

func buildTable() *[NumPages][256]Definition {
	t := &[NumPages][256]Definition{}

	// every opcode is invalid until it is defined below. the invalid opcodes on
	// the extended pages take an additional byte and cycle for the prefix
	for p := Unprefixed; p < NumPages; p++ {
		for o := 0; o < 256; o++ {
			d := Definition{
				OpCode:         uint8(o),
				Page:           p,
				Mnemonic:       Invalid.String(),
				Operator:       Invalid,
				AddressingMode: Inherent,
				Effect:         Internal,
				Bytes:          1,
				Cycles:         2,
				MaxCycles:      2,
			}
			if p != Unprefixed {
				d.Bytes++
				d.Cycles++
				d.MaxCycles++
			}
			t[p][o] = d
		}
	}

	define := func(p Page, opcode uint8, op Operator, reg Register, tm timing) *Definition {
		d := &t[p][opcode]
		d.Mnemonic = mnemonic(op, reg, tm.mode)
		d.Operator = op
		d.Register = reg
		d.AddressingMode = tm.mode
		d.Effect = effectOf(op)
		d.Bytes = tm.bytes
		d.Cycles = tm.cycles
		d.MaxCycles = tm.cycles

		// indexed instructions can take an unknown number of extra cycles
		if tm.mode == Indexed {
			d.MaxCycles = 0
		}

		return d
	}

	// memory and accumulator operators. JMP is in the same rows but only in the
	// memory addressing modes
	for col, op := range unaryOperators {
		define(Unprefixed, 0x00|col, op, NoRegister, unaryDirect)
		define(Unprefixed, 0x40|col, op, A, unaryInherent)
		define(Unprefixed, 0x50|col, op, B, unaryInherent)
		define(Unprefixed, 0x60|col, op, NoRegister, unaryIndexed)
		define(Unprefixed, 0x70|col, op, NoRegister, unaryExtended)
	}
	define(Unprefixed, 0x0e, Jmp, NoRegister, timing{mode: Direct, cycles: 3, bytes: 2})
	define(Unprefixed, 0x6e, Jmp, NoRegister, timing{mode: Indexed, cycles: 3, bytes: 2})
	define(Unprefixed, 0x7e, Jmp, NoRegister, timing{mode: Extended, cycles: 4, bytes: 3})

	// two operand 8bit operators. there is no store immediate instruction
	for col, op := range byteOperators {
		if op != St {
			define(Unprefixed, 0x80|col, op, A, byteImmediate)
			define(Unprefixed, 0xc0|col, op, B, byteImmediate)
		}
		define(Unprefixed, 0x90|col, op, A, byteDirect)
		define(Unprefixed, 0xa0|col, op, A, byteIndexed)
		define(Unprefixed, 0xb0|col, op, A, byteExtended)
		define(Unprefixed, 0xd0|col, op, B, byteDirect)
		define(Unprefixed, 0xe0|col, op, B, byteIndexed)
		define(Unprefixed, 0xf0|col, op, B, byteExtended)
	}

	// two operand 16bit operators. the base opcode is the immediate form and
	// the other addressing modes follow in steps of 0x10
	word := func(p Page, base uint8, op Operator, reg Register, cycles int) {
		prefix := 0
		if p != Unprefixed {
			prefix = 1
		}

		if op != St {
			define(p, base, op, reg, timing{mode: Immediate, cycles: cycles + prefix, bytes: 3 + prefix})
		}

		// direct and indexed addressing modes take two more cycles than the
		// immediate form. extended takes three more
		define(p, base+0x10, op, reg, timing{mode: Direct, cycles: cycles + 2 + prefix, bytes: 2 + prefix})
		define(p, base+0x20, op, reg, timing{mode: Indexed, cycles: cycles + 2 + prefix, bytes: 2 + prefix})
		define(p, base+0x30, op, reg, timing{mode: Extended, cycles: cycles + 3 + prefix, bytes: 3 + prefix})
	}

	// arithmetic
	word(Unprefixed, 0x83, Sub, D, 4)
	word(Unprefixed, 0xc3, Add, D, 4)
	word(Unprefixed, 0x8c, Cmp, X, 4)
	word(Prefix10, 0x83, Cmp, D, 4)
	word(Prefix10, 0x8c, Cmp, Y, 4)
	word(Prefix11, 0x83, Cmp, U, 4)
	word(Prefix11, 0x8c, Cmp, S, 4)

	// load and store. the first opcode in the store column is invalid
	word(Unprefixed, 0x8e, Ld, X, 3)
	word(Unprefixed, 0x8f, St, X, 3)
	word(Unprefixed, 0xcc, Ld, D, 3)
	word(Unprefixed, 0xcd, St, D, 3)
	word(Unprefixed, 0xce, Ld, U, 3)
	word(Unprefixed, 0xcf, St, U, 3)
	word(Prefix10, 0x8e, Ld, Y, 3)
	word(Prefix10, 0x8f, St, Y, 3)
	word(Prefix10, 0xce, Ld, S, 3)
	word(Prefix10, 0xcf, St, S, 3)

	// subroutines
	define(Unprefixed, 0x8d, Bsr, NoRegister, timing{mode: Relative, cycles: 7, bytes: 2})
	define(Unprefixed, 0x9d, Jsr, NoRegister, timing{mode: Direct, cycles: 7, bytes: 2})
	define(Unprefixed, 0xad, Jsr, NoRegister, timing{mode: Indexed, cycles: 7, bytes: 2})
	define(Unprefixed, 0xbd, Jsr, NoRegister, timing{mode: Extended, cycles: 8, bytes: 3})
	define(Unprefixed, 0x17, Bsr, NoRegister, timing{mode: LongRelative, cycles: 9, bytes: 3})
	define(Unprefixed, 0x39, Rts, NoRegister, timing{mode: Inherent, cycles: 5, bytes: 1})

	// branches. the long form of BRA is on the first page and takes the same
	// number of cycles as a taken long branch on the second page
	for o := Bra; o <= Ble; o++ {
		opcode := uint8(0x20 + o - Bra)
		define(Unprefixed, opcode, o, NoRegister, timing{mode: Relative, cycles: 3, bytes: 2})
		if o != Bra {
			d := define(Prefix10, opcode, o, NoRegister, timing{mode: LongRelative, cycles: 5, bytes: 4})
			d.MaxCycles = 6
		}
	}
	define(Unprefixed, 0x16, Bra, NoRegister, timing{mode: LongRelative, cycles: 5, bytes: 3})

	// miscellaneous inherent instructions
	define(Unprefixed, 0x12, Nop, NoRegister, timing{mode: Inherent, cycles: 2, bytes: 1})
	define(Unprefixed, 0x19, Daa, NoRegister, timing{mode: Inherent, cycles: 2, bytes: 1})
	define(Unprefixed, 0x1d, Sex, NoRegister, timing{mode: Inherent, cycles: 2, bytes: 1})
	define(Unprefixed, 0x3a, Abx, NoRegister, timing{mode: Inherent, cycles: 3, bytes: 1})
	define(Unprefixed, 0x3d, Mul, NoRegister, timing{mode: Inherent, cycles: 11, bytes: 1})

	// condition codes
	define(Unprefixed, 0x1a, Or, CC, timing{mode: Immediate, cycles: 3, bytes: 2}).Effect = Internal
	define(Unprefixed, 0x1c, And, CC, timing{mode: Immediate, cycles: 3, bytes: 2}).Effect = Internal

	// register post-byte
	define(Unprefixed, 0x1e, Exg, NoRegister, timing{mode: Immediate, cycles: 8, bytes: 2})
	define(Unprefixed, 0x1f, Tfr, NoRegister, timing{mode: Immediate, cycles: 6, bytes: 2})

	// load effective address
	define(Unprefixed, 0x30, Lea, X, timing{mode: Indexed, cycles: 4, bytes: 2})
	define(Unprefixed, 0x31, Lea, Y, timing{mode: Indexed, cycles: 4, bytes: 2})
	define(Unprefixed, 0x32, Lea, S, timing{mode: Indexed, cycles: 4, bytes: 2})
	define(Unprefixed, 0x33, Lea, U, timing{mode: Indexed, cycles: 4, bytes: 2})

	// stack. each register in the post-byte adds one cycle per byte
	for _, s := range []struct {
		opcode uint8
		op     Operator
		reg    Register
	}{
		{opcode: 0x34, op: Psh, reg: S},
		{opcode: 0x35, op: Pul, reg: S},
		{opcode: 0x36, op: Psh, reg: U},
		{opcode: 0x37, op: Pul, reg: U},
	} {
		define(Unprefixed, s.opcode, s.op, s.reg, timing{mode: Immediate, cycles: 5, bytes: 2}).MaxCycles = 5 + 12
	}

	// interrupts
	define(Unprefixed, 0x13, Sync, NoRegister, timing{mode: Inherent, cycles: 4, bytes: 1}).MaxCycles = 0
	define(Unprefixed, 0x3b, Rti, NoRegister, timing{mode: Inherent, cycles: 6, bytes: 1}).MaxCycles = 15
	define(Unprefixed, 0x3c, Cwai, NoRegister, timing{mode: Immediate, cycles: 20, bytes: 2}).MaxCycles = 0
	define(Unprefixed, 0x3f, Swi, NoRegister, timing{mode: Inherent, cycles: 19, bytes: 1})
	define(Prefix10, 0x3f, Swi2, NoRegister, timing{mode: Inherent, cycles: 20, bytes: 2})
	define(Prefix11, 0x3f, Swi3, NoRegister, timing{mode: Inherent, cycles: 20, bytes: 2})
	define(Unprefixed, 0x3e, Reset, NoRegister, timing{mode: Inherent, cycles: 19, bytes: 1}).Undocumented = true

	return t
}
