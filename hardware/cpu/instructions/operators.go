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

// Operator defines which operation is performed by the opcode. Many opcodes
// share an operator, differing only by the addressing mode and the register
// the operator works on.
type Operator int

// List of operators. The order of the conditional branch operators follows
// the order of the opcodes.
const (
	Invalid Operator = iota

	// memory and accumulator
	Neg
	Com
	Lsr
	Ror
	Asr
	Asl
	Rol
	Dec
	Inc
	Tst
	Clr

	// two operand
	Sub
	Cmp
	Sbc
	And
	Bit
	Ld
	St
	Eor
	Adc
	Or
	Add

	// inherent
	Nop
	Sync
	Daa
	Sex
	Exg
	Tfr
	Abx
	Mul

	Lea
	Psh
	Pul

	// flow control. branches run from Bra through to Ble
	Bra
	Brn
	Bhi
	Bls
	Bcc
	Bcs
	Bne
	Beq
	Bvc
	Bvs
	Bpl
	Bmi
	Bge
	Blt
	Bgt
	Ble
	Jmp
	Bsr
	Jsr
	Rts

	// interrupt
	Rti
	Cwai
	Swi
	Swi2
	Swi3
	Reset
)

var operatorStems = map[Operator]string{
	Invalid: "???",
	Neg:     "NEG",
	Com:     "COM",
	Lsr:     "LSR",
	Ror:     "ROR",
	Asr:     "ASR",
	Asl:     "ASL",
	Rol:     "ROL",
	Dec:     "DEC",
	Inc:     "INC",
	Tst:     "TST",
	Clr:     "CLR",
	Sub:     "SUB",
	Cmp:     "CMP",
	Sbc:     "SBC",
	And:     "AND",
	Bit:     "BIT",
	Ld:      "LD",
	St:      "ST",
	Eor:     "EOR",
	Adc:     "ADC",
	Or:      "OR",
	Add:     "ADD",
	Nop:     "NOP",
	Sync:    "SYNC",
	Daa:     "DAA",
	Sex:     "SEX",
	Exg:     "EXG",
	Tfr:     "TFR",
	Abx:     "ABX",
	Mul:     "MUL",
	Lea:     "LEA",
	Psh:     "PSH",
	Pul:     "PUL",
	Bra:     "BRA",
	Brn:     "BRN",
	Bhi:     "BHI",
	Bls:     "BLS",
	Bcc:     "BCC",
	Bcs:     "BCS",
	Bne:     "BNE",
	Beq:     "BEQ",
	Bvc:     "BVC",
	Bvs:     "BVS",
	Bpl:     "BPL",
	Bmi:     "BMI",
	Bge:     "BGE",
	Blt:     "BLT",
	Bgt:     "BGT",
	Ble:     "BLE",
	Jmp:     "JMP",
	Bsr:     "BSR",
	Jsr:     "JSR",
	Rts:     "RTS",
	Rti:     "RTI",
	Cwai:    "CWAI",
	Swi:     "SWI",
	Swi2:    "SWI2",
	Swi3:    "SWI3",
	Reset:   "RESET",
}

func (op Operator) String() string {
	if s, ok := operatorStems[op]; ok {
		return s
	}
	return "unknown operator"
}

// IsBranch returns true if the operator is one of the branch operators. BSR
// is not included.
func (op Operator) IsBranch() bool {
	return op >= Bra && op <= Ble
}

// Register is the register an instruction operates on. It's part of the
// instruction's mnemonic, for example the A in LDA.
type Register int

// List of registers that can be the target of an instruction.
const (
	NoRegister Register = iota
	A
	B
	D
	X
	Y
	U
	S
	CC
)

func (r Register) String() string {
	switch r {
	case NoRegister:
		return ""
	case A:
		return "A"
	case B:
		return "B"
	case D:
		return "D"
	case X:
		return "X"
	case Y:
		return "Y"
	case U:
		return "U"
	case S:
		return "S"
	case CC:
		return "CC"
	}
	return "?"
}

// Is16Bit returns true if the register is sixteen bits wide.
func (r Register) Is16Bit() bool {
	return r == D || r == X || r == Y || r == U || r == S
}
