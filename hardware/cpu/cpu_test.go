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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6809/test"
)

func TestNotPlumbed(t *testing.T) {
	mc := cpu.NewCPU(nil)
	err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.NotPlumbed), true)
}

func TestPowerOn(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	test.ExpectEquality(t, mc.PC.Value(), uint16(0))
	test.ExpectEquality(t, mc.S.Value(), uint16(0))
	test.ExpectEquality(t, mc.D.Value(), uint16(0))
	test.ExpectEquality(t, mc.CC.IRQMask, true)
	test.ExpectEquality(t, mc.CC.FIRQMask, true)
	test.ExpectEquality(t, mc.CC.Value(), uint8(registers.CCIRQMask|registers.CCFIRQMask))
	test.ExpectEquality(t, mc.InstructionBoundary(), true)

	// RESET sequence takes the PC from the reset vector
	mem.putInstructions(cpubus.Reset, 0x12, 0x34)
	mc.DP.Load(0x55)
	mc.CC.Load(0x00)
	mc.AssertReset()
	mc.ClearReset()
	r := step(t, mc)
	test.ExpectEquality(t, r.Sequence, execution.Reset)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x1234))
	test.ExpectEquality(t, mc.DP.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Value(), uint8(registers.CCIRQMask|registers.CCFIRQMask))
}

// the program described in the 6809 programming manual as the simplest
// possible program: load the accumulator, store it and call the monitor
func TestLoadStoreSWI(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0200, 0x86, 0x2a, 0x97, 0x10, 0x3f)
	mem.putInstructions(cpubus.SWI, 0x03, 0x00)
	mc := newCPU(t, mem, 0x0200)
	test.DemandSuccess(t, mc.LoadS(0x0400))

	// LDA #$2a
	stepCycles(t, mc, 1)
	test.ExpectEquality(t, mc.LastResult.Final, false)
	stepCycles(t, mc, 1)
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.A.Value(), uint8(0x2a))
	test.ExpectEquality(t, mc.CC.Zero, false)
	test.ExpectEquality(t, mc.CC.Negative, false)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	// STA $10
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	mem.assert(t, 0x0010, 0x2a)

	// SWI
	var entireBeforeVector bool
	for {
		test.DemandSuccess(t, mc.Step())
		if mc.Bus.Access == cpu.Read && mc.Bus.Address == cpubus.SWI {
			entireBeforeVector = mc.CC.Entire
		}
		if mc.LastResult.Final {
			break
		}
	}
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.LastResult.Cycles, 19)
	test.ExpectEquality(t, entireBeforeVector, true)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0300))
	test.ExpectEquality(t, mc.S.Value(), uint16(0x0400-12))
	test.ExpectEquality(t, mc.CC.IRQMask, true)
	test.ExpectEquality(t, mc.CC.FIRQMask, true)

	stacked := []uint8{0xd0, 0x2a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x05}
	for i, v := range stacked {
		mem.assert(t, 0x0400-12+uint16(i), v)
	}
}

func TestAddExhaustive(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x8b, 0x00)
	mc := newCPU(t, mem, 0x1000)

	for a := range 256 {
		for b := range 256 {
			mem.internal[0x1001] = uint8(b)
			test.DemandSuccess(t, mc.LoadPC(0x1000))
			mc.A.Load(uint8(a))
			mc.CC.Load(0)
			step(t, mc)

			sum := a + b
			signed := int(int8(a)) + int(int8(b))
			tag := []any{a, b}

			ok := test.ExpectEquality(t, mc.A.Value(), uint8(sum), tag...) &&
				test.ExpectEquality(t, mc.CC.Carry, sum > 0xff, tag...) &&
				test.ExpectEquality(t, mc.CC.Zero, uint8(sum) == 0, tag...) &&
				test.ExpectEquality(t, mc.CC.Negative, uint8(sum)&0x80 == 0x80, tag...) &&
				test.ExpectEquality(t, mc.CC.Overflow, signed < -128 || signed > 127, tag...) &&
				test.ExpectEquality(t, mc.CC.HalfCarry, (a&0x0f)+(b&0x0f) > 0x0f, tag...)
			if !ok {
				return
			}
		}
	}
}

func TestSubtractExhaustive(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x80, 0x00)
	mc := newCPU(t, mem, 0x1000)

	for a := range 256 {
		for b := range 256 {
			mem.internal[0x1001] = uint8(b)
			test.DemandSuccess(t, mc.LoadPC(0x1000))
			mc.A.Load(uint8(a))
			mc.CC.Load(0)
			step(t, mc)

			diff := uint8(a - b)
			signed := int(int8(a)) - int(int8(b))
			tag := []any{a, b}

			ok := test.ExpectEquality(t, mc.A.Value(), diff, tag...) &&
				test.ExpectEquality(t, mc.CC.Carry, b > a, tag...) &&
				test.ExpectEquality(t, mc.CC.Zero, diff == 0, tag...) &&
				test.ExpectEquality(t, mc.CC.Negative, diff&0x80 == 0x80, tag...) &&
				test.ExpectEquality(t, mc.CC.Overflow, signed < -128 || signed > 127, tag...)
			if !ok {
				return
			}
		}
	}
}

func TestCarryArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	// ADCA #$01 with carry set
	mem.putInstructions(0x1000, 0x89, 0x01)
	mc.A.Load(0xfe)
	mc.CC.Carry = true
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.HalfCarry, true)

	// SBCA #$01 with carry set
	mem.putInstructions(0x1000, 0x82, 0x01)
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	mc.A.Load(0x01)
	mc.CC.Carry = true
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Negative, true)

	// CMPB #$10 does not change B
	mem.putInstructions(0x1000, 0xc1, 0x10)
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	mc.B.Load(0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Carry, false)
}

func TestLogical(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	type logical struct {
		opcode uint8
		a      uint8
		data   uint8
		result uint8
		cc     uint8
	}

	// the carry flag is set before each instruction and should be unchanged.
	// the overflow flag is always cleared
	tests := []logical{
		{opcode: 0x84, a: 0xf0, data: 0x3c, result: 0x30, cc: registers.CCCarry},
		{opcode: 0x84, a: 0xf0, data: 0x0f, result: 0x00, cc: registers.CCCarry | registers.CCZero},
		{opcode: 0x8a, a: 0x80, data: 0x01, result: 0x81, cc: registers.CCCarry | registers.CCNegative},
		{opcode: 0x88, a: 0xff, data: 0xff, result: 0x00, cc: registers.CCCarry | registers.CCZero},
		{opcode: 0x85, a: 0x80, data: 0x80, result: 0x80, cc: registers.CCCarry | registers.CCNegative},
		{opcode: 0x85, a: 0x80, data: 0x7f, result: 0x80, cc: registers.CCCarry | registers.CCZero},
		{opcode: 0x86, a: 0x00, data: 0x00, result: 0x00, cc: registers.CCCarry | registers.CCZero},
	}

	for _, tt := range tests {
		mem.putInstructions(0x1000, tt.opcode, tt.data)
		test.DemandSuccess(t, mc.LoadPC(0x1000))
		mc.A.Load(tt.a)
		mc.CC.Load(registers.CCCarry | registers.CCOverflow)
		step(t, mc)
		test.ExpectEquality(t, mc.A.Value(), tt.result, tt.opcode)
		test.ExpectEquality(t, mc.CC.Value(), tt.cc, tt.opcode)
	}
}

func TestUnary(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	type unary struct {
		opcode uint8
		a      uint8
		carry  bool
		result uint8
		cc     uint8
	}

	const (
		c = registers.CCCarry
		v = registers.CCOverflow
		z = registers.CCZero
		n = registers.CCNegative
	)

	tests := []unary{
		{opcode: 0x40, a: 0x01, result: 0xff, cc: n | c},
		{opcode: 0x40, a: 0x80, result: 0x80, cc: n | v | c},
		{opcode: 0x40, a: 0x00, result: 0x00, cc: z},
		{opcode: 0x43, a: 0x0f, result: 0xf0, cc: n | c},
		{opcode: 0x44, a: 0x81, result: 0x40, cc: c},
		{opcode: 0x46, a: 0x01, carry: true, result: 0x80, cc: n | c},
		{opcode: 0x46, a: 0x02, result: 0x01, cc: 0},
		{opcode: 0x47, a: 0x81, result: 0xc0, cc: n | c},
		{opcode: 0x48, a: 0x40, result: 0x80, cc: n | v},
		{opcode: 0x48, a: 0x80, result: 0x00, cc: z | v | c},
		{opcode: 0x49, a: 0x80, carry: true, result: 0x01, cc: v | c},
		{opcode: 0x4a, a: 0x80, result: 0x7f, cc: v},
		{opcode: 0x4a, a: 0x01, result: 0x00, cc: z},
		{opcode: 0x4a, a: 0x00, carry: true, result: 0xff, cc: n | c},
		{opcode: 0x4c, a: 0x7f, result: 0x80, cc: n | v},
		{opcode: 0x4c, a: 0xff, result: 0x00, cc: z},
		{opcode: 0x4d, a: 0x80, carry: true, result: 0x80, cc: n | c},
		{opcode: 0x4f, a: 0x55, carry: true, result: 0x00, cc: z},
	}

	for _, tt := range tests {
		mem.putInstructions(0x1000, tt.opcode)
		test.DemandSuccess(t, mc.LoadPC(0x1000))
		mc.A.Load(tt.a)
		mc.CC.Load(0)
		mc.CC.Carry = tt.carry
		r := step(t, mc)
		test.ExpectEquality(t, r.Cycles, 2, r.Defn)
		test.ExpectEquality(t, mc.A.Value(), tt.result, r.Defn)
		test.ExpectEquality(t, mc.CC.Value(), tt.cc, r.Defn)
	}
}

func TestUnaryMemory(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	// NEG $10
	mem.putInstructions(0x1000, 0x00, 0x10)
	mem.internal[0x0010] = 0x01
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0010, 0xff)
	test.ExpectEquality(t, mc.CC.Negative, true)

	// INC $2000
	mem.putInstructions(0x1000, 0x7c, 0x20, 0x00)
	mem.internal[0x2000] = 0x7f
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x2000, 0x80)
	test.ExpectEquality(t, mc.CC.Overflow, true)

	// TST $10 does not write to memory
	mem.putInstructions(0x1000, 0x0d, 0x10)
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	writes := mem.writes
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mem.writes, writes)
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	// CLR ,X
	mem.putInstructions(0x1000, 0x6f, 0x84)
	mc.X.Load(0x2000)
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x2000, 0x00)
	test.ExpectEquality(t, mc.CC.Zero, true)
}

func TestWordOperations(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	// LDD #$8000
	mem.putInstructions(0x1000, 0xcc, 0x80, 0x00)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, r.InstructionData, uint16(0x8000))
	test.ExpectEquality(t, mc.D.Value(), uint16(0x8000))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.B.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Negative, true)

	// ADDD #$8000
	mem.putInstructions(0x1003, 0xc3, 0x80, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.D.Value(), uint16(0x0000))
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Carry, true)

	// SUBD #$0001
	mem.putInstructions(0x1006, 0x83, 0x00, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), uint16(0xffff))
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	// LDX $10
	mem.putInstructions(0x1009, 0x9e, 0x10)
	mem.putInstructions(0x0010, 0x12, 0x34)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x1234))

	// CMPX #$1234
	mem.putInstructions(0x100b, 0x8c, 0x12, 0x34)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x1234))

	// STD $2000
	mem.putInstructions(0x100e, 0xfd, 0x20, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x2000, 0xff)
	mem.assert(t, 0x2001, 0xff)

	// LDY #$0000
	mem.putInstructions(0x1011, 0x10, 0x8e, 0x00, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, r.ByteCount, 4)
	test.ExpectEquality(t, mc.CC.Zero, true)

	// CMPY #$0001
	mem.putInstructions(0x1015, 0x10, 0x8c, 0x00, 0x01)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Carry, true)

	// LDU #$4000 and STU $2002
	mem.putInstructions(0x1019, 0xce, 0x40, 0x00, 0xff, 0x20, 0x02)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.U.Value(), uint16(0x4000))
	mem.assert(t, 0x2002, 0x40)
	mem.assert(t, 0x2003, 0x00)

	// CMPU #$4000
	mem.putInstructions(0x101f, 0x11, 0x83, 0x40, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.CC.Zero, true)
}

func TestDecimalAdjust(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	type bcd struct {
		a      uint8
		data   uint8
		result uint8
		carry  bool
	}

	tests := []bcd{
		{a: 0x09, data: 0x01, result: 0x10},
		{a: 0x19, data: 0x28, result: 0x47},
		{a: 0x99, data: 0x01, result: 0x00, carry: true},
		{a: 0x50, data: 0x50, result: 0x00, carry: true},
		{a: 0x45, data: 0x44, result: 0x89},
	}

	// ADDA #data; DAA
	for _, tt := range tests {
		mem.putInstructions(0x1000, 0x8b, tt.data, 0x19)
		test.DemandSuccess(t, mc.LoadPC(0x1000))
		mc.A.Load(tt.a)
		mc.CC.Load(0)
		step(t, mc)
		r := step(t, mc)
		test.ExpectEquality(t, r.Cycles, 2)
		test.ExpectEquality(t, mc.A.Value(), tt.result, tt.a, tt.data)
		test.ExpectEquality(t, mc.CC.Carry, tt.carry, tt.a, tt.data)
		test.ExpectEquality(t, mc.CC.Zero, tt.result == 0, tt.a, tt.data)
	}
}

func TestMultiply(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x3d)
	mc := newCPU(t, mem, 0x1000)

	type multiply struct {
		a     uint8
		b     uint8
		carry bool
	}

	// the carry flag is set if bit seven of the result is set
	tests := []multiply{
		{a: 0x0c, b: 0x0a},
		{a: 0x10, b: 0x08, carry: true},
		{a: 0x00, b: 0xff},
		{a: 0xff, b: 0xff},
		{a: 0x10, b: 0x10},
	}

	for _, tt := range tests {
		test.DemandSuccess(t, mc.LoadPC(0x1000))
		mc.A.Load(tt.a)
		mc.B.Load(tt.b)
		r := step(t, mc)
		expected := uint16(tt.a) * uint16(tt.b)
		test.ExpectEquality(t, r.Cycles, 11)
		test.ExpectEquality(t, mc.D.Value(), expected, tt.a, tt.b)
		test.ExpectEquality(t, mc.CC.Carry, tt.carry, tt.a, tt.b)
		test.ExpectEquality(t, mc.CC.Zero, expected == 0, tt.a, tt.b)
	}
}

func TestSignExtend(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x1d)
	mc := newCPU(t, mem, 0x1000)

	// overflow flag is not affected
	mc.B.Load(0x80)
	mc.CC.Overflow = true
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), uint16(0xff80))
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Overflow, true)

	test.DemandSuccess(t, mc.LoadPC(0x1000))
	mc.A.Load(0x55)
	mc.B.Load(0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), uint16(0x0000))
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Negative, false)
}

func TestABX(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x3a)
	mc := newCPU(t, mem, 0x1000)

	// B is treated as unsigned and the condition codes are not affected
	mc.X.Load(0x10f0)
	mc.B.Load(0xff)
	mc.CC.Load(0x0f)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x11ef))
	test.ExpectEquality(t, mc.CC.Value(), uint8(0x0f))
}

func TestConditionCodeImmediate(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x1a, 0x01, 0x1c, 0xaf)
	mc := newCPU(t, mem, 0x1000)

	// ORCC #$01
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.CC.Value(), uint8(0x51))

	// ANDCC #$af
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.CC.Value(), uint8(0x01))
}

func TestSubroutines(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	// JSR $2000
	mem.putInstructions(0x1000, 0xbd, 0x20, 0x00)
	mem.putInstructions(0x2000, 0x39)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 8)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x2000))
	test.ExpectEquality(t, mc.S.Value(), stackOrigin-2)
	mem.assert(t, stackOrigin-2, 0x10)
	mem.assert(t, stackOrigin-1, 0x03)

	// RTS
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x1003))
	test.ExpectEquality(t, mc.S.Value(), stackOrigin)

	// BSR *+$12
	mem.putInstructions(0x1003, 0x8d, 0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x1015))
	mem.assert(t, stackOrigin-2, 0x10)
	mem.assert(t, stackOrigin-1, 0x05)

	// LBSR backwards
	mem.putInstructions(0x1015, 0x17, 0xff, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 9)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x0f18))
	test.ExpectEquality(t, mc.S.Value(), stackOrigin-4)
	mem.assert(t, stackOrigin-4, 0x10)
	mem.assert(t, stackOrigin-3, 0x18)

	// JMP ,X
	mem.putInstructions(0x0f18, 0x6e, 0x84)
	mc.X.Load(0x3000)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x3000))
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	mc.CC.Load(0x0f)
	mc.A.Load(0x01)
	mc.B.Load(0x02)
	mc.DP.Load(0x03)
	mc.X.Load(0x0405)
	mc.Y.Load(0x0607)
	mc.U.Load(0x0900)

	// PSHS CC,A,B,DP,X,Y,U,PC
	mem.putInstructions(0x1000, 0x34, 0xff)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 17)
	test.ExpectEquality(t, r.PostByte, uint8(0xff))
	test.ExpectEquality(t, mc.S.Value(), stackOrigin-12)

	stacked := []uint8{0x0f, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x09, 0x00, 0x10, 0x02}
	for i, v := range stacked {
		mem.assert(t, stackOrigin-12+uint16(i), v)
	}

	// PULS CC,A,B,DP,X,Y,U
	mc.CC.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.DP.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.U.Load(0)
	mem.putInstructions(0x1002, 0x35, 0x7f)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 15)
	test.ExpectEquality(t, mc.S.Value(), stackOrigin-2)
	test.ExpectEquality(t, mc.CC.Value(), uint8(0x0f))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.B.Value(), uint8(0x02))
	test.ExpectEquality(t, mc.DP.Value(), uint8(0x03))
	test.ExpectEquality(t, mc.X.Value(), uint16(0x0405))
	test.ExpectEquality(t, mc.Y.Value(), uint16(0x0607))
	test.ExpectEquality(t, mc.U.Value(), uint16(0x0900))

	// PULS PC
	mem.putInstructions(0x1004, 0x35, 0x80)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.S.Value(), stackOrigin)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x1002))

	// PSHU S. pushes the S register onto the U stack
	mem.putInstructions(0x1002, 0x36, 0x40)
	test.DemandSuccess(t, mc.LoadPC(0x1002))
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.U.Value(), uint16(0x08fe))
	mem.assert(t, 0x08fe, 0x08)
	mem.assert(t, 0x08ff, 0x00)

	// PSHS with an empty post-byte
	mem.putInstructions(0x1004, 0x34, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.S.Value(), stackOrigin)
}

func TestTransfer(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	type transfer struct {
		opcode   uint8
		postbyte uint8
		check    func() bool
	}

	set := func() {
		mc.A.Load(0x12)
		mc.B.Load(0x34)
		mc.X.Load(0x5678)
		mc.Y.Load(0x9abc)
		mc.DP.Load(0x00)
	}

	tests := []transfer{
		// TFR A,B
		{opcode: 0x1f, postbyte: 0x89, check: func() bool {
			return mc.B.Value() == 0x12 && mc.A.Value() == 0x12
		}},
		// TFR X,Y
		{opcode: 0x1f, postbyte: 0x12, check: func() bool {
			return mc.Y.Value() == 0x5678 && mc.X.Value() == 0x5678
		}},
		// EXG A,B
		{opcode: 0x1e, postbyte: 0x89, check: func() bool {
			return mc.A.Value() == 0x34 && mc.B.Value() == 0x12
		}},
		// EXG D,X
		{opcode: 0x1e, postbyte: 0x01, check: func() bool {
			return mc.D.Value() == 0x5678 && mc.X.Value() == 0x1234
		}},
		// TFR A,X. eight bit to sixteen bit
		{opcode: 0x1f, postbyte: 0x81, check: func() bool {
			return mc.X.Value() == 0xff12
		}},
		// TFR Y,B. sixteen bit to eight bit
		{opcode: 0x1f, postbyte: 0x29, check: func() bool {
			return mc.B.Value() == 0xbc
		}},
		// EXG A,DP
		{opcode: 0x1e, postbyte: 0x8b, check: func() bool {
			return mc.A.Value() == 0x00 && mc.DP.Value() == 0x12
		}},
		// TFR to an undefined register is ignored
		{opcode: 0x1f, postbyte: 0x86, check: func() bool {
			return mc.A.Value() == 0x12 && mc.B.Value() == 0x34 && mc.X.Value() == 0x5678
		}},
		// undefined register reads as all bits set
		{opcode: 0x1f, postbyte: 0xc8, check: func() bool {
			return mc.A.Value() == 0xff
		}},
		{opcode: 0x1f, postbyte: 0x61, check: func() bool {
			return mc.X.Value() == 0xffff
		}},
	}

	for _, tt := range tests {
		mem.putInstructions(0x1000, tt.opcode, tt.postbyte)
		test.DemandSuccess(t, mc.LoadPC(0x1000))
		set()
		r := step(t, mc)
		if tt.opcode == 0x1f {
			test.ExpectEquality(t, r.Cycles, 6, tt.postbyte)
		} else {
			test.ExpectEquality(t, r.Cycles, 8, tt.postbyte)
		}
		test.ExpectEquality(t, tt.check(), true, tt.opcode, tt.postbyte)
	}

	// TFR X,PC
	mem.putInstructions(0x1000, 0x1f, 0x15)
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	mc.X.Load(0x4000)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x4000))

	test.ExpectEquality(t, cpu.RegisterName(0x5), "PC")
	test.ExpectEquality(t, cpu.RegisterName(0xb), "DP")
	test.ExpectEquality(t, cpu.RegisterName(0x6), "?")
}

func TestBusActivity(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)
	mc.DP.Load(0x20)

	// LDA $10 followed by STA $3000
	mem.putInstructions(0x1000, 0x96, 0x10, 0xb7, 0x30, 0x00)
	mem.internal[0x2010] = 0x99

	expected := []cpu.Bus{
		{Address: 0x1000, Data: 0x96, Access: cpu.Read},
		{Address: 0x1001, Data: 0x10, Access: cpu.Read},
		{Address: cpu.IdleAddress, Access: cpu.Idle},
		{Address: 0x2010, Data: 0x99, Access: cpu.Read},
		{Address: 0x1002, Data: 0xb7, Access: cpu.Read},
		{Address: 0x1003, Data: 0x30, Access: cpu.Read},
		{Address: 0x1004, Data: 0x00, Access: cpu.Read},
		{Address: cpu.IdleAddress, Access: cpu.Idle},
		{Address: 0x3000, Data: 0x99, Access: cpu.Write},
	}

	reads := mem.reads
	for i, b := range expected {
		test.DemandSuccess(t, mc.Step())
		test.ExpectEquality(t, mc.Bus, b, i)
	}
	test.ExpectEquality(t, mc.LastResult.Final, true)

	// idle cycles do not access memory
	test.ExpectEquality(t, mem.reads-reads, 6)
	mem.assert(t, 0x3000, 0x99)
}

func TestAddressError(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x1000)

	// LDA $e000. the address is not mapped but the CPU continues
	mem.putInstructions(0x1000, 0xb6, 0xe0, 0x00, 0x12)
	r := step(t, mc)
	test.ExpectInequality(t, r.Error, "")
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x1003))

	// the error is not carried over to the next instruction
	r = step(t, mc)
	test.ExpectEquality(t, r.Error, "")

	// any other error is returned by Step()
	mem.putInstructions(0x1004, 0xb6, 0xd0, 0x00)
	var err error
	for range 5 {
		err = mc.Step()
		if err != nil {
			break
		}
	}
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, errFault), true)
}

func TestLoadHatches(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x1000, 0x86, 0x01)
	mc := newCPU(t, mem, 0x1000)

	// mid-instruction
	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.InstructionBoundary(), false)
	test.ExpectFailure(t, mc.LoadPC(0x2000))
	test.ExpectFailure(t, mc.LoadS(0x2000))

	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.InstructionBoundary(), true)
	test.ExpectSuccess(t, mc.LoadPC(0x2000))
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x2000))
}
