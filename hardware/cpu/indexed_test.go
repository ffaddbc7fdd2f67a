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
	"testing"

	"github.com/jetsetilly/gopher6809/test"
)

func TestIndexedAddressing(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem, 0x2000)

	mem.putInstructions(0x1000, 0x30, 0x00, 0x56, 0x78)
	mem.putInstructions(0x4000, 0x12, 0x34)

	type indexed struct {
		name   string
		bytes  []uint8
		ea     uint16
		x      uint16
		cycles int
	}

	// LEAY with X=$1000 Y=$7777 U=$3333 S=$0800 A=$05 B=$f0
	tests := []indexed{
		{name: ",X", bytes: []uint8{0x84}, ea: 0x1000, x: 0x1000, cycles: 4},
		{name: "5,X", bytes: []uint8{0x05}, ea: 0x1005, x: 0x1000, cycles: 5},
		{name: "-1,X", bytes: []uint8{0x1f}, ea: 0x0fff, x: 0x1000, cycles: 5},
		{name: "-16,X", bytes: []uint8{0x10}, ea: 0x0ff0, x: 0x1000, cycles: 5},
		{name: "n8,X", bytes: []uint8{0x88, 0x80}, ea: 0x0f80, x: 0x1000, cycles: 5},
		{name: "n16,X", bytes: []uint8{0x89, 0x12, 0x34}, ea: 0x2234, x: 0x1000, cycles: 8},
		{name: "A,X", bytes: []uint8{0x86}, ea: 0x1005, x: 0x1000, cycles: 5},
		{name: "B,X", bytes: []uint8{0x85}, ea: 0x0ff0, x: 0x1000, cycles: 5},
		{name: "D,X", bytes: []uint8{0x8b}, ea: 0x15f0, x: 0x1000, cycles: 8},
		{name: ",X+", bytes: []uint8{0x80}, ea: 0x1000, x: 0x1001, cycles: 6},
		{name: ",X++", bytes: []uint8{0x81}, ea: 0x1000, x: 0x1002, cycles: 7},
		{name: ",-X", bytes: []uint8{0x82}, ea: 0x0fff, x: 0x0fff, cycles: 6},
		{name: ",--X", bytes: []uint8{0x83}, ea: 0x0ffe, x: 0x0ffe, cycles: 7},
		{name: "n8,PCR", bytes: []uint8{0x8c, 0x10}, ea: 0x2013, x: 0x1000, cycles: 5},
		{name: "n16,PCR", bytes: []uint8{0x8d, 0x01, 0x00}, ea: 0x2104, x: 0x1000, cycles: 9},
		{name: "[,X]", bytes: []uint8{0x94}, ea: 0x3000, x: 0x1000, cycles: 7},
		{name: "[n8,X]", bytes: []uint8{0x98, 0x02}, ea: 0x5678, x: 0x1000, cycles: 8},
		{name: "[,X++]", bytes: []uint8{0x91}, ea: 0x3000, x: 0x1002, cycles: 10},
		{name: "[n16]", bytes: []uint8{0x9f, 0x40, 0x00}, ea: 0x1234, x: 0x1000, cycles: 9},
		{name: ",Y", bytes: []uint8{0xa4}, ea: 0x7777, x: 0x1000, cycles: 4},
		{name: ",U", bytes: []uint8{0xc4}, ea: 0x3333, x: 0x1000, cycles: 4},
		{name: ",S", bytes: []uint8{0xe4}, ea: 0x0800, x: 0x1000, cycles: 4},

		// illegal post-bytes are treated as ,X
		{name: "illegal 87", bytes: []uint8{0x87}, ea: 0x1000, x: 0x1000, cycles: 4},
		{name: "illegal [,X+]", bytes: []uint8{0x90}, ea: 0x1000, x: 0x1000, cycles: 4},
		{name: "illegal 9e", bytes: []uint8{0x9e}, ea: 0x1000, x: 0x1000, cycles: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem.putInstructions(0x2000, 0x31)
			mem.putInstructions(0x2001, tt.bytes...)
			mem.internal[0x1000] = 0x30
			mem.internal[0x1001] = 0x00

			test.DemandSuccess(t, mc.LoadPC(0x2000))
			test.DemandSuccess(t, mc.LoadS(0x0800))
			mc.X.Load(0x1000)
			mc.Y.Load(0x7777)
			mc.U.Load(0x3333)
			mc.A.Load(0x05)
			mc.B.Load(0xf0)

			r := step(t, mc)
			test.ExpectEquality(t, mc.Y.Value(), tt.ea)
			test.ExpectEquality(t, mc.X.Value(), tt.x)
			test.ExpectEquality(t, r.Cycles, tt.cycles)
			test.ExpectEquality(t, r.ByteCount, 1+len(tt.bytes))
			test.ExpectEquality(t, r.PostByte, tt.bytes[0])
			test.ExpectEquality(t, mc.PC.Value(), uint16(0x2001+len(tt.bytes)))
		})
	}
}

func TestIndexedRead(t *testing.T) {
	mem := newMockMem()

	// LDA ,X+; LDB ,X+; LDX -2,X
	mem.putInstructions(0x2000, 0xa6, 0x80, 0xe6, 0x80, 0xae, 0x1e)
	mem.putInstructions(0x1000, 0x30, 0x40)
	mc := newCPU(t, mem, 0x2000)
	mc.X.Load(0x1000)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), uint16(0x3040))
	test.ExpectEquality(t, mc.X.Value(), uint16(0x1002))

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x3040))
}

func TestLoadEffectiveAddressFlags(t *testing.T) {
	mem := newMockMem()

	// LEAX ,X; LEAU ,U
	mem.putInstructions(0x2000, 0x30, 0x84, 0x33, 0xc4)
	mc := newCPU(t, mem, 0x2000)

	// LEAX sets Z
	step(t, mc)
	test.ExpectEquality(t, mc.CC.Zero, true)

	// LEAU does not affect Z
	mc.CC.Zero = false
	step(t, mc)
	test.ExpectEquality(t, mc.CC.Zero, false)
}
