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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6809/test"
)

func TestConditionCodesPacking(t *testing.T) {
	var cc registers.ConditionCodes
	for v := 0; v <= 0xff; v++ {
		cc.Load(uint8(v))
		test.ExpectEquality(t, cc.Value(), uint8(v))
	}

	cc.Load(registers.CCEntire | registers.CCIRQMask | registers.CCCarry)
	test.ExpectEquality(t, cc.String(), "EfhInzvC")
	test.ExpectEquality(t, cc.Label(), "CC")
}

func TestFlagsLeaveOthersAlone(t *testing.T) {
	var cc registers.ConditionCodes
	cc.Load(registers.CCEntire | registers.CCFIRQMask | registers.CCIRQMask | registers.CCHalfCarry)

	a, b := uint8(0x10), uint8(0x20)
	cc = cc.Sub8(a, b, uint16(a)-uint16(b))

	// H is not affected by subtraction and the masks are never affected
	test.ExpectSuccess(t, cc.HalfCarry)
	test.ExpectSuccess(t, cc.Entire)
	test.ExpectSuccess(t, cc.FIRQMask)
	test.ExpectSuccess(t, cc.IRQMask)
	test.ExpectSuccess(t, cc.Carry)
	test.ExpectSuccess(t, cc.Negative)
	test.ExpectFailure(t, cc.Overflow)
	test.ExpectFailure(t, cc.Zero)
}

func TestAdd8Exhaustive(t *testing.T) {
	var cc registers.ConditionCodes
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r := uint16(a) + uint16(b)
			cc = cc.Add8(uint8(a), uint8(b), r)

			sa := int(int8(a))
			sb := int(int8(b))
			overflow := sa+sb > 127 || sa+sb < -128
			half := (a&0x0f)+(b&0x0f) > 0x0f

			if cc.Zero != (r&0xff == 0) || cc.Carry != (r > 0xff) ||
				cc.Negative != (r&0x80 != 0) || cc.Overflow != overflow || cc.HalfCarry != half {
				t.Fatalf("wrong flags for %02x + %02x: %s", a, b, cc)
			}
		}
	}
}

func TestSub8Exhaustive(t *testing.T) {
	var cc registers.ConditionCodes
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r := uint16(a) - uint16(b)
			cc = cc.Sub8(uint8(a), uint8(b), r)

			sa := int(int8(a))
			sb := int(int8(b))
			overflow := sa-sb > 127 || sa-sb < -128

			if cc.Zero != (a == b) || cc.Carry != (b > a) ||
				cc.Negative != (r&0x80 != 0) || cc.Overflow != overflow {
				t.Fatalf("wrong flags for %02x - %02x: %s", a, b, cc)
			}
		}
	}
}

func TestWordFlags(t *testing.T) {
	var cc registers.ConditionCodes

	cc = cc.Add16(0x7fff, 0x0001, uint32(0x7fff)+uint32(0x0001))
	test.ExpectSuccess(t, cc.Overflow)
	test.ExpectSuccess(t, cc.Negative)
	test.ExpectFailure(t, cc.Carry)

	cc = cc.Add16(0xffff, 0x0001, uint32(0xffff)+uint32(0x0001))
	test.ExpectSuccess(t, cc.Carry)
	test.ExpectSuccess(t, cc.Zero)
	test.ExpectFailure(t, cc.Overflow)

	cc = cc.Sub16(0x8000, 0x0001, uint32(0x8000)-uint32(0x0001))
	test.ExpectSuccess(t, cc.Overflow)
	test.ExpectFailure(t, cc.Negative)
	test.ExpectFailure(t, cc.Carry)

	zero := uint16(0x0000)
	cc = cc.Sub16(zero, 0x0001, uint32(zero)-uint32(0x0001))
	test.ExpectSuccess(t, cc.Carry)
	test.ExpectSuccess(t, cc.Negative)

	cc.Overflow = true
	cc = cc.Logic16(0)
	test.ExpectSuccess(t, cc.Zero)
	test.ExpectFailure(t, cc.Overflow)
}
