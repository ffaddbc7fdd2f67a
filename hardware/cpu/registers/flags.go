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

package registers

// the functions in this file are the condition code evaluator. each takes the
// operands and the unmasked result of an operation and returns a copy of the
// condition codes with the affected flags updated. flags not named in the
// function description are left as they are.
//
// arithmetic results are passed at twice the width of the operation (uint16
// for byte operations and uint32 for word operations) so that the carry out
// of the most significant bit is still visible.

// NZ8 updates N and Z from an 8bit result.
func (cc ConditionCodes) NZ8(r uint8) ConditionCodes {
	cc.Negative = r&0x80 == 0x80
	cc.Zero = r == 0
	return cc
}

// NZ16 updates N and Z from a 16bit result.
func (cc ConditionCodes) NZ16(r uint16) ConditionCodes {
	cc.Negative = r&0x8000 == 0x8000
	cc.Zero = r == 0
	return cc
}

// Logic8 updates N and Z from an 8bit result and clears V. Used by loads,
// stores and the logical operations.
func (cc ConditionCodes) Logic8(r uint8) ConditionCodes {
	cc = cc.NZ8(r)
	cc.Overflow = false
	return cc
}

// Logic16 updates N and Z from a 16bit result and clears V.
func (cc ConditionCodes) Logic16(r uint16) ConditionCodes {
	cc = cc.NZ16(r)
	cc.Overflow = false
	return cc
}

// Add8 updates H, N, Z, V and C after the 8bit addition of a and b. The result
// r may include the carry-in.
func (cc ConditionCodes) Add8(a, b uint8, r uint16) ConditionCodes {
	cc = cc.NZ8(uint8(r))
	cc.HalfCarry = (uint16(a)^uint16(b)^r)&0x10 == 0x10
	cc.Overflow = (uint16(a)^r)&(uint16(b)^r)&0x80 == 0x80
	cc.Carry = r&0x100 == 0x100
	return cc
}

// Sub8 updates N, Z, V and C after the 8bit subtraction of b from a. H is not
// affected. The carry flag is set when a borrow was required.
func (cc ConditionCodes) Sub8(a, b uint8, r uint16) ConditionCodes {
	cc = cc.NZ8(uint8(r))
	cc.Overflow = (uint16(a)^uint16(b))&(uint16(a)^r)&0x80 == 0x80
	cc.Carry = r&0x100 == 0x100
	return cc
}

// Add16 updates N, Z, V and C after the 16bit addition of a and b.
func (cc ConditionCodes) Add16(a, b uint16, r uint32) ConditionCodes {
	cc = cc.NZ16(uint16(r))
	cc.Overflow = (uint32(a)^r)&(uint32(b)^r)&0x8000 == 0x8000
	cc.Carry = r&0x10000 == 0x10000
	return cc
}

// Sub16 updates N, Z, V and C after the 16bit subtraction of b from a.
func (cc ConditionCodes) Sub16(a, b uint16, r uint32) ConditionCodes {
	cc = cc.NZ16(uint16(r))
	cc.Overflow = (uint32(a)^uint32(b))&(uint32(a)^r)&0x8000 == 0x8000
	cc.Carry = r&0x10000 == 0x10000
	return cc
}
