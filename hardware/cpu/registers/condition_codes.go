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

import (
	"strings"
)

// ConditionCodes is the CC register of the 6809.
type ConditionCodes struct {
	// Entire is set when the full register set was stacked on the most recent
	// interrupt. RTI uses the stacked value to decide how much to pull
	Entire bool

	FIRQMask  bool
	HalfCarry bool
	IRQMask   bool
	Negative  bool
	Zero      bool
	Overflow  bool
	Carry     bool
}

// bit values of the flags in the packed form of the register.
const (
	CCCarry     = 0x01
	CCOverflow  = 0x02
	CCZero      = 0x04
	CCNegative  = 0x08
	CCIRQMask   = 0x10
	CCHalfCarry = 0x20
	CCFIRQMask  = 0x40
	CCEntire    = 0x80
)

// Label returns the canonical name for the condition codes register.
func (cc ConditionCodes) Label() string {
	return "CC"
}

// String returns the flags as a string of eight characters, most significant
// bit first. Upper case indicates a set flag.
func (cc ConditionCodes) String() string {
	s := strings.Builder{}
	s.Grow(8)

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(cc.Entire, 'E')
	flag(cc.FIRQMask, 'F')
	flag(cc.HalfCarry, 'H')
	flag(cc.IRQMask, 'I')
	flag(cc.Negative, 'N')
	flag(cc.Zero, 'Z')
	flag(cc.Overflow, 'V')
	flag(cc.Carry, 'C')

	return s.String()
}

// Value returns the packed form of the register, suitable for pushing onto
// the stack.
func (cc ConditionCodes) Value() uint8 {
	var v uint8

	if cc.Entire {
		v |= CCEntire
	}
	if cc.FIRQMask {
		v |= CCFIRQMask
	}
	if cc.HalfCarry {
		v |= CCHalfCarry
	}
	if cc.IRQMask {
		v |= CCIRQMask
	}
	if cc.Negative {
		v |= CCNegative
	}
	if cc.Zero {
		v |= CCZero
	}
	if cc.Overflow {
		v |= CCOverflow
	}
	if cc.Carry {
		v |= CCCarry
	}

	return v
}

// Load the register from the packed form.
func (cc *ConditionCodes) Load(v uint8) {
	cc.Entire = v&CCEntire == CCEntire
	cc.FIRQMask = v&CCFIRQMask == CCFIRQMask
	cc.HalfCarry = v&CCHalfCarry == CCHalfCarry
	cc.IRQMask = v&CCIRQMask == CCIRQMask
	cc.Negative = v&CCNegative == CCNegative
	cc.Zero = v&CCZero == CCZero
	cc.Overflow = v&CCOverflow == CCOverflow
	cc.Carry = v&CCCarry == CCCarry
}
