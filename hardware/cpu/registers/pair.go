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
	"fmt"
)

// Pair is a 16bit view of two 8bit registers. It holds no value of its own.
type Pair struct {
	hi    *Register
	lo    *Register
	label string
}

// NewPair creates a 16bit view of the two registers. The hi register forms the
// most significant byte.
func NewPair(hi *Register, lo *Register, label string) Pair {
	return Pair{
		hi:    hi,
		lo:    lo,
		label: label,
	}
}

// Label returns the canonical name of the register.
func (p Pair) Label() string {
	return p.label
}

func (p Pair) String() string {
	return fmt.Sprintf("%04x", p.Value())
}

// Value returns the current 16bit value.
func (p Pair) Value() uint16 {
	return (uint16(p.hi.value) << 8) | uint16(p.lo.value)
}

// Load sets both halves of the pair.
func (p Pair) Load(val uint16) {
	p.hi.value = uint8(val >> 8)
	p.lo.value = uint8(val)
}

// Hi returns the most significant byte.
func (p Pair) Hi() uint8 {
	return p.hi.value
}

// Lo returns the least significant byte.
func (p Pair) Lo() uint8 {
	return p.lo.value
}
