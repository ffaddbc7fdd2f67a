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

// Word is implemented by all 16bit register types.
type Word interface {
	Label() string
	Value() uint16
	Load(uint16)
}

// Data is a 16bit register. The high and low bytes can be accessed
// independently, with the high byte being the most significant (big-endian).
type Data struct {
	value uint16
	label string
}

// NewData is the preferred method of initialisation for Data.
func NewData(val uint16, label string) Data {
	return Data{
		value: val,
		label: label,
	}
}

// Label returns the canonical name of the register.
func (r Data) Label() string {
	return r.label
}

func (r Data) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Value returns the current value of the register.
func (r Data) Value() uint16 {
	return r.value
}

// Hi returns the most significant byte.
func (r Data) Hi() uint8 {
	return uint8(r.value >> 8)
}

// Lo returns the least significant byte.
func (r Data) Lo() uint8 {
	return uint8(r.value)
}

// Load value into register.
func (r *Data) Load(val uint16) {
	r.value = val
}

// LoadHi replaces the most significant byte.
func (r *Data) LoadHi(val uint8) {
	r.value = (uint16(val) << 8) | (r.value & 0x00ff)
}

// LoadLo replaces the least significant byte.
func (r *Data) LoadLo(val uint8) {
	r.value = (r.value & 0xff00) | uint16(val)
}

// Add value to register. The result wraps at 16 bits so adding 0xffff is the
// same as subtracting one.
func (r *Data) Add(val uint16) {
	r.value += val
}
