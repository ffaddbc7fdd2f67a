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

package cpubus

// The addresses of the interrupt vectors. The vector is two bytes with the
// most significant byte at the lower address.
const (
	Reset = uint16(0xfffe)
	NMI   = uint16(0xfffc)
	SWI   = uint16(0xfffa)
	IRQ   = uint16(0xfff8)
	FIRQ  = uint16(0xfff6)
	SWI2  = uint16(0xfff4)
	SWI3  = uint16(0xfff2)
)

// Vectors lists the interrupt vectors, lowest address first, with a name
// suitable for display.
var Vectors = []struct {
	Address uint16
	Name    string
}{
	{Address: SWI3, Name: "SWI3"},
	{Address: SWI2, Name: "SWI2"},
	{Address: FIRQ, Name: "FIRQ"},
	{Address: IRQ, Name: "IRQ"},
	{Address: SWI, Name: "SWI"},
	{Address: NMI, Name: "NMI"},
	{Address: Reset, Name: "RESET"},
}
