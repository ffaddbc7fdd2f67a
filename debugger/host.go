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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6809/debugger/terminal"
)

// scriptHost implements the script.Host interface.
type scriptHost struct {
	dbg *Debugger
}

func (h *scriptHost) Command(s string) error {
	return h.dbg.parseInput(s)
}

func (h *scriptHost) Peek(address uint16) (uint8, error) {
	return h.dbg.m.Mem.Peek(address)
}

func (h *scriptHost) Poke(address uint16, value uint8) error {
	return h.dbg.m.Mem.Poke(address, value)
}

func (h *scriptHost) Register(name string) (uint16, error) {
	mc := h.dbg.m.CPU
	switch strings.ToUpper(name) {
	case "A":
		return uint16(mc.A.Value()), nil
	case "B":
		return uint16(mc.B.Value()), nil
	case "D":
		return mc.D.Value(), nil
	case "DP":
		return uint16(mc.DP.Value()), nil
	case "CC":
		return uint16(mc.CC.Value()), nil
	case "X":
		return mc.X.Value(), nil
	case "Y":
		return mc.Y.Value(), nil
	case "U":
		return mc.U.Value(), nil
	case "S":
		return mc.S.Value(), nil
	case "PC":
		return mc.PC.Value(), nil
	}
	return 0, fmt.Errorf("unknown register (%s)", name)
}

func (h *scriptHost) Print(s string) {
	h.dbg.printLine(terminal.StyleScript, "%s", s)
}
