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

package cpu

import (
	"github.com/jetsetilly/gopher6809/logger"
)

// register codes used in the post-byte of TFR and EXG. codes below eight are
// sixteen bit registers
const (
	codeD  = 0x0
	codeX  = 0x1
	codeY  = 0x2
	codeU  = 0x3
	codeS  = 0x4
	codePC = 0x5
	codeA  = 0x8
	codeB  = 0x9
	codeCC = 0xa
	codeDP = 0xb
)

func is16BitCode(code uint8) bool {
	return code < 0x8
}

// RegisterName returns the name of the register for a TFR/EXG register code.
// Undefined codes return a question mark.
func RegisterName(code uint8) string {
	switch code {
	case codeD:
		return "D"
	case codeX:
		return "X"
	case codeY:
		return "Y"
	case codeU:
		return "U"
	case codeS:
		return "S"
	case codePC:
		return "PC"
	case codeA:
		return "A"
	case codeB:
		return "B"
	case codeCC:
		return "CC"
	case codeDP:
		return "DP"
	}
	return "?"
}

// readCode returns the value of the register. undefined registers read as all
// bits set
func (mc *CPU) readCode(code uint8) uint16 {
	switch code {
	case codeD:
		return mc.D.Value()
	case codeX:
		return mc.X.Value()
	case codeY:
		return mc.Y.Value()
	case codeU:
		return mc.U.Value()
	case codeS:
		return mc.S.Value()
	case codePC:
		return mc.PC.Value()
	case codeA:
		return uint16(mc.A.Value())
	case codeB:
		return uint16(mc.B.Value())
	case codeCC:
		return uint16(mc.CC.Value())
	case codeDP:
		return uint16(mc.DP.Value())
	}
	if is16BitCode(code) {
		return 0xffff
	}
	return 0xff
}

// writeCode loads the register. writes to undefined registers are ignored
func (mc *CPU) writeCode(code uint8, v uint16) {
	switch code {
	case codeD:
		mc.D.Load(v)
	case codeX:
		mc.X.Load(v)
	case codeY:
		mc.Y.Load(v)
	case codeU:
		mc.U.Load(v)
	case codeS:
		mc.loadS(v)
	case codePC:
		mc.PC.Load(v)
	case codeA:
		mc.A.Load(uint8(v))
	case codeB:
		mc.B.Load(uint8(v))
	case codeCC:
		mc.CC.Load(uint8(v))
	case codeDP:
		mc.DP.Load(uint8(v))
	default:
		logger.Logf(mc, "cpu", "write to undefined register code %x at %04x", code, mc.LastResult.Address)
	}
}

// convert a value read from one register so that it can be written to
// another. an eight bit value moved to a sixteen bit register has a high byte
// of 0xff. a sixteen bit value moved to an eight bit register is truncated
func convertCode(v uint16, from, to uint8) uint16 {
	switch {
	case !is16BitCode(from) && is16BitCode(to):
		return 0xff00 | (v & 0x00ff)
	case is16BitCode(from) && !is16BitCode(to):
		return v & 0x00ff
	}
	return v
}

func tfr(mc *CPU) error {
	src := mc.postbyte >> 4
	dst := mc.postbyte & 0x0f
	mc.writeCode(dst, convertCode(mc.readCode(src), src, dst))
	return nil
}

func exg(mc *CPU) error {
	r1 := mc.postbyte >> 4
	r2 := mc.postbyte & 0x0f
	v1 := mc.readCode(r1)
	v2 := mc.readCode(r2)
	mc.writeCode(r2, convertCode(v1, r1, r2))
	mc.writeCode(r1, convertCode(v2, r2, r1))
	return nil
}
