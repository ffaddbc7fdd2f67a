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
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6809/logger"
)

// addressing queues the micro-operations that resolve the effective address
// for the instruction's addressing mode
func (mc *CPU) addressing() {
	switch mc.defn.AddressingMode {
	case instructions.Immediate:
		mc.instant(immediate)
	case instructions.Direct:
		mc.cycle(directAddress)
		mc.idle(1)
	case instructions.Extended:
		mc.cycle(extendedHi, extendedLo)
		mc.idle(1)
	case instructions.Indexed:
		mc.cycle(indexedPostbyte)
	}
}

// the operand is the next one or two bytes in the instruction stream
func immediate(mc *CPU) error {
	n := 1
	if mc.defn.Register.Is16Bit() {
		n = 2
	}
	mc.ea.Load(mc.PC.Value())
	mc.PC.Add(uint16(n))
	mc.LastResult.ByteCount += n
	return nil
}

func directAddress(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.ea.LoadHi(mc.DP.Value())
	mc.ea.LoadLo(v)
	return nil
}

func extendedHi(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.ea.LoadHi(v)
	return nil
}

func extendedLo(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.ea.LoadLo(v)
	return nil
}

// readEA reads from the effective address plus the offset. for immediate
// addressing this is the operand in the instruction stream, in which case the
// InstructionData field of the LastResult is updated
func (mc *CPU) readEA(offset uint16) (uint8, error) {
	v, err := mc.read8Bit(mc.ea.Value() + offset)
	if err != nil {
		return 0, err
	}
	if mc.defn.AddressingMode == instructions.Immediate {
		mc.LastResult.InstructionData = (mc.LastResult.InstructionData << 8) | uint16(v)
	}
	return v, nil
}

// relative offsets and sixteen bit index offsets are stored in the offset
// register

func readOffset8(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.offset.Load(signExtend(v))
	return nil
}

func readOffsetHi(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.offset.LoadHi(v)
	return nil
}

func readOffsetLo(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.offset.LoadLo(v)
	return nil
}

func signExtend(v uint8) uint16 {
	return uint16(int16(int8(v)))
}

// indexed addressing sub-modes. selected by the low nibble of the post-byte
// when bit 7 of the post-byte is set
const (
	indexPostInc1   = 0x0
	indexPostInc2   = 0x1
	indexPreDec1    = 0x2
	indexPreDec2    = 0x3
	indexNoOffset   = 0x4
	indexOffsetB    = 0x5
	indexOffsetA    = 0x6
	indexOffset8    = 0x8
	indexOffset16   = 0x9
	indexOffsetD    = 0xb
	indexPCOffset8  = 0xc
	indexPCOffset16 = 0xd
	indexExtended   = 0xf
)

const (
	indexIndirectBit = 0x10
	indexModeBit     = 0x80
)

// IndexedPostbyteLegal returns false for the indexed post-byte values that
// have no documented meaning. The CPU treats these as if they were the
// no-offset sub-mode.
func IndexedPostbyteLegal(postbyte uint8) bool {
	if postbyte&indexModeBit == 0 {
		return true
	}
	indirect := postbyte&indexIndirectBit == indexIndirectBit
	switch postbyte & 0x0f {
	case 0x7, 0xa, 0xe:
		return false
	case indexExtended:
		return indirect
	case indexPostInc1, indexPreDec1:
		return !indirect
	}
	return true
}

// the micro-operations that follow the post-byte for each sub-mode. the first
// index is the indirect flag. every sequence ends with the calculation of the
// effective address, and for indirect sub-modes, the indirect read
var indexedSequences [2][16][]microOp

// the sequence for the five bit offset mode
var indexed5BitSequence = []microOp{idleCycle, idleCycle, instant(indexEA)}

func init() {
	indirectTail := []microOp{cycle(indirectHi), cycle(indirectLo), idleCycle}

	idles := func(n int) []microOp {
		s := make([]microOp, n)
		for i := range s {
			s[i] = idleCycle
		}
		return s
	}

	for ind := range 2 {
		for mode := range 16 {
			var s []microOp

			switch mode {
			case indexPostInc1, indexPreDec1:
				s = idles(3)
			case indexPostInc2, indexPreDec2:
				s = idles(4)
			case indexOffsetA, indexOffsetB:
				s = idles(2)
			case indexOffset8, indexPCOffset8:
				s = append([]microOp{cycle(readOffset8)}, idles(1)...)
			case indexOffset16:
				s = append([]microOp{cycle(readOffsetHi), cycle(readOffsetLo)}, idles(3)...)
			case indexOffsetD:
				s = idles(5)
			case indexPCOffset16:
				s = append([]microOp{cycle(readOffsetHi), cycle(readOffsetLo)}, idles(4)...)
			case indexExtended:
				s = append([]microOp{cycle(readOffsetHi), cycle(readOffsetLo)}, idles(1)...)
			default:
				s = idles(1)
			}

			// illegal post-bytes are performed as though they were the no-offset
			// sub-mode and without indirection
			postbyte := uint8(indexModeBit | mode)
			if ind == 1 {
				postbyte |= indexIndirectBit
			}
			if !IndexedPostbyteLegal(postbyte) {
				indexedSequences[ind][mode] = []microOp{idleCycle, instant(indexEA)}
				continue
			}

			s = append(s, instant(indexEA))
			if ind == 1 {
				s = append(s, indirectTail...)
			}
			indexedSequences[ind][mode] = s
		}
	}
}

// indexedPostbyte reads the post-byte and queues the rest of the addressing
// sequence
func indexedPostbyte(mc *CPU) error {
	pb, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.postbyte = pb
	mc.LastResult.PostByte = pb

	if pb&indexModeBit == 0 {
		mc.queue.insert(indexed5BitSequence...)
		return nil
	}

	if !IndexedPostbyteLegal(pb) {
		logger.Logf(mc, "cpu", "illegal indexed post-byte %02x at %04x", pb, mc.LastResult.Address)
	}

	ind := 0
	if pb&indexIndirectBit == indexIndirectBit {
		ind = 1
	}
	mc.queue.insert(indexedSequences[ind][pb&0x0f]...)

	return nil
}

// the index register selected by the post-byte
func (mc *CPU) indexRegister() *registers.Data {
	switch (mc.postbyte >> 5) & 0x03 {
	case 0:
		return &mc.X
	case 1:
		return &mc.Y
	case 2:
		return &mc.U
	}
	return &mc.S
}

// indexEA calculates the effective address from the post-byte. any offset
// bytes will have been read into the offset register by this point
func indexEA(mc *CPU) error {
	pb := mc.postbyte
	r := mc.indexRegister()

	if pb&indexModeBit == 0 {
		off := uint16(pb & 0x1f)
		if off&0x10 == 0x10 {
			off |= 0xffe0
		}
		mc.ea.Load(r.Value() + off)
		return nil
	}

	if !IndexedPostbyteLegal(pb) {
		mc.ea.Load(r.Value())
		return nil
	}

	switch pb & 0x0f {
	case indexPostInc1:
		mc.ea.Load(r.Value())
		r.Add(1)
	case indexPostInc2:
		mc.ea.Load(r.Value())
		r.Add(2)
	case indexPreDec1:
		r.Add(0xffff)
		mc.ea.Load(r.Value())
	case indexPreDec2:
		r.Add(0xfffe)
		mc.ea.Load(r.Value())
	case indexNoOffset:
		mc.ea.Load(r.Value())
	case indexOffsetB:
		mc.ea.Load(r.Value() + signExtend(mc.B.Value()))
	case indexOffsetA:
		mc.ea.Load(r.Value() + signExtend(mc.A.Value()))
	case indexOffset8, indexOffset16:
		mc.ea.Load(r.Value() + mc.offset.Value())
	case indexOffsetD:
		mc.ea.Load(r.Value() + mc.D.Value())
	case indexPCOffset8, indexPCOffset16:
		mc.ea.Load(mc.PC.Value() + mc.offset.Value())
	case indexExtended:
		mc.ea.Load(mc.offset.Value())
	}

	return nil
}

func indirectHi(mc *CPU) error {
	v, err := mc.read8Bit(mc.ea.Value())
	if err != nil {
		return err
	}
	mc.offset.LoadHi(v)
	return nil
}

func indirectLo(mc *CPU) error {
	v, err := mc.read8Bit(mc.ea.Value() + 1)
	if err != nil {
		return err
	}
	mc.offset.LoadLo(v)
	mc.ea.Load(mc.offset.Value())
	return nil
}
