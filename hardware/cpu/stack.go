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
)

// stackByte identifies a single byte of the register set as it appears on
// the stack
type stackByte int

const (
	stackCC stackByte = iota
	stackA
	stackB
	stackDP
	stackXHi
	stackXLo
	stackYHi
	stackYLo

	// the other stack pointer is U when the S stack is in use and S when the
	// U stack is in use
	stackOtherHi
	stackOtherLo

	stackPCHi
	stackPCLo

	numStackBytes
)

// the bytes selected by each bit of the PSH/PUL post-byte, in the order they
// are pulled from the stack. pushing is done in the reverse order
var postbyteBits = [8][]stackByte{
	{stackCC},
	{stackA},
	{stackB},
	{stackDP},
	{stackXHi, stackXLo},
	{stackYHi, stackYLo},
	{stackOtherHi, stackOtherLo},
	{stackPCHi, stackPCLo},
}

// micro-operations for pushing and pulling each byte on the stack
var pushOps [numStackBytes]func(mc *CPU) error
var pullOps [numStackBytes]func(mc *CPU) error

// the sequence of pulls performed by RTI after the condition codes when the
// entire flag is set
var pullEntireOps []microOp

func init() {
	for b := range numStackBytes {
		pushOps[b] = func(mc *CPU) error {
			mc.stack.Add(0xffff)
			return mc.write8Bit(mc.stack.Value(), mc.stackValue(b))
		}
		pullOps[b] = func(mc *CPU) error {
			v, err := mc.read8Bit(mc.stack.Value())
			if err != nil {
				return err
			}
			mc.stack.Add(1)
			mc.setStackValue(b, v)
			return nil
		}
	}

	for _, bits := range postbyteBits[1:7] {
		for _, b := range bits {
			pullEntireOps = append(pullEntireOps, cycle(pullOps[b]))
		}
	}
}

// stackRegister returns the stack pointer for the instruction register
func (mc *CPU) stackRegister(r instructions.Register) *registers.Data {
	if r == instructions.U {
		return &mc.U
	}
	return &mc.S
}

func (mc *CPU) otherStack() *registers.Data {
	if mc.stack == &mc.U {
		return &mc.S
	}
	return &mc.U
}

func (mc *CPU) stackValue(b stackByte) uint8 {
	switch b {
	case stackCC:
		return mc.CC.Value()
	case stackA:
		return mc.A.Value()
	case stackB:
		return mc.B.Value()
	case stackDP:
		return mc.DP.Value()
	case stackXHi:
		return mc.X.Hi()
	case stackXLo:
		return mc.X.Lo()
	case stackYHi:
		return mc.Y.Hi()
	case stackYLo:
		return mc.Y.Lo()
	case stackOtherHi:
		return mc.otherStack().Hi()
	case stackOtherLo:
		return mc.otherStack().Lo()
	case stackPCHi:
		return mc.PC.Hi()
	case stackPCLo:
		return mc.PC.Lo()
	}
	return 0
}

func (mc *CPU) setStackValue(b stackByte, v uint8) {
	switch b {
	case stackCC:
		mc.CC.Load(v)
	case stackA:
		mc.A.Load(v)
	case stackB:
		mc.B.Load(v)
	case stackDP:
		mc.DP.Load(v)
	case stackXHi:
		mc.X.LoadHi(v)
	case stackXLo:
		mc.X.LoadLo(v)
	case stackYHi:
		mc.Y.LoadHi(v)
	case stackYLo:
		mc.Y.LoadLo(v)
	case stackOtherHi:
		o := mc.otherStack()
		o.LoadHi(v)
		if o == &mc.S {
			mc.lines.nmiArmed = true
		}
	case stackOtherLo:
		o := mc.otherStack()
		o.LoadLo(v)
		if o == &mc.S {
			mc.lines.nmiArmed = true
		}
	case stackPCHi:
		mc.PC.LoadHi(v)
	case stackPCLo:
		mc.PC.LoadLo(v)
	}
}

func readPostbyte(mc *CPU) error {
	pb, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.postbyte = pb
	mc.LastResult.PostByte = pb
	return nil
}

// pushPostbyte reads the post-byte of a PSHS or PSHU instruction and queues
// the pushes. three idle cycles precede the pushes
//
// the post-byte is the only operation queued by decode() for the instruction
// so the new operations can be pushed to the back of the queue
func pushPostbyte(mc *CPU) error {
	if err := readPostbyte(mc); err != nil {
		return err
	}

	mc.idle(3)
	for bit := 7; bit >= 0; bit-- {
		if mc.postbyte&(1<<bit) == 0 {
			continue
		}
		bytes := postbyteBits[bit]
		for i := len(bytes) - 1; i >= 0; i-- {
			mc.cycle(pushOps[bytes[i]])
		}
	}

	return nil
}

// pullPostbyte reads the post-byte of a PULS or PULU instruction and queues
// the pulls. two idle cycles precede the pulls and one idle cycle follows
func pullPostbyte(mc *CPU) error {
	if err := readPostbyte(mc); err != nil {
		return err
	}

	mc.idle(2)
	for bit := range 8 {
		if mc.postbyte&(1<<bit) == 0 {
			continue
		}
		for _, b := range postbyteBits[bit] {
			mc.cycle(pullOps[b])
		}
	}
	mc.idle(1)

	return nil
}

// pushEntire queues the pushes of the entire register set onto the S stack
func (mc *CPU) pushEntire() {
	for bit := 7; bit >= 0; bit-- {
		bytes := postbyteBits[bit]
		for i := len(bytes) - 1; i >= 0; i-- {
			mc.cycle(pushOps[bytes[i]])
		}
	}
}

// pullCCReturn is the first pull of an RTI instruction. if the entire flag
// in the pulled condition codes is set then the rest of the register set is
// pulled before the PC
func pullCCReturn(mc *CPU) error {
	if err := pullOps[stackCC](mc); err != nil {
		return err
	}
	if mc.CC.Entire {
		mc.queue.insert(pullEntireOps...)
	}
	return nil
}
