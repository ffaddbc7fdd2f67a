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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
)

// Sequence describes what the CPU is doing during the cycles recorded by the
// Result. Most of the time the CPU is executing an instruction but it can also
// be servicing a hardware line.
type Sequence int

// List of sequence types.
const (
	Instruction Sequence = iota
	Reset
	NMI
	FIRQ
	IRQ
	Halt
)

func (s Sequence) String() string {
	switch s {
	case Instruction:
		return "instruction"
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case FIRQ:
		return "FIRQ"
	case IRQ:
		return "IRQ"
	case Halt:
		return "HALT"
	}
	return "unknown sequence"
}

// the number of cycles taken by each of the hardware sequences
var sequenceCycles = map[Sequence]int{
	Reset: 7,
	NMI:   19,
	FIRQ:  10,
	IRQ:   19,
	Halt:  1,
}

// Result records the state/result of the current or most recent sequence of
// CPU cycles. A new Result is started at every fetch boundary and is updated
// on every cycle until the sequence has completed.
type Result struct {
	Sequence Sequence

	// address of the first byte of the instruction (including any prefix), or
	// the value of the PC when the hardware sequence began
	Address uint16

	// the definition of the instruction. will be nil for hardware sequences
	// and while the opcode is still being fetched
	Defn *instructions.Definition

	// the number of bytes read from the instruction stream, including the
	// opcode and any prefix
	ByteCount int

	// the number of cycles taken by the sequence so far
	Cycles int

	// whether the branch was taken. only meaningful for branch instructions
	BranchSuccess bool

	// the instruction waited for an interrupt (CWAI or SYNC) for at least one
	// cycle
	Waited bool

	// the post-byte for instructions that have one (TFR, EXG, PSHS, etc.) and
	// instructions using indexed addressing
	PostByte uint8

	// the 8bit or 16bit operand read from the instruction stream. does not
	// include the post-byte
	InstructionData uint16

	// a non-fatal error encountered during the sequence, for example an access
	// of an address not connected to any memory
	Error string

	// whether the sequence has completed
	Final bool
}

// Reset nullifies all members of Result. The Address is untouched.
func (r *Result) Reset() {
	address := r.Address
	*r = Result{}
	r.Address = address
}

func (r Result) String() string {
	if r.Sequence != Instruction {
		return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Sequence, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x (decoding)", r.Address)
	}
	return fmt.Sprintf("%04x %s %s (%d bytes %d cycles)", r.Address, r.Defn.Mnemonic,
		r.Defn.AddressingMode, r.ByteCount, r.Cycles)
}
