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
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
)

// NotPlumbed is returned by Step() if the CPU has no memory to work with.
var NotPlumbed = errors.New("cpu: no memory plumbed")

// CPU implements the Motorola 6809. Register logic is implemented by the types
// in the registers sub-package.
type CPU struct {
	A  registers.Register
	B  registers.Register
	DP registers.Register
	X  registers.Data
	Y  registers.Data
	U  registers.Data
	S  registers.Data
	PC registers.Data
	CC registers.ConditionCodes

	// D is the concatenation of A and B
	D registers.Pair

	mem cpubus.Memory

	// Bus activity of the most recent cycle
	Bus Bus

	// last result. while an instruction is being executed the result
	// describes the instruction so far
	LastResult execution.Result

	// the number of cycles since the CPU was created
	Cycles uint64

	// Logging can be set to false to prevent the CPU from making log entries
	Logging bool

	// the micro-operations that make up the remainder of the current
	// instruction
	queue microcode

	// the instruction being executed. defn is nil while the opcode is being
	// fetched or if the CPU is performing a hardware sequence
	defn *instructions.Definition
	page instructions.Page

	// scratch registers used during the execution of an instruction. ea is the
	// effective address and offset is any data that needs to be held between
	// cycles
	ea       registers.Data
	offset   registers.Data
	postbyte uint8
	operand  uint8

	// the stack used by the current instruction. one of S or U
	stack *registers.Data

	// the address of the vector to load into the PC at the end of an
	// interrupt sequence
	vector uint16

	// state of the hardware lines
	lines lines
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU will be in the power-on state. To start the CPU running from the RESET
// vector, assert and then clear the RESET line.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:     mem,
		A:       registers.NewRegister(0, "A"),
		B:       registers.NewRegister(0, "B"),
		DP:      registers.NewRegister(0, "DP"),
		X:       registers.NewData(0, "X"),
		Y:       registers.NewData(0, "Y"),
		U:       registers.NewData(0, "U"),
		S:       registers.NewData(0, "S"),
		PC:      registers.NewData(0, "PC"),
		ea:      registers.NewData(0, "ea"),
		offset:  registers.NewData(0, "offset"),
		Logging: true,
	}
	mc.D = registers.NewPair(&mc.A, &mc.B, "D")
	mc.Reset()
	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.Logging
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.B.Label(), mc.B,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y, mc.U.Label(), mc.U,
		mc.S.Label(), mc.S, mc.DP.Label(), mc.DP, mc.CC.Label(), mc.CC)
}

// Reset reinitialises the CPU to the power-on state immediately. All registers
// are cleared except for the condition codes, which have the interrupt masks
// set. Does not load PC with the RESET vector. Assert the RESET line for that.
//
// Any instruction in progress is abandoned and the state of the hardware
// lines is forgotten.
func (mc *CPU) Reset() {
	mc.LastResult = execution.Result{Final: true}
	mc.Bus = Bus{Address: IdleAddress, Access: Idle}
	mc.queue.clear()
	mc.defn = nil
	mc.page = instructions.Unprefixed
	mc.stack = &mc.S

	mc.A.Load(0)
	mc.B.Load(0)
	mc.DP.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.U.Load(0)
	mc.S.Load(0)
	mc.PC.Load(0)
	mc.CC.Load(registers.CCIRQMask | registers.CCFIRQMask)

	mc.lines = lines{}
}

// InstructionBoundary returns true if the CPU is between instructions. The
// next call to Step() will check the hardware lines and fetch a new opcode.
func (mc *CPU) InstructionBoundary() bool {
	return mc.queue.empty()
}

// LoadPC sets the program counter. Only allowed at an instruction boundary.
// Real hardware can't do this. Used by test harnesses and by the debugger.
func (mc *CPU) LoadPC(address uint16) error {
	if !mc.InstructionBoundary() {
		return fmt.Errorf("cpu: load PC invalid mid-instruction")
	}
	mc.PC.Load(address)
	return nil
}

// LoadS sets the system stack pointer. Only allowed at an instruction boundary.
// As with an instruction that loads the S register, LoadS arms the NMI line.
// Real hardware can't do this. Used by test harnesses and by the debugger.
func (mc *CPU) LoadS(address uint16) error {
	if !mc.InstructionBoundary() {
		return fmt.Errorf("cpu: load S invalid mid-instruction")
	}
	mc.loadS(address)
	return nil
}

// loadS should be used whenever an instruction writes to the S register
func (mc *CPU) loadS(v uint16) {
	mc.S.Load(v)
	mc.lines.nmiArmed = true
}
