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
	"github.com/jetsetilly/gopher6809/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6809/logger"
)

// Step advances the CPU by exactly one cycle. If the CPU is at a fetch
// boundary the hardware lines are checked and either a hardware sequence
// begins or the next opcode is fetched.
//
// Errors from the memory implementation are returned immediately. The state
// of the CPU is undefined after an error.
func (mc *CPU) Step() error {
	if mc.mem == nil {
		return NotPlumbed
	}

	if mc.queue.empty() {
		mc.boundary()
	}

	mc.Bus = Bus{Address: IdleAddress, Access: Idle}
	mc.LastResult.Cycles++
	mc.Cycles++

	// instantaneous operations up to and including the first cycle consuming
	// operation
	for {
		op, ok := mc.queue.pop()
		if !ok {
			break
		}
		if err := op.fn(mc); err != nil {
			return err
		}
		if !op.instant {
			break
		}
	}

	// any instantaneous operations that follow belong to this cycle
	for {
		op, ok := mc.queue.peek()
		if !ok || !op.instant {
			break
		}
		mc.queue.pop()
		if err := op.fn(mc); err != nil {
			return err
		}
	}

	if mc.queue.empty() {
		mc.LastResult.Final = true
	}

	return nil
}

// boundary decides what to do at the start of a new sequence. in order of
// priority: HALT, RESET, NMI, FIRQ, IRQ and finally the fetch of a new opcode
func (mc *CPU) boundary() {
	mc.LastResult = execution.Result{Address: mc.PC.Value()}
	mc.defn = nil
	mc.page = instructions.Unprefixed
	mc.stack = &mc.S

	switch {
	case mc.lines.halt:
		mc.LastResult.Sequence = execution.Halt
		mc.idle(1)

	case mc.lines.resetLatch:
		mc.lines.resetLatch = false
		mc.LastResult.Sequence = execution.Reset
		mc.resetSequence()

	case mc.lines.nmiLatch:
		mc.lines.nmiLatch = false
		mc.LastResult.Sequence = execution.NMI
		mc.interruptSequence(execution.NMI)

	case mc.lines.firq && !mc.CC.FIRQMask:
		mc.LastResult.Sequence = execution.FIRQ
		mc.interruptSequence(execution.FIRQ)

	case mc.lines.irq && !mc.CC.IRQMask:
		mc.LastResult.Sequence = execution.IRQ
		mc.interruptSequence(execution.IRQ)

	default:
		mc.cycle(fetchOpcode)
	}
}

// fetchOpcode reads the next opcode. if the opcode is a page prefix then
// another fetch is queued
func fetchOpcode(mc *CPU) error {
	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	// a prefix following a prefix is an invalid opcode on the selected page
	if mc.page == instructions.Unprefixed {
		if page, ok := instructions.PageFromPrefix(opcode); ok {
			mc.page = page
			mc.cycle(fetchOpcode)
			return nil
		}
	}

	mc.decode(instructions.Lookup(mc.page, opcode))
	return nil
}

// decode queues the micro-operations for the instruction
func (mc *CPU) decode(defn *instructions.Definition) {
	mc.defn = defn
	mc.LastResult.Defn = defn

	switch {
	case !defn.IsValid():
		logger.Logf(mc, "cpu", "invalid opcode %02x (%s) at %04x", defn.OpCode, defn.Page, mc.LastResult.Address)
	case defn.Undocumented:
		logger.Logf(mc, "cpu", "undocumented opcode %02x (%s) at %04x", defn.OpCode, defn.Mnemonic, mc.LastResult.Address)
	}

	switch defn.Operator {
	case instructions.Invalid, instructions.Nop:
		mc.idle(1)

	case instructions.Daa:
		mc.cycle(daa)

	case instructions.Sex:
		mc.cycle(sex)

	case instructions.Abx:
		mc.idle(1)
		mc.cycle(abx)

	case instructions.Mul:
		mc.cycle(mul)
		mc.idle(9)

	case instructions.Tfr:
		mc.cycle(readPostbyte)
		mc.idle(3)
		mc.cycle(tfr)

	case instructions.Exg:
		mc.cycle(readPostbyte)
		mc.idle(5)
		mc.cycle(exg)

	case instructions.Psh:
		mc.stack = mc.stackRegister(defn.Register)
		mc.cycle(pushPostbyte)

	case instructions.Pul:
		mc.stack = mc.stackRegister(defn.Register)
		mc.cycle(pullPostbyte)

	case instructions.Lea:
		mc.addressing()
		mc.cycle(lea)

	case instructions.Jmp:
		mc.addressing()
		mc.instant(jump)

	case instructions.Jsr:
		mc.addressing()
		mc.idle(2)
		mc.cycle(pushOps[stackPCLo], pushOps[stackPCHi])
		mc.instant(jump)

	case instructions.Bsr:
		if defn.AddressingMode == instructions.LongRelative {
			mc.cycle(readOffsetHi, readOffsetLo)
			mc.idle(4)
		} else {
			mc.cycle(readOffset8)
			mc.idle(3)
		}
		mc.cycle(pushOps[stackPCLo], pushOps[stackPCHi])
		mc.instant(branchAlways)

	case instructions.Rts:
		mc.idle(1)
		mc.cycle(pullOps[stackPCHi], pullOps[stackPCLo])
		mc.idle(1)

	case instructions.Rti:
		mc.idle(1)
		mc.cycle(pullCCReturn)
		mc.cycle(pullOps[stackPCHi], pullOps[stackPCLo])
		mc.idle(1)

	case instructions.Swi:
		mc.softwareInterrupt(cpubus.SWI, true)

	case instructions.Swi2:
		mc.softwareInterrupt(cpubus.SWI2, false)

	case instructions.Swi3:
		mc.softwareInterrupt(cpubus.SWI3, false)

	case instructions.Reset:
		mc.softwareInterrupt(cpubus.Reset, true)

	case instructions.Cwai:
		mc.addressing()
		mc.cycle(cwaiMask)
		mc.idle(2)
		mc.instant(setEntire)
		mc.pushEntire()
		mc.cycle(cwaiWait)
		mc.loadVector()

	case instructions.Sync:
		mc.idle(1)
		mc.cycle(syncWait)
		mc.idle(1)

	default:
		if defn.IsBranch() {
			if defn.AddressingMode == instructions.LongRelative {
				mc.cycle(readOffsetHi, readOffsetLo, longBranch)
			} else {
				mc.cycle(readOffset8, branch)
			}
			return
		}

		mc.addressing()
		mc.operate()
	}
}

// operate queues the micro-operations for the operator once the effective
// address is known
func (mc *CPU) operate() {
	defn := mc.defn

	switch defn.Operator {
	case instructions.Neg, instructions.Com, instructions.Lsr, instructions.Ror,
		instructions.Asr, instructions.Asl, instructions.Rol, instructions.Dec,
		instructions.Inc, instructions.Tst, instructions.Clr:

		switch {
		case defn.Register != instructions.NoRegister:
			mc.cycle(unaryAccumulator)
		case defn.Operator == instructions.Tst:
			mc.cycle(readMemory)
			mc.idle(2)
		default:
			mc.cycle(readMemory)
			mc.idle(1)
			mc.cycle(writeMemory)
		}

	case instructions.St:
		if defn.Register.Is16Bit() {
			mc.cycle(storeHi, storeLo)
		} else {
			mc.cycle(store8)
		}

	default:
		switch {
		case defn.Register == instructions.CC:
			mc.cycle(operateCC)
			mc.idle(1)
		case defn.Register.Is16Bit():
			mc.cycle(readHi, operate16)
			if defn.Operator != instructions.Ld {
				mc.idle(1)
			}
		default:
			mc.cycle(operate8)
		}
	}
}
