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
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
)

// resetSequence queues the RESET sequence. the registers are changed
// immediately and the vector is read after four idle cycles
func (mc *CPU) resetSequence() {
	mc.instant(resetRegisters)
	mc.idle(4)
	mc.vector = cpubus.Reset
	mc.loadVector()
}

func resetRegisters(mc *CPU) error {
	mc.DP.Load(0)
	mc.CC.Load(registers.CCIRQMask | registers.CCFIRQMask)
	mc.lines.nmiArmed = false
	mc.lines.nmiLatch = false
	return nil
}

// interruptSequence queues the sequence for the NMI, FIRQ and IRQ hardware
// interrupts
func (mc *CPU) interruptSequence(seq execution.Sequence) {
	mc.idle(3)

	switch seq {
	case execution.NMI:
		mc.instant(setEntire)
		mc.pushEntire()
		mc.instant(maskInterrupts)
		mc.vector = cpubus.NMI
	case execution.IRQ:
		mc.instant(setEntire)
		mc.pushEntire()
		mc.instant(maskIRQ)
		mc.vector = cpubus.IRQ
	case execution.FIRQ:
		mc.instant(clearEntire)
		mc.cycle(pushOps[stackPCLo], pushOps[stackPCHi], pushOps[stackCC])
		mc.instant(maskInterrupts)
		mc.vector = cpubus.FIRQ
	}

	mc.idle(1)
	mc.loadVector()
}

// softwareInterrupt queues the sequence for SWI, SWI2, SWI3 and the
// undocumented RESET opcode. only SWI and RESET mask the interrupts
func (mc *CPU) softwareInterrupt(vector uint16, mask bool) {
	mc.idle(2)
	mc.instant(setEntire)
	mc.pushEntire()
	if mask {
		mc.instant(maskInterrupts)
	}
	mc.vector = vector
	mc.idle(1)
	mc.loadVector()
}

// loadVector queues the two reads of the vector and the final idle cycle
func (mc *CPU) loadVector() {
	mc.cycle(vectorHi, vectorLo)
	mc.idle(1)
}

func vectorHi(mc *CPU) error {
	v, err := mc.read8Bit(mc.vector)
	if err != nil {
		return err
	}
	mc.offset.LoadHi(v)
	return nil
}

func vectorLo(mc *CPU) error {
	v, err := mc.read8Bit(mc.vector + 1)
	if err != nil {
		return err
	}
	mc.offset.LoadLo(v)
	mc.PC.Load(mc.offset.Value())
	return nil
}

func setEntire(mc *CPU) error {
	mc.CC.Entire = true
	return nil
}

func clearEntire(mc *CPU) error {
	mc.CC.Entire = false
	return nil
}

func maskInterrupts(mc *CPU) error {
	mc.CC.IRQMask = true
	mc.CC.FIRQMask = true
	return nil
}

func maskIRQ(mc *CPU) error {
	mc.CC.IRQMask = true
	return nil
}

// cwaiMask is the second cycle of the CWAI instruction. the immediate value is
// ANDed with the condition codes
func cwaiMask(mc *CPU) error {
	v, err := mc.readEA(0)
	if err != nil {
		return err
	}
	mc.CC.Load(mc.CC.Value() & v)
	return nil
}

// cwaiWait is repeated until an unmasked interrupt occurs. the registers have
// already been stacked so the vector can be read immediately
//
// a RESET abandons the instruction
func cwaiWait(mc *CPU) error {
	switch {
	case mc.lines.resetLatch:
		mc.queue.clear()
	case mc.lines.nmiLatch:
		mc.lines.nmiLatch = false
		mc.vector = cpubus.NMI
		return maskInterrupts(mc)
	case mc.lines.firq && !mc.CC.FIRQMask:
		mc.vector = cpubus.FIRQ
		return maskInterrupts(mc)
	case mc.lines.irq && !mc.CC.IRQMask:
		mc.vector = cpubus.IRQ
		return maskIRQ(mc)
	default:
		mc.LastResult.Waited = true
		mc.queue.insert(cycle(cwaiWait))
	}
	return nil
}

// syncWait is repeated until any interrupt line is asserted, whether it is
// masked or not. if the interrupt is not masked it will be serviced at the
// next fetch boundary
func syncWait(mc *CPU) error {
	l := mc.lines
	if l.resetLatch || l.nmiLatch || l.firq || l.irq {
		return nil
	}
	mc.LastResult.Waited = true
	mc.queue.insert(cycle(syncWait))
	return nil
}
