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

// Package cpu emulates the Motorola 6809 microprocessor. The emulation is
// cycle accurate. Every call to Step() advances the CPU by exactly one clock
// cycle and performs the bus activity that the real chip performs during that
// cycle.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface. The Memory interface defines the memory operations
// required by the CPU. See the cpubus package for details.
//
// Let's assume mem is an instance of the cpubus.Memory interface with a
// program and a RESET vector.
//
//	mc := cpu.NewCPU(mem)
//	mc.AssertReset()
//	mc.ClearReset()
//
//	for {
//		err := mc.Step()
//		if err != nil {
//			return err
//		}
//		if mc.LastResult.Final {
//			// an instruction or hardware sequence has completed
//		}
//	}
//
// Internally, an instruction is a queue of micro-operations. Each
// micro-operation either consumes a single cycle or is instantaneous.
// Instantaneous operations are performed in the same call to Step() as the
// cycle consuming operation before or after them. The queue is filled when the
// opcode is decoded and sometimes extended while the instruction is executing,
// for example when the post-byte of an indexed instruction is read. When the
// queue is empty the instruction has completed and the CPU is at a fetch
// boundary.
//
// At every fetch boundary the CPU checks the hardware lines before fetching
// the next opcode. The order of priority is HALT, RESET, NMI, FIRQ and then
// IRQ. RESET and NMI are edge sensitive. An assertion of the line is latched
// and serviced at the next fetch boundary. FIRQ, IRQ and HALT are level
// sensitive. The CPU never changes the state of a line itself.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction while it is being
// executed. The Bus field describes the bus activity of the most recent cycle.
package cpu
