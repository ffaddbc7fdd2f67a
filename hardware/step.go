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

package hardware

// Step the machine by a single E cycle. The state of the IRQ line is updated
// from the peripherals before the CPU is stepped.
func (m *Machine) Step() error {
	if m.IRQ || (m.Console != nil && m.Console.IRQ()) {
		m.CPU.AssertIRQ()
	} else {
		m.CPU.ClearIRQ()
	}
	return m.CPU.Step()
}

// StepInstruction steps the machine until the CPU reaches the end of the
// current instruction or hardware sequence.
func (m *Machine) StepInstruction() error {
	for {
		if err := m.Step(); err != nil {
			return err
		}
		if m.CPU.LastResult.Final {
			return nil
		}
	}
}

// RunCycles steps the machine for the specified number of cycles. The CPU may
// be left in the middle of an instruction.
func (m *Machine) RunCycles(n int) error {
	for range n {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
