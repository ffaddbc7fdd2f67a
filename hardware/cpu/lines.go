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

// lines is the state of the hardware lines
type lines struct {
	halt bool
	firq bool
	irq  bool

	// RESET and NMI are edge sensitive. the line level is remembered so that
	// a new edge can be detected. the latch is set on the edge and cleared
	// when the sequence begins
	reset      bool
	resetLatch bool
	nmi        bool
	nmiLatch   bool

	// NMI is ignored until the S register has been loaded after a reset
	nmiArmed bool
}

// AssertReset asserts the RESET line. The RESET sequence will begin at the
// next fetch boundary.
func (mc *CPU) AssertReset() {
	if !mc.lines.reset {
		mc.lines.resetLatch = true
	}
	mc.lines.reset = true
}

// ClearReset deasserts the RESET line.
func (mc *CPU) ClearReset() {
	mc.lines.reset = false
}

// AssertNMI asserts the NMI line. The NMI sequence will begin at the next
// fetch boundary, unless the NMI is not yet armed in which case the assertion
// is ignored.
func (mc *CPU) AssertNMI() {
	if !mc.lines.nmi {
		if mc.lines.nmiArmed {
			mc.lines.nmiLatch = true
		} else {
			logger.Log(mc, "cpu", "NMI ignored: S has not been loaded since reset")
		}
	}
	mc.lines.nmi = true
}

// ClearNMI deasserts the NMI line.
func (mc *CPU) ClearNMI() {
	mc.lines.nmi = false
}

// AssertFIRQ asserts the FIRQ line.
func (mc *CPU) AssertFIRQ() {
	mc.lines.firq = true
}

// ClearFIRQ deasserts the FIRQ line.
func (mc *CPU) ClearFIRQ() {
	mc.lines.firq = false
}

// AssertIRQ asserts the IRQ line.
func (mc *CPU) AssertIRQ() {
	mc.lines.irq = true
}

// ClearIRQ deasserts the IRQ line.
func (mc *CPU) ClearIRQ() {
	mc.lines.irq = false
}

// AssertHalt asserts the HALT line. The CPU will stop at the next fetch
// boundary.
func (mc *CPU) AssertHalt() {
	mc.lines.halt = true
}

// ClearHalt deasserts the HALT line.
func (mc *CPU) ClearHalt() {
	mc.lines.halt = false
}

// Lines describes the state of the hardware lines.
type Lines struct {
	Reset    bool
	NMI      bool
	FIRQ     bool
	IRQ      bool
	Halt     bool
	NMIArmed bool
}

// Lines returns the current state of the hardware lines.
func (mc *CPU) Lines() Lines {
	return Lines{
		Reset:    mc.lines.reset,
		NMI:      mc.lines.nmi,
		FIRQ:     mc.lines.firq,
		IRQ:      mc.lines.irq,
		Halt:     mc.lines.halt,
		NMIArmed: mc.lines.nmiArmed,
	}
}
