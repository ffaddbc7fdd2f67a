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

package instructions

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Inherent AddressingMode = iota

	// immediate mode is also used by those instructions that take a post-byte
	// describing a set of registers (PSHS, TFR, etc.)
	Immediate

	Direct   // dp
	Extended // abs
	Indexed  // idx

	Relative     // 8bit offset
	LongRelative // 16bit offset
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Extended:
		return "Extended"
	case Indexed:
		return "Indexed"
	case Relative:
		return "Relative"
	case LongRelative:
		return "LongRelative"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	Modify

	// internal instructions only affect the registers of the CPU
	Internal

	// stack instructions are PSHS, PSHU, PULS and PULU
	Stack

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Internal:
		return "Internal"
	case Stack:
		return "Stack"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
