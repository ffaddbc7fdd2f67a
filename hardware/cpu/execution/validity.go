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

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised")
	}

	if r.Sequence != Instruction {
		if r.Defn != nil {
			return fmt.Errorf("cpu: %s sequence has an instruction definition", r.Sequence)
		}
		if r.ByteCount != 0 {
			return fmt.Errorf("cpu: %s sequence read from the instruction stream", r.Sequence)
		}
		if r.Cycles != sequenceCycles[r.Sequence] {
			return fmt.Errorf("cpu: number of cycles wrong for %s sequence (%d instead of %d)",
				r.Sequence, r.Cycles, sequenceCycles[r.Sequence])
		}
		return nil
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: instruction has no definition")
	}

	// byte count. indexed addressing can add up to two bytes of offset
	if r.Defn.AddressingMode == instructions.Indexed {
		if r.ByteCount < r.Defn.Bytes || r.ByteCount > r.Defn.Bytes+2 {
			return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d to %d)",
				r.ByteCount, r.Defn.Bytes, r.Defn.Bytes+2)
		}
	} else if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)",
			r.ByteCount, r.Defn.Bytes)
	}

	// long branches on the second page take an extra cycle if the branch is
	// taken. these instructions have a maximum cycle count so the generic check
	// below is not enough
	if r.Defn.IsConditionalLongBranch() {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
		}
		if r.Cycles != expected {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, expected)
		}
		return nil
	}

	if r.Cycles < r.Defn.Cycles || (r.Defn.MaxCycles > 0 && r.Cycles > r.Defn.MaxCycles) {
		if r.Defn.MaxCycles == r.Defn.Cycles {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
		}
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d outside of range %d to %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles, r.Defn.MaxCycles)
	}

	return nil
}
