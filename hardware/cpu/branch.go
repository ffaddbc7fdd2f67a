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

// BranchTaken returns true if the branch operator would be taken with the
// condition codes. Operators that are not branches are never taken.
func BranchTaken(op instructions.Operator, cc registers.ConditionCodes) bool {
	switch op {
	case instructions.Bra:
		return true
	case instructions.Brn:
		return false
	case instructions.Bhi:
		return !cc.Carry && !cc.Zero
	case instructions.Bls:
		return cc.Carry || cc.Zero
	case instructions.Bcc:
		return !cc.Carry
	case instructions.Bcs:
		return cc.Carry
	case instructions.Bne:
		return !cc.Zero
	case instructions.Beq:
		return cc.Zero
	case instructions.Bvc:
		return !cc.Overflow
	case instructions.Bvs:
		return cc.Overflow
	case instructions.Bpl:
		return !cc.Negative
	case instructions.Bmi:
		return cc.Negative
	case instructions.Bge:
		return cc.Negative == cc.Overflow
	case instructions.Blt:
		return cc.Negative != cc.Overflow
	case instructions.Bgt:
		return !cc.Zero && cc.Negative == cc.Overflow
	case instructions.Ble:
		return cc.Zero || cc.Negative != cc.Overflow
	}
	return false
}

// branch is the final cycle of a short branch
func branch(mc *CPU) error {
	if BranchTaken(mc.defn.Operator, mc.CC) {
		mc.PC.Add(mc.offset.Value())
		mc.LastResult.BranchSuccess = true
	}
	return nil
}

// longBranch is the third cycle of a long branch. a taken branch requires one
// more cycle
func longBranch(mc *CPU) error {
	if BranchTaken(mc.defn.Operator, mc.CC) {
		mc.PC.Add(mc.offset.Value())
		mc.LastResult.BranchSuccess = true
		mc.queue.insert(idleCycle)
	}
	return nil
}

// branchAlways completes BSR and LBSR
func branchAlways(mc *CPU) error {
	mc.PC.Add(mc.offset.Value())
	return nil
}

// jump completes JMP and JSR
func jump(mc *CPU) error {
	mc.PC.Load(mc.ea.Value())
	return nil
}
