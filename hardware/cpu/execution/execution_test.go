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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	// LDA immediate
	r = execution.Result{
		Defn:      instructions.Lookup(instructions.Unprefixed, 0x86),
		ByteCount: 2,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	// LDA indexed with a sixteen bit offset
	r = execution.Result{
		Defn:      instructions.Lookup(instructions.Unprefixed, 0xa6),
		ByteCount: 4,
		Cycles:    8,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.ByteCount = 5
	test.ExpectFailure(t, r.IsValid())

	// LBEQ
	r = execution.Result{
		Defn:      instructions.Lookup(instructions.Prefix10, 0x27),
		ByteCount: 4,
		Cycles:    5,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 6
	test.ExpectSuccess(t, r.IsValid())

	// hardware sequences
	r = execution.Result{
		Sequence: execution.FIRQ,
		Cycles:   10,
		Final:    true,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.Sequence = execution.IRQ
	test.ExpectFailure(t, r.IsValid())
}

func TestReset(t *testing.T) {
	r := execution.Result{
		Address: 0x1234,
		Cycles:  10,
		Final:   true,
	}
	r.Reset()
	test.ExpectEquality(t, r.Address, 0x1234)
	test.ExpectEquality(t, r.Cycles, 0)
	test.ExpectFailure(t, r.Final)
}
