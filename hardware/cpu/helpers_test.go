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

package cpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6809/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6809/test"
)

// addresses in the range unmappedOrigin to unmappedMemtop are not connected
// to anything. reads and writes return an error wrapping cpubus.AddressError
const (
	unmappedOrigin = uint16(0xe000)
	unmappedMemtop = uint16(0xefff)
)

// any access to this address returns errFault
const faultAddress = uint16(0xd000)

var errFault = errors.New("bus fault")

type mockMem struct {
	internal []uint8

	// number of reads and writes made by the CPU
	reads  int
	writes int
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	clear(mem.internal)
	mem.reads = 0
	mem.writes = 0
}

func (mem *mockMem) Read(address uint16, readOnly bool) (uint8, error) {
	if address == faultAddress {
		return 0, errFault
	}
	if address >= unmappedOrigin && address <= unmappedMemtop {
		return 0, fmt.Errorf("mock: read %04x: %w", address, cpubus.AddressError)
	}
	if !readOnly {
		mem.reads++
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address == faultAddress {
		return errFault
	}
	if address >= unmappedOrigin && address <= unmappedMemtop {
		return fmt.Errorf("mock: write %04x: %w", address, cpubus.AddressError)
	}
	mem.writes++
	mem.internal[address] = data
	return nil
}

// the default stack for tests. well away from the programs and the vectors
const stackOrigin = uint16(0x0800)

// newCPU creates a CPU and runs the RESET sequence. the reset vector points
// to origin. the S register is loaded with stackOrigin
func newCPU(t *testing.T, mem *mockMem, origin uint16) *cpu.CPU {
	t.Helper()

	mem.putInstructions(cpubus.Reset, uint8(origin>>8), uint8(origin))
	mc := cpu.NewCPU(mem)
	mc.AssertReset()
	mc.ClearReset()

	r := step(t, mc)
	test.DemandEquality(t, r.Sequence, execution.Reset)
	test.DemandEquality(t, mc.PC.Value(), origin)
	test.DemandSuccess(t, mc.LoadS(stackOrigin))

	return mc
}

// step runs the CPU until the current sequence has completed. the result is
// checked for validity
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()

	for range 1000 {
		err := mc.Step()
		if err != nil {
			t.Fatal(err)
		}
		if mc.LastResult.Final {
			err = mc.LastResult.IsValid()
			if err != nil {
				t.Fatalf("%s: %v", mc.LastResult, err)
			}
			return mc.LastResult
		}
	}

	t.Fatalf("sequence did not complete: %s", mc.LastResult)
	return execution.Result{}
}

// stepCycles runs the CPU for exactly n cycles
func stepCycles(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for range n {
		err := mc.Step()
		if err != nil {
			t.Fatal(err)
		}
	}
}
