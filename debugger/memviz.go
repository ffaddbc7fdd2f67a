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

package debugger

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6809/hardware/cpu"
)

// cpuState is a snapshot of the CPU suitable for memviz. the CPU type itself
// includes a reference to the memory, which would result in a very large
// graph.
type cpuState struct {
	PC uint16
	A  uint8
	B  uint8
	DP uint8
	CC string
	X  uint16
	Y  uint16
	U  uint16
	S  uint16

	Lines       cpu.Lines
	Bus         cpu.Bus
	Cycles      uint64
	Instruction string
}

func (dbg *Debugger) memviz(filename string) error {
	mc := dbg.m.CPU

	st := cpuState{
		PC:          mc.PC.Value(),
		A:           mc.A.Value(),
		B:           mc.B.Value(),
		DP:          mc.DP.Value(),
		CC:          mc.CC.String(),
		X:           mc.X.Value(),
		Y:           mc.Y.Value(),
		U:           mc.U.Value(),
		S:           mc.S.Value(),
		Lines:       mc.Lines(),
		Bus:         mc.Bus,
		Cycles:      mc.Cycles,
		Instruction: mc.LastResult.String(),
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, &st)

	return nil
}
