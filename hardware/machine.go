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

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/memory"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/console"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/dac"
	"github.com/jetsetilly/gopher6809/logger"
)

// Config specifies the components of the Machine.
type Config struct {
	// speed of the E clock in MHz. see the clocks package
	Clock float64

	// limit the speed of Run() to the speed of the clock
	Limit bool

	// the console device is mapped to two addresses starting at ConsoleOrigin
	Console       bool
	ConsoleOrigin uint16
	ConsoleOut    io.Writer

	// the DAC is mapped to a single address
	DAC       bool
	DACOrigin uint16
}

// DefaultConfig returns the configuration used when the user has not
// specified anything different.
func DefaultConfig() Config {
	return Config{
		Clock:         clocks.Default,
		Console:       true,
		ConsoleOrigin: 0xc000,
		DAC:           true,
		DACOrigin:     0xc010,
	}
}

// Machine is the main container for the emulated components.
type Machine struct {
	Config Config

	CPU *cpu.CPU
	Mem *memory.Memory

	// nil if the device has not been configured
	Console *console.Console
	DAC     *dac.DAC

	// the state of the IRQ line as driven by sources other than the
	// peripherals. the debugger uses this to raise interrupts by hand
	IRQ bool
}

// NewMachine creates a new Machine and everything associated with the
// hardware. RAM covers the entire address space with the configured
// peripherals mapped over it.
func NewMachine(config Config) (*Machine, error) {
	if config.Clock <= 0 {
		return nil, fmt.Errorf("machine: invalid clock speed (%f)", config.Clock)
	}

	m := &Machine{
		Config: config,
		Mem:    memory.NewFlatMemory(),
	}
	m.CPU = cpu.NewCPU(m.Mem)

	if config.Console {
		m.Console = console.NewConsole(config.ConsoleOrigin, config.ConsoleOut)
		if err := m.Mem.AddArea(m.Console); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	if config.DAC {
		m.DAC = dac.NewDAC(config.DACOrigin, func() uint64 { return m.CPU.Cycles })
		if err := m.Mem.AddArea(m.DAC); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	logger.Logf(logger.Allow, "machine", "clock %.1fMHz", config.Clock)

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// CyclesPerSecond returns the number of E cycles in one second of emulated
// time.
func (m *Machine) CyclesPerSecond() int {
	return clocks.CyclesPerSecond(m.Config.Clock)
}

// Reset puts the CPU into the power-on state and then runs the RESET sequence.
// Memory is not cleared. Recorded DAC samples are discarded.
func (m *Machine) Reset() error {
	m.CPU.Reset()
	m.CPU.AssertReset()
	defer m.CPU.ClearReset()

	for {
		if err := m.Step(); err != nil {
			return err
		}
		if m.CPU.LastResult.Final {
			break
		}
	}

	if m.DAC != nil {
		m.DAC.Reset()
	}

	return nil
}
