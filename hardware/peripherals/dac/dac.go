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

// Package dac implements a memory mapped 8-bit digital-to-analogue converter.
// Every write by the CPU is recorded with the cycle on which it happened so
// that the output can be reconstructed at any sample rate.
package dac

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/memory"
)

// Sample is a single write to the DAC.
type Sample struct {
	Cycle uint64
	Value uint8
}

func (s Sample) String() string {
	return fmt.Sprintf("%d: %02x", s.Cycle, s.Value)
}

// DAC is a single register device. It implements the memory.Area interface.
type DAC struct {
	memory.AreaInfo

	// returns the current cycle count of the machine
	clock func() uint64

	value   uint8
	samples []Sample
}

// NewDAC is the preferred method of initialisation for the DAC type. The clock
// function is called on every write and should return the cycle count of the
// CPU.
func NewDAC(origin uint16, clock func() uint64) *DAC {
	return &DAC{
		AreaInfo: memory.NewAreaInfo("DAC", origin, origin),
		clock:    clock,
	}
}

func (dac *DAC) String() string {
	return fmt.Sprintf("DAC: %02x (%d samples)", dac.value, len(dac.samples))
}

// Reset removes all recorded samples. The current value is unchanged.
func (dac *DAC) Reset() {
	dac.samples = dac.samples[:0]
}

// Samples returns the recorded writes in the order they happened.
func (dac *DAC) Samples() []Sample {
	return dac.samples
}

// Read implements the memory.Area interface.
func (dac *DAC) Read(_ uint16) (uint8, error) {
	return dac.value, nil
}

// Write implements the memory.Area interface.
func (dac *DAC) Write(_ uint16, data uint8) error {
	dac.value = data
	dac.samples = append(dac.samples, Sample{Cycle: dac.clock(), Value: data})
	return nil
}

// Peek implements the memory.Area interface.
func (dac *DAC) Peek(_ uint16) (uint8, error) {
	return dac.value, nil
}

// Poke implements the memory.Area interface. Poking the DAC changes the
// current value but does not record a sample.
func (dac *DAC) Poke(_ uint16, value uint8) error {
	dac.value = value
	return nil
}

// Resample converts the recorded writes into evenly spaced samples at the
// requested sample rate. The output covers cycles from zero up to but not
// including the end cycle. Cycles before the first write have the value of
// zero.
func (dac *DAC) Resample(cyclesPerSecond int, sampleRate int, end uint64) ([]uint8, error) {
	if cyclesPerSecond <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("dac: invalid rates (%d cycles, %dHz)", cyclesPerSecond, sampleRate)
	}

	n := int(end * uint64(sampleRate) / uint64(cyclesPerSecond))
	out := make([]uint8, n)

	var v uint8
	var s int
	for i := range out {
		cycle := uint64(i) * uint64(cyclesPerSecond) / uint64(sampleRate)
		for s < len(dac.samples) && dac.samples[s].Cycle <= cycle {
			v = dac.samples[s].Value
			s++
		}
		out[i] = v
	}

	return out, nil
}
