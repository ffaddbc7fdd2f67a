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

// Package console implements a simple serial port in the manner of the
// MC6850 ACIA. The device occupies two addresses:
//
//	origin+0	read: status register	write: control register
//	origin+1	read: receive data	write: transmit data
//
// Transmitted bytes are written immediately to an io.Writer. Received bytes
// are queued with the Receive() function.
//
// Status register bits:
//
//	bit 0	receive data register full
//	bit 1	transmit data register empty (always set)
//	bit 7	interrupt request
//
// Control register bits:
//
//	bits 0-1	both set for master reset
//	bit 7		receive interrupt enable
package console

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6809/hardware/memory"
)

// Status register bits.
const (
	StatusRDRF = 0x01
	StatusTDRE = 0x02
	StatusIRQ  = 0x80
)

// Control register bits.
const (
	ControlMasterReset = 0x03
	ControlRIE         = 0x80
)

// Console is a two register device. It implements the memory.Area interface.
type Console struct {
	memory.AreaInfo

	out     io.Writer
	control uint8
	rx      []uint8
}

// NewConsole is the preferred method of initialisation for the Console type.
// The output writer can be nil in which case transmitted bytes are discarded.
func NewConsole(origin uint16, out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{
		AreaInfo: memory.NewAreaInfo("console", origin, origin+1),
		out:      out,
	}
}

func (con *Console) String() string {
	return fmt.Sprintf("console: status=%02x control=%02x rx=%d", con.status(), con.control, len(con.rx))
}

// Receive adds bytes to the receive queue.
func (con *Console) Receive(b ...uint8) {
	con.rx = append(con.rx, b...)
}

// IRQ returns the state of the interrupt request output of the device. The
// machine should connect this to the IRQ line of the CPU.
func (con *Console) IRQ() bool {
	return con.control&ControlRIE == ControlRIE && len(con.rx) > 0
}

func (con *Console) status() uint8 {
	s := uint8(StatusTDRE)
	if len(con.rx) > 0 {
		s |= StatusRDRF
	}
	if con.IRQ() {
		s |= StatusIRQ
	}
	return s
}

// Read implements the memory.Area interface. Reading the data register
// removes the byte from the receive queue.
func (con *Console) Read(address uint16) (uint8, error) {
	if address == con.Origin() {
		return con.status(), nil
	}
	if len(con.rx) == 0 {
		return 0, nil
	}
	b := con.rx[0]
	con.rx = con.rx[1:]
	return b, nil
}

// Write implements the memory.Area interface.
func (con *Console) Write(address uint16, data uint8) error {
	if address == con.Origin() {
		if data&ControlMasterReset == ControlMasterReset {
			con.rx = con.rx[:0]
		}
		con.control = data
		return nil
	}
	if _, err := con.out.Write([]byte{data}); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

// Peek implements the memory.Area interface. Peeking the data register
// returns the next byte in the receive queue without removing it.
func (con *Console) Peek(address uint16) (uint8, error) {
	if address == con.Origin() {
		return con.status(), nil
	}
	if len(con.rx) == 0 {
		return 0, nil
	}
	return con.rx[0], nil
}

// Poke implements the memory.Area interface. Poking the data register adds
// the value to the receive queue. Nothing is transmitted.
func (con *Console) Poke(address uint16, value uint8) error {
	if address == con.Origin() {
		con.control = value
		return nil
	}
	con.Receive(value)
	return nil
}
