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

// Package memory implements the address space of the machine. The CPU sees
// memory through the cpubus.Memory interface and the debugger through the
// cpubus.DebuggerBus interface. Both interfaces are implemented by the Memory
// type.
//
//	CPU ---- cpu bus ---- MEMORY ---- RAM
//	                         |  \
//	                         |   \--- ROM
//	                         |    \
//	                         |     \- devices (DAC, console, etc.)
//	                    debugger bus
//	                         |
//	                      DEBUGGER
//
// The address space is divided into areas. An area covers a contiguous range
// of addresses, from the Origin() to the Memtop() inclusive. Areas added later
// take precedence over areas added earlier, so the usual pattern is to start
// with RAM covering the whole address space and then to add ROM and devices
// on top of it.
//
// Addresses not covered by any area are unmapped. Accessing an unmapped
// address returns an error wrapping cpubus.AddressError.
//
// Writing to ROM through the cpu bus is not allowed and also returns an error
// wrapping cpubus.AddressError. The CPU notes these errors and continues. The
// debugger bus can write to ROM.
package memory
