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

// Package registers implements the register file of the 6809 CPU and the
// functions that derive the condition code flags from the result of an
// operation.
//
// There are three register types. Register is an 8bit register and is used
// for the A and B accumulators and the DP register. Data is a 16bit register
// and is used for the X, Y, U, S and PC registers. Pair joins two 8bit
// registers into a 16bit view; the D register is a Pair of A and B.
//
// D is never stored separately. Reading D reads A and B and writing D writes
// A and B, so the two views can never disagree:
//
//	a := registers.NewRegister(0x12, "A")
//	b := registers.NewRegister(0x34, "B")
//	d := registers.NewPair(&a, &b, "D")
//	d.Value() // 0x1234
//	d.Load(0xabcd)
//	a.Value() // 0xab
//
// The ConditionCodes type is the CC register. Flags are stored as individual
// booleans and are converted to the packed form with Value() and Load().
//
// The flag functions on ConditionCodes (NZ8, Add8, Sub16, etc.) do not change
// the receiver. They return a new copy with only the flags described by the
// function altered. For example:
//
//	r := uint16(a) + uint16(b)
//	cc = cc.Add8(a, b, r)
//
// updates H, N, Z, V and C and leaves E, F and I as they were.
package registers
