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

package instructions

import "fmt"

// Page of the opcode. The 6809 has three opcode pages. Opcodes on the second
// and third pages are preceded by a prefix byte.
type Page int

// List of opcode pages.
const (
	Unprefixed Page = iota
	Prefix10
	Prefix11

	NumPages
)

// Prefix returns the prefix byte for the page. Returns false if the page has
// no prefix.
func (p Page) Prefix() (uint8, bool) {
	switch p {
	case Prefix10:
		return 0x10, true
	case Prefix11:
		return 0x11, true
	}
	return 0, false
}

// PageFromPrefix returns the page selected by the prefix byte. Returns false
// if the byte is not a prefix.
func PageFromPrefix(b uint8) (Page, bool) {
	switch b {
	case 0x10:
		return Prefix10, true
	case 0x11:
		return Prefix11, true
	}
	return Unprefixed, false
}

func (p Page) String() string {
	switch p {
	case Unprefixed:
		return "page 1"
	case Prefix10:
		return "page 2"
	case Prefix11:
		return "page 3"
	}
	return "unknown page"
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Page     Page
	Mnemonic string

	Operator       Operator
	Register       Register
	AddressingMode AddressingMode
	Effect         EffectCategory

	// minimum number of bytes and cycles. the number of cycles includes the
	// fetch of the prefix byte if the opcode isn't on the first page
	Bytes  int
	Cycles int

	// maximum number of cycles. a value of zero means that there is no fixed
	// maximum, either because the instruction can wait indefinitely or because
	// the count depends on the post-byte
	MaxCycles int

	// the instruction does something useful but isn't part of the published
	// instruction set
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s mode=%s effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles,
		defn.Page, defn.AddressingMode, defn.Effect)
}

// IsValid returns false if the opcode is undefined.
func (defn Definition) IsValid() bool {
	return defn.Operator != Invalid
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.Operator.IsBranch()
}

// IsConditionalLongBranch returns true if the instruction is a long branch
// that takes an additional cycle when the branch is taken.
func (defn Definition) IsConditionalLongBranch() bool {
	return defn.IsBranch() && defn.AddressingMode == LongRelative && defn.Page == Prefix10
}

// VariableLength returns true if the number of bytes in the instruction
// depends on the post-byte.
func (defn Definition) VariableLength() bool {
	return defn.AddressingMode == Indexed
}

// Lookup returns the definition for the opcode in the specified page. Never
// returns nil for a valid page.
func Lookup(page Page, opcode uint8) *Definition {
	if page < Unprefixed || page >= NumPages {
		return nil
	}
	return &table[page][opcode]
}

// GetDefinitions returns the table of instruction definitions for the 6809.
// The first 256 entries are the unprefixed opcodes, followed by the opcodes
// for the $10 prefix and then the $11 prefix.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 0, int(NumPages)*256)
	for p := range table {
		for o := range table[p] {
			defs = append(defs, &table[p][o])
		}
	}
	return defs
}
