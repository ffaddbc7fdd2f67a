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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	Notes    bool
}

// Write the entries to io.Writer, one per line.
func Write(output io.Writer, entries []*Entry, attr WriteAttr) error {
	for _, e := range entries {
		if err := WriteLine(output, e, attr); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, e *Entry, attr WriteAttr) error {
	var err error

	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "%04x  %-12s %-6s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
	} else {
		_, err = fmt.Fprintf(output, "%04x  %-6s %s", e.Address, e.Operator, e.Operand)
	}
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}

	if attr.Notes && e.Notes != "" {
		if _, err := fmt.Fprintf(output, " ; %s", e.Notes); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}

	if _, err := output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}

	return nil
}
