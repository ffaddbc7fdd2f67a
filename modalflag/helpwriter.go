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

package modalflag

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// reformatted before being shown to the user.
type helpWriter struct {
	buf bytes.Buffer
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

// write the help message to output. the mode argument is the path of modes
// that have been selected so far.
func (hw *helpWriter) write(output io.Writer, mode string, subModes []string, additional string) {
	if output == nil {
		return
	}

	lines := strings.Split(strings.TrimRight(hw.buf.String(), "\n"), "\n")

	// the first line is the usage banner from the flag package. anything else
	// is the description of the flags
	flags := lines[1:]

	if len(flags) == 0 && len(subModes) == 0 {
		if mode == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s mode\n", mode)
		}
		return
	}

	if mode == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", mode)
	}

	for _, l := range flags {
		fmt.Fprintln(output, l)
	}

	if len(subModes) > 0 {
		if len(flags) > 0 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  modes: %s (default %s)\n", strings.Join(subModes, ", "), subModes[0])
	}

	if additional != "" {
		fmt.Fprintf(output, "\n%s\n", additional)
	}
}
