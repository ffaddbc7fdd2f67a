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

package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher6809/debugger/terminal"
)

const commentLine = "#"

// check if line is prepended with commentLine (ignoring leading spaces)
func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents an previously scribed script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptfile string) (*Rescribe, error) {
	buffer, err := os.ReadFile(scriptfile)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return NewRescribe(scriptfile, string(buffer)), nil
}

// NewRescribe creates a Rescribe instance from a string. The name is used in
// error messages only.
func NewRescribe(name string, script string) *Rescribe {
	scr := &Rescribe{scriptFile: name}

	script = strings.ReplaceAll(script, "\r\n", "\n")
	for _, l := range strings.Split(script, "\n") {
		if isCommentLine(l) || strings.TrimSpace(l) == "" {
			continue
		}
		scr.lines = append(scr.lines, l)
	}

	return scr
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface.
func (scr *Rescribe) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	if scr.lineCt >= len(scr.lines) {
		return 0, fmt.Errorf("%w: %s", terminal.ScriptEnd, scr.scriptFile)
	}

	n := copy(buffer, []byte(scr.lines[scr.lineCt]))
	scr.lineCt++

	return n, nil
}
