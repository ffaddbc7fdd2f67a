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
	"errors"
	"fmt"
	"io"
	"os"
)

// Scribe can be used again after a start/end session.
type Scribe struct {
	file       io.WriteCloser
	scriptfile string

	// playbackDepth is used to prevent writing to the script file while a
	// script is being replayed
	playbackDepth int

	inputLine string
}

// IsActive returns true if a script is currently being capture.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename returns the name of the script being written to.
func (scr *Scribe) Filename() string {
	return scr.scriptfile
}

// StartSession a new script. The file must not already exist.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return errors.New("script: scribe already active")
	}

	f, err := os.OpenFile(scriptfile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}

	return scr.startSession(scriptfile, f)
}

func (scr *Scribe) startSession(scriptfile string, w io.WriteCloser) error {
	scr.scriptfile = scriptfile
	scr.file = w
	_, err := io.WriteString(scr.file, fmt.Sprintf("%s %s\n", commentLine, scriptfile))
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// EndSession the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
	}()

	// make sure everything has been written to the output file. if Commit()
	// fails continue with the Close() and return the commit error
	err := scr.Commit()

	errClose := scr.file.Close()
	if errClose != nil {
		return fmt.Errorf("script: %w", errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun.
func (scr *Scribe) StartPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	if scr.playbackDepth > 0 {
		scr.playbackDepth--
	}
}

// Rollback undoes the most recent call to WriteInput().
func (scr *Scribe) Rollback() {
	scr.inputLine = ""
}

// WriteInput writes user-input to the open script file. The input will be
// written to the file on the next call to Commit() or WriteInput().
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	_ = scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// Commit most recent call to WriteInput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
	}()

	if scr.inputLine != "" {
		n, err := io.WriteString(scr.file, scr.inputLine)
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		if n != len(scr.inputLine) {
			return errors.New("script: output truncated")
		}
	}

	return nil
}
