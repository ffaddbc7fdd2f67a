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

// Package paths locates files that gopher6809 keeps between sessions, such as
// the default debugger initialisation script.
//
// If a directory named .gopher6809 exists in the current working directory
// then that is used. Otherwise a gopher6809 directory is used in the user's
// configuration directory, as returned by os.UserConfigDir().
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const localDir = ".gopher6809"

const configDir = "gopher6809"

// ResourcePath returns the path to the named file in the sub-directory of the
// resource directory. The sub-directory is created if it does not exist but
// the file itself is not checked.
func ResourcePath(subDir string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	dir := filepath.Join(base, subDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(dir, file), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localDir); err == nil && fi.IsDir() {
		return localDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
