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

// Package version reports the version of the running program. A release
// build sets the number variable with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher6809/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used whenever the program refers to itself.
const ApplicationName = "Gopher6809"

// set by the linker for release builds
var number string

// Version returns the version string and the VCS revision. The version is
// "unreleased" if the program was built from a repository without a version
// number and "local" if there is no VCS information at all. The revision is
// suffixed with "+dirty" if the source had uncommitted changes.
func Version() (version string, revision string) {
	return versionFromBuildInfo(number, debug.ReadBuildInfo)
}

func versionFromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs, modified bool
	var rev string

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// String returns a single line description of the version, suitable for
// printing in response to a -version flag.
func String() string {
	v, r := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
