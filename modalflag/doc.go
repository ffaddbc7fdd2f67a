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

// Package modalflag extends the flag package with the idea of program modes.
// A mode is a non-flag argument that selects what the program should do. Each
// mode can have its own set of flags and its own set of sub-modes.
//
// Arguments are given to NewArgs() once. Flags for the top level are then
// added and Parse() is called:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORM")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default. It is selected if the first non-flag
// argument does not name a sub-mode. Sub-mode names are not case sensitive
// and Mode() always returns the upper case form.
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		bytecode := md.AddBool("bytecode", false, "include bytecode")
//		origin := md.AddAddress("origin", 0x0000, "load `address` for binary files")
//		...
//	}
//
// NewMode() discards the flags of the previous level. The next call to Parse()
// continues from the first argument that was not consumed by the previous
// level. The Path() function describes all the modes that have been selected,
// separated by a slash.
//
// Address flags accept values in the forms 4096, 0x1000 and $1000.
package modalflag
