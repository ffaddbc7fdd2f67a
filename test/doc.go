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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and are
// used when later parts of the test depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions:
//
//	bool -> true is success
//	error -> nil is success
//
// It is worth describing how these functions handle the nil type because it
// is not obvious. The nil type is considered a success and consequently will
// cause ExpectFailure to fail and ExpectSuccess to succeed. This is because of
// how errors usually work (nil to indicate no error).
//
// All functions accept a list of tags. The tags are added to the failure
// message and are useful for identifying the failing case in a loop. If the
// first tag is a string containing formatting verbs then the remaining tags
// are used as the arguments.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test for
// equality.
package test
