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

package debugger

import (
	"testing"

	"github.com/jetsetilly/gopher6809/test"
)

func TestBreakpoints(t *testing.T) {
	var bp breakpoints
	test.ExpectEquality(t, bp.String(), "no breakpoints")
	test.ExpectEquality(t, bp.check(0x1000), false)

	test.ExpectSuccess(t, bp.add(0x2000))
	test.ExpectSuccess(t, bp.add(0x1000))
	test.ExpectFailure(t, bp.add(0x1000))
	test.ExpectEquality(t, bp.check(0x1000), true)
	test.ExpectEquality(t, bp.check(0x2000), true)
	test.ExpectEquality(t, bp.check(0x3000), false)
	test.ExpectEquality(t, bp.String(), " 0: 1000\n 1: 2000")

	test.ExpectSuccess(t, bp.drop(0x1000))
	test.ExpectFailure(t, bp.drop(0x1000))
	test.ExpectEquality(t, bp.check(0x1000), false)

	bp.clear()
	test.ExpectEquality(t, bp.check(0x2000), false)
}
