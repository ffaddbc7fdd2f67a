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
	"fmt"
	"slices"
	"strings"
)

// breakpoints are addresses at which the RUN command will stop. the check is
// made at instruction boundaries only.
type breakpoints struct {
	addresses []uint16
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addresses {
		s.WriteString(fmt.Sprintf("% 2d: %04x\n", i, a))
	}
	return strings.TrimRight(s.String(), "\n")
}

func (bp *breakpoints) add(address uint16) error {
	if slices.Contains(bp.addresses, address) {
		return fmt.Errorf("breakpoint already exists (%04x)", address)
	}
	bp.addresses = append(bp.addresses, address)
	slices.Sort(bp.addresses)
	return nil
}

func (bp *breakpoints) drop(address uint16) error {
	i := slices.Index(bp.addresses, address)
	if i == -1 {
		return fmt.Errorf("breakpoint does not exist (%04x)", address)
	}
	bp.addresses = slices.Delete(bp.addresses, i, i+1)
	return nil
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
}

func (bp breakpoints) check(address uint16) bool {
	_, ok := slices.BinarySearch(bp.addresses, address)
	return ok
}
