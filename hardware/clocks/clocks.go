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

// Package clocks defines the speed of the main clock for the variants of the
// 6809 CPU. Values are the E clock frequency in MHz as stated in the Motorola
// datasheets. The crystal attached to the CPU runs at four times the E clock.
package clocks

import (
	"fmt"
	"strings"
)

const (
	MC6809  = 1.0
	MC68A09 = 1.5
	MC68B09 = 2.0
)

// Default is the clock used when no other clock has been specified.
const Default = MC6809

// Names of the available clocks, suitable for use in help messages.
var Names = []string{"MC6809", "MC68A09", "MC68B09"}

// Lookup returns the clock speed in MHz for the named CPU variant. The name
// is not case sensitive and the "MC" prefix is optional.
func Lookup(name string) (float64, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "MC")
	switch n {
	case "6809", "":
		return MC6809, nil
	case "68A09":
		return MC68A09, nil
	case "68B09":
		return MC68B09, nil
	}
	return 0, fmt.Errorf("clocks: unknown CPU variant (%s)", name)
}

// CyclesPerSecond converts a clock speed in MHz to the number of E cycles in
// one second.
func CyclesPerSecond(mhz float64) int {
	return int(mhz * 1000000)
}
