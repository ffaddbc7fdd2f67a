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

package performance

// CalcMHz takes the number of cycles and duration (in seconds) and returns the
// effective clock speed in MHz and the accuracy of that value as a percentage
// of the clock speed of the machine.
func CalcMHz(cycles uint64, duration float64, clock float64) (mhz float64, accuracy float64) {
	if duration <= 0 || clock <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clock
	return mhz, accuracy
}
