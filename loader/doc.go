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

// Package loader reads program data from a file, or from a URL, and installs
// it into memory. Two formats are supported: raw binary data, which is placed
// at a specified origin, and Motorola S-record files, which specify their own
// addresses and optionally a start address.
//
// The format of the file can be stated explicitly or it can be decided by the
// file extension. The extensions .S19, .S, .SREC and .MOT are loaded as
// S-records. Anything else is loaded as binary data.
package loader
