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

// Package logger is the central log for the emulator. Log entries are
// collected in a bounded list. Identical entries made one after the other are
// collapsed into a single entry with a repeat count.
//
// Most packages will use the package level functions, which act on the single
// central log. A Logger instance can be created with NewLogger() for testing
// purposes.
//
// Logging requests are accompanied by a Permission. This allows a component to
// decide, at the time of the request, whether the entry should be made. The
// CPU for example can be told to stay quiet while the disassembler is running.
package logger
