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

package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/memory"
	"github.com/jetsetilly/gopher6809/loader"
	"github.com/jetsetilly/gopher6809/test"
)

const srecordFile = `S00600004844521B
S1071000862A971091
S10410043FA8
S1052000123494
S5030003F9
S9031000EC
`

func TestFormatFromExtension(t *testing.T) {
	test.ExpectEquality(t, loader.NewLoader("prog.s19", "", 0).Format, loader.FormatSRecord)
	test.ExpectEquality(t, loader.NewLoader("prog.MOT", "auto", 0).Format, loader.FormatSRecord)
	test.ExpectEquality(t, loader.NewLoader("prog.bin", "", 0).Format, loader.FormatBinary)
	test.ExpectEquality(t, loader.NewLoader("prog.s19", "bin", 0).Format, loader.FormatBinary)
	test.ExpectEquality(t, loader.NewLoader("/tmp/prog.s19", "", 0).ShortName(), "prog")
}

func TestSRecord(t *testing.T) {
	ld := loader.NewLoader("test.s19", "", 0)
	test.DemandSuccess(t, ld.Decode([]byte(srecordFile)))

	test.ExpectEquality(t, ld.Header, "HDR")
	test.ExpectEquality(t, ld.HasStart, true)
	test.ExpectEquality(t, ld.Start, uint16(0x1000))

	// the first two data records are contiguous
	test.DemandEquality(t, len(ld.Segments), 2)
	test.ExpectEquality(t, ld.Segments[0].Origin, uint16(0x1000))
	test.ExpectEquality(t, len(ld.Segments[0].Data), 5)
	test.ExpectEquality(t, ld.Segments[0].Memtop(), uint16(0x1004))
	test.ExpectEquality(t, ld.Segments[1].Origin, uint16(0x2000))
	test.ExpectEquality(t, len(ld.Segments[1].Data), 2)

	mem := memory.NewFlatMemory()
	test.DemandSuccess(t, ld.Install(mem, false))
	v, _ := mem.Peek(0x1004)
	test.ExpectEquality(t, v, uint8(0x3f))
	v, _ = mem.Peek(0x2001)
	test.ExpectEquality(t, v, uint8(0x34))
}

func TestSRecordErrors(t *testing.T) {
	for _, s := range []string{
		// bad checksum
		"S1071000862A971090\n",
		// bad byte count
		"S1081000862A971091\n",
		// record count mismatch
		"S1071000862A971091\nS5030003F9\n",
		// record count one short of the number of data records
		"S1071000862A971091\nS10410043FA8\nS1052000123494\nS5030002FA\n",
		// not hex
		"S107100086ZZ971091\n",
		// no data
		"S9031000EC\n",
		// not an S-record
		"hello\n",
	} {
		ld := loader.NewLoader("test.s19", "", 0)
		test.ExpectFailure(t, ld.Decode([]byte(s)), s)
	}
}

func TestBinary(t *testing.T) {
	ld := loader.NewLoader("test.bin", "", 0xf000)
	test.DemandSuccess(t, ld.Decode([]byte{0x01, 0x02, 0x03}))
	test.ExpectEquality(t, ld.HasStart, false)
	test.ExpectInequality(t, ld.Hash, "")

	mem := memory.NewFlatMemory()
	test.DemandSuccess(t, ld.Install(mem, true))
	v, _ := mem.Read(0xf002, false)
	test.ExpectEquality(t, v, uint8(0x03))
	test.ExpectFailure(t, mem.Write(0xf002, 0x00))

	// too big for address space
	ld = loader.NewLoader("test.bin", "", 0xffff)
	test.ExpectFailure(t, ld.Decode([]byte{0x01, 0x02}))

	// hash mismatch
	ld = loader.NewLoader("test.bin", "", 0x0000)
	ld.Hash = "0000"
	test.ExpectFailure(t, ld.Decode([]byte{0x01}))
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.s19")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(srecordFile), 0o644))

	ld := loader.NewLoader(fn, "", 0)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Segments), 2)

	ld = loader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), "", 0)
	test.ExpectFailure(t, ld.Load())
}
