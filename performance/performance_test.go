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

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/jetsetilly/gopher6809/hardware"
	"github.com/jetsetilly/gopher6809/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, acc := CalcMHz(2000000, 2.0, 1.0)
	test.ExpectEquality(t, mhz, 1.0)
	test.ExpectEquality(t, acc, 100.0)

	mhz, acc = CalcMHz(1000000, 1.0, 2.0)
	test.ExpectEquality(t, mhz, 1.0)
	test.ExpectEquality(t, acc, 50.0)

	mhz, _ = CalcMHz(1000000, 0, 1.0)
	test.ExpectEquality(t, mhz, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var ran bool
	err := RunProfiler(ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	_, err = os.Stat(filepath.Join(dir, "test_mem.profile"))
	test.ExpectSuccess(t, err)

	_, err = os.Stat(filepath.Join(dir, "test_cpu.profile"))
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	leadTime = time.Millisecond

	m, err := hardware.NewMachine(hardware.DefaultConfig())
	test.DemandSuccess(t, err)

	// BRA *
	test.DemandSuccess(t, m.Mem.Poke(0x1000, 0x20))
	test.DemandSuccess(t, m.Mem.Poke(0x1001, 0xfe))
	test.DemandSuccess(t, m.Mem.Poke(0xfffe, 0x10))
	test.DemandSuccess(t, m.Mem.Poke(0xffff, 0x00))
	test.DemandSuccess(t, m.Reset())

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, Check(w, ProfileNone, m, "50ms"))

	match, err := regexp.MatchString(`^[0-9.]+ MHz \([0-9]+ cycles in 0.05 seconds\) [0-9.]+%\n$`, w.String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, match, true, w.String())

	test.ExpectFailure(t, Check(w, ProfileNone, m, "fifty"))
}
