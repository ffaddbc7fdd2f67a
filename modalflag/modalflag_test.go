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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher6809/modalflag"
	"github.com/jetsetilly/gopher6809/test"
)

func TestNoModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-log", "prog.s19", "extra"})
	log := md.AddBool("log", false, "echo log")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "prog.s19")
	test.ExpectEquality(t, md.GetArg(1), "extra")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-wibble"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestSubModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"disasm", "-bytecode", "prog.bin"})
	md.AddSubModes("RUN", "DEBUG", "DISASM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	bytecode := md.AddBool("bytecode", false, "include bytecode")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *bytecode, true)
	test.ExpectEquality(t, md.Path(), "DISASM")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestDefaultSubMode(t *testing.T) {
	// a file name selects the default mode
	md := &modalflag.Modes{}
	md.NewArgs([]string{"prog.s19"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "prog.s19")

	// so does a flag that belongs to the default mode
	md.NewArgs([]string{"-cycles", "100", "prog.s19"})
	md.AddSubModes("RUN", "DEBUG")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	cycles := md.AddUint64("cycles", 0, "number of cycles")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *cycles, uint64(100))
	test.ExpectEquality(t, md.GetArg(0), "prog.s19")

	md.NewArgs([]string{"debug"})
	md.AddSubModes("RUN")
	md.AddDefaultSubMode("debug")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DEBUG")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNestedModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-log", "perform", "cpu", "prog.s19"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("RUN", "PERFORM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "PERFORM")

	md.NewMode()
	md.AddSubModes("NONE", "CPU", "MEM")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CPU")
	test.ExpectEquality(t, md.Path(), "PERFORM/CPU")
	test.ExpectEquality(t, md.String(), "PERFORM/CPU")
	test.ExpectEquality(t, md.GetArg(0), "prog.s19")
}

func TestAddress(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-start", "$1000", "-origin", "0xc000", "-vector", "65535"})
	start := md.AddAddress("start", 0, "start address")
	origin := md.AddAddress("origin", 0, "origin")
	vector := md.AddAddress("vector", 0, "vector")
	other := md.AddAddress("other", 0x0400, "other")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *start, uint16(0x1000))
	test.ExpectEquality(t, *origin, uint16(0xc000))
	test.ExpectEquality(t, *vector, uint16(0xffff))
	test.ExpectEquality(t, *other, uint16(0x0400))
	test.ExpectEquality(t, md.Set("start"), true)
	test.ExpectEquality(t, md.Set("other"), false)

	md.NewArgs([]string{"-start", "$10000"})
	md.AddAddress("start", 0, "start address")
	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"run", "-help"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddBool("wav", true, "record audio")
	md.AddAddress("start", 0x1000, "start `address`")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more help")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage for RUN mode:\n" +
		"  -start address\n" +
		"    \tstart address (default $1000)\n" +
		"  -wav\n" +
		"    \trecord audio (default true)\n" +
		"\n" +
		"  modes: A, B (default A)\n" +
		"\n" +
		"more help\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestHelpModesOnly(t *testing.T) {
	tw := &test.CompareWriter{}

	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-h"})
	md.AddSubModes("run", "debug")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  modes: RUN, DEBUG (default RUN)\n")
}
