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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher6809/debugger"
	"github.com/jetsetilly/gopher6809/debugger/govern"
	"github.com/jetsetilly/gopher6809/debugger/terminal"
	"github.com/jetsetilly/gopher6809/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher6809/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher6809/disassembly"
	"github.com/jetsetilly/gopher6809/hardware"
	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/memory"
	"github.com/jetsetilly/gopher6809/loader"
	"github.com/jetsetilly/gopher6809/logger"
	"github.com/jetsetilly/gopher6809/modalflag"
	"github.com/jetsetilly/gopher6809/paths"
	"github.com/jetsetilly/gopher6809/performance"
	"github.com/jetsetilly/gopher6809/statsview"
	"github.com/jetsetilly/gopher6809/version"
	"github.com/jetsetilly/gopher6809/wavwriter"
	"golang.org/x/term"
)

// the name of the script in the resource directory that is run when the
// debugger starts
const defaultInitScript = "debuggerInit"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. the return value is suitable
// for os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORM")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	ver := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORM":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to every mode that creates a machine
type machineFlags struct {
	format *string
	origin *uint16
	start  *uint16
	stack  *uint16
	clock  *string
	rom    *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		format: md.AddString("format", loader.FormatAuto, "program format: AUTO, BIN, S19"),
		origin: md.AddAddress("origin", 0x0000, "load `address` of binary programs"),
		start:  md.AddAddress("start", 0x0000, "execution start `address` (default is the start record or the reset vector)"),
		stack:  md.AddAddress("stack", 0x0000, "initial `address` of the hardware stack"),
		clock:  md.AddString("clock", "MC6809", fmt.Sprintf("CPU variant: %s", strings.Join(clocks.Names, ", "))),
		rom:    md.AddBool("rom", false, "install program as ROM"),
	}
}

// create a machine and install the program named by the filename. an empty
// filename means that no program is installed
func (mf machineFlags) create(md *modalflag.Modes, filename string, console io.Writer) (*hardware.Machine, error) {
	clock, err := clocks.Lookup(*mf.clock)
	if err != nil {
		return nil, err
	}

	cfg := hardware.DefaultConfig()
	cfg.Clock = clock
	cfg.ConsoleOut = console

	m, err := hardware.NewMachine(cfg)
	if err != nil {
		return nil, err
	}

	var ld loader.Loader
	if filename != "" {
		ld = loader.NewLoader(filename, *mf.format, *mf.origin)
		if err := ld.Load(); err != nil {
			return nil, err
		}
		if err := ld.Install(m.Mem, *mf.rom); err != nil {
			return nil, err
		}
		for _, s := range ld.Segments {
			logger.Logf(logger.Allow, "loader", "%s: %s", ld.ShortName(), s)
		}
	}

	if err := m.Reset(); err != nil {
		return nil, err
	}

	if md.Set("start") {
		err = m.CPU.LoadPC(*mf.start)
	} else if ld.HasStart {
		err = m.CPU.LoadPC(ld.Start)
	}
	if err != nil {
		return nil, err
	}

	if md.Set("stack") {
		if err := m.CPU.LoadS(*mf.stack); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// the program argument is required in all modes except for DEBUG
func programArg(md *modalflag.Modes, required bool) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		if required {
			return "", fmt.Errorf("program required for %s mode", md)
		}
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	cycles := md.AddUint64("cycles", 0, "number of cycles to run for (zero means until interrupted)")
	limit := md.AddBool("limit", false, "limit speed to that of the CPU clock")
	input := md.AddString("input", "", "file to send to the console")
	wav := md.AddString("wav", "", "record DAC output to wav file")
	rate := md.AddInt("rate", wavwriter.DefaultSampleRate, "sample rate of wav file")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md, true)
	if err != nil {
		return err
	}

	m, err := mf.create(md, filename, md.Output)
	if err != nil {
		return err
	}
	m.Config.Limit = *limit

	if *input != "" {
		b, err := os.ReadFile(*input)
		if err != nil {
			return err
		}
		m.Console.Receive(b...)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	startCycle := m.CPU.Cycles
	performanceBrake := 0

	err = m.Run(func() (govern.State, error) {
		if *cycles > 0 && m.CPU.Cycles-startCycle >= *cycles {
			return govern.Ending, nil
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if *wav != "" {
		samples, err := m.DAC.Resample(m.CyclesPerSecond(), *rate, m.CPU.Cycles)
		if err != nil {
			return err
		}
		ww, err := wavwriter.New(*wav, *rate)
		if err != nil {
			return err
		}
		ww.AddSamples(samples)
		if err := ww.Close(); err != nil {
			return err
		}
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	mf := addMachineFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	profile := md.AddString("profile", "NONE", "run debugger through profiler: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	// the default script is optional
	if !md.Set("initscript") {
		if _, err := os.Stat(*initScript); err != nil {
			*initScript = ""
		}
	}

	filename, err := programArg(md, false)
	if err != nil {
		return err
	}

	m, err := mf.create(md, filename, os.Stdout)
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "AUTO":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
		}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg, err := debugger.NewDebugger(m, trm)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "debug", func() error {
		return dbg.Start(*initScript)
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", loader.FormatAuto, "program format: AUTO, BIN, S19")
	origin := md.AddAddress("origin", 0x0000, "load `address` of binary programs")
	start := md.AddAddress("start", 0x0000, "disassemble from `address` rather than from each segment")
	count := md.AddInt("count", 16, "number of instructions to disassemble when -start is used")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	notes := md.AddBool("notes", true, "include notes in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md, true)
	if err != nil {
		return err
	}

	ld := loader.NewLoader(filename, *format, *origin)
	if err := ld.Load(); err != nil {
		return err
	}

	mem := memory.NewFlatMemory()
	if err := ld.Install(mem, false); err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Notes:    *notes,
	}

	if md.Set("start") {
		entries, err := disassembly.Linear(mem, *start, *count)
		if werr := disassembly.Write(md.Output, entries, attr); werr != nil {
			return werr
		}
		return err
	}

	for _, s := range ld.Segments {
		address := s.Origin
		for {
			e, err := disassembly.Decode(mem, address)
			if err != nil {
				return err
			}
			if err := disassembly.WriteLine(md.Output, e, attr); err != nil {
				return err
			}

			// stop at the end of the segment or if the address space wraps
			next := e.Next()
			if next > s.Memtop() || next <= address {
				break // for loop
			}
			address = next
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "produce profiling reports: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	filename, err := programArg(md, true)
	if err != nil {
		return err
	}

	m, err := mf.create(md, filename, io.Discard)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *duration)
}
