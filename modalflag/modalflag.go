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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// arguments have been parsed. if sub-modes were added then the selected
	// mode is available through the Mode() function
	ParseContinue ParseResult = iota

	// help was requested and has already been written to the Output field of
	// the Modes type
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	// this value
	ParseError
)

func (p ParseResult) String() string {
	switch p {
	case ParseContinue:
		return "continue"
	case ParseHelp:
		return "help"
	case ParseError:
		return "error"
	}
	return "unknown parse result"
}

// Modes parses command line arguments one mode at a time.
type Modes struct {
	// help messages are written to Output. if Output is nil no help will be
	// shown
	Output io.Writer

	flags *flag.FlagSet

	// args is the complete list of arguments given to NewArgs(). consumed is
	// the number of arguments that have been dealt with by earlier calls to
	// Parse()
	args     []string
	consumed int

	// sub-modes that can be selected by the next call to Parse(). the first
	// entry is the default
	subModes []string

	// every mode that has been selected since the call to NewArgs()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the selected modes, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs sets the arguments to be parsed. Any previously selected modes are
// forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.consumed = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode prepares for the next level of parsing. Flags and sub-modes added
// before the call are discarded.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
}

// AdditionalHelp is shown after the description of the flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes adds to the list of sub-modes that can be selected by the next
// call to Parse(). The first sub-mode to be added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list, making it the
// default.
func (md *Modes) AddDefaultSubMode(subMode string) {
	md.subModes = slices.Insert(md.subModes, 0, strings.ToUpper(subMode))
}

// Parse the arguments for the current level. The usual pattern is:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.consumed:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.write(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag might belong to the default sub-mode. the
		// arguments are left for the next call to Parse() to deal with
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// everything up to the first non-flag argument has been dealt with
	md.consumed = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		if arg := strings.ToUpper(md.flags.Arg(0)); slices.Contains(md.subModes, arg) {
			mode = arg
			md.consumed++
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after the most recent call to
// Parse(). The flags and any selected sub-mode are not included.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.consumed:]
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for the next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddAddress flag for the next call to Parse(). The value must fit in sixteen
// bits.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	v := addressValue(value)
	md.flags.Var(&v, name, usage)
	return (*uint16)(&v)
}

type addressValue uint16

func (a *addressValue) String() string {
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("not a 16bit address")
	}
	*a = addressValue(v)
	return nil
}

// Set reports whether the named flag was given on the command line during the
// most recent call to Parse().
func (md *Modes) Set(name string) bool {
	var found bool
	md.flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
