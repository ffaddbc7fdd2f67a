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

package commandline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ArgType defines the expected type of a command argument.
type ArgType int

// List of argument types.
const (
	ArgKeyword ArgType = iota
	ArgFile
	ArgValue
	ArgAddress

	// a string argument consumes all remaining tokens
	ArgString

	// any number of values
	ArgValues
)

// Arg specifies the type and properties of an individual argument.
type Arg struct {
	Typ ArgType
	Req bool

	// the list of allowed keywords. only used for ArgKeyword
	Keywords []string
}

// Command is a single command and its arguments. Optional arguments must
// follow any required arguments.
type Command struct {
	Name string
	Args []Arg
	Help string
}

func (cmd Command) String() string {
	s := strings.Builder{}
	s.WriteString(cmd.Name)
	for _, a := range cmd.Args {
		var t string
		switch a.Typ {
		case ArgKeyword:
			t = strings.Join(a.Keywords, "|")
		case ArgFile:
			t = "file"
		case ArgValue:
			t = "value"
		case ArgAddress:
			t = "address"
		case ArgString:
			t = "string"
		case ArgValues:
			t = "value..."
		}
		if a.Req {
			s.WriteString(fmt.Sprintf(" [%s]", t))
		} else {
			s.WriteString(fmt.Sprintf(" (%s)", t))
		}
	}
	return s.String()
}

func (cmd Command) minArgs() int {
	n := 0
	for _, a := range cmd.Args {
		if !a.Req {
			break
		}
		n++
	}
	return n
}

func (cmd Command) maxArgs() int {
	if len(cmd.Args) > 0 {
		switch cmd.Args[len(cmd.Args)-1].Typ {
		case ArgValues, ArgString:
			return int(^uint(0) >> 1)
		}
	}
	return len(cmd.Args)
}

// Commands is the list of commands understood by the debugger.
type Commands []Command

// NewCommands is the preferred method of initialisation for the Commands
// type. The list is sorted by name.
func NewCommands(cmds ...Command) Commands {
	c := Commands(cmds)
	sort.Slice(c, func(i, j int) bool { return c[i].Name < c[j].Name })
	return c
}

func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Lookup returns the named command. The name is not case sensitive.
func (cmds Commands) Lookup(name string) (Command, bool) {
	name = strings.ToUpper(name)
	for _, c := range cmds {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// ParseValue converts a token to a number. Decimal, hex and binary are all
// accepted.
func ParseValue(tok string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("numeric argument required (%s is not numeric)", tok)
	}
	return v, nil
}

// ParseAddress converts a token to a 16 bit address.
func ParseAddress(tok string) (uint16, error) {
	v, err := strconv.ParseUint(tok, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("address required (%s is not a valid address)", tok)
	}
	return uint16(v), nil
}

// Validate checks whether input is correct according to the command
// definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens is like Validate() but works on the tokenised input. The
// Tokens instance is reset before returning.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	name, ok := tokens.Get()
	if !ok {
		return nil
	}
	name = strings.ToUpper(name)

	cmd, ok := cmds.Lookup(name)
	if !ok {
		return fmt.Errorf("unrecognised command (%s)", name)
	}

	if tokens.Remaining() > cmd.maxArgs() {
		return fmt.Errorf("too many arguments for %s", name)
	}

	if tokens.Remaining() < cmd.minArgs() {
		a := cmd.Args[tokens.Remaining()]
		switch a.Typ {
		case ArgKeyword:
			return fmt.Errorf("keyword required for %s (%s)", name, strings.Join(a.Keywords, ", "))
		case ArgFile:
			return fmt.Errorf("filename required for %s", name)
		case ArgAddress:
			return fmt.Errorf("address required for %s", name)
		case ArgValue, ArgValues:
			return fmt.Errorf("numeric argument required for %s", name)
		}
		return fmt.Errorf("too few arguments for %s", name)
	}

	for i := 0; !tokens.IsEnd(); i++ {
		tok, _ := tokens.Get()

		a := cmd.Args[min(i, len(cmd.Args)-1)]
		switch a.Typ {
		case ArgKeyword:
			match := false
			for _, k := range a.Keywords {
				if strings.ToUpper(tok) == k {
					match = true
					break
				}
			}
			if !match {
				return fmt.Errorf("unrecognised argument (%s) for %s", tok, name)
			}
		case ArgValue, ArgValues:
			if _, err := ParseValue(tok); err != nil {
				return fmt.Errorf("%w for %s", err, name)
			}
		case ArgAddress:
			if _, err := ParseAddress(tok); err != nil {
				return fmt.Errorf("%w for %s", err, name)
			}
		}
	}

	return nil
}

// Complete the last word of the input. Command names and keywords are
// completed. If there is more than one possible completion the first in
// alphabetical order is used.
func (cmds Commands) Complete(input string) string {
	tokens := splitWords(input)
	if len(tokens) == 0 || strings.HasSuffix(input, " ") {
		return input
	}

	last := strings.ToUpper(tokens[len(tokens)-1])
	prefix := input[:strings.LastIndex(input, tokens[len(tokens)-1])]

	var candidates []string

	if len(tokens) == 1 {
		for _, c := range cmds {
			candidates = append(candidates, c.Name)
		}
	} else {
		cmd, ok := cmds.Lookup(tokens[0])
		if !ok {
			return input
		}
		n := len(tokens) - 2
		if n >= len(cmd.Args) || cmd.Args[n].Typ != ArgKeyword {
			return input
		}
		candidates = append(candidates, cmd.Args[n].Keywords...)
		sort.Strings(candidates)
	}

	for _, c := range candidates {
		if strings.HasPrefix(c, last) {
			return fmt.Sprintf("%s%s ", prefix, c)
		}
	}

	return input
}
