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

package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Host is the interface to the emulation required by a Lua script.
type Host interface {
	Command(string) error
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
	Register(name string) (uint16, error)
	Print(string)
}

// Lua runs scripts written in the Lua language.
type Lua struct {
	host  Host
	state *lua.LState
}

// NewLua is the preferred method of initialisation for the Lua type.
func NewLua(host Host) *Lua {
	l := &Lua{
		host:  host,
		state: lua.NewState(),
	}

	l.state.SetGlobal("cmd", l.state.NewFunction(l.cmd))
	l.state.SetGlobal("peek", l.state.NewFunction(l.peek))
	l.state.SetGlobal("poke", l.state.NewFunction(l.poke))
	l.state.SetGlobal("reg", l.state.NewFunction(l.reg))
	l.state.SetGlobal("print", l.state.NewFunction(l.print))

	return l
}

// Close the Lua state. The Lua instance should not be used after this.
func (l *Lua) Close() {
	l.state.Close()
}

// Run the named Lua file.
func (l *Lua) Run(filename string) error {
	if err := l.state.DoFile(filename); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}

// RunString runs Lua source code.
func (l *Lua) RunString(source string) error {
	if err := l.state.DoString(source); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}

func (l *Lua) address(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func (l *Lua) cmd(L *lua.LState) int {
	if err := l.host.Command(L.CheckString(1)); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

func (l *Lua) peek(L *lua.LState) int {
	v, err := l.host.Peek(l.address(L, 1))
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (l *Lua) poke(L *lua.LState) int {
	addr := l.address(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	if err := l.host.Poke(addr, uint8(v)); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

func (l *Lua) reg(L *lua.LState) int {
	v, err := l.host.Register(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (l *Lua) print(L *lua.LState) int {
	var s []string
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	l.host.Print(strings.Join(s, " "))
	return 0
}
