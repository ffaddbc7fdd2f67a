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
	"strings"
)

// Tokens is a line of input divided into words. The words are visited in
// order with Get() and Peek().
type Tokens struct {
	input string
	words []string
	pos   int
}

// TokeniseInput divides the input into Tokens. Words beginning with a dollar
// sign are rewritten in the 0x form so that they can be parsed by
// strconv.ParseUint() with a base of zero.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)
	tk := &Tokens{
		input: input,
		words: splitWords(input),
	}
	for i, w := range tk.words {
		if len(w) > 1 && w[0] == '$' {
			tk.words[i] = "0x" + w[1:]
		}
	}
	return tk
}

// the words in the input without any normalisation
func splitWords(input string) []string {
	return strings.Fields(input)
}

// String returns the input as it was given to TokeniseInput(), less any
// leading or trailing space.
func (tk *Tokens) String() string {
	return tk.input
}

// Reset returns to the first word.
func (tk *Tokens) Reset() {
	tk.pos = 0
}

// IsEnd is true once every word has been visited.
func (tk *Tokens) IsEnd() bool {
	return tk.Remaining() == 0
}

// Remaining is the number of words that have not been visited.
func (tk *Tokens) Remaining() int {
	return max(0, len(tk.words)-tk.pos)
}

// Remainder joins the unvisited words with a single space.
func (tk *Tokens) Remainder() string {
	if tk.IsEnd() {
		return ""
	}
	return strings.Join(tk.words[tk.pos:], " ")
}

// Get the next word and move on. The boolean is false if there are no more
// words.
func (tk *Tokens) Get() (string, bool) {
	w, ok := tk.Peek()
	if ok {
		tk.pos++
	}
	return w, ok
}

// Unget moves back one word. It has no effect at the first word.
func (tk *Tokens) Unget() {
	tk.pos = max(0, tk.pos-1)
}

// Peek at the next word without moving on.
func (tk *Tokens) Peek() (string, bool) {
	if tk.IsEnd() {
		return "", false
	}
	return tk.words[tk.pos], true
}
