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

package colorterm

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher6809/debugger/terminal"
	"github.com/jetsetilly/gopher6809/debugger/terminal/colorterm/easyterm"
)

// lineEditor reads and edits a single line of input from a terminal in raw
// mode. History is kept between calls to read().
type lineEditor struct {
	reader io.RuneReader
	print  func(string, ...any)

	prompt    string
	promptLen int

	history       [][]byte
	tabCompletion terminal.TabCompletion
}

func newLineEditor(reader io.RuneReader, print func(string, ...any)) *lineEditor {
	return &lineEditor{
		reader: reader,
		print:  print,
	}
}

func cursorMove(n int) string {
	switch {
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// read a line of input into the input buffer. the returned count includes a
// notional terminating newline which is also written into the buffer if there
// is room.
func (ed *lineEditor) read(input []byte) (int, error) {
	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ed.history)

	// the latest input is kept when scrolling through history so that it can
	// be returned to
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ed.print("\r%s", cursorMove(ed.promptLen))

	done := func() (int, error) {
		if n < len(input) {
			input[n] = '\n'
		}
		ed.print("\r\n")
		return n + 1, nil
	}

	for {
		ed.print(easyterm.AnsiCursorStore)
		ed.print("%s%s", easyterm.AnsiClearLine, ed.prompt)
		ed.print(string(input[:n]))
		ed.print(easyterm.AnsiCursorRestore)

		r, _, err := ed.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyTab:
			if ed.tabCompletion != nil {
				s := ed.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor
				if n+d > len(input) {
					break
				}

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				ed.print(cursorMove(d))
				cursor += d
				n += d
			}

		case easyterm.KeyCtrlC:
			ed.print("\r\n")
			return n, terminal.UserInterrupt

		case easyterm.KeyCarriageReturn, '\n':
			if n > 0 {
				last := len(ed.history) - 1
				if last < 0 || string(ed.history[last]) != string(input[:n]) {
					nh := make([]byte, n)
					copy(nh, input[:n])
					ed.history = append(ed.history, nh)
				}
			}
			return done()

		case easyterm.KeyEsc:
			r, _, err := ed.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				break
			}

			r, _, err = ed.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					// keep current input if we're moving off the end of the
					// history list
					if history == len(ed.history) {
						copy(buffInput, input[:n])
						buffN = n
					}
					history--
					n = copy(input, ed.history[history])
					ed.print(cursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorDown:
				if history < len(ed.history)-1 {
					history++
					n = copy(input, ed.history[history])
					ed.print(cursorMove(n - cursor))
					cursor = n
				} else if history == len(ed.history)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					ed.print(cursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					ed.print(easyterm.AnsiCursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ed.print(easyterm.AnsiCursorBackwardOne)
					cursor--
				}

			case easyterm.EscDelete:
				// delete key sequence is terminated with a tilde
				_, _, _ = ed.reader.ReadRune()
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ed.history)
				}
			}

		case easyterm.KeyBackspace, '\b':
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ed.print(easyterm.AnsiCursorBackwardOne)
				cursor--
				n--
				history = len(ed.history)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m > len(input) {
					break
				}
				ed.print("%c", r)
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ed.history)
			}
		}
	}
}
