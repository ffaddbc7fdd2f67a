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
	"strings"
)

// ansi colours
const (
	black   = 0
	red     = 1
	green   = 2
	yellow  = 3
	blue    = 4
	magenta = 5
	cyan    = 6
	white   = 7
)

// ansi attribute
const (
	bold      = 1
	underline = 4
	inverse   = 7
	strike    = 8
)

var pens map[string]string
var dimPens map[string]string
var penStyles map[string]string
var ansiOff string

func init() {
	pens = make(map[string]string)
	dimPens = make(map[string]string)
	penStyles = make(map[string]string)

	ansiOff, _ = ansiBuild("", "", false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		pens[c], _ = ansiBuild(c, "", true)
		dimPens[c], _ = ansiBuild(c, "", false)
	}

	penStyles["bold"], _ = ansiBuild("", "bold", false)
	penStyles["underline"], _ = ansiBuild("", "underline", false)
}

func colour(c string) (int, error) {
	switch strings.ToUpper(c)[0] {
	case 'K':
		return black, nil
	case 'R':
		return red, nil
	case 'G':
		return green, nil
	case 'Y':
		return yellow, nil
	case 'B':
		return blue, nil
	case 'M':
		return magenta, nil
	case 'C':
		return cyan, nil
	case 'W':
		return white, nil
	}
	return 0, fmt.Errorf("unknown ANSI colour (%s)", c)
}

// ansiBuild creates an ANSI escape sequence. An empty pen and an empty
// attribute resets all attributes.
func ansiBuild(pen, attribute string, brightPen bool) (string, error) {
	var codes []string

	if pen != "" {
		c, err := colour(pen)
		if err != nil {
			return "", err
		}
		penType := 3
		if brightPen {
			penType = 9
		}
		codes = append(codes, fmt.Sprintf("%d%d", penType, c))
	}

	if attribute != "" {
		switch strings.ToUpper(attribute)[0] {
		case 'B':
			codes = append(codes, fmt.Sprintf("%d", bold))
		case 'U':
			codes = append(codes, fmt.Sprintf("%d", underline))
		case 'I':
			codes = append(codes, fmt.Sprintf("%d", inverse))
		case 'S':
			codes = append(codes, fmt.Sprintf("%d", strike))
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
