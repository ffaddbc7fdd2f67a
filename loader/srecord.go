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

package loader

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

type srecords struct {
	segments []Segment
	start    uint16
	hasStart bool
	header   string
}

// add data to the list of segments. data that continues on from the end of
// the most recent segment extends that segment
func (sr *srecords) add(address uint16, data []uint8) error {
	if int(address)+len(data) > 0x10000 {
		return fmt.Errorf("data at %04x runs past the end of the address space", address)
	}

	if len(sr.segments) > 0 {
		last := &sr.segments[len(sr.segments)-1]
		if int(last.Origin)+len(last.Data) == int(address) {
			last.Data = append(last.Data, data...)
			return nil
		}
	}

	seg := Segment{Origin: address, Data: make([]uint8, len(data))}
	copy(seg.Data, data)
	sr.segments = append(sr.segments, seg)

	return nil
}

// decodeSRecords supports the 16-bit address records: S0, S1, S5, S9. S2 and
// S3 are accepted if the address fits in 16 bits. S7 and S8 are treated as S9.
func decodeSRecords(data []byte) (srecords, error) {
	var sr srecords
	var count int

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if len(s) == 0 {
			continue
		}

		if len(s) < 4 || (s[0] != 'S' && s[0] != 's') {
			return sr, fmt.Errorf("line %d: not an S-record", line)
		}

		rec, err := hex.DecodeString(s[2:])
		if err != nil {
			return sr, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) < 1 || int(rec[0]) != len(rec)-1 {
			return sr, fmt.Errorf("line %d: incorrect byte count", line)
		}

		var sum uint8
		for _, b := range rec[:len(rec)-1] {
			sum += b
		}
		if ^sum != rec[len(rec)-1] {
			return sr, fmt.Errorf("line %d: checksum error", line)
		}

		// address width depends on the record type
		var width int
		switch s[1] {
		case '0', '1', '5', '9':
			width = 2
		case '2', '6', '8':
			width = 3
		case '3', '7':
			width = 4
		default:
			return sr, fmt.Errorf("line %d: unsupported record type (S%c)", line, s[1])
		}

		if len(rec) < width+2 {
			return sr, fmt.Errorf("line %d: record too short", line)
		}

		var address uint32
		for _, b := range rec[1 : 1+width] {
			address = (address << 8) | uint32(b)
		}
		payload := rec[1+width : len(rec)-1]

		switch s[1] {
		case '0':
			sr.header = string(bytes.TrimRight(payload, "\x00"))
		case '1', '2', '3':
			if address > 0xffff {
				return sr, fmt.Errorf("line %d: address %x out of range", line, address)
			}
			if err := sr.add(uint16(address), payload); err != nil {
				return sr, fmt.Errorf("line %d: %w", line, err)
			}
			count++
		case '5', '6':
			if int(address) != count {
				return sr, fmt.Errorf("line %d: record count is %d but %d records have been read", line, address, count)
			}
		case '7', '8', '9':
			if address > 0xffff {
				return sr, fmt.Errorf("line %d: start address %x out of range", line, address)
			}
			sr.start = uint16(address)
			sr.hasStart = true
		}
	}

	if err := scanner.Err(); err != nil {
		return sr, err
	}

	if len(sr.segments) == 0 {
		return sr, fmt.Errorf("no data records")
	}

	return sr, nil
}
