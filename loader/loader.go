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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher6809/hardware/memory"
)

// List of recognised formats.
const (
	FormatAuto    = "AUTO"
	FormatBinary  = "BIN"
	FormatSRecord = "S19"
)

// FileExtensions is the list of file extensions that are recognised as
// S-record files.
var FileExtensions = [...]string{".S19", ".S", ".SREC", ".MOT"}

// Segment is a contiguous block of program data.
type Segment struct {
	Origin uint16
	Data   []uint8
}

// Memtop returns the last address of the segment.
func (s Segment) Memtop() uint16 {
	return uint16(int(s.Origin) + len(s.Data) - 1)
}

func (s Segment) String() string {
	return fmt.Sprintf("%04x -> %04x (%d bytes)", s.Origin, s.Memtop(), len(s.Data))
}

// Loader is used to specify the program to load.
type Loader struct {
	// filename or URL of program to load
	Filename string

	// one of the Format values. FormatAuto will be replaced with the actual
	// format when NewLoader() is called
	Format string

	// where binary data is to be placed. not used for S-record files
	Origin uint16

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded file
	Data []byte

	// the program data after the file has been decoded
	Segments []Segment

	// the start address specified by the file. HasStart is false if the file
	// didn't specify one
	Start    uint16
	HasStart bool

	// content of the S0 record if present
	Header string
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// If the format argument is FormatAuto or the empty string then the file
// extension is used to decide the format.
func NewLoader(filename string, format string, origin uint16) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatBinary,
		Origin:   origin,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		ld.Format = format
		return ld
	}

	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			ld.Format = FormatSRecord
			break
		}
	}

	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Segments) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}

	case "file":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}

	default:
		return fmt.Errorf("loader: unsupported URL scheme (%s)", scheme)
	}

	return ld.Decode(data)
}

// Decode program data that has been retrieved by some other means. The
// Filename field is not used.
func (ld *Loader) Decode(data []byte) error {
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("loader: unexpected hash value")
	}

	var err error

	switch ld.Format {
	case FormatBinary:
		if len(data) == 0 {
			return fmt.Errorf("loader: no data")
		}
		if int(ld.Origin)+len(data) > 0x10000 {
			return fmt.Errorf("loader: %d bytes at %04x does not fit in the address space", len(data), ld.Origin)
		}
		ld.Segments = []Segment{{Origin: ld.Origin, Data: data}}
	case FormatSRecord:
		var sr srecords
		sr, err = decodeSRecords(data)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		ld.Segments = sr.segments
		ld.Start = sr.start
		ld.HasStart = sr.hasStart
		ld.Header = sr.header
	default:
		return fmt.Errorf("loader: unsupported format (%s)", ld.Format)
	}

	ld.Data = data
	ld.Hash = hash

	return nil
}

// Install the loaded program into memory. If rom is true each segment is
// added to the memory as a ROM area, otherwise the data is poked into the
// existing memory map.
func (ld Loader) Install(mem *memory.Memory, rom bool) error {
	if !ld.HasLoaded() {
		return fmt.Errorf("loader: nothing loaded")
	}

	for _, s := range ld.Segments {
		if rom {
			r, err := memory.NewROM(s.Origin, s.Data)
			if err != nil {
				return fmt.Errorf("loader: %w", err)
			}
			if err := mem.AddArea(r); err != nil {
				return fmt.Errorf("loader: %w", err)
			}
			continue
		}

		for i, v := range s.Data {
			if err := mem.Poke(s.Origin+uint16(i), v); err != nil {
				return fmt.Errorf("loader: %w", err)
			}
		}
	}

	return nil
}
