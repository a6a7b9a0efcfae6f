// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"gophernes/curated"
)

// Mirroring describes the nametable arrangement requested by the cartridge.
type Mirroring int

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	case OneScreenLower:
		return "one-screen (lower)"
	case OneScreenUpper:
		return "one-screen (upper)"
	}
	return "unknown"
}

// List of valid Mirroring values. Mappers with mapper-controlled mirroring
// start from the value in the file header and change it at runtime. The
// one-screen values can only be selected by a mapper, never by the file
// header.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
	OneScreenLower
	OneScreenUpper
)

// Sizes of the fixed allocation units in the iNES format. PRG data is
// supplied in 16KB banks and CHR data in 8KB banks.
const (
	PRGBankSize = 16384
	CHRBankSize = 8192
)

// Loader is used to specify the cartridge to use when Attach()ing to the
// console. The zero value is not useful. Use NewLoader() or NewLoaderFromData()
// and then Load() to fill the bank fields.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// hash of the file data. empty until a load operation after which it is
	// the SHA1 hash of the loaded data
	Hash string

	// copy of the loaded file. subsequent calls to Load() are no-ops once
	// this field is non-empty
	Data []byte

	// the fields below are filled in by Load() (or supplied directly when
	// the Loader is built from banks)

	// mapper number from the file header
	Mapper int

	// PRG ROM in 16KB banks. at least one bank is always present after a
	// successful load
	PRG [][]uint8

	// CHR ROM in 8KB banks. an empty slice means the cartridge supplies
	// 8KB of CHR RAM instead
	CHR [][]uint8

	Mirroring Mirroring

	// cartridge carries battery-backed PRG RAM
	Battery bool
}

// NewLoader is the preferred method of initialisation for the Loader type
// when the data is to come from a file (or URL).
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// NewLoaderFromData is the preferred method of initialisation for the Loader
// type when the banks are already in memory. No Load() call is required.
func NewLoaderFromData(mapper int, prg [][]uint8, chr [][]uint8, mirroring Mirroring) Loader {
	return Loader{
		Filename:  "",
		Mapper:    mapper,
		PRG:       prg,
		CHR:       chr,
		Mirroring: mirroring,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if the Loader contains usable cartridge data.
func (cl Loader) HasLoaded() bool {
	return len(cl.PRG) > 0
}

// Load the cartridge data and decode the iNES container. Loader filenames
// with a valid schema will use that method to load the data. Currently
// supported schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		scheme := "file"

		url, err := url.Parse(cl.Filename)
		if err == nil {
			scheme = url.Scheme
		}

		switch scheme {
		case "http":
			fallthrough
		case "https":
			resp, err := http.Get(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
			defer resp.Body.Close()

			cl.Data, err = ioutil.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}

		case "file":
			fallthrough
		case "":
			f, err := os.Open(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
			defer f.Close()

			cl.Data, err = ioutil.ReadAll(f)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}

		default:
			return curated.Errorf("cartridgeloader: unsupported scheme (%s)", scheme)
		}
	}

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))

	return cl.decode()
}
