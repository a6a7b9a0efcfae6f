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
	"bytes"

	"gophernes/curated"
)

// Error patterns for the iNES decoder.
const (
	NotAnINESFile     = "ines: not an ines file"
	TruncatedINESFile = "ines: unexpected end of file"
)

// iNES container details. the trainer area, when present, sits between the
// header and the PRG data and is of no use to the emulation.
const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// decode interprets the Data field as an iNES image, filling the Mapper,
// PRG, CHR, Mirroring and Battery fields.
//
// Only the original iNES header is decoded. The NES 2.0 extensions share the
// first eight bytes with the original format so a NES 2.0 image with a small
// mapper number still decodes correctly.
func (cl *Loader) decode() error {
	if len(cl.Data) < inesHeaderSize || !bytes.Equal(cl.Data[:4], inesMagic) {
		return curated.Errorf(NotAnINESFile)
	}

	numPRG := int(cl.Data[4])
	numCHR := int(cl.Data[5])
	flags6 := cl.Data[6]
	flags7 := cl.Data[7]

	cl.Mapper = int(flags6>>4) | int(flags7&0xf0)
	cl.Battery = flags6&0x02 == 0x02

	if flags6&0x08 == 0x08 {
		cl.Mirroring = FourScreen
	} else if flags6&0x01 == 0x01 {
		cl.Mirroring = Vertical
	} else {
		cl.Mirroring = Horizontal
	}

	o := inesHeaderSize
	if flags6&0x04 == 0x04 {
		o += inesTrainerSize
	}

	if len(cl.Data) < o+numPRG*PRGBankSize+numCHR*CHRBankSize {
		return curated.Errorf(TruncatedINESFile)
	}

	cl.PRG = make([][]uint8, numPRG)
	for i := range cl.PRG {
		cl.PRG[i] = make([]uint8, PRGBankSize)
		copy(cl.PRG[i], cl.Data[o:o+PRGBankSize])
		o += PRGBankSize
	}

	// no CHR banks means the cartridge supplies CHR RAM
	cl.CHR = make([][]uint8, numCHR)
	for i := range cl.CHR {
		cl.CHR[i] = make([]uint8, CHRBankSize)
		copy(cl.CHR[i], cl.Data[o:o+CHRBankSize])
		o += CHRBankSize
	}

	return nil
}
