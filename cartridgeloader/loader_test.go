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

package cartridgeloader_test

import (
	"testing"

	"gophernes/cartridgeloader"
	"gophernes/curated"
	"gophernes/test"
)

// inesImage builds an iNES file in memory.
func inesImage(numPRG int, numCHR int, flags6 uint8, flags7 uint8) []byte {
	data := []byte{'N', 'E', 'S', 0x1a, uint8(numPRG), uint8(numCHR), flags6, flags7}
	data = append(data, make([]byte, 8)...)
	for i := 0; i < numPRG; i++ {
		bank := make([]byte, cartridgeloader.PRGBankSize)
		for j := range bank {
			bank[j] = uint8(i)
		}
		data = append(data, bank...)
	}
	for i := 0; i < numCHR; i++ {
		bank := make([]byte, cartridgeloader.CHRBankSize)
		for j := range bank {
			bank[j] = uint8(0x80 | i)
		}
		data = append(data, bank...)
	}
	return data
}

func TestDecode(t *testing.T) {
	cl := cartridgeloader.Loader{Data: inesImage(2, 1, 0x01, 0x00)}
	err := cl.Load()
	test.ExpectedSuccess(t, err)

	test.Equate(t, cl.Mapper, 0)
	test.Equate(t, len(cl.PRG), 2)
	test.Equate(t, len(cl.CHR), 1)
	test.Equate(t, cl.Mirroring == cartridgeloader.Vertical, true)
	test.Equate(t, cl.Battery, false)
	test.ExpectedSuccess(t, cl.HasLoaded())

	// bank order is preserved
	test.Equate(t, cl.PRG[0][0], 0x00)
	test.Equate(t, cl.PRG[1][0], 0x01)
	test.Equate(t, cl.CHR[0][0], 0x80)
}

func TestDecodeMapperAndBattery(t *testing.T) {
	// mapper 66 = 0x42. low nibble in flags6 bits 4-7, high nibble in
	// flags7 bits 4-7. battery flag in flags6 bit 1
	cl := cartridgeloader.Loader{Data: inesImage(1, 0, 0x22, 0x40)}
	err := cl.Load()
	test.ExpectedSuccess(t, err)

	test.Equate(t, cl.Mapper, 66)
	test.Equate(t, cl.Battery, true)
	test.Equate(t, cl.Mirroring == cartridgeloader.Horizontal, true)

	// no CHR banks means CHR RAM
	test.Equate(t, len(cl.CHR), 0)
}

func TestDecodeErrors(t *testing.T) {
	cl := cartridgeloader.Loader{Data: []byte{0x00, 0x01, 0x02}}
	err := cl.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.NotAnINESFile))

	// header promises more banks than the file contains
	img := inesImage(1, 0, 0x00, 0x00)
	img[4] = 4
	cl = cartridgeloader.Loader{Data: img}
	err = cl.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.TruncatedINESFile))
}
