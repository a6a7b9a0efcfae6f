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

package cartridge

// prgRAMSize is the size of PRG RAM at 0x6000 for the mappers that carry it.
const prgRAMSize = 8192

// chrRAMSize is the size of CHR RAM supplied when the loader has no CHR
// banks.
const chrRAMSize = 8192

// flatten joins the loader's fixed-size banks into one contiguous slice so
// that a mapper can re-divide the data into the bank size natural to it.
func flatten(banks [][]uint8) []uint8 {
	var data []uint8
	for _, b := range banks {
		data = append(data, b...)
	}
	return data
}

// divide splits contiguous data into banks of the given size. The data
// length is assumed to be a multiple of the bank size, which is always true
// of data that came from flatten().
func divide(data []uint8, size int) [][]uint8 {
	banks := make([][]uint8, len(data)/size)
	for i := range banks {
		banks[i] = data[i*size : (i+1)*size]
	}
	return banks
}

// copyBanks makes a deep copy of a bank list. Used by the Snapshot()
// implementations for the banks that can change at runtime.
func copyBanks(banks [][]uint8) [][]uint8 {
	n := make([][]uint8, len(banks))
	for i := range banks {
		n[i] = make([]uint8, len(banks[i]))
		copy(n[i], banks[i])
	}
	return n
}
