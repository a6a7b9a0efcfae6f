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

package ppu

// kernel from which the colors in the PaletteNTSC table are generated
//
// http://www.thealmightyguru.com/Games/Hacking/Wiki/index.php/NES_Palette
var paletteSrc = [64]uint32{
	0x7c7c7c, 0x0000fc, 0x0000bc, 0x4428bc, 0x940084, 0xa80020, 0xa81000, 0x881400,
	0x503000, 0x007800, 0x006800, 0x005800, 0x004058, 0x000000, 0x000000, 0x000000,
	0xbcbcbc, 0x0078f8, 0x0058f8, 0x6844fc, 0xd800cc, 0xe40058, 0xf83800, 0xe45c10,
	0xac7c00, 0x00b800, 0x00a800, 0x00a844, 0x008888, 0x000000, 0x000000, 0x000000,
	0xf8f8f8, 0x3cbcfc, 0x6888fc, 0x9878f8, 0xf878f8, 0xf85898, 0xf87858, 0xfca044,
	0xf8b800, 0xb8f818, 0x58d854, 0x58f898, 0x00e8d8, 0x787878, 0x000000, 0x000000,
	0xfcfcfc, 0xa4e4fc, 0xb8b8f8, 0xd8b8f8, 0xf8b8f8, 0xf8a4c0, 0xf0d0b0, 0xfce0a8,
	0xf8d878, 0xd8f878, 0xb8f8b8, 0xb8f8d8, 0x00fcfc, 0xf8d8f8, 0x000000, 0x000000,
}

// PaletteNTSC is the mapping of the 2C02's 64 color values to RGB.
var PaletteNTSC [64][3]uint8

func init() {
	for i, c := range paletteSrc {
		PaletteNTSC[i] = [3]uint8{uint8(c >> 16), uint8(c >> 8), uint8(c)}
	}
}

// paletteIndex folds a palette RAM address into the 32 byte palette RAM.
// The background color entries of the sprite half of the RAM are mirrors of
// the background half.
func paletteIndex(addr uint16) uint16 {
	addr &= 0x1f
	if addr >= 0x10 && addr&0x03 == 0x00 {
		addr -= 0x10
	}
	return addr
}
