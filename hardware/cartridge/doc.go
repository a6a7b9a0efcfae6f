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

// Package cartridge fully implements loading of cartridge data and the
// different bank-switching schemes found in NES cartridges. The Cartridge
// type sits on both buses of the console. The CPU sees it through the
// Read()/Write() functions for addresses from 0x4020 to 0xffff, while the
// PPU sees the CHR data through ReadPPU()/WritePPU() for addresses below
// 0x2000.
//
// Which addresses do what is decided entirely by the mapper circuit inside
// the cartridge. The mappers supported by this package are NROM (0), MMC1
// (1), UxROM (2) and MMC3 (4). Mappers with extra abilities declare them
// through the optional interfaces in mapper.go. In particular, the MMC3
// counts scanlines through the ScanlineSensitive interface and raises
// interrupts through the IRQSource interface.
package cartridge
