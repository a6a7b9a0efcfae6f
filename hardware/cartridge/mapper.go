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

import (
	"gophernes/cartridgeloader"
)

// Error patterns for the cartridge package. Both are fatal at Attach() time.
const (
	UnsupportedMapper = "cartridge: unsupported mapper (%d)"
	InvalidBankIndex  = "cartridge: invalid bank count (%s: %d)"
)

// Mapper implementations hold the actual data from the loaded ROM and keep
// track of which banks are mapped to individual addresses.
//
// Read() and Write() service the CPU bus and receive the full, unmasked
// address in the range 0x4020 to 0xffff. ReadPPU() and WritePPU() service
// the PPU bus and receive an address below 0x2000.
type Mapper interface {
	ID() string

	// Snapshot returns a deep copy of the mapper in its current state
	Snapshot() Mapper

	// reset volatile areas of the cartridge. for many mappers this will do
	// nothing but those with registers or RAM should perform an explicit
	// reset
	Reset()

	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error

	ReadPPU(addr uint16) uint8
	WritePPU(addr uint16, data uint8)

	// the current nametable arrangement. for most mappers this never
	// changes from the value in the file header
	Mirroring() cartridgeloader.Mirroring

	NumBanks() int
}

// ScanlineSensitive is implemented by mappers that watch the progress of the
// PPU raster. The console calls ScanlineTick() once per scanline, at the
// point where the PPU address lines would clock the mapper's counter (dot
// 260 of every visible and pre-render scanline when rendering is enabled).
type ScanlineSensitive interface {
	ScanlineTick()
}

// IRQSource is implemented by mappers that can pull the CPU's IRQ line. The
// console polls IRQState() every CPU cycle and combines it with the other
// IRQ sources in the console.
type IRQSource interface {
	IRQState() bool
}

// BatteryBacked is implemented by mappers with persistent PRG RAM. The
// returned slice is the live RAM, not a copy.
type BatteryBacked interface {
	BatteryRAM() []uint8
}
