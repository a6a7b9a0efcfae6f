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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x4017)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// Within the RAM and PPU areas the hardware decodes only some of the address
// lines, leading to the hardware mirrors. MaskRAM and MaskPPU keep only the
// relevant bits of an address in those areas. Should only be applied to
// addresses that are definitely either a RAM or PPU address.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Memtop is the top most address of memory in the NES. It is the same as the
// cartridge memtop.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
//
// Addresses in the range 0x4018 to 0x401f address the disabled test-mode
// registers in the 2A03. Access to those addresses returns the Undefined
// area.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	// cartridge addresses
	if address >= OriginCart {
		return address, Cartridge
	}

	// IO addresses. no mirroring
	if address >= OriginIO {
		if address > MemtopIO {
			return address, Undefined
		}
		return address, IO
	}

	// PPU registers are mirrored every eight bytes
	if address >= OriginPPU {
		return OriginPPU | (address & MaskPPU), PPU
	}

	// everything else is in RAM space
	return address & MaskRAM, RAM
}
