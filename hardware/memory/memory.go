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

package memory

import (
	"fmt"

	"gophernes/curated"
	"gophernes/hardware/memory/cpubus"
	"gophernes/hardware/memory/memorymap"
)

// Area is the interface implemented by the memory areas attached to the Bus.
// Addresses passed to an Area have already been normalised by
// memorymap.MapAddress().
type Area interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Bus is the CPU-side memory of the NES console. It implements the
// cpubus.Memory interface and routes every access to the correct memory
// area. RAM is owned by the Bus itself. The other areas are attached by the
// console during its initialisation.
type Bus struct {
	RAM  *RAM
	PPU  Area
	IO   Area
	Cart Area

	// the most recent access to the bus. used by the debugging loop
	LastAccessAddress uint16
	LastAccessWrite   bool
	LastAccessValue   uint8
}

// NewBus is the preferred method of initialisation for the Bus.
func NewBus() *Bus {
	mem := &Bus{
		RAM: NewRAM(),
	}
	return mem
}

// Snapshot creates a copy of the Bus in its current state. Only RAM is
// copied. The attached areas must be rewired with Plumb() after they have
// themselves been restored.
func (mem *Bus) Snapshot() *Bus {
	n := *mem
	n.RAM = mem.RAM.Snapshot()
	return &n
}

// Plumb attaches the non-RAM memory areas to the Bus.
func (mem *Bus) Plumb(ppu Area, io Area, cart Area) {
	mem.PPU = ppu
	mem.IO = io
	mem.Cart = cart
}

// Reset contents of RAM. The other areas are reset by their owners.
func (mem *Bus) Reset() {
	mem.RAM.Reset()
}

// String returns a summary of the most recent access to the bus. Register
// addresses are named with their canonical symbols.
func (mem *Bus) String() string {
	direction := "read"
	symbols := cpubus.ReadSymbols
	if mem.LastAccessWrite {
		direction = "write"
		symbols = cpubus.WriteSymbols
	}

	if sym, ok := symbols[mem.LastAccessAddress]; ok {
		return fmt.Sprintf("%s %s (0x%04x) = 0x%02x",
			direction, sym, mem.LastAccessAddress, mem.LastAccessValue)
	}

	return fmt.Sprintf("%s 0x%04x = 0x%02x",
		direction, mem.LastAccessAddress, mem.LastAccessValue)
}

func (mem *Bus) area(area memorymap.Area) Area {
	switch area {
	case memorymap.RAM:
		return mem.RAM
	case memorymap.PPU:
		return mem.PPU
	case memorymap.IO:
		return mem.IO
	case memorymap.Cartridge:
		return mem.Cart
	}
	return nil
}

// Read is an implementation of cpubus.Memory. The address is normalised
// before the correct memory area is consulted.
func (mem *Bus) Read(address uint16) (uint8, error) {
	ma, ar := memorymap.MapAddress(address)

	area := mem.area(ar)
	if area == nil {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}

	data, err := area.Read(ma)

	mem.LastAccessAddress = ma
	mem.LastAccessWrite = false
	mem.LastAccessValue = data

	return data, err
}

// Write is an implementation of cpubus.Memory. The address is normalised
// before the correct memory area is consulted.
func (mem *Bus) Write(address uint16, data uint8) error {
	ma, ar := memorymap.MapAddress(address)

	area := mem.area(ar)
	if area == nil {
		return curated.Errorf(cpubus.AddressError, address)
	}

	mem.LastAccessAddress = ma
	mem.LastAccessWrite = true
	mem.LastAccessValue = data

	return area.Write(ma, data)
}

// Peek returns the contents of an address without touching the hardware.
// Reads from the PPU and IO areas have side effects so Peek only services
// the RAM and cartridge areas. Any other address returns an AddressError.
func (mem *Bus) Peek(address uint16) (uint8, error) {
	ma, ar := memorymap.MapAddress(address)

	switch ar {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.Cartridge:
		if mem.Cart != nil {
			return mem.Cart.Read(ma)
		}
	}

	return 0, curated.Errorf(cpubus.AddressError, address)
}
