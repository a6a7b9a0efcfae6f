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
	"fmt"

	"gophernes/cartridgeloader"
	"gophernes/curated"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper Mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper.ID())
}

// ID returns the mapper ID of the attached cartridge.
func (cart Cartridge) ID() string {
	return cart.mapper.ID()
}

// Snapshot creates a copy of the cartridge in its current state.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	n.mapper = cart.mapper.Snapshot()
	return &n
}

// Plumb a previously snapshotted mapper back into the cartridge.
func (cart *Cartridge) Plumb(m Mapper) {
	cart.mapper = m
}

// GetMapper returns a reference to the attached mapper. Used when probing
// for the optional mapper interfaces.
func (cart *Cartridge) GetMapper() Mapper {
	return cart.mapper
}

// Reset volatile areas of the cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Eject removes memory from cartridge space and unlike the real hardware,
// attaches a bank of empty memory in its place.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper.ID() == ejectedName
}

// Read is an implementation of the memory.Area interface.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// Write is an implementation of the memory.Area interface.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.Write(addr, data)
}

// ReadPPU reads from the CHR area of the cartridge. Address must be below
// 0x2000.
func (cart *Cartridge) ReadPPU(addr uint16) uint8 {
	return cart.mapper.ReadPPU(addr)
}

// WritePPU writes to the CHR area of the cartridge. Only mappers with CHR
// RAM react to this. Address must be below 0x2000.
func (cart *Cartridge) WritePPU(addr uint16, data uint8) {
	cart.mapper.WritePPU(addr, data)
}

// Mirroring returns the current nametable arrangement.
func (cart *Cartridge) Mirroring() cartridgeloader.Mirroring {
	return cart.mapper.Mirroring()
}

// NumBanks returns the number of PRG banks in the cartridge, counted in the
// bank size natural to the attached mapper.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// Attach the cartridge loader to the console and make the data available on
// the CPU and PPU buses. The loader must have been successfully loaded (or
// built directly from banks).
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	if !cartload.HasLoaded() {
		if err := cartload.Load(); err != nil {
			return err
		}
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.mapper = newEjected()

	var err error

	switch cartload.Mapper {
	case 0:
		cart.mapper, err = newNROM(cartload)
	case 1:
		cart.mapper, err = newMMC1(cartload)
	case 2:
		cart.mapper, err = newUxROM(cartload)
	case 4:
		cart.mapper, err = newMMC3(cartload)
	default:
		return curated.Errorf(UnsupportedMapper, cartload.Mapper)
	}

	if err != nil {
		return err
	}

	cart.mapper.Reset()

	return nil
}
