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
	"gophernes/curated"
	"gophernes/hardware/memory/cpubus"
)

// uxrom implements the Mapper interface. Mapper 2.
//
// A switchable 16KB PRG bank at 0x8000 with the last bank hardwired at
// 0xc000. Any write to the ROM window selects the bank at 0x8000. There is
// no PRG RAM.
type uxrom struct {
	prg [][]uint8
	chr []uint8

	chrRAM bool

	mirroring cartridgeloader.Mirroring

	// rewindable state
	bank uint8
}

func newUxROM(cartload cartridgeloader.Loader) (Mapper, error) {
	// the UOROM board carries up to sixteen banks
	if len(cartload.PRG) < 1 || len(cartload.PRG) > 16 {
		return nil, curated.Errorf(InvalidBankIndex, "UxROM", len(cartload.PRG))
	}
	if len(cartload.CHR) > 1 {
		return nil, curated.Errorf(InvalidBankIndex, "UxROM", len(cartload.CHR))
	}

	cart := &uxrom{
		prg:       cartload.PRG,
		mirroring: cartload.Mirroring,
	}

	if len(cartload.CHR) == 0 {
		cart.chr = make([]uint8, chrRAMSize)
		cart.chrRAM = true
	} else {
		cart.chr = cartload.CHR[0]
	}

	return cart, nil
}

// ID implements the Mapper interface.
func (cart *uxrom) ID() string {
	return "UxROM"
}

// Snapshot implements the Mapper interface.
func (cart *uxrom) Snapshot() Mapper {
	n := *cart
	if cart.chrRAM {
		n.chr = make([]uint8, len(cart.chr))
		copy(n.chr, cart.chr)
	}
	return &n
}

// Reset implements the Mapper interface.
func (cart *uxrom) Reset() {
	cart.bank = 0
}

// Read implements the Mapper interface.
func (cart *uxrom) Read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0xc000:
		// hardwired to the last bank
		return cart.prg[len(cart.prg)-1][addr&0x3fff], nil
	case addr >= 0x8000:
		return cart.prg[int(cart.bank)%len(cart.prg)][addr&0x3fff], nil
	}
	return 0, curated.Errorf(cpubus.AddressError, addr)
}

// Write implements the Mapper interface.
func (cart *uxrom) Write(addr uint16, data uint8) error {
	if addr >= 0x8000 {
		cart.bank = data & 0x0f
		return nil
	}
	return curated.Errorf(cpubus.AddressError, addr)
}

// ReadPPU implements the Mapper interface.
func (cart *uxrom) ReadPPU(addr uint16) uint8 {
	return cart.chr[addr]
}

// WritePPU implements the Mapper interface.
func (cart *uxrom) WritePPU(addr uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[addr] = data
	}
}

// Mirroring implements the Mapper interface.
func (cart *uxrom) Mirroring() cartridgeloader.Mirroring {
	return cart.mirroring
}

// NumBanks implements the Mapper interface.
func (cart *uxrom) NumBanks() int {
	return len(cart.prg)
}
