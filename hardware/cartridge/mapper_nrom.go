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

// nrom implements the Mapper interface. Mapper 0.
//
// The simplest cartridge circuit. No bank switching at all. A single 16KB
// PRG bank is mirrored into both halves of the 0x8000 to 0xffff window.
type nrom struct {
	prg [][]uint8
	chr []uint8

	// cartridge supplies CHR RAM rather than CHR ROM
	chrRAM bool

	ram []uint8

	mirroring cartridgeloader.Mirroring
	battery   bool
}

func newNROM(cartload cartridgeloader.Loader) (Mapper, error) {
	if len(cartload.PRG) < 1 || len(cartload.PRG) > 2 {
		return nil, curated.Errorf(InvalidBankIndex, "NROM", len(cartload.PRG))
	}
	if len(cartload.CHR) > 1 {
		return nil, curated.Errorf(InvalidBankIndex, "NROM", len(cartload.CHR))
	}

	cart := &nrom{
		prg:       cartload.PRG,
		ram:       make([]uint8, prgRAMSize),
		mirroring: cartload.Mirroring,
		battery:   cartload.Battery,
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
func (cart *nrom) ID() string {
	return "NROM"
}

// Snapshot implements the Mapper interface.
func (cart *nrom) Snapshot() Mapper {
	n := *cart
	n.ram = make([]uint8, len(cart.ram))
	copy(n.ram, cart.ram)
	if cart.chrRAM {
		n.chr = make([]uint8, len(cart.chr))
		copy(n.chr, cart.chr)
	}
	return &n
}

// Reset implements the Mapper interface. Battery backed RAM survives a
// reset.
func (cart *nrom) Reset() {
	if cart.battery {
		return
	}
	for i := range cart.ram {
		cart.ram[i] = 0
	}
}

// Read implements the Mapper interface.
func (cart *nrom) Read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0x8000:
		bank := 0
		if addr >= 0xc000 && len(cart.prg) > 1 {
			bank = 1
		}
		return cart.prg[bank][addr&0x3fff], nil
	case addr >= 0x6000:
		return cart.ram[addr-0x6000], nil
	}
	return 0, curated.Errorf(cpubus.AddressError, addr)
}

// Write implements the Mapper interface. Writes to the ROM window are
// ignored.
func (cart *nrom) Write(addr uint16, data uint8) error {
	switch {
	case addr >= 0x8000:
		return nil
	case addr >= 0x6000:
		cart.ram[addr-0x6000] = data
		return nil
	}
	return curated.Errorf(cpubus.AddressError, addr)
}

// ReadPPU implements the Mapper interface.
func (cart *nrom) ReadPPU(addr uint16) uint8 {
	return cart.chr[addr]
}

// WritePPU implements the Mapper interface.
func (cart *nrom) WritePPU(addr uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[addr] = data
	}
}

// Mirroring implements the Mapper interface.
func (cart *nrom) Mirroring() cartridgeloader.Mirroring {
	return cart.mirroring
}

// NumBanks implements the Mapper interface.
func (cart *nrom) NumBanks() int {
	return len(cart.prg)
}

// BatteryRAM implements the BatteryBacked interface.
func (cart *nrom) BatteryRAM() []uint8 {
	if !cart.battery {
		return nil
	}
	return cart.ram
}
