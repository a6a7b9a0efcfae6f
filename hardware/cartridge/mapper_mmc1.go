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

// mmc1 implements the Mapper interface. Mapper 1.
//
// The cartridge circuit has four five-bit registers but only one data pin.
// Registers are filled serially, one bit per write to the ROM window, LSB
// first. The fifth write transfers the shift register to the internal
// register selected by bits 13 and 14 of the address. A write with bit 7
// set clears the shift register and locks the PRG bank mode to three.
type mmc1 struct {
	prg [][]uint8 // 16KB banks
	chr [][]uint8 // 4KB banks

	chrRAM bool

	ram     []uint8
	battery bool

	// rewindable state
	shift      uint8
	writeCount int

	// internal registers. ctrl bits 0-1 select mirroring, bits 2-3 the PRG
	// bank mode and bit 4 the CHR bank mode
	ctrl    uint8
	chrBank [2]uint8
	prgBank uint8
}

func newMMC1(cartload cartridgeloader.Loader) (Mapper, error) {
	if len(cartload.PRG) < 1 || len(cartload.PRG) > 16 {
		return nil, curated.Errorf(InvalidBankIndex, "MMC1", len(cartload.PRG))
	}
	if len(cartload.CHR) > 16 {
		return nil, curated.Errorf(InvalidBankIndex, "MMC1", len(cartload.CHR))
	}

	cart := &mmc1{
		prg:     cartload.PRG,
		ram:     make([]uint8, prgRAMSize),
		battery: cartload.Battery,
	}

	if len(cartload.CHR) == 0 {
		cart.chr = divide(make([]uint8, chrRAMSize), chrRAMSize/2)
		cart.chrRAM = true
	} else {
		// the CHR registers select 4KB banks
		cart.chr = divide(flatten(cartload.CHR), cartridgeloader.CHRBankSize/2)
	}

	return cart, nil
}

// ID implements the Mapper interface.
func (cart *mmc1) ID() string {
	return "MMC1"
}

// Snapshot implements the Mapper interface.
func (cart *mmc1) Snapshot() Mapper {
	n := *cart
	n.ram = make([]uint8, len(cart.ram))
	copy(n.ram, cart.ram)
	if cart.chrRAM {
		n.chr = copyBanks(cart.chr)
	}
	return &n
}

// Reset implements the Mapper interface. The circuit starts up with the PRG
// bank mode set to three, fixing the last bank at 0xc000.
func (cart *mmc1) Reset() {
	cart.shift = 0
	cart.writeCount = 0
	cart.ctrl = 0x0c
	cart.chrBank = [2]uint8{}
	cart.prgBank = 0
	if !cart.battery {
		for i := range cart.ram {
			cart.ram[i] = 0
		}
	}
}

// prgOffset returns the PRG bank mapped into the 16KB window. The window
// argument is zero for the window at 0x8000 and one for the window at
// 0xc000.
func (cart *mmc1) prgOffset(window int) int {
	bank := int(cart.prgBank & 0x0f)

	switch (cart.ctrl >> 2) & 0x03 {
	case 0, 1:
		// 32KB mode. bit 0 of the bank register is ignored
		return (bank&^0x01 + window) % len(cart.prg)
	case 2:
		// first bank fixed at 0x8000
		if window == 0 {
			return 0
		}
		return bank % len(cart.prg)
	}

	// last bank fixed at 0xc000
	if window == 0 {
		return bank % len(cart.prg)
	}
	return len(cart.prg) - 1
}

// chrOffset returns the CHR bank mapped into the 4KB window.
func (cart *mmc1) chrOffset(window int) int {
	if cart.ctrl&0x10 == 0x00 {
		// 8KB mode. bit 0 of the bank register is ignored
		return (int(cart.chrBank[0])&^0x01 + window) % len(cart.chr)
	}
	return int(cart.chrBank[window]) % len(cart.chr)
}

// Read implements the Mapper interface.
func (cart *mmc1) Read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0xc000:
		return cart.prg[cart.prgOffset(1)][addr&0x3fff], nil
	case addr >= 0x8000:
		return cart.prg[cart.prgOffset(0)][addr&0x3fff], nil
	case addr >= 0x6000:
		return cart.ram[addr-0x6000], nil
	}
	return 0, curated.Errorf(cpubus.AddressError, addr)
}

// Write implements the Mapper interface.
func (cart *mmc1) Write(addr uint16, data uint8) error {
	switch {
	case addr >= 0x8000:
		cart.serialWrite(addr, data)
		return nil
	case addr >= 0x6000:
		cart.ram[addr-0x6000] = data
		return nil
	}
	return curated.Errorf(cpubus.AddressError, addr)
}

func (cart *mmc1) serialWrite(addr uint16, data uint8) {
	if data&0x80 == 0x80 {
		cart.shift = 0
		cart.writeCount = 0
		cart.ctrl |= 0x0c
		return
	}

	cart.shift = ((data & 0x01) << 4) | (cart.shift >> 1)
	cart.writeCount++

	if cart.writeCount < 5 {
		return
	}

	// the fifth write transfers the shift register to the internal register
	// selected by the address of that write. the addresses of the first four
	// writes play no part
	switch (addr >> 13) & 0x03 {
	case 0:
		cart.ctrl = cart.shift
	case 1:
		cart.chrBank[0] = cart.shift
	case 2:
		cart.chrBank[1] = cart.shift
	case 3:
		cart.prgBank = cart.shift
	}

	cart.shift = 0
	cart.writeCount = 0
}

// ReadPPU implements the Mapper interface.
func (cart *mmc1) ReadPPU(addr uint16) uint8 {
	window := int(addr>>12) & 0x01
	return cart.chr[cart.chrOffset(window)][addr&0x0fff]
}

// WritePPU implements the Mapper interface.
func (cart *mmc1) WritePPU(addr uint16, data uint8) {
	if cart.chrRAM {
		window := int(addr>>12) & 0x01
		cart.chr[cart.chrOffset(window)][addr&0x0fff] = data
	}
}

// Mirroring implements the Mapper interface.
func (cart *mmc1) Mirroring() cartridgeloader.Mirroring {
	switch cart.ctrl & 0x03 {
	case 0:
		return cartridgeloader.OneScreenLower
	case 1:
		return cartridgeloader.OneScreenUpper
	case 2:
		return cartridgeloader.Vertical
	}
	return cartridgeloader.Horizontal
}

// NumBanks implements the Mapper interface.
func (cart *mmc1) NumBanks() int {
	return len(cart.prg)
}

// BatteryRAM implements the BatteryBacked interface.
func (cart *mmc1) BatteryRAM() []uint8 {
	if !cart.battery {
		return nil
	}
	return cart.ram
}
