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

// mmc3 implements the Mapper interface. Mapper 4.
//
// PRG data is handled in 8KB banks and CHR data in 1KB banks, which is a
// finer granularity than the fixed sizes in the file container. The circuit
// has eight bank registers which are written through a select/data register
// pair at 0x8000/0x8001. Registers are paired through the whole ROM window,
// with even addresses selecting the first register of the pair.
//
// The scanline counter is clocked by the PPU address lines. The emulation
// approximates that with the ScanlineSensitive interface.
type mmc3 struct {
	prg [][]uint8 // 8KB banks
	chr [][]uint8 // 1KB banks

	chrRAM bool

	ram     []uint8
	battery bool

	mirroring cartridgeloader.Mirroring

	// rewindable state
	bankSelect uint8
	registers  [8]uint8
	ramProtect uint8

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnable  bool
	irqPending bool
}

func newMMC3(cartload cartridgeloader.Loader) (Mapper, error) {
	if len(cartload.PRG) < 1 || len(cartload.PRG) > 32 {
		return nil, curated.Errorf(InvalidBankIndex, "MMC3", len(cartload.PRG))
	}
	if len(cartload.CHR) > 32 {
		return nil, curated.Errorf(InvalidBankIndex, "MMC3", len(cartload.CHR))
	}

	cart := &mmc3{
		prg:       divide(flatten(cartload.PRG), cartridgeloader.PRGBankSize/2),
		ram:       make([]uint8, prgRAMSize),
		mirroring: cartload.Mirroring,
		battery:   cartload.Battery,
	}

	if len(cartload.CHR) == 0 {
		cart.chr = divide(make([]uint8, chrRAMSize), 1024)
		cart.chrRAM = true
	} else {
		cart.chr = divide(flatten(cartload.CHR), 1024)
	}

	return cart, nil
}

// ID implements the Mapper interface.
func (cart *mmc3) ID() string {
	return "MMC3"
}

// Snapshot implements the Mapper interface.
func (cart *mmc3) Snapshot() Mapper {
	n := *cart
	n.ram = make([]uint8, len(cart.ram))
	copy(n.ram, cart.ram)
	if cart.chrRAM {
		n.chr = copyBanks(cart.chr)
	}
	return &n
}

// Reset implements the Mapper interface.
func (cart *mmc3) Reset() {
	cart.bankSelect = 0
	cart.registers = [8]uint8{}
	cart.ramProtect = 0
	cart.irqLatch = 0
	cart.irqCounter = 0
	cart.irqReload = false
	cart.irqEnable = false
	cart.irqPending = false
	if !cart.battery {
		for i := range cart.ram {
			cart.ram[i] = 0
		}
	}
}

// prgOffset returns the PRG bank mapped into the 8KB window. Windows are
// numbered zero to three from 0x8000. The window at 0xe000 is hardwired to
// the last bank and one of the first and third windows is hardwired to the
// second-to-last bank, depending on the PRG mode bit.
func (cart *mmc3) prgOffset(window int) int {
	mode := cart.bankSelect&0x40 == 0x40

	switch window {
	case 0:
		if mode {
			return len(cart.prg) - 2
		}
		return int(cart.registers[6]) % len(cart.prg)
	case 1:
		return int(cart.registers[7]) % len(cart.prg)
	case 2:
		if mode {
			return int(cart.registers[6]) % len(cart.prg)
		}
		return len(cart.prg) - 2
	}

	return len(cart.prg) - 1
}

// chrOffset returns the CHR bank mapped into the 1KB window. Windows are
// numbered zero to seven from the start of the pattern table space. The A12
// inversion bit swaps the halves of that space.
func (cart *mmc3) chrOffset(window int) int {
	if cart.bankSelect&0x80 == 0x80 {
		window ^= 0x04
	}

	var bank int
	switch window {
	case 0, 1:
		bank = int(cart.registers[0]&0xfe) + window
	case 2, 3:
		bank = int(cart.registers[1]&0xfe) + window - 2
	default:
		bank = int(cart.registers[window-2])
	}

	return bank % len(cart.chr)
}

// Read implements the Mapper interface.
func (cart *mmc3) Read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0x8000:
		window := int(addr-0x8000) >> 13
		return cart.prg[cart.prgOffset(window)][addr&0x1fff], nil
	case addr >= 0x6000:
		return cart.ram[addr-0x6000], nil
	}
	return 0, curated.Errorf(cpubus.AddressError, addr)
}

// Write implements the Mapper interface.
func (cart *mmc3) Write(addr uint16, data uint8) error {
	if addr < 0x6000 {
		return curated.Errorf(cpubus.AddressError, addr)
	}

	if addr < 0x8000 {
		if cart.ramProtect&0x40 == 0x00 {
			cart.ram[addr-0x6000] = data
		}
		return nil
	}

	even := addr&0x01 == 0x00

	switch {
	case addr < 0xa000:
		if even {
			cart.bankSelect = data
		} else {
			cart.registers[cart.bankSelect&0x07] = data
		}
	case addr < 0xc000:
		if even {
			if data&0x01 == 0x01 {
				cart.mirroring = cartridgeloader.Horizontal
			} else {
				cart.mirroring = cartridgeloader.Vertical
			}
		} else {
			cart.ramProtect = data
		}
	case addr < 0xe000:
		if even {
			cart.irqLatch = data
		} else {
			// the counter reloads from the latch on the next clock
			cart.irqCounter = 0
			cart.irqReload = true
		}
	default:
		if even {
			// disabling also acknowledges a pending interrupt
			cart.irqEnable = false
			cart.irqPending = false
		} else {
			cart.irqEnable = true
		}
	}

	return nil
}

// ReadPPU implements the Mapper interface.
func (cart *mmc3) ReadPPU(addr uint16) uint8 {
	window := int(addr >> 10)
	return cart.chr[cart.chrOffset(window)][addr&0x03ff]
}

// WritePPU implements the Mapper interface.
func (cart *mmc3) WritePPU(addr uint16, data uint8) {
	if cart.chrRAM {
		window := int(addr >> 10)
		cart.chr[cart.chrOffset(window)][addr&0x03ff] = data
	}
}

// Mirroring implements the Mapper interface. Four-screen cartridges ignore
// the mirroring register.
func (cart *mmc3) Mirroring() cartridgeloader.Mirroring {
	return cart.mirroring
}

// NumBanks implements the Mapper interface.
func (cart *mmc3) NumBanks() int {
	return len(cart.prg)
}

// ScanlineTick implements the ScanlineSensitive interface. Clocks the
// scanline counter. When the counter reaches zero with interrupts enabled
// the IRQ line is pulled low.
func (cart *mmc3) ScanlineTick() {
	if cart.irqCounter == 0 || cart.irqReload {
		cart.irqCounter = cart.irqLatch
		cart.irqReload = false
	} else {
		cart.irqCounter--
	}

	if cart.irqCounter == 0 && cart.irqEnable {
		cart.irqPending = true
	}
}

// IRQState implements the IRQSource interface.
func (cart *mmc3) IRQState() bool {
	return cart.irqPending
}

// BatteryRAM implements the BatteryBacked interface.
func (cart *mmc3) BatteryRAM() []uint8 {
	if !cart.battery {
		return nil
	}
	return cart.ram
}
