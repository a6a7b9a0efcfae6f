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

package cartridge_test

import (
	"testing"

	"gophernes/cartridgeloader"
	"gophernes/curated"
	"gophernes/hardware/cartridge"
	"gophernes/test"
)

// prgBanks builds PRG banks with every byte of a bank set to the bank
// number.
func prgBanks(n int) [][]uint8 {
	banks := make([][]uint8, n)
	for i := range banks {
		banks[i] = make([]uint8, cartridgeloader.PRGBankSize)
		for j := range banks[i] {
			banks[i][j] = uint8(i)
		}
	}
	return banks
}

// chrBanks builds CHR banks with every byte of a bank set to the bank
// number with the high bit set.
func chrBanks(n int) [][]uint8 {
	banks := make([][]uint8, n)
	for i := range banks {
		banks[i] = make([]uint8, cartridgeloader.CHRBankSize)
		for j := range banks[i] {
			banks[i][j] = uint8(0x80 | i)
		}
	}
	return banks
}

func attach(t *testing.T, mapper int, prg [][]uint8, chr [][]uint8) *cartridge.Cartridge {
	t.Helper()
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoaderFromData(mapper, prg, chr, cartridgeloader.Horizontal))
	test.ExpectedSuccess(t, err)
	return cart
}

func read(t *testing.T, cart *cartridge.Cartridge, addr uint16) uint8 {
	t.Helper()
	d, err := cart.Read(addr)
	test.ExpectedSuccess(t, err)
	return d
}

func TestAttachErrors(t *testing.T) {
	cart := cartridge.NewCartridge()

	err := cart.Attach(cartridgeloader.NewLoaderFromData(255, prgBanks(1), nil, cartridgeloader.Horizontal))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	// NROM has no bank switching so three banks cannot be addressed
	err = cart.Attach(cartridgeloader.NewLoaderFromData(0, prgBanks(3), nil, cartridgeloader.Horizontal))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidBankIndex))

	test.ExpectedSuccess(t, cart.IsEjected())
}

func TestNROM(t *testing.T) {
	// a single PRG bank appears in both halves of the ROM window
	cart := attach(t, 0, prgBanks(1), chrBanks(1))
	test.Equate(t, read(t, cart, 0x8000), 0x00)
	test.Equate(t, read(t, cart, 0xc000), 0x00)
	test.Equate(t, cart.ReadPPU(0x1fff), 0x80)

	// writes to the ROM window are ignored
	err := cart.Write(0x8000, 0xff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, read(t, cart, 0x8000), 0x00)

	// PRG RAM at 0x6000
	err = cart.Write(0x6123, 0x42)
	test.ExpectedSuccess(t, err)
	test.Equate(t, read(t, cart, 0x6123), 0x42)

	// two banks fill the window in order
	cart = attach(t, 0, prgBanks(2), chrBanks(1))
	test.Equate(t, read(t, cart, 0x8000), 0x00)
	test.Equate(t, read(t, cart, 0xc000), 0x01)
}

func TestCHRRAM(t *testing.T) {
	// no CHR banks means the cartridge supplies CHR RAM
	cart := attach(t, 0, prgBanks(1), nil)
	test.Equate(t, cart.ReadPPU(0x0100), 0x00)
	cart.WritePPU(0x0100, 0x99)
	test.Equate(t, cart.ReadPPU(0x0100), 0x99)

	// CHR ROM does not react to writes
	cart = attach(t, 0, prgBanks(1), chrBanks(1))
	cart.WritePPU(0x0100, 0x99)
	test.Equate(t, cart.ReadPPU(0x0100), 0x80)
}

func TestUxROM(t *testing.T) {
	cart := attach(t, 2, prgBanks(4), nil)

	// last bank hardwired at 0xc000, bank zero at 0x8000 after reset
	test.Equate(t, read(t, cart, 0x8000), 0x00)
	test.Equate(t, read(t, cart, 0xc000), 0x03)

	// any write to the ROM window selects the bank at 0x8000
	err := cart.Write(0xa000, 0x02)
	test.ExpectedSuccess(t, err)
	test.Equate(t, read(t, cart, 0x8000), 0x02)
	test.Equate(t, read(t, cart, 0xc000), 0x03)
}

// mmc1Serial writes a five-bit value one bit at a time, LSB first.
func mmc1Serial(t *testing.T, cart *cartridge.Cartridge, addr uint16, val uint8) {
	t.Helper()
	for i := 0; i < 5; i++ {
		err := cart.Write(addr, (val>>i)&0x01)
		test.ExpectedSuccess(t, err)
	}
}

func TestMMC1(t *testing.T) {
	cart := attach(t, 1, prgBanks(4), nil)

	// reset state is PRG mode three. bank zero at 0x8000, last bank fixed
	// at 0xc000
	test.Equate(t, read(t, cart, 0x8000), 0x00)
	test.Equate(t, read(t, cart, 0xc000), 0x03)

	// select bank two at 0x8000 via the serial register at 0xe000
	mmc1Serial(t, cart, 0xe000, 0x02)
	test.Equate(t, read(t, cart, 0x8000), 0x02)
	test.Equate(t, read(t, cart, 0xc000), 0x03)

	// writing the control register changes the mirroring
	mmc1Serial(t, cart, 0x8000, 0x0e)
	test.Equate(t, cart.Mirroring() == cartridgeloader.Vertical, true)

	// a write with bit 7 set resets the shift register mid-sequence. the
	// two bits written before the reset must not contribute to the value
	// written after it
	err := cart.Write(0xe000, 0x01)
	test.ExpectedSuccess(t, err)
	err = cart.Write(0xe000, 0x01)
	test.ExpectedSuccess(t, err)
	err = cart.Write(0xe000, 0x80)
	test.ExpectedSuccess(t, err)
	mmc1Serial(t, cart, 0xe000, 0x01)
	test.Equate(t, read(t, cart, 0x8000), 0x01)
}

func TestMMC3Banks(t *testing.T) {
	// four 16KB loader banks give eight 8KB banks
	cart := attach(t, 4, prgBanks(4), nil)
	test.Equate(t, cart.NumBanks(), 8)

	// the window at 0xe000 is hardwired to the last 8KB bank. every byte
	// of loader bank three fills the last two 8KB banks
	test.Equate(t, read(t, cart, 0xe000), 0x03)
	test.Equate(t, read(t, cart, 0xc000), 0x03)

	// select 8KB bank four (loader bank two) at 0x8000
	err := cart.Write(0x8000, 0x06)
	test.ExpectedSuccess(t, err)
	err = cart.Write(0x8001, 0x04)
	test.ExpectedSuccess(t, err)
	test.Equate(t, read(t, cart, 0x8000), 0x02)

	// PRG mode bit swaps the 0x8000 and 0xc000 windows
	err = cart.Write(0x8000, 0x46)
	test.ExpectedSuccess(t, err)
	test.Equate(t, read(t, cart, 0x8000), 0x03)
	test.Equate(t, read(t, cart, 0xc000), 0x02)

	// mirroring register
	err = cart.Write(0xa000, 0x00)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.Mirroring() == cartridgeloader.Vertical, true)
}

func TestMMC3IRQ(t *testing.T) {
	cart := attach(t, 4, prgBanks(2), nil)

	m := cart.GetMapper()
	scan, ok := m.(cartridge.ScanlineSensitive)
	test.ExpectedSuccess(t, ok)
	irq, ok := m.(cartridge.IRQSource)
	test.ExpectedSuccess(t, ok)

	// latch three scanlines and enable the interrupt
	err := cart.Write(0xc000, 0x03)
	test.ExpectedSuccess(t, err)
	err = cart.Write(0xc001, 0x00)
	test.ExpectedSuccess(t, err)
	err = cart.Write(0xe001, 0x00)
	test.ExpectedSuccess(t, err)

	// first clock reloads the counter, the next three count down
	scan.ScanlineTick()
	test.Equate(t, irq.IRQState(), false)
	scan.ScanlineTick()
	test.Equate(t, irq.IRQState(), false)
	scan.ScanlineTick()
	test.Equate(t, irq.IRQState(), false)
	scan.ScanlineTick()
	test.Equate(t, irq.IRQState(), true)

	// disabling acknowledges the pending interrupt
	err = cart.Write(0xe000, 0x00)
	test.ExpectedSuccess(t, err)
	test.Equate(t, irq.IRQState(), false)
}

func TestSnapshot(t *testing.T) {
	cart := attach(t, 2, prgBanks(4), nil)

	err := cart.Write(0x8000, 0x02)
	test.ExpectedSuccess(t, err)
	cart.WritePPU(0x0000, 0x77)

	snap := cart.Snapshot()

	// change the live cartridge
	err = cart.Write(0x8000, 0x01)
	test.ExpectedSuccess(t, err)
	cart.WritePPU(0x0000, 0x88)

	// the snapshot kept the earlier state
	test.Equate(t, read(t, snap, 0x8000), 0x02)
	test.Equate(t, snap.ReadPPU(0x0000), 0x77)
	test.Equate(t, read(t, cart, 0x8000), 0x01)
}
