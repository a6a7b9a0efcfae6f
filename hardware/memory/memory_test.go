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

package memory_test

import (
	"testing"

	"gophernes/curated"
	"gophernes/hardware/memory"
	"gophernes/hardware/memory/cpubus"
	"gophernes/hardware/memory/memorymap"
	"gophernes/test"
)

// mockArea records every access made to it.
type mockArea struct {
	lastAddress uint16
	lastData    uint8
	writes      int
	reads       int
}

func (a *mockArea) Read(address uint16) (uint8, error) {
	a.lastAddress = address
	a.reads++
	return 0xea, nil
}

func (a *mockArea) Write(address uint16, data uint8) error {
	a.lastAddress = address
	a.lastData = data
	a.writes++
	return nil
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewBus()

	// a write to the primary RAM area is visible through every mirror
	err := mem.Write(0x0042, 0xff)
	test.ExpectedSuccess(t, err)

	for _, m := range []uint16{0x0042, 0x0842, 0x1042, 0x1842} {
		d, err := mem.Read(m)
		test.ExpectedSuccess(t, err)
		test.Equate(t, d, 0xff)
	}

	// and a write through a mirror lands in the primary area
	err = mem.Write(0x1fff, 0x01)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mem.RAM.RAM[0x07ff], 0x01)
}

func TestPPURegisterMirroring(t *testing.T) {
	mem := memory.NewBus()
	ppu := &mockArea{}
	mem.Plumb(ppu, nil, nil)

	// PPU registers repeat every eight bytes up to the top of the area
	err := mem.Write(0x2008, 0x80)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ppu.lastAddress, 0x2000)
	test.Equate(t, ppu.lastData, 0x80)

	_, err = mem.Read(0x3ffa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ppu.lastAddress, 0x2002)

	// one access to the bus means exactly one access to the area
	test.Equate(t, ppu.writes, 1)
	test.Equate(t, ppu.reads, 1)
}

func TestIOAndCartridgeRouting(t *testing.T) {
	mem := memory.NewBus()
	io := &mockArea{}
	cart := &mockArea{}
	mem.Plumb(nil, io, cart)

	// IO addresses are not mirrored
	err := mem.Write(0x4014, 0x02)
	test.ExpectedSuccess(t, err)
	test.Equate(t, io.lastAddress, 0x4014)
	test.Equate(t, io.lastData, 0x02)

	d, err := mem.Read(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xea)
	test.Equate(t, cart.lastAddress, 0x8000)
}

func TestAddressError(t *testing.T) {
	mem := memory.NewBus()

	// the disabled 2A03 test-mode registers
	_, err := mem.Read(0x4018)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpubus.AddressError))

	// unattached areas behave the same way
	_, err = mem.Read(memorymap.OriginPPU)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpubus.AddressError))

	err = mem.Write(memorymap.OriginCart, 0x00)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpubus.AddressError))
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewBus()

	err := mem.Write(0x0000, 0x64)
	test.ExpectedSuccess(t, err)

	snap := mem.Snapshot()

	// changing the live RAM must not affect the snapshot
	err = mem.Write(0x0000, 0x0a)
	test.ExpectedSuccess(t, err)

	test.Equate(t, snap.RAM.RAM[0x0000], 0x64)
	test.Equate(t, mem.RAM.RAM[0x0000], 0x0a)
}

func TestLastAccess(t *testing.T) {
	mem := memory.NewBus()
	mem.Plumb(&mockArea{}, &mockArea{}, &mockArea{})

	err := mem.Write(0x4014, 0x02)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mem.String(), "write OAMDMA (0x4014) = 0x02")

	_, err = mem.Read(0x2002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mem.String(), "read PPUSTATUS (0x2002) = 0xea")

	err = mem.Write(0x0100, 0x55)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mem.String(), "write 0x0100 = 0x55")
}
