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

package ppu_test

import (
	"testing"

	"gophernes/cartridgeloader"
	"gophernes/hardware/ppu"
	"gophernes/test"
)

// mockBus services the PPU's pattern table reads with 8KB of CHR RAM.
type mockBus struct {
	chr       [8192]uint8
	mirroring cartridgeloader.Mirroring
}

func (b *mockBus) ReadPPU(addr uint16) uint8 {
	return b.chr[addr]
}

func (b *mockBus) WritePPU(addr uint16, data uint8) {
	b.chr[addr] = data
}

func (b *mockBus) Mirroring() cartridgeloader.Mirroring {
	return b.mirroring
}

func step(t *testing.T, p *ppu.PPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := p.Step(); err != nil {
			t.Fatalf("unexpected error (%v)", err)
		}
	}
}

func stepTo(t *testing.T, p *ppu.PPU, scanline int, dot int) {
	t.Helper()
	for i := 0; i < ppu.DotsPerScanline*ppu.ScanlinesPerFrame*2; i++ {
		if p.Scanline == scanline && p.Dot == dot {
			return
		}
		if err := p.Step(); err != nil {
			t.Fatalf("unexpected error (%v)", err)
		}
	}
	t.Fatalf("never reached scanline %d dot %d", scanline, dot)
}

// writeAddress performs the two writes that set the vram address.
func writeAddress(t *testing.T, p *ppu.PPU, addr uint16) {
	t.Helper()
	err := p.Write(0x2006, uint8(addr>>8))
	test.ExpectedSuccess(t, err)
	err = p.Write(0x2006, uint8(addr))
	test.ExpectedSuccess(t, err)
}

func readRegister(t *testing.T, p *ppu.PPU, addr uint16) uint8 {
	t.Helper()
	d, err := p.Read(addr)
	test.ExpectedSuccess(t, err)
	return d
}

func TestVBlankFlag(t *testing.T) {
	p := ppu.NewPPU(&mockBus{})

	// the reset position is one dot short of the vblank scanline
	step(t, p, 1)
	test.Equate(t, p.Scanline, 241)
	test.Equate(t, p.Dot, 0)
	test.Equate(t, readRegister(t, p, 0x2002)&0x80, 0)

	// the flag rises at dot 1 of scanline 241
	step(t, p, 1)
	test.Equate(t, readRegister(t, p, 0x2002)&0x80, 0x80)

	// reading the status register cleared it
	test.Equate(t, readRegister(t, p, 0x2002)&0x80, 0)

	// without a status read the flag falls at dot 1 of the pre-render
	// scanline
	p = ppu.NewPPU(&mockBus{})
	stepTo(t, p, 261, 1)
	test.Equate(t, readRegister(t, p, 0x2002)&0x80, 0)
}

func TestNMISignal(t *testing.T) {
	p := ppu.NewPPU(&mockBus{})

	// NMI disabled. vblank comes and goes without a signal
	stepTo(t, p, 261, 1)
	test.Equate(t, p.PollNMI(), false)

	// enable the NMI output and run into the next vblank
	err := p.Write(0x2000, 0x80)
	test.ExpectedSuccess(t, err)
	stepTo(t, p, 241, 1)

	// the signal is delayed by a few dots
	test.Equate(t, p.PollNMI(), false)
	step(t, p, 14)
	test.Equate(t, p.PollNMI(), false)
	step(t, p, 1)
	test.Equate(t, p.PollNMI(), true)

	// the signal is a one-shot
	test.Equate(t, p.PollNMI(), false)
}

func TestAddressLatch(t *testing.T) {
	bus := &mockBus{}
	p := ppu.NewPPU(bus)

	// write a byte of vram through the data register
	writeAddress(t, p, 0x2155)
	err := p.Write(0x2007, 0xab)
	test.ExpectedSuccess(t, err)

	// reads below the palette go through the read buffer and arrive one
	// read late
	writeAddress(t, p, 0x2155)
	_ = readRegister(t, p, 0x2007)
	test.Equate(t, readRegister(t, p, 0x2007), 0xab)

	// a status read resets the write toggle. start a half-written address
	// and abandon it
	err = p.Write(0x2006, 0x3f)
	test.ExpectedSuccess(t, err)
	_ = readRegister(t, p, 0x2002)

	// palette reads are immediate
	writeAddress(t, p, 0x3f00)
	err = p.Write(0x2007, 0x2a)
	test.ExpectedSuccess(t, err)
	writeAddress(t, p, 0x3f00)
	test.Equate(t, readRegister(t, p, 0x2007), 0x2a)
}

func TestAddressIncrement(t *testing.T) {
	p := ppu.NewPPU(&mockBus{})

	// increment of one
	writeAddress(t, p, 0x2000)
	err := p.Write(0x2007, 0x01)
	test.ExpectedSuccess(t, err)
	err = p.Write(0x2007, 0x02)
	test.ExpectedSuccess(t, err)

	writeAddress(t, p, 0x2000)
	_ = readRegister(t, p, 0x2007)
	test.Equate(t, readRegister(t, p, 0x2007), 0x01)
	test.Equate(t, readRegister(t, p, 0x2007), 0x02)

	// increment of thirty-two
	err = p.Write(0x2000, 0x04)
	test.ExpectedSuccess(t, err)
	writeAddress(t, p, 0x2000)
	err = p.Write(0x2007, 0x11)
	test.ExpectedSuccess(t, err)
	err = p.Write(0x2007, 0x22)
	test.ExpectedSuccess(t, err)

	err = p.Write(0x2000, 0x00)
	test.ExpectedSuccess(t, err)
	writeAddress(t, p, 0x2020)
	_ = readRegister(t, p, 0x2007)
	test.Equate(t, readRegister(t, p, 0x2007), 0x22)
}

func TestNametableMirroring(t *testing.T) {
	// horizontal arrangement. 0x2000 and 0x2400 share a nametable
	bus := &mockBus{mirroring: cartridgeloader.Horizontal}
	p := ppu.NewPPU(bus)

	writeAddress(t, p, 0x2001)
	err := p.Write(0x2007, 0x55)
	test.ExpectedSuccess(t, err)

	writeAddress(t, p, 0x2401)
	_ = readRegister(t, p, 0x2007)
	test.Equate(t, readRegister(t, p, 0x2007), 0x55)

	// vertical arrangement. 0x2000 and 0x2800 share a nametable
	bus = &mockBus{mirroring: cartridgeloader.Vertical}
	p = ppu.NewPPU(bus)

	writeAddress(t, p, 0x2001)
	err = p.Write(0x2007, 0x66)
	test.ExpectedSuccess(t, err)

	writeAddress(t, p, 0x2801)
	_ = readRegister(t, p, 0x2007)
	test.Equate(t, readRegister(t, p, 0x2007), 0x66)
}

func TestOddFrameSkip(t *testing.T) {
	p := ppu.NewPPU(&mockBus{})

	// with rendering disabled every frame is the full number of dots
	stepTo(t, p, 0, 0)
	frame := p.Frame
	count := 0
	for !(p.Scanline == 0 && p.Dot == 0 && p.Frame == frame+2) {
		step(t, p, 1)
		count++
	}
	test.Equate(t, count, ppu.DotsPerScanline*ppu.ScanlinesPerFrame*2)

	// with rendering enabled one frame of every two loses a dot
	err := p.Write(0x2001, 0x08)
	test.ExpectedSuccess(t, err)

	frame = p.Frame
	count = 0
	for !(p.Scanline == 0 && p.Dot == 0 && p.Frame == frame+2) {
		step(t, p, 1)
		count++
	}
	test.Equate(t, count, ppu.DotsPerScanline*ppu.ScanlinesPerFrame*2-1)
}

func TestSpriteZeroHit(t *testing.T) {
	bus := &mockBus{}

	// make every row of tiles zero and one fully opaque
	for i := 0; i < 32; i++ {
		bus.chr[i] = 0xff
	}

	p := ppu.NewPPU(bus)

	// sprite zero at (20, 50) using tile one
	err := p.Write(0x2003, 0x00)
	test.ExpectedSuccess(t, err)
	for _, d := range []uint8{50, 1, 0, 20} {
		err = p.Write(0x2004, d)
		test.ExpectedSuccess(t, err)
	}

	// both layers on, including the left columns
	err = p.Write(0x2001, 0x1e)
	test.ExpectedSuccess(t, err)

	// the sprite is latched during scanline 50 and drawn on scanline 51.
	// its first opaque pixel over an opaque background pixel is at x=20
	for i := 0; i < ppu.DotsPerScanline*ppu.ScanlinesPerFrame; i++ {
		if readRegister(t, p, 0x2002)&0x40 == 0x40 {
			break
		}
		step(t, p, 1)
	}

	test.Equate(t, readRegister(t, p, 0x2002)&0x40, 0x40)
	test.Equate(t, p.Scanline, 51)
	test.Equate(t, p.Dot, 21)

	// the flag falls on the pre-render scanline
	stepTo(t, p, 261, 1)
	test.Equate(t, readRegister(t, p, 0x2002)&0x40, 0)
}

func TestSpriteOverflow(t *testing.T) {
	p := ppu.NewPPU(&mockBus{})

	// nine sprites on the same scanline
	err := p.Write(0x2003, 0x00)
	test.ExpectedSuccess(t, err)
	for i := 0; i < 9; i++ {
		for _, d := range []uint8{100, 0, 0, uint8(i * 16)} {
			err = p.Write(0x2004, d)
			test.ExpectedSuccess(t, err)
		}
	}

	err = p.Write(0x2001, 0x18)
	test.ExpectedSuccess(t, err)

	stepTo(t, p, 101, 0)
	test.Equate(t, readRegister(t, p, 0x2002)&0x20, 0x20)
}

func TestBackdropWithRenderingDisabled(t *testing.T) {
	p := ppu.NewPPU(&mockBus{})

	// universal background color and the first background palette entry
	writeAddress(t, p, 0x3f00)
	err := p.Write(0x2007, 0x16)
	test.ExpectedSuccess(t, err)
	err = p.Write(0x2007, 0x21)
	test.ExpectedSuccess(t, err)

	// park the vram address outside palette space
	writeAddress(t, p, 0x0000)

	// rendering is disabled but visible dots still paint the backdrop
	stepTo(t, p, 10, 200)
	r, g, b, err := p.Screen().Pixel(199, 10)
	test.ExpectedSuccess(t, err)
	want := ppu.PaletteNTSC[0x16]
	test.Equate(t, r, want[0])
	test.Equate(t, g, want[1])
	test.Equate(t, b, want[2])

	// with the vram address parked in palette space the entry it points at
	// shows through instead
	writeAddress(t, p, 0x3f01)
	stepTo(t, p, 11, 200)
	r, g, b, err = p.Screen().Pixel(199, 11)
	test.ExpectedSuccess(t, err)
	want = ppu.PaletteNTSC[0x21]
	test.Equate(t, r, want[0])
	test.Equate(t, g, want[1])
	test.Equate(t, b, want[2])
}

func TestSnapshot(t *testing.T) {
	bus := &mockBus{}
	p := ppu.NewPPU(bus)

	writeAddress(t, p, 0x2100)
	err := p.Write(0x2007, 0x12)
	test.ExpectedSuccess(t, err)

	snap := p.Snapshot()
	snap.Plumb(bus)

	// changing the live PPU must not affect the snapshot
	writeAddress(t, p, 0x2100)
	err = p.Write(0x2007, 0x34)
	test.ExpectedSuccess(t, err)

	writeAddress(t, snap, 0x2100)
	_ = readRegister(t, snap, 0x2007)
	test.Equate(t, readRegister(t, snap, 0x2007), 0x12)
}
