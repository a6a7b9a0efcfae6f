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

package hardware_test

import (
	"bytes"
	"testing"

	"gophernes/cartridgeloader"
	"gophernes/digest"
	"gophernes/hardware"
	"gophernes/test"
)

// newConsole creates a console running the supplied program from 0x8000. the
// nmi argument is the address placed in the NMI vector.
func newConsole(t *testing.T, program []uint8, nmi uint16) *hardware.Console {
	t.Helper()

	bank := make([]uint8, cartridgeloader.PRGBankSize)
	copy(bank, program)
	bank[0x3ffa] = uint8(nmi)
	bank[0x3ffb] = uint8(nmi >> 8)
	bank[0x3ffc] = 0x00
	bank[0x3ffd] = 0x80

	console := hardware.NewConsole()
	err := console.AttachCartridge(
		cartridgeloader.NewLoaderFromData(0, [][]uint8{bank}, nil, cartridgeloader.Horizontal))
	test.ExpectedSuccess(t, err)

	return console
}

func TestDotRatio(t *testing.T) {
	console := newConsole(t, []uint8{
		0xea,             // NOP
		0xea,             // NOP
		0x4c, 0x00, 0x80, // JMP $8000
	}, 0x0000)

	test.Equate(t, console.PpuDots, 0)

	for i := 0; i < 100; i++ {
		err := console.Step()
		test.ExpectedSuccess(t, err)
		test.Equate(t, console.PpuDots, console.CpuCycles*3)
	}
}

func TestRunFrame(t *testing.T) {
	console := newConsole(t, []uint8{
		0xea,             // NOP
		0x4c, 0x00, 0x80, // JMP $8000
	}, 0x0000)

	// the first frame is the partial one that runs from the power-on
	// position to the first frame boundary
	_, err := console.RunFrame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, console.PPU.Frame, 1)

	mark := console.PpuDots
	fb, err := console.RunFrame()
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, fb != nil)
	test.Equate(t, console.PPU.Frame, 2)

	// the ratio holds over whole frames and the frame length is one NTSC
	// frame, allowing for instruction overshoot at the boundary
	test.Equate(t, console.PpuDots, console.CpuCycles*3)
	frame := console.PpuDots - mark
	test.ExpectedSuccess(t, frame > 89342-15 && frame < 89342+15)
}

func TestOAMDMA(t *testing.T) {
	console := newConsole(t, []uint8{
		0xa9, 0x02, //       LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
		0xea, //             NOP
		0x8d, 0x14, 0x40, // STA $4014
		0x4c, 0x09, 0x80, // JMP $8009
	}, 0x0000)

	// known pattern in RAM page two
	for i := 0; i < 256; i++ {
		err := console.Mem.Write(uint16(0x0200+i), uint8(255-i))
		test.ExpectedSuccess(t, err)
	}

	// LDA #$02
	err := console.Step()
	test.ExpectedSuccess(t, err)

	// the write lands on an even cycle so the stall is 513 cycles on top of
	// the four cycles of the STA instruction
	mark := console.CpuCycles
	err = console.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, console.CpuCycles-mark-4, 513)
	test.Equate(t, console.PpuDots, console.CpuCycles*3)

	// OAM now holds the page. the attribute byte of each sprite reads back
	// with its unimplemented bits clear
	got := make([]uint8, 256)
	want := make([]uint8, 256)
	for i := 0; i < 256; i++ {
		err = console.Mem.Write(0x2003, uint8(i))
		test.ExpectedSuccess(t, err)
		got[i], err = console.Mem.Read(0x2004)
		test.ExpectedSuccess(t, err)

		want[i] = uint8(255 - i)
		if i%4 == 2 {
			want[i] &= 0xe3
		}
	}
	test.ExpectedSuccess(t, bytes.Equal(got, want))

	// the NOP flips the cycle parity so the second transfer stalls for one
	// cycle more
	err = console.Step()
	test.ExpectedSuccess(t, err)

	mark = console.CpuCycles
	err = console.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, console.CpuCycles-mark-4, 514)
	test.Equate(t, console.PpuDots, console.CpuCycles*3)
}

func TestNMIDelivery(t *testing.T) {
	console := newConsole(t, []uint8{
		0xa9, 0x80, //       LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0x80, // JMP $8005
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xe6, 0x10, //       NMI: INC $10
		0x40, //             RTI
	}, 0x8010)

	for i := 0; i < 2; i++ {
		_, err := console.RunFrame()
		test.ExpectedSuccess(t, err)
	}

	// one interrupt per vblank
	v, err := console.Mem.Peek(0x0010)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 2)
}

func TestVideoDigest(t *testing.T) {
	program := []uint8{
		0xa9, 0x1e, //       LDA #$1e
		0x8d, 0x01, 0x20, // STA $2001
		0x4c, 0x05, 0x80, // JMP $8005
	}

	// two consoles running the same program produce the same video
	// fingerprint
	var hashes [2]string
	for i := range hashes {
		console := newConsole(t, program, 0x0000)
		dig := digest.NewVideo()
		console.AttachRenderer(dig)

		err := console.RunForFrameCount(3)
		test.ExpectedSuccess(t, err)
		hashes[i] = dig.Hash()
	}

	test.Equate(t, hashes[0], hashes[1])
	test.ExpectedFailure(t, hashes[0] == "0000000000000000000000000000000000000000")
}

func TestSnapshot(t *testing.T) {
	console := newConsole(t, []uint8{
		0xa2, 0x00, //       LDX #$00
		0xe8,             // INX
		0x86, 0x00, //       STX $00
		0x4c, 0x02, 0x80, // JMP $8002
	}, 0x0000)

	for i := 0; i < 10; i++ {
		err := console.Step()
		test.ExpectedSuccess(t, err)
	}

	state := console.Snapshot()

	for i := 0; i < 20; i++ {
		err := console.Step()
		test.ExpectedSuccess(t, err)
	}

	cycles := console.CpuCycles
	cpu := console.CPU.String()
	ppu := console.PPU.String()
	counter, err := console.Mem.Peek(0x0000)
	test.ExpectedSuccess(t, err)

	// restoring and replaying the same number of instructions must arrive
	// at the same state
	console.Plumb(state)
	for i := 0; i < 20; i++ {
		err = console.Step()
		test.ExpectedSuccess(t, err)
	}

	test.Equate(t, console.CpuCycles, cycles)
	test.Equate(t, console.CPU.String(), cpu)
	test.Equate(t, console.PPU.String(), ppu)

	v, err := console.Mem.Peek(0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, counter)

	// the state can be restored more than once
	console.Plumb(state)
	test.ExpectedSuccess(t, console.CpuCycles < cycles)
}