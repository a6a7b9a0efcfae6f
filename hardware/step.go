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

package hardware

import (
	"gophernes/hardware/cartridge"
	"gophernes/hardware/clocks"
	"gophernes/hardware/ppu"
)

// the dot on which scanline-counting mappers are clocked. the real chip
// detects the rise of PPU address line 12 during the sprite fetches
const mapperClockDot = 260

// cycle runs one CPU cycle worth of console activity: the frame counter in
// the APU and three PPU dots. interrupt lines are sampled once the dots have
// run so that the CPU sees them before its next instruction fetch.
func (console *Console) cycle() error {
	console.CpuCycles++
	console.APU.Step()

	for i := 0; i < clocks.PPUDotsPerCPUCycle; i++ {
		if err := console.PPU.Step(); err != nil {
			return err
		}
		console.PpuDots++

		if console.PPU.Dot == mapperClockDot && console.PPU.RenderingEnabled() {
			if console.PPU.Scanline < ppu.Scanlines || console.PPU.Scanline == ppu.ScanlinePreRender {
				if m, ok := console.Cart.GetMapper().(cartridge.ScanlineSensitive); ok {
					m.ScanlineTick()
				}
			}
		}
	}

	if console.PPU.PollNMI() {
		console.CPU.RaiseNMI()
	}

	irq := console.APU.IRQState()
	if m, ok := console.Cart.GetMapper().(cartridge.IRQSource); ok {
		irq = irq || m.IRQState()
	}
	console.CPU.SetIRQ(irq)

	return nil
}

// cycleCallback is passed to cpu.ExecuteInstruction. a pending OAM DMA
// request is serviced here, at the end of the CPU cycle in which the OAMDMA
// register was written.
func (console *Console) cycleCallback() error {
	if err := console.cycle(); err != nil {
		return err
	}

	if console.io.dmaPage != dmaNone {
		return console.serviceDMA()
	}

	return nil
}

// serviceDMA copies a page of CPU memory into PPU OAM, stalling the CPU for
// 513 cycles, or 514 when the stall begins on an odd cycle. the PPU and APU
// continue to run during the stall.
func (console *Console) serviceDMA() error {
	page := uint16(console.io.dmaPage) << 8
	console.io.dmaPage = dmaNone

	// one dead cycle while the CPU is halted, plus an alignment cycle when
	// the halt lands on an odd cycle. the copy itself then runs on a
	// read/write beat
	realign := console.CpuCycles&0x01 == 0x01
	if err := console.cycle(); err != nil {
		return err
	}
	if realign {
		if err := console.cycle(); err != nil {
			return err
		}
	}

	for i := uint16(0); i < 256; i++ {
		data, err := console.Mem.Read(page | i)
		if err != nil {
			return err
		}
		if err := console.cycle(); err != nil {
			return err
		}

		if err := console.PPU.Write(0x2004, data); err != nil {
			return err
		}
		if err := console.cycle(); err != nil {
			return err
		}
	}

	return nil
}

// Step the console forward by one CPU instruction.
func (console *Console) Step() error {
	// a jammed CPU no longer fetches instructions but the rest of the
	// console keeps running
	if console.CPU.Killed {
		return console.cycle()
	}

	return console.CPU.ExecuteInstruction(console.cycleCallback)
}

// RunFrame advances the console to the next frame boundary and returns the
// completed framebuffer. This is the unit of work a presentation layer asks
// for once per sixtieth of a second.
func (console *Console) RunFrame() (*ppu.FrameBuffer, error) {
	frame := console.PPU.Frame

	for console.PPU.Frame == frame {
		if err := console.Step(); err != nil {
			return nil, err
		}
	}

	return console.PPU.Screen(), nil
}

// RunForFrameCount runs the console for the specified number of frames.
func (console *Console) RunForFrameCount(numFrames int) error {
	for i := 0; i < numFrames; i++ {
		if _, err := console.RunFrame(); err != nil {
			return err
		}
	}
	return nil
}
