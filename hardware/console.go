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
	"gophernes/cartridgeloader"
	"gophernes/hardware/apu"
	"gophernes/hardware/cartridge"
	"gophernes/hardware/cpu"
	"gophernes/hardware/input"
	"gophernes/hardware/memory"
	"gophernes/hardware/memory/cpubus"
	"gophernes/hardware/ppu"
)

// Console is the NES console. Connect a cartridge with AttachCartridge()
// and advance the emulation with Step() or RunFrame().
type Console struct {
	CPU  *cpu.CPU
	Mem  *memory.Bus
	PPU  *ppu.PPU
	APU  *apu.APU
	Cart *cartridge.Cartridge

	// the two controller ports. port zero is the player one controller
	Controller0 *input.Controller
	Controller1 *input.Controller

	// the io area of the memory map. routes register access to the APU and
	// the controller ports and latches OAM DMA requests
	io *ioBus

	// output devices are recorded here as well as being attached to the
	// chips directly, so that a restored console keeps its outputs
	renderer ppu.PixelRenderer
	audioTap apu.RegisterTap

	// the coordinating counters for the console. PpuDots is exactly three
	// times CpuCycles whenever the console is at rest
	CpuCycles uint64
	PpuDots   uint64
}

// NewConsole is the preferred method of initialisation for the Console type.
// The console is created with the cartridge port empty.
func NewConsole() *Console {
	console := &Console{
		Mem:         memory.NewBus(),
		APU:         apu.NewAPU(),
		Cart:        cartridge.NewCartridge(),
		Controller0: input.NewController(),
		Controller1: input.NewController(),
	}

	console.CPU = cpu.NewCPU(console.Mem)
	console.PPU = ppu.NewPPU(console.Cart)
	console.io = &ioBus{console: console, dmaPage: dmaNone}
	console.Mem.Plumb(console.PPU, console.io, console.Cart)

	return console
}

// AttachCartridge to the console. The console is reset afterwards, leaving
// it ready to run.
func (console *Console) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := console.Cart.Attach(cartload); err != nil {
		return err
	}
	return console.Reset()
}

// AttachRenderer connects a PixelRenderer to the console's PPU. The
// attachment survives a snapshot restore.
func (console *Console) AttachRenderer(renderer ppu.PixelRenderer) {
	console.renderer = renderer
	console.PPU.AttachRenderer(renderer)
}

// AttachAudioTap connects a RegisterTap to the console's APU. The attachment
// survives a snapshot restore.
func (console *Console) AttachAudioTap(tap apu.RegisterTap) {
	console.audioTap = tap
	console.APU.AttachTap(tap)
}

// Reset emulates the reset switch on the console. The currently attached
// cartridge stays attached.
func (console *Console) Reset() error {
	console.Mem.Reset()
	console.CPU.Reset()
	console.PPU.Reset()
	console.APU.Reset()
	console.Cart.Reset()
	console.io.reset()

	console.CpuCycles = 0
	console.PpuDots = 0

	return console.CPU.LoadPCIndirect(cpubus.Reset)
}
