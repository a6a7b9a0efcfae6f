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
	"gophernes/hardware/apu"
	"gophernes/hardware/cartridge"
	"gophernes/hardware/cpu"
	"gophernes/hardware/input"
	"gophernes/hardware/memory"
	"gophernes/hardware/ppu"
)

// State is a snapshot of the console at an instruction boundary. It shares
// nothing with the console it was taken from and can be restored any number
// of times.
type State struct {
	CPU         *cpu.CPU
	Mem         *memory.Bus
	PPU         *ppu.PPU
	APU         *apu.APU
	Mapper      cartridge.Mapper
	Controller0 *input.Controller
	Controller1 *input.Controller

	CpuCycles uint64
	PpuDots   uint64
}

// Snapshot creates a copy of the console in its current state. Snapshot
// should only be called between calls to Step().
func (console *Console) Snapshot() *State {
	return &State{
		CPU:         console.CPU.Snapshot(),
		Mem:         console.Mem.Snapshot(),
		PPU:         console.PPU.Snapshot(),
		APU:         console.APU.Snapshot(),
		Mapper:      console.Cart.GetMapper().Snapshot(),
		Controller0: console.Controller0.Snapshot(),
		Controller1: console.Controller1.Snapshot(),
		CpuCycles:   console.CpuCycles,
		PpuDots:     console.PpuDots,
	}
}

// Plumb the previously snapshotted state back into the console. The state
// itself is copied so the same State value can be plumbed again later.
// Output devices attached to the console are carried over to the restored
// console.
func (console *Console) Plumb(state *State) {
	console.CPU = state.CPU.Snapshot()
	console.Mem = state.Mem.Snapshot()
	console.PPU = state.PPU.Snapshot()
	console.APU = state.APU.Snapshot()
	console.Cart.Plumb(state.Mapper.Snapshot())
	console.Controller0 = state.Controller0.Snapshot()
	console.Controller1 = state.Controller1.Snapshot()
	console.CpuCycles = state.CpuCycles
	console.PpuDots = state.PpuDots

	// reattach the cross references between the restored chips
	console.CPU.Plumb(console.Mem)
	console.PPU.Plumb(console.Cart)
	console.Mem.Plumb(console.PPU, console.io, console.Cart)
	console.io.reset()

	// output devices stay with the console, not the state
	console.PPU.AttachRenderer(console.renderer)
	console.APU.Plumb(console.audioTap)
}
