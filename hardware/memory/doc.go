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

// Package memory implements the CPU-side memory system of the NES console.
//
// The Bus type is the only implementation of the cpubus.Memory interface
// used by the emulation. Every access is first passed through
// memorymap.MapAddress() so that mirrored addresses are folded onto their
// primary location before the correct memory area is consulted.
//
// The only memory area owned by the package is the console's 2KB of work
// RAM. The PPU register file, the IO area and the cartridge are attached by
// the console. Reads and writes to the unattached parts of the address space
// (and to the disabled 2A03 test-mode registers) return the
// cpubus.AddressError pattern, which the CPU records as a soft error.
package memory
