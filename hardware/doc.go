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

// Package hardware is the coordinating package for the NES console. The
// Console type groups the CPU, PPU, APU, memory bus, cartridge port and
// controller ports and drives them in lockstep: every CPU cycle is followed
// by exactly three PPU dots, arranged through the cycle callback of the
// CPU's ExecuteInstruction() function.
//
// The console is advanced one instruction at a time with Step() or one
// video frame at a time with RunFrame(). OAM DMA is arbitrated here too,
// suspending the CPU for 513 or 514 cycles while the rest of the console
// continues to run.
//
// A console can be saved and restored at any instruction boundary through
// the Snapshot() and Plumb() functions. The State value returned by
// Snapshot() shares nothing with the live console, which makes it suitable
// as a rewind or save-state unit.
package hardware
