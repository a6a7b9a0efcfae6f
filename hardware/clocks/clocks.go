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

// Package clocks defines the constant values that describe the speed of the
// clocks in the NES console.
//
// The master clock is divided by 12 for the CPU and by 4 for the PPU, which
// gives the fixed ratio of three PPU dots for every CPU cycle. That ratio is
// relied upon throughout the emulation and is expressed here as
// PPUDotsPerCPUCycle.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

// Clock frequencies in MHz for the NTSC console.
const (
	NTSCMaster = 21.477272
	NTSCCpu    = NTSCMaster / 12
	NTSCPpu    = NTSCMaster / 4
)

// PPUDotsPerCPUCycle is the number of PPU dots that elapse for every CPU
// cycle. The emulation interleaves the two chips at exactly this ratio.
const PPUDotsPerCPUCycle = 3

// FramesPerSecond is the nominal NTSC refresh rate.
const FramesPerSecond = 60.0988
