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

// Package ppu implements the 2C02, the graphics chip of the NES console.
//
// The 2C02 draws one pixel per clock tick. A frame is 262 scanlines of 341
// dots each, with the visible picture being the first 256 dots of the first
// 240 scanlines. The Step() function advances the chip by exactly one dot
// and is called three times for every CPU cycle.
//
// The chip is driven by the eight registers it exposes to the CPU bus at
// 0x2000 to 0x2007. The scrolling model is the pair of 15 bit internal
// registers known as v and t, along with the fine x value and the first/
// second write toggle. Background pixels come from two 16 bit shift
// registers fed every eight dots by the nametable/attribute/pattern fetch
// cadence. Sprites for a scanline are found during the previous scanline
// and their patterns held in eight latches.
//
// Completed pixels go to the FrameBuffer and, when one is attached, to a
// PixelRenderer. A renderer receives every pixel as it is produced, the way
// a television receives a video signal.
package ppu
