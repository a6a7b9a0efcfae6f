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

// Package input implements the two controller ports of the NES console.
//
// The standard controller is an eight-bit shift register. Writing an odd
// value to the strobe register makes the register follow the buttons;
// writing an even value freezes it, after which the CPU clocks the bits out
// one at a time by reading the port. After the eighth read the port
// returns one.
package input
