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

// Package registers implements the register types as required by the 2A03
// version of the 6502. The Register type is used for the 8 bit accumulator
// and index registers and also provides the ALU helpers used by the CPU's
// arithmetic and shift instructions. ProgramCounter and StackPointer wrap the
// 16 bit and paged 8 bit address registers. StatusRegister stores the flags
// individually, converting to and from the packed 8 bit form only when the
// status register is pushed to or pulled from the stack.
//
// Note that unlike other members of the 6502 family the 2A03 has no decimal
// mode: the decimal flag can be set and cleared, and survives a push/pull
// round trip, but has no effect on arithmetic. The Add and Subtract functions
// are therefore always binary.
package registers
