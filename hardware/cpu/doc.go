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

// Package cpu emulates the 2A03 microprocessor found in the NES. Like all
// 8-bit processors of the era, the 2A03 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// Instances of the CPU type require an instance of a cpubus.Memory
// implementation as the sole argument. The Memory interface defines the
// memory operations required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction.
//
// Let's assume mem is an instance of the Memory interface loaded with 2A03
// instructions.
//
//	mc := cpu.NewCPU(mem)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The console emulation uses this to run the PPU emulation three
// times for every CPU cycle - the CPU clock runs at 1.79MHz while the PPU
// clock runs at 5.37MHz.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more information. Very useful for debuggers.
//
// The NoFlowControl flag prevents the CPU from honouring "flow control"
// functions (ie. JMP, BNE, BEQ, etc.) which a disassembler can use to make
// sure it reaches every part of a program. See the instructions package for
// classifications.
package cpu
