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

package execution

import (
	"fmt"
	"strings"

	"gophernes/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address in memory where the instruction was found, a
// reference to the instruction definition, and other execution details.
type Result struct {
	// address of instruction
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the data that follows the opcode in the instruction. sixteen bits
	// even when the instruction operand is a single byte
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but may differ because of page faults or taken branches
	Cycles int

	// the number of bytes read during instruction decode. should be the same
	// as Defn.Bytes when the instruction has completed
	ByteCount int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether branch instruction test passed (ie. branch was taken)
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug string

	// error string. non-empty if an error was encountered during execution
	Error string

	// whether this record has been finalised. values in the other fields may
	// be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.Cycles = 0
	r.ByteCount = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.CPUBug = ""
	r.Error = ""
	r.Final = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return "undecoded instruction"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x %s", r.Address, r.Defn.Operator))

	var data string
	if r.Defn.Bytes == 2 {
		data = fmt.Sprintf("$%02x", r.InstructionData)
	} else if r.Defn.Bytes == 3 {
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		data = ""
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	}

	if data != "" {
		s.WriteString(" ")
		s.WriteString(data)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}

	if r.CPUBug != "" {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
