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

package registers

import (
	"fmt"
)

// ProgramCounter represents the 16 bit program counter used by the 2A03.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter creates a new program counter with an initial value.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Label returns an identifying label for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

// Address returns the current value of the program counter as a uint16.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the program counter.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add value to the program counter.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}
