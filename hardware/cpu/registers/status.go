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
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// 2A03.
type StatusRegister struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	DecimalMode      bool
	Break            bool
	Overflow         bool
	Sign             bool
}

// NewStatusRegister creates a new status register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	if sr.Sign {
		s.WriteString("N")
	} else {
		s.WriteString("n")
	}
	if sr.Overflow {
		s.WriteString("V")
	} else {
		s.WriteString("v")
	}
	s.WriteString("-")
	if sr.Break {
		s.WriteString("B")
	} else {
		s.WriteString("b")
	}
	if sr.DecimalMode {
		s.WriteString("D")
	} else {
		s.WriteString("d")
	}
	if sr.InterruptDisable {
		s.WriteString("I")
	} else {
		s.WriteString("i")
	}
	if sr.Zero {
		s.WriteString("Z")
	} else {
		s.WriteString("z")
	}
	if sr.Carry {
		s.WriteString("C")
	} else {
		s.WriteString("c")
	}
	return s.String()
}

// Label returns an identifying label for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0x00)
}

// Value returns the status register as an 8 bit value. Bit 5 is always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	v |= 0x20
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue sets the status register flags from an 8 bit value.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
