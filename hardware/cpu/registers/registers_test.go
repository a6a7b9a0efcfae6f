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

package registers_test

import (
	"testing"

	"gophernes/hardware/cpu/registers"
	"gophernes/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.IsNegative(), false)

	r.Load(0xff)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), true)

	// addition without carry
	carry, overflow := r.Add(1, false)
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// addition with carry
	r.Load(0xfe)
	carry, overflow = r.Add(1, true)
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// signed overflow. 0x7f + 0x01 = 0x80 which is a sign change
	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
}

func TestSubtract(t *testing.T) {
	r := registers.NewRegister(0x05, "A")

	// carry flag is set before subtraction when there is no borrow
	carry, overflow := r.Subtract(0x03, true)
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// borrow. carry flag clears
	r.Load(0x02)
	carry, _ = r.Subtract(0x03, true)
	test.Equate(t, r.Value(), 0xff)
	test.Equate(t, carry, false)
}

func TestLogicalOperators(t *testing.T) {
	r := registers.NewRegister(0x0f, "A")

	r.AND(0x33)
	test.Equate(t, r.Value(), 0x03)

	r.ORA(0xf0)
	test.Equate(t, r.Value(), 0xf3)

	r.EOR(0xff)
	test.Equate(t, r.Value(), 0x0c)
}

func TestShiftsAndRotates(t *testing.T) {
	r := registers.NewRegister(0x81, "A")

	carry := r.ASL()
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, carry, true)

	carry = r.LSR()
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, carry, false)

	carry = r.ROL(true)
	test.Equate(t, r.Value(), 0x03)
	test.Equate(t, carry, false)

	carry = r.ROR(false)
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, carry, true)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x8000)
	test.Equate(t, pc.Address(), 0x8000)

	pc.Add(0x02)
	test.Equate(t, pc.Address(), 0x8002)

	// program counter wraps around at the top of the address space
	pc.Load(0xffff)
	pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.Equate(t, sp.Value(), 0xfd)
	test.Equate(t, sp.Address(), 0x01fd)

	// stack pointer wraps around inside page one
	sp.Load(0x00)
	sp.Decrement()
	test.Equate(t, sp.Value(), 0xff)
	test.Equate(t, sp.Address(), 0x01ff)
	sp.Increment()
	test.Equate(t, sp.Value(), 0x00)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// bit 5 of the status register is always set
	test.Equate(t, sr.Value(), 0x20)

	sr.Carry = true
	sr.Zero = true
	sr.Sign = true
	test.Equate(t, sr.Value(), 0xa3)

	sr.FromValue(0x5f)
	test.Equate(t, sr.Sign, false)
	test.Equate(t, sr.Overflow, true)
	test.Equate(t, sr.Break, true)
	test.Equate(t, sr.DecimalMode, true)
	test.Equate(t, sr.InterruptDisable, true)
	test.Equate(t, sr.Zero, true)
	test.Equate(t, sr.Carry, true)

	// round trip preserves the always-set bit
	test.Equate(t, sr.Value(), 0x7f)
}
