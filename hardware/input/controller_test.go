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

package input_test

import (
	"testing"

	"gophernes/hardware/input"
	"gophernes/test"
)

func TestShiftOrder(t *testing.T) {
	c := input.NewController()

	c.SetButton(input.A, true)
	c.SetButton(input.Start, true)

	// latch and freeze
	c.Strobe(0x01)
	c.Strobe(0x00)

	// buttons come out in the order A, B, select, start, up, down, left,
	// right
	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for _, w := range want {
		d := c.Read()
		test.Equate(t, d&0x01, w)

		// open bus on the upper bits
		test.Equate(t, d&0x40, 0x40)
	}

	// the register is empty. further reads return one
	test.Equate(t, c.Read()&0x01, 0x01)
	test.Equate(t, c.Read()&0x01, 0x01)
}

func TestStrobeHeldHigh(t *testing.T) {
	c := input.NewController()

	c.SetButton(input.A, true)
	c.Strobe(0x01)

	// while the strobe is high every read reports the state of A
	test.Equate(t, c.Read()&0x01, 0x01)
	test.Equate(t, c.Read()&0x01, 0x01)

	c.SetButton(input.A, false)
	test.Equate(t, c.Read()&0x01, 0x00)
}

func TestReleasedButton(t *testing.T) {
	c := input.NewController()

	c.SetButton(input.B, true)
	c.SetButton(input.B, false)
	c.Strobe(0x01)
	c.Strobe(0x00)

	test.Equate(t, c.Read()&0x01, 0x00)
	test.Equate(t, c.Read()&0x01, 0x00)
}
