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

package apu_test

import (
	"testing"

	"gophernes/hardware/apu"
	"gophernes/test"
)

type mockTap struct {
	events []apu.WriteEvent
}

func (m *mockTap) AudioWrite(e apu.WriteEvent) error {
	m.events = append(m.events, e)
	return nil
}

func TestWriteEvents(t *testing.T) {
	a := apu.NewAPU()
	tap := &mockTap{}
	a.AttachTap(tap)

	err := a.Write(0x4000, 0x30)
	test.ExpectedSuccess(t, err)

	// ten cycles pass before the next write
	for i := 0; i < 10; i++ {
		a.Step()
	}
	err = a.Write(0x4002, 0xfd)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(tap.events), 2)
	test.Equate(t, tap.events[0].Register, 0x4000)
	test.Equate(t, tap.events[0].Data, 0x30)
	test.Equate(t, tap.events[0].Cycle, 0)
	test.Equate(t, tap.events[1].Register, 0x4002)
	test.Equate(t, tap.events[1].Cycle, 10)
}

func TestFrameIRQ(t *testing.T) {
	a := apu.NewAPU()

	// the four step sequence raises the interrupt once per pass
	for i := 0; i < 29830; i++ {
		test.Equate(t, a.IRQState(), false)
		a.Step()
	}
	test.Equate(t, a.IRQState(), true)

	// reading the status register acknowledges it
	d, err := a.Read(0x4015)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d&0x40, 0x40)
	test.Equate(t, a.IRQState(), false)

	// inhibiting the interrupt stops the next pass from raising it
	err = a.Write(0x4017, 0x40)
	test.ExpectedSuccess(t, err)
	for i := 0; i < 29830*2; i++ {
		a.Step()
	}
	test.Equate(t, a.IRQState(), false)
}
