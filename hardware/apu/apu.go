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

// Package apu implements the audio registers of the 2A03. Sound synthesis
// itself is left to an external unit: the package records every register
// write, timestamped with the CPU cycle it happened on, and forwards it to
// an attached RegisterTap. A synthesiser working from the event stream can
// reconstruct the audio exactly.
//
// The frame counter is the one part of the chip emulated here, because its
// interrupt is visible to the CPU.
package apu

// WriteEvent is one write to an audio register.
type WriteEvent struct {
	// the CPU cycle on which the write happened
	Cycle uint64

	Register uint16
	Data     uint8
}

// RegisterTap implementations receive every write to the audio registers
// as it happens. For example, an external synthesiser.
type RegisterTap interface {
	AudioWrite(e WriteEvent) error
}

// number of CPU cycles between frame counter interrupts in the four step
// mode.
//
// https://www.nesdev.org/wiki/APU_Frame_Counter
const frameIRQInterval = 29830

// APU implements the audio half of the 2A03.
type APU struct {
	tap RegisterTap

	// the most recent write to each register
	registers [0x18]uint8

	// the CPU cycle count used to timestamp write events
	cycles uint64

	// frame counter. the five step mode never raises the interrupt
	fiveStep   bool
	inhibitIRQ bool
	frameCount int
	frameIRQ   bool
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	return &APU{}
}

// Snapshot creates a copy of the APU in its current state. The tap is not
// carried into the copy.
func (a *APU) Snapshot() *APU {
	n := *a
	n.tap = nil
	return &n
}

// Plumb an existing tap into a restored APU.
func (a *APU) Plumb(tap RegisterTap) {
	a.tap = tap
}

// AttachTap connects a RegisterTap to the APU. A nil value detaches the
// current tap.
func (a *APU) AttachTap(tap RegisterTap) {
	a.tap = tap
}

// Reset the APU to its power-on state.
func (a *APU) Reset() {
	a.registers = [0x18]uint8{}
	a.cycles = 0
	a.fiveStep = false
	a.inhibitIRQ = false
	a.frameCount = 0
	a.frameIRQ = false
}

// Step advances the frame counter by one CPU cycle.
func (a *APU) Step() {
	a.cycles++
	a.frameCount++
	if a.frameCount >= frameIRQInterval {
		a.frameCount = 0
		if !a.fiveStep && !a.inhibitIRQ {
			a.frameIRQ = true
		}
	}
}

// IRQState returns true while the frame counter interrupt is pending.
func (a *APU) IRQState() bool {
	return a.frameIRQ
}

// Read is an implementation of the memory.Area interface. The only
// readable audio register is the status register.
func (a *APU) Read(address uint16) (uint8, error) {
	if address == 0x4015 {
		var status uint8
		if a.frameIRQ {
			status |= 0x40
		}

		// channel length counter bits follow the enable latch. the
		// synthesiser owns the real counters
		status |= a.registers[0x15] & 0x1f

		// reading the status register acknowledges the frame interrupt
		a.frameIRQ = false

		return status, nil
	}
	return 0, nil
}

// Write is an implementation of the memory.Area interface.
func (a *APU) Write(address uint16, data uint8) error {
	idx := address & 0x1f
	if int(idx) < len(a.registers) {
		a.registers[idx] = data
	}

	if address == 0x4017 {
		a.fiveStep = data&0x80 == 0x80
		a.inhibitIRQ = data&0x40 == 0x40
		if a.inhibitIRQ {
			a.frameIRQ = false
		}
		a.frameCount = 0
	}

	if a.tap != nil {
		return a.tap.AudioWrite(WriteEvent{
			Cycle:    a.cycles,
			Register: address,
			Data:     data,
		})
	}

	return nil
}
