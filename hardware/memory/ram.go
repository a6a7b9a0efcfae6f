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

package memory

import (
	"encoding/hex"

	"gophernes/hardware/memory/memorymap"
)

// RAM represents the 2KB of work RAM inside the NES console.
type RAM struct {
	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM() *RAM {
	ram := &RAM{
		RAM: make([]uint8, memorymap.MaskRAM+1),
	}
	return ram
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	for i := range ram.RAM {
		ram.RAM[i] = 0
	}
}

func (ram RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Read is an implementation of the Area interface. Address must be
// normalised.
func (ram RAM) Read(address uint16) (uint8, error) {
	return ram.RAM[address], nil
}

// Write is an implementation of the Area interface. Address must be
// normalised.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.RAM[address] = data
	return nil
}
