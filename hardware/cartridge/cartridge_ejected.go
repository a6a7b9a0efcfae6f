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

package cartridge

import (
	"gophernes/cartridgeloader"
	"gophernes/curated"
	"gophernes/hardware/memory/cpubus"
)

const ejectedName = "ejected"

// ejected implements the Mapper interface.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) ID() string {
	return ejectedName
}

func (cart *ejected) Snapshot() Mapper {
	n := *cart
	return &n
}

func (cart *ejected) Reset() {
}

func (cart *ejected) Read(addr uint16) (uint8, error) {
	return 0, curated.Errorf(cpubus.AddressError, addr)
}

func (cart *ejected) Write(addr uint16, data uint8) error {
	return curated.Errorf(cpubus.AddressError, addr)
}

func (cart *ejected) ReadPPU(addr uint16) uint8 {
	return 0
}

func (cart *ejected) WritePPU(addr uint16, data uint8) {
}

func (cart *ejected) Mirroring() cartridgeloader.Mirroring {
	return cartridgeloader.Horizontal
}

func (cart *ejected) NumBanks() int {
	return 0
}
