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

package hardware

import (
	"gophernes/curated"
	"gophernes/hardware/memory/cpubus"
)

// register addresses in the io area that are not serviced by the APU.
const (
	addrOAMDMA    = uint16(0x4014)
	addrAPUStatus = uint16(0x4015)
	addrJOY1      = uint16(0x4016)
	addrJOY2      = uint16(0x4017)
)

// dmaNone indicates that no OAM DMA request is pending.
const dmaNone = -1

// ioBus implements the memory.Area interface for the io area of the memory
// map, 0x4000 to 0x4017. access to the controller ports and the APU is
// routed from here. a write to the OAMDMA register is latched and serviced
// by the console at the end of the CPU cycle in which the write occurred.
type ioBus struct {
	console *Console

	// the page requested by the most recent OAMDMA write, or dmaNone
	dmaPage int
}

func (io *ioBus) reset() {
	io.dmaPage = dmaNone
}

// Read implements the memory.Area interface.
func (io *ioBus) Read(address uint16) (uint8, error) {
	switch address {
	case addrJOY1:
		return io.console.Controller0.Read(), nil
	case addrJOY2:
		return io.console.Controller1.Read(), nil
	case addrAPUStatus:
		return io.console.APU.Read(address)
	}

	// everything else in the area is write-only
	return 0, curated.Errorf(cpubus.AddressError, address)
}

// Write implements the memory.Area interface.
func (io *ioBus) Write(address uint16, data uint8) error {
	switch address {
	case addrOAMDMA:
		io.dmaPage = int(data)
		return nil
	case addrJOY1:
		// the strobe line is shared by both controller ports
		io.console.Controller0.Strobe(data)
		io.console.Controller1.Strobe(data)
		return nil
	}

	// every other register in the area belongs to the APU
	return io.console.APU.Write(address, data)
}
