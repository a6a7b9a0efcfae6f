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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory.Bus type implements this interface and maps the read/write
// address to the correct memory area, meaning that CPU access need not care
// which part of memory it is reading or writing.
//
// Addresses should be mapped to their primary mirror in all cases.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the error pattern returned on access to an address the bus
// cannot service. The CPU treats it as a soft error, recording it in the
// execution result rather than halting the emulation.
const AddressError = "inaccessible address (%#04x)"

// NMI is the address where the non-maskable interrupt vector is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset vector is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt vector is stored.
const IRQ = uint16(0xfffe)

// BRK shares a vector with IRQ.
const BRK = IRQ
