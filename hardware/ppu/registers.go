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

package ppu

// Read is an implementation of the memory.Area interface. The address has
// already been folded onto the primary register at 0x2000 to 0x2007.
// Reading a write-only register returns the value last seen on the data
// bus.
func (ppu *PPU) Read(address uint16) (uint8, error) {
	switch address {
	case 0x2002:
		return ppu.readStatus(), nil
	case 0x2004:
		return ppu.readOAMData(), nil
	case 0x2007:
		return ppu.readData(), nil
	}
	return ppu.busLatch, nil
}

// Write is an implementation of the memory.Area interface. The address has
// already been folded onto the primary register at 0x2000 to 0x2007.
func (ppu *PPU) Write(address uint16, data uint8) error {
	ppu.busLatch = data

	switch address {
	case 0x2000:
		ppu.writeControl(data)
	case 0x2001:
		ppu.writeMask(data)
	case 0x2003:
		ppu.oamAddr = data
	case 0x2004:
		ppu.writeOAMData(data)
	case 0x2005:
		ppu.writeScroll(data)
	case 0x2006:
		ppu.writeAddress(data)
	case 0x2007:
		ppu.writeData(data)
	}

	return nil
}

// 0x2000 PPUCTRL.
//
// t: ....BA.. ........ <- d: ......BA
func (ppu *PPU) writeControl(data uint8) {
	ppu.ctrlNameTable = data & 0x03
	ppu.ctrlIncrement = (data >> 2) & 0x01
	ppu.ctrlSpriteTable = (data >> 3) & 0x01
	ppu.ctrlBackgroundTable = (data >> 4) & 0x01
	ppu.ctrlSpriteSize = (data >> 5) & 0x01
	ppu.ctrlMasterSlave = (data >> 6) & 0x01

	ppu.nmiOutput = data&0x80 == 0x80
	ppu.nmiChange()

	ppu.t = (ppu.t & 0xf3ff) | (uint16(data&0x03) << 10)
}

// 0x2001 PPUMASK.
func (ppu *PPU) writeMask(data uint8) {
	ppu.maskGrayscale = data & 0x01
	ppu.maskShowLeftBkgnd = (data >> 1) & 0x01
	ppu.maskShowLeftSprite = (data >> 2) & 0x01
	ppu.maskShowBkgnd = (data >> 3) & 0x01
	ppu.maskShowSprites = (data >> 4) & 0x01
}

// 0x2002 PPUSTATUS. Reading clears the vblank flag and resets the
// first/second write toggle.
func (ppu *PPU) readStatus() uint8 {
	result := ppu.busLatch & 0x1f
	if ppu.statusSpriteOverflow {
		result |= 0x20
	}
	if ppu.statusSpriteZeroHit {
		result |= 0x40
	}
	if ppu.nmiOccurred {
		result |= 0x80
	}
	ppu.nmiOccurred = false
	ppu.nmiChange()
	ppu.w = false
	return result
}

// 0x2004 OAMDATA (read). The three unimplemented bits of the attribute
// byte read back as zero.
func (ppu *PPU) readOAMData() uint8 {
	data := ppu.oam[ppu.oamAddr]
	if ppu.oamAddr&0x03 == 0x02 {
		data &= 0xe3
	}
	return data
}

// 0x2004 OAMDATA (write).
func (ppu *PPU) writeOAMData(data uint8) {
	ppu.oam[ppu.oamAddr] = data
	ppu.oamAddr++
}

// 0x2005 PPUSCROLL. First write takes the horizontal position, second the
// vertical.
//
//	first:  t: ....... ...ABCDE <- d: ABCDE...
//	        x:              FGH <- d: .....FGH
//	second: t: .CBA..HG FED.... <- d: HGFEDCBA
func (ppu *PPU) writeScroll(data uint8) {
	if !ppu.w {
		ppu.t = (ppu.t & 0xffe0) | (uint16(data) >> 3)
		ppu.x = data & 0x07
		ppu.w = true
	} else {
		ppu.t = (ppu.t & 0x8fff) | (uint16(data&0x07) << 12)
		ppu.t = (ppu.t & 0xfc1f) | (uint16(data&0xf8) << 2)
		ppu.w = false
	}
}

// 0x2006 PPUADDR. Two writes, high byte first. The second write copies t
// to v in full.
func (ppu *PPU) writeAddress(data uint8) {
	if !ppu.w {
		ppu.t = (ppu.t & 0x80ff) | (uint16(data&0x3f) << 8)
		ppu.w = true
	} else {
		ppu.t = (ppu.t & 0xff00) | uint16(data)
		ppu.v = ppu.t
		ppu.w = false
	}
}

// 0x2007 PPUDATA (read). Reads below the palette area return the content
// of the internal read buffer, with the buffer refilled from the address
// just read. Palette reads are immediate but refill the buffer from the
// nametable mirror underneath.
func (ppu *PPU) readData() uint8 {
	value := ppu.readVRAM(ppu.v)

	if ppu.v&0x3fff < 0x3f00 {
		value, ppu.readBuffer = ppu.readBuffer, value
	} else {
		ppu.readBuffer = ppu.readVRAM(ppu.v - 0x1000)
	}

	ppu.incrementAddress()
	return value
}

// 0x2007 PPUDATA (write).
func (ppu *PPU) writeData(data uint8) {
	ppu.writeVRAM(ppu.v, data)
	ppu.incrementAddress()
}

// every access to 0x2007 moves v by the amount selected in PPUCTRL.
func (ppu *PPU) incrementAddress() {
	if ppu.ctrlIncrement == 0 {
		ppu.v++
	} else {
		ppu.v += 32
	}
}
