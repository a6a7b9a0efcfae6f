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

import (
	"fmt"

	"gophernes/cartridgeloader"
)

// VideoBus is the PPU's view of the cartridge. Pattern table addresses
// (below 0x2000) are serviced by the cartridge's CHR data and the current
// nametable arrangement is decided by the cartridge's mapper.
type VideoBus interface {
	ReadPPU(addr uint16) uint8
	WritePPU(addr uint16, data uint8)
	Mirroring() cartridgeloader.Mirroring
}

// nmiDelayDots is the number of dots between the vblank flag rising with
// NMIs enabled and the NMI line reaching the CPU.
const nmiDelayDots = 15

// PPU implements the 2C02 found in the NTSC NES console.
type PPU struct {
	bus VideoBus

	// the current rendering position
	Frame    int
	Scanline int
	Dot      int

	// memory owned by the chip. four nametables are allocated but only
	// four-screen cartridges address more than the first two
	vram    []uint8
	palette []uint8
	oam     []uint8

	screen   *FrameBuffer
	renderer PixelRenderer

	// value of the most recent register write. reads of the write-only
	// registers see this value on the data bus
	busLatch uint8

	// nmi signalling
	nmiOccurred bool
	nmiOutput   bool
	nmiPrevious bool
	nmiDelay    int
	nmiSignal   bool

	// internal scroll registers. v is the current vram address, t the
	// address of the top-left corner of the screen, x the fine x scroll
	// and w the first/second write toggle shared by 0x2005 and 0x2006
	v uint16
	t uint16
	x uint8
	w bool

	// the pre-render scanline of odd frames is one dot short when
	// rendering is enabled
	oddFrame bool

	// background pipeline. the fetched bytes are combined into tileData,
	// four bits per pixel, covering the next sixteen pixels
	nameTableByte uint8
	attributeByte uint8
	lowTileByte   uint8
	highTileByte  uint8
	tileData      uint64

	// sprites selected for the current scanline
	spriteCount      int
	spritePatterns   [8]uint32
	spritePositions  [8]uint8
	spritePriorities [8]uint8
	spriteIndexes    [8]uint8

	// 0x2000 PPUCTRL
	ctrlNameTable       uint8
	ctrlIncrement       uint8
	ctrlSpriteTable     uint8
	ctrlBackgroundTable uint8
	ctrlSpriteSize      uint8
	ctrlMasterSlave     uint8

	// 0x2001 PPUMASK
	maskGrayscale      uint8
	maskShowLeftBkgnd  uint8
	maskShowLeftSprite uint8
	maskShowBkgnd      uint8
	maskShowSprites    uint8

	// 0x2002 PPUSTATUS
	statusSpriteOverflow bool
	statusSpriteZeroHit  bool

	// 0x2003 OAMADDR
	oamAddr uint8

	// 0x2007 reads of non-palette addresses go through a one-read-deep
	// buffer
	readBuffer uint8
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(bus VideoBus) *PPU {
	ppu := &PPU{
		bus:     bus,
		vram:    make([]uint8, 4096),
		palette: make([]uint8, 32),
		oam:     make([]uint8, 256),
		screen:  NewFrameBuffer(),
	}
	ppu.Reset()
	return ppu
}

// Snapshot creates a copy of the PPU in its current state.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	n.vram = make([]uint8, len(ppu.vram))
	copy(n.vram, ppu.vram)
	n.palette = make([]uint8, len(ppu.palette))
	copy(n.palette, ppu.palette)
	n.oam = make([]uint8, len(ppu.oam))
	copy(n.oam, ppu.oam)
	n.screen = ppu.screen.Snapshot()
	return &n
}

// Plumb a new VideoBus into the PPU. Called after the cartridge has been
// restored from a snapshot.
func (ppu *PPU) Plumb(bus VideoBus) {
	ppu.bus = bus
}

// AttachRenderer connects a PixelRenderer to the PPU. A nil value detaches
// the current renderer.
func (ppu *PPU) AttachRenderer(renderer PixelRenderer) {
	ppu.renderer = renderer
}

// Screen returns the framebuffer the PPU is drawing into.
func (ppu *PPU) Screen() *FrameBuffer {
	return ppu.screen
}

// Reset the PPU to its power-on state.
func (ppu *PPU) Reset() {
	ppu.Frame = 0
	ppu.Scanline = 240
	ppu.Dot = 340

	ppu.busLatch = 0
	ppu.nmiOccurred = false
	ppu.nmiOutput = false
	ppu.nmiPrevious = false
	ppu.nmiDelay = 0
	ppu.nmiSignal = false

	ppu.v = 0
	ppu.t = 0
	ppu.x = 0
	ppu.w = false
	ppu.oddFrame = false

	ppu.writeControl(0)
	ppu.writeMask(0)
	ppu.oamAddr = 0
	ppu.readBuffer = 0

	ppu.statusSpriteOverflow = false
	ppu.statusSpriteZeroHit = false
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("FRAME=%d SL=%d DOT=%d V=%04x T=%04x", ppu.Frame, ppu.Scanline, ppu.Dot, ppu.v, ppu.t)
}

// PollNMI returns true at most once for every vblank in which the chip has
// been told to signal the interrupt.
func (ppu *PPU) PollNMI() bool {
	s := ppu.nmiSignal
	ppu.nmiSignal = false
	return s
}

// RenderingEnabled returns true when either the background or sprite layer
// is switched on.
func (ppu *PPU) RenderingEnabled() bool {
	return ppu.maskShowBkgnd != 0 || ppu.maskShowSprites != 0
}

// advance the rendering position by one dot.
func (ppu *PPU) tick() {
	if ppu.nmiDelay > 0 {
		ppu.nmiDelay--
		if ppu.nmiDelay == 0 && ppu.nmiOutput && ppu.nmiOccurred {
			ppu.nmiSignal = true
		}
	}

	if ppu.RenderingEnabled() {
		// odd frames lose the idle dot at the end of the pre-render line
		if ppu.oddFrame && ppu.Scanline == ScanlinePreRender && ppu.Dot == 339 {
			ppu.Dot = 0
			ppu.Scanline = 0
			ppu.Frame++
			ppu.oddFrame = !ppu.oddFrame
			return
		}
	}

	ppu.Dot++
	if ppu.Dot > 340 {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline > ScanlinePreRender {
			ppu.Scanline = 0
			ppu.Frame++
			ppu.oddFrame = !ppu.oddFrame
		}
	}
}

// Step advances the PPU by one dot.
func (ppu *PPU) Step() error {
	ppu.tick()

	if ppu.renderer != nil && ppu.Dot == 0 {
		if ppu.Scanline == 0 {
			if err := ppu.renderer.NewFrame(ppu.Frame); err != nil {
				return err
			}
		}
		if ppu.Scanline < Scanlines {
			if err := ppu.renderer.NewScanline(ppu.Scanline); err != nil {
				return err
			}
		}
	}

	visibleLine := ppu.Scanline < Scanlines
	preLine := ppu.Scanline == ScanlinePreRender
	renderLine := visibleLine || preLine

	visibleDot := ppu.Dot >= 1 && ppu.Dot <= 256
	prefetchDot := ppu.Dot >= 321 && ppu.Dot <= 336
	fetchDot := visibleDot || prefetchDot

	if ppu.RenderingEnabled() {
		if visibleLine && visibleDot {
			if err := ppu.renderPixel(); err != nil {
				return err
			}
		}

		// the eight dot fetch cadence. each pass reads one nametable byte,
		// one attribute byte and the two pattern bytes for the tile row,
		// then loads the shift register
		if renderLine && fetchDot {
			ppu.tileData <<= 4
			switch ppu.Dot % 8 {
			case 1:
				ppu.fetchNameTableByte()
			case 3:
				ppu.fetchAttributeByte()
			case 5:
				ppu.fetchLowTileByte()
			case 7:
				ppu.fetchHighTileByte()
			case 0:
				ppu.storeTileData()
			}
		}

		if preLine && ppu.Dot >= 280 && ppu.Dot <= 304 {
			ppu.copyY()
		}

		if renderLine {
			if fetchDot && ppu.Dot%8 == 0 {
				ppu.incrementX()
			}
			if ppu.Dot == 256 {
				ppu.incrementY()
			}
			if ppu.Dot == 257 {
				ppu.copyX()
			}
		}

		// sprites for the next scanline are found while the current one is
		// still being drawn
		if ppu.Dot == 257 {
			if visibleLine {
				ppu.evaluateSprites()
			} else {
				ppu.spriteCount = 0
			}
		}
	} else if visibleLine && visibleDot {
		if err := ppu.renderBackdrop(); err != nil {
			return err
		}
	}

	if ppu.Scanline == ScanlineVBlank && ppu.Dot == 1 {
		ppu.setVBlank()
	}

	if preLine && ppu.Dot == 1 {
		ppu.clearVBlank()
		ppu.statusSpriteZeroHit = false
		ppu.statusSpriteOverflow = false
	}

	return nil
}

func (ppu *PPU) setVBlank() {
	ppu.nmiOccurred = true
	ppu.nmiChange()
}

func (ppu *PPU) clearVBlank() {
	ppu.nmiOccurred = false
	ppu.nmiChange()
}

func (ppu *PPU) nmiChange() {
	nmi := ppu.nmiOutput && ppu.nmiOccurred
	if nmi && !ppu.nmiPrevious {
		ppu.nmiDelay = nmiDelayDots
	}
	ppu.nmiPrevious = nmi
}

// nametableIndex folds an address in the nametable space into the vram
// array according to the cartridge's mirroring.
func (ppu *PPU) nametableIndex(addr uint16) uint16 {
	r := addr & 0x0fff
	table := r >> 10
	offset := r & 0x03ff

	var lookup [4]uint16
	switch ppu.bus.Mirroring() {
	case cartridgeloader.Horizontal:
		lookup = [4]uint16{0, 0, 1, 1}
	case cartridgeloader.Vertical:
		lookup = [4]uint16{0, 1, 0, 1}
	case cartridgeloader.OneScreenLower:
		lookup = [4]uint16{0, 0, 0, 0}
	case cartridgeloader.OneScreenUpper:
		lookup = [4]uint16{1, 1, 1, 1}
	case cartridgeloader.FourScreen:
		lookup = [4]uint16{0, 1, 2, 3}
	}

	return lookup[table]<<10 | offset
}

// readVRAM reads from the PPU's own address space.
func (ppu *PPU) readVRAM(addr uint16) uint8 {
	addr &= 0x3fff
	switch {
	case addr < 0x2000:
		return ppu.bus.ReadPPU(addr)
	case addr < 0x3f00:
		return ppu.vram[ppu.nametableIndex(addr)]
	}
	return ppu.palette[paletteIndex(addr)]
}

// writeVRAM writes to the PPU's own address space.
func (ppu *PPU) writeVRAM(addr uint16, data uint8) {
	addr &= 0x3fff
	switch {
	case addr < 0x2000:
		ppu.bus.WritePPU(addr, data)
	case addr < 0x3f00:
		ppu.vram[ppu.nametableIndex(addr)] = data
	default:
		ppu.palette[paletteIndex(addr)] = data
	}
}

func (ppu *PPU) fetchNameTableByte() {
	ppu.nameTableByte = ppu.readVRAM(0x2000 | (ppu.v & 0x0fff))
}

func (ppu *PPU) fetchAttributeByte() {
	v := ppu.v
	addr := 0x23c0 | (v & 0x0c00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	shift := ((v >> 4) & 0x04) | (v & 0x02)
	ppu.attributeByte = ((ppu.readVRAM(addr) >> shift) & 0x03) << 2
}

func (ppu *PPU) patternRowAddr() uint16 {
	fineY := (ppu.v >> 12) & 0x07
	return 0x1000*uint16(ppu.ctrlBackgroundTable) + uint16(ppu.nameTableByte)*16 + fineY
}

func (ppu *PPU) fetchLowTileByte() {
	ppu.lowTileByte = ppu.readVRAM(ppu.patternRowAddr())
}

func (ppu *PPU) fetchHighTileByte() {
	ppu.highTileByte = ppu.readVRAM(ppu.patternRowAddr() + 8)
}

// storeTileData folds the fetched bytes into the low half of the shift
// register. four bits per pixel: two from the pattern bytes and two from
// the attribute byte.
func (ppu *PPU) storeTileData() {
	var data uint32
	for i := 0; i < 8; i++ {
		p1 := (ppu.lowTileByte & 0x80) >> 7
		p2 := (ppu.highTileByte & 0x80) >> 6
		ppu.lowTileByte <<= 1
		ppu.highTileByte <<= 1
		data <<= 4
		data |= uint32(ppu.attributeByte | p1 | p2)
	}
	ppu.tileData |= uint64(data)
}

// copyX copies the horizontal position bits from t to v.
//
// v: ....A.. ...BCDEF <- t: ....A.. ...BCDEF
func (ppu *PPU) copyX() {
	ppu.v = (ppu.v & 0xfbe0) | (ppu.t & 0x041f)
}

// copyY copies the vertical position bits from t to v.
//
// v: GHIA.BC DEF..... <- t: GHIA.BC DEF.....
func (ppu *PPU) copyY() {
	ppu.v = (ppu.v & 0x841f) | (ppu.t & 0x7be0)
}

// incrementX advances coarse x, wrapping into the next horizontal
// nametable.
func (ppu *PPU) incrementX() {
	if ppu.v&0x001f == 31 {
		ppu.v &= 0xffe0
		ppu.v ^= 0x0400
	} else {
		ppu.v++
	}
}

// incrementY advances fine y, overflowing into coarse y. Coarse y wraps
// into the next vertical nametable from row 29; rows 30 and 31 are the
// attribute rows and wrap without switching nametable.
func (ppu *PPU) incrementY() {
	if ppu.v&0x7000 != 0x7000 {
		ppu.v += 0x1000
	} else {
		ppu.v &= 0x8fff
		y := (ppu.v & 0x03e0) >> 5
		if y == 29 {
			y = 0
			ppu.v ^= 0x0800
		} else if y == 31 {
			y = 0
		} else {
			y++
		}
		ppu.v = (ppu.v & 0xfc1f) | (y << 5)
	}
}

// backgroundPixel returns the four bit palette index for the background
// layer at the current dot.
func (ppu *PPU) backgroundPixel() uint8 {
	if ppu.maskShowBkgnd == 0 {
		return 0
	}
	data := uint32(ppu.tileData>>32) >> ((7 - ppu.x) * 4)
	return uint8(data & 0x0f)
}

// spritePixel returns the sprite slot and four bit palette index for the
// sprite layer at the current dot.
func (ppu *PPU) spritePixel() (int, uint8) {
	if ppu.maskShowSprites == 0 {
		return 0, 0
	}
	for i := 0; i < ppu.spriteCount; i++ {
		offset := ppu.Dot - 1 - int(ppu.spritePositions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		color := uint8((ppu.spritePatterns[i] >> uint8((7-offset)*4)) & 0x0f)
		if color%4 == 0 {
			continue
		}
		return i, color
	}
	return 0, 0
}

func (ppu *PPU) renderPixel() error {
	x := ppu.Dot - 1
	y := ppu.Scanline

	background := ppu.backgroundPixel()
	i, sprite := ppu.spritePixel()

	if x < 8 && ppu.maskShowLeftBkgnd == 0 {
		background = 0
	}
	if x < 8 && ppu.maskShowLeftSprite == 0 {
		sprite = 0
	}

	b := background%4 != 0
	s := sprite%4 != 0

	var color uint8
	switch {
	case !b && !s:
		color = 0
	case !b && s:
		color = sprite | 0x10
	case b && !s:
		color = background
	default:
		// an opaque sprite zero pixel over an opaque background pixel is
		// the sprite zero hit. the flag never rises at x=255
		if ppu.spriteIndexes[i] == 0 && x < 255 {
			ppu.statusSpriteZeroHit = true
		}
		if ppu.spritePriorities[i] == 0 {
			color = sprite | 0x10
		} else {
			color = background
		}
	}

	rgb := PaletteNTSC[ppu.palette[paletteIndex(uint16(color))]&0x3f]

	if err := ppu.screen.SetPixel(x, y, rgb[0], rgb[1], rgb[2]); err != nil {
		return err
	}
	if ppu.renderer != nil {
		return ppu.renderer.SetPixel(x, y, rgb[0], rgb[1], rgb[2])
	}
	return nil
}

// renderBackdrop fills the current dot while rendering is disabled. the
// backdrop is the universal background color unless the vram address is
// parked in palette space, in which case the entry it points at shows
// through.
func (ppu *PPU) renderBackdrop() error {
	x := ppu.Dot - 1
	y := ppu.Scanline

	entry := ppu.palette[0]
	if addr := ppu.v & 0x3fff; addr >= 0x3f00 {
		entry = ppu.palette[paletteIndex(addr)]
	}

	rgb := PaletteNTSC[entry&0x3f]
	if err := ppu.screen.SetPixel(x, y, rgb[0], rgb[1], rgb[2]); err != nil {
		return err
	}
	if ppu.renderer != nil {
		return ppu.renderer.SetPixel(x, y, rgb[0], rgb[1], rgb[2])
	}
	return nil
}

// evaluateSprites finds the sprites that touch the next scanline. Only
// eight sprites can be latched; a ninth raises the overflow flag. The
// hardware's buggy overflow scan is not reproduced, the flag rises on the
// simple count.
func (ppu *PPU) evaluateSprites() {
	h := 8
	if ppu.ctrlSpriteSize != 0 {
		h = 16
	}

	count := 0
	for i := 0; i < 64; i++ {
		y := ppu.oam[i*4+0]
		a := ppu.oam[i*4+2]
		x := ppu.oam[i*4+3]
		row := ppu.Scanline - int(y)
		if row < 0 || row >= h {
			continue
		}
		if count < 8 {
			ppu.spritePatterns[count] = ppu.fetchSpritePattern(i, row)
			ppu.spritePositions[count] = x
			ppu.spritePriorities[count] = (a >> 5) & 0x01
			ppu.spriteIndexes[count] = uint8(i)
		}
		count++
	}

	if count > 8 {
		count = 8
		ppu.statusSpriteOverflow = true
	}
	ppu.spriteCount = count
}

// fetchSpritePattern reads one row of a sprite's pattern, returning it as
// eight four-bit palette indexes with flipping already applied.
func (ppu *PPU) fetchSpritePattern(i int, row int) uint32 {
	tile := ppu.oam[i*4+1]
	attribute := ppu.oam[i*4+2]

	var addr uint16
	if ppu.ctrlSpriteSize == 0 {
		if attribute&0x80 == 0x80 {
			row = 7 - row
		}
		addr = 0x1000*uint16(ppu.ctrlSpriteTable) + uint16(tile)*16 + uint16(row)
	} else {
		// 8x16 sprites take their pattern table from bit 0 of the tile
		// number
		if attribute&0x80 == 0x80 {
			row = 15 - row
		}
		table := tile & 0x01
		tile &= 0xfe
		if row > 7 {
			tile++
			row -= 8
		}
		addr = 0x1000*uint16(table) + uint16(tile)*16 + uint16(row)
	}

	lowTileByte := ppu.readVRAM(addr)
	highTileByte := ppu.readVRAM(addr + 8)
	high := (attribute & 0x03) << 2

	var data uint32
	for j := 0; j < 8; j++ {
		var p1, p2 uint8
		if attribute&0x40 == 0x40 {
			p1 = lowTileByte & 0x01
			p2 = (highTileByte & 0x01) << 1
			lowTileByte >>= 1
			highTileByte >>= 1
		} else {
			p1 = (lowTileByte & 0x80) >> 7
			p2 = (highTileByte & 0x80) >> 6
			lowTileByte <<= 1
			highTileByte <<= 1
		}
		data <<= 4
		data |= uint32(high | p1 | p2)
	}

	return data
}
