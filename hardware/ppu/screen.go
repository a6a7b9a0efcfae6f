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
	"gophernes/curated"
)

// Dimensions of the NTSC raster.
const (
	HorizPixels = 256
	Scanlines   = 240

	// the full raster including overscan and vblank
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	// named scanlines
	ScanlineVBlank    = 241
	ScanlinePreRender = 261
)

// InvalidFrameBufferAccess is the error pattern returned on access to a
// pixel outside the visible raster.
const InvalidFrameBufferAccess = "framebuffer: inaccessible pixel (%d, %d)"

// PixelRenderer implementations display, or otherwise work with, visual
// output from the PPU. For example, sdlplay.
type PixelRenderer interface {
	// NewFrame and NewScanline are called at the start of the frame/scanline
	NewFrame(frameNum int) error
	NewScanline(scanline int) error

	// SetPixel is called for every visible pixel, in raster order
	SetPixel(x, y int, red, green, blue uint8) error
}

// FrameBuffer holds one frame of palette-resolved RGB pixels.
type FrameBuffer struct {
	pix []uint8
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		pix: make([]uint8, HorizPixels*Scanlines*3),
	}
}

// Snapshot creates a copy of the FrameBuffer in its current state.
func (fb *FrameBuffer) Snapshot() *FrameBuffer {
	n := NewFrameBuffer()
	copy(n.pix, fb.pix)
	return n
}

// Clear the framebuffer to black.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pix {
		fb.pix[i] = 0
	}
}

// SetPixel writes an RGB value into the framebuffer.
func (fb *FrameBuffer) SetPixel(x, y int, red, green, blue uint8) error {
	if x < 0 || x >= HorizPixels || y < 0 || y >= Scanlines {
		return curated.Errorf(InvalidFrameBufferAccess, x, y)
	}
	o := (y*HorizPixels + x) * 3
	fb.pix[o] = red
	fb.pix[o+1] = green
	fb.pix[o+2] = blue
	return nil
}

// Pixel returns the RGB value at the given coordinates.
func (fb *FrameBuffer) Pixel(x, y int) (uint8, uint8, uint8, error) {
	if x < 0 || x >= HorizPixels || y < 0 || y >= Scanlines {
		return 0, 0, 0, curated.Errorf(InvalidFrameBufferAccess, x, y)
	}
	o := (y*HorizPixels + x) * 3
	return fb.pix[o], fb.pix[o+1], fb.pix[o+2], nil
}

// Pixels returns the backing slice. Pixels are stored in raster order,
// three bytes per pixel.
func (fb *FrameBuffer) Pixels() []uint8 {
	return fb.pix
}
