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

// Package digest produces fingerprints of the emulation's video output.
// The Video type implements the ppu.PixelRenderer interface and folds every
// completed frame into a SHA-1 value. Fingerprints are chained: the value
// for a frame covers the pixels of that frame and the fingerprint of the
// frame before it, so a single hash stands for the whole history of a
// session. Useful for regression tests.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"

	"gophernes/hardware/ppu"
)

const pixelDepth = 3

// Video is an implementation of the ppu.PixelRenderer interface. It
// generates a SHA-1 value of the image every frame. It does not display the
// image anywhere.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}

	// the pixel array leaves room at the head for the previous frame's
	// fingerprint
	dig.pixels = make([]byte, sha1.Size+ppu.HorizPixels*ppu.Scanlines*pixelDepth)

	return dig
}

// Hash returns the current fingerprint as a printable string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the fingerprint chain.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the ppu.PixelRenderer interface. The fingerprint for
// the completed frame is folded into the chain here.
func (dig *Video) NewFrame(frameNum int) error {
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// NewScanline implements the ppu.PixelRenderer interface.
func (dig *Video) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the ppu.PixelRenderer interface.
func (dig *Video) SetPixel(x, y int, red, green, blue uint8) error {
	i := sha1.Size + (y*ppu.HorizPixels+x)*pixelDepth
	if i <= len(dig.pixels)-pixelDepth {
		dig.pixels[i] = red
		dig.pixels[i+1] = green
		dig.pixels[i+2] = blue
	}
	return nil
}
