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

// Package sdlplay is a simple SDL presentation of the emulation. It
// implements the ppu.PixelRenderer interface and maps keyboard input onto
// the console's controller ports. It has no debugging niceties at all.
package sdlplay

import (
	"fmt"
	"unsafe"

	"gophernes/curated"
	"gophernes/hardware"
	"gophernes/hardware/clocks"
	"gophernes/hardware/ppu"
	"gophernes/performance/limiter"
	"gophernes/version"

	"github.com/veandco/go-sdl2/sdl"
)

// the texture format carries an alpha channel that we never change.
const pixelDepth = 4

// sentinal error pattern for all SDL failures.
const sdlError = "sdlplay: %v"

// SdlPlay is a simple SDL implementation of the ppu.PixelRenderer interface.
type SdlPlay struct {
	console *hardware.Console

	// limit screen updates to the console frame rate
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// it to the renderer
	pixels []byte

	// the window close button has been pressed
	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The returned instance is attached to the console as its pixel renderer.
func NewSdlPlay(console *hardware.Console, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		console: console,
		fpsCap:  true,
	}

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf(sdlError, err)
	}

	ver, _, _ := version.Version()
	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, ver),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(ppu.HorizPixels)*scale), int32(float32(ppu.Scanlines)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(sdlError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf(sdlError, err)
	}

	// nearest neighbour scaling suits the blocky output
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	// texture is the same size as the framebuffer. the renderer scales it to
	// the window
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(ppu.HorizPixels), int32(ppu.Scanlines))
	if err != nil {
		return nil, curated.Errorf(sdlError, err)
	}

	scr.pixels = make([]byte, ppu.HorizPixels*ppu.Scanlines*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.lmtr = limiter.NewFPSLimiter(clocks.FramesPerSecond)

	console.AttachRenderer(scr)

	return scr, nil
}

// Destroy frees the SDL resources used by the window.
func (scr *SdlPlay) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// SetFPSCap turns the frame rate limiter on or off.
func (scr *SdlPlay) SetFPSCap(set bool) {
	scr.fpsCap = set
}

// HasQuit returns true once the user has asked for the window to close.
func (scr *SdlPlay) HasQuit() bool {
	return scr.quit
}

// NewFrame implements the ppu.PixelRenderer interface. The completed frame
// is pushed to the window and any queued input is serviced.
func (scr *SdlPlay) NewFrame(frameNum int) error {
	scr.service()

	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	err := scr.texture.Update(nil, unsafe.Pointer(&scr.pixels[0]), ppu.HorizPixels*pixelDepth)
	if err != nil {
		return curated.Errorf(sdlError, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(sdlError, err)
	}

	scr.renderer.Present()

	return nil
}

// NewScanline implements the ppu.PixelRenderer interface.
func (scr *SdlPlay) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the ppu.PixelRenderer interface.
func (scr *SdlPlay) SetPixel(x, y int, red, green, blue uint8) error {
	i := (y*ppu.HorizPixels + x) * pixelDepth
	if i <= len(scr.pixels)-pixelDepth {
		scr.pixels[i] = red
		scr.pixels[i+1] = green
		scr.pixels[i+2] = blue
	}
	return nil
}
