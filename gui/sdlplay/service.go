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

package sdlplay

import (
	"gophernes/hardware/input"

	"github.com/veandco/go-sdl2/sdl"
)

// mapKey returns the controller button a key is bound to.
func mapKey(key string) (input.Button, bool) {
	switch key {
	case "Z":
		return input.A, true
	case "X":
		return input.B, true
	case "Space":
		return input.Select, true
	case "Return":
		return input.Start, true
	case "Up":
		return input.Up, true
	case "Down":
		return input.Down, true
	case "Left":
		return input.Left, true
	case "Right":
		return input.Right, true
	}
	return 0, false
}

// service drains the SDL event queue. called once per frame, which is often
// enough for a play-only window.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			key := sdl.GetKeyName(ev.Keysym.Sym)
			if key == "Escape" {
				scr.quit = true
				continue
			}

			if b, ok := mapKey(key); ok {
				scr.console.Controller0.SetButton(b, ev.Type == sdl.KEYDOWN)
			}
		}
	}
}
