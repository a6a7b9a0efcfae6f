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

package input

// Button is one of the eight buttons on a standard controller. The value is
// the button's position in the shift register.
type Button uint8

// List of valid Button values, in shift register order.
const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "select"
	case Start:
		return "start"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Controller represents one standard NES controller.
type Controller struct {
	buttons uint8
	shift   uint8
	strobe  bool
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController() *Controller {
	return &Controller{}
}

// Snapshot creates a copy of the Controller in its current state.
func (c *Controller) Snapshot() *Controller {
	n := *c
	return &n
}

// SetButton presses or releases a button.
func (c *Controller) SetButton(b Button, pressed bool) {
	if pressed {
		c.buttons |= 1 << b
	} else {
		c.buttons &^= 1 << b
	}
}

// Strobe is called on writes to the strobe register. While the strobe bit
// is high the shift register follows the buttons.
func (c *Controller) Strobe(data uint8) {
	c.strobe = data&0x01 == 0x01
	if c.strobe {
		c.shift = c.buttons
	}
}

// Read clocks one bit out of the shift register. The upper bits of the
// value are the open bus of a stock console.
func (c *Controller) Read() uint8 {
	if c.strobe {
		c.shift = c.buttons
	}

	bit := c.shift & 0x01

	// bits shifted in from the top read as one once the register is empty
	c.shift = c.shift>>1 | 0x80

	return 0x40 | bit
}
