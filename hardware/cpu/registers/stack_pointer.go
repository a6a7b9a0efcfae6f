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

package registers

import (
	"fmt"
)

// StackPointer is the 8 bit stack pointer. The stack lives in page one of the
// address space so the Address() function folds the pointer value into the
// range 0x0100 to 0x01ff.
type StackPointer struct {
	value uint8
}

// NewStackPointer creates a new stack pointer with an initial value.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Label returns an identifying label for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

// Value returns the raw 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full 16 bit address the stack pointer refers to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement the stack pointer. Wraps around inside page one.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment the stack pointer. Wraps around inside page one.
func (sp *StackPointer) Increment() {
	sp.value++
}
