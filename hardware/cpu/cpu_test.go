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

package cpu_test

import (
	"testing"

	"gophernes/hardware/cpu"
	"gophernes/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

// assertStatus compares the string representation of the status register with
// the expected pattern. upper case means the flag is set.
func assertStatus(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	test.Equate(t, mc.Status.String(), expected)
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	assertStatus(t, mc, "nv-bdIzC")
	step(t, mc) // CLC
	assertStatus(t, mc, "nv-bdIzc")
	step(t, mc) // CLI
	assertStatus(t, mc, "nv-bdizc")
	step(t, mc) // SEI
	assertStatus(t, mc, "nv-bdIzc")
	step(t, mc) // SED
	assertStatus(t, mc, "nv-bDIzc")
	step(t, mc) // CLD
	assertStatus(t, mc, "nv-bdIzc")
	step(t, mc) // CLV
	assertStatus(t, mc, "nv-bdIzc")

	// PHP; PLP
	origin = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.Equate(t, mc.SP.Value(), 0xfc)

	// pushed value has the break flag set
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register
	step(t, mc) // PLP
	test.Equate(t, mc.SP.Value(), 0xfd)
	assertStatus(t, mc, "nv-BdIzc")
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.Equate(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.Equate(t, mc.A.Value(), 3)

	// the decimal flag must have no effect on addition. SED; LDA #$09;
	// ADC #$01 gives $0a on the 2A03 (and $10 on a 6502 with a working
	// decimal mode)
	origin = mem.putInstructions(origin, 0xf8, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$09
	step(t, mc) // ADC #$01
	test.Equate(t, mc.A.Value(), 0x0a)
}

func TestBitwiseInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.Equate(t, mc.A.Value(), 0)
	step(t, mc) // ORA #$FF
	test.Equate(t, mc.A.Value(), 0xff)
	assertStatus(t, mc, "Nv-bdIzc")
	step(t, mc) // EOR #$F0
	test.Equate(t, mc.A.Value(), 0x0f)
	step(t, mc) // AND #$01
	test.Equate(t, mc.A.Value(), 0x01)

	// ASL; LSR accumulator
	origin = mem.putInstructions(origin, 0x0a, 0x4a)
	step(t, mc) // ASL
	test.Equate(t, mc.A.Value(), 0x02)
	step(t, mc) // LSR
	test.Equate(t, mc.A.Value(), 0x01)
	assertStatus(t, mc, "nv-bdIzc")
}

func TestLoadStore(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// LDA immediate; STA zero page; LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa9, 0x7f, 0x85, 0x10, 0xa2, 0x33, 0x8e, 0x00, 0x07)
	step(t, mc) // LDA #$7F
	test.Equate(t, mc.LastResult.Cycles, 2)
	step(t, mc) // STA $10
	test.Equate(t, mc.LastResult.Cycles, 3)
	mem.assert(t, 0x0010, 0x7f)
	step(t, mc) // LDX #$33
	step(t, mc) // STX $0700
	test.Equate(t, mc.LastResult.Cycles, 4)
	mem.assert(t, 0x0700, 0x33)
}

func TestIndexedAddressing(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// page crossing costs an extra cycle on an indexed read
	mem.putInstructions(0x0300, 0x0b, 0x0b)
	origin = mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xff, 0x02)
	step(t, mc) // LDX #$01
	step(t, mc) // LDA $02FF,X
	test.Equate(t, mc.A.Value(), 0x0b)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, true)

	// same access without the page crossing. 4 cycles, no fault
	origin = mem.putInstructions(origin, 0xbd, 0x00, 0x03)
	step(t, mc) // LDA $0300,X
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, false)

	// stores to an indexed address never suffer a page fault penalty but
	// always pay the extra cycle
	origin = mem.putInstructions(origin, 0x9d, 0x00, 0x03)
	step(t, mc) // STA $0300,X
	test.Equate(t, mc.LastResult.Cycles, 5)
	mem.assert(t, 0x0301, 0x0b)
}

func TestRMWInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// INC zero page; DEC absolute
	origin = mem.putInstructions(origin, 0xe6, 0x10, 0xce, 0x00, 0x07)
	step(t, mc) // INC $10
	test.Equate(t, mc.LastResult.Cycles, 5)
	mem.assert(t, 0x0010, 0x01)
	step(t, mc) // DEC $0700
	test.Equate(t, mc.LastResult.Cycles, 6)
	mem.assert(t, 0x0700, 0xff)

	// ASL absolute,X is 7 cycles regardless of page crossing
	origin = mem.putInstructions(origin, 0xa2, 0x01, 0x1e, 0x0f, 0x00)
	step(t, mc) // LDX #$01
	step(t, mc) // ASL $000F,X
	test.Equate(t, mc.LastResult.Cycles, 7)
	mem.assert(t, 0x0010, 0x02)
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// branch not taken. 2 cycles
	origin = mem.putInstructions(origin, 0x38, 0xb0, 0x02)
	step(t, mc) // SEC
	step(t, mc) // BCS +2

	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.PC.Address(), 0x0205)

	// BCC from 0x0205 is not taken. 2 cycles
	mem.putInstructions(0x0205, 0x90, 0x10)
	step(t, mc) // BCC +16
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.PC.Address(), 0x0207)

	// branch crossing a page boundary. 4 cycles
	mem.putInstructions(0x0207, 0x18, 0x90, 0xf0)
	step(t, mc) // CLC
	step(t, mc) // BCC -16
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.PC.Address(), 0x01fa)
}

func TestJumps(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// JMP absolute
	mem.putInstructions(origin, 0x4c, 0x00, 0x03)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0300)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// JSR; RTS
	mem.putInstructions(0x0300, 0x20, 0x00, 0x04)
	mem.putInstructions(0x0400, 0x60)
	step(t, mc) // JSR $0400
	test.Equate(t, mc.PC.Address(), 0x0400)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Value(), 0xfb)
	step(t, mc) // RTS
	test.Equate(t, mc.PC.Address(), 0x0303)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Value(), 0xfd)
}

func TestJmpIndirectBug(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0400
	_ = mc.LoadPC(origin)

	// the indirect address is on a page boundary. the MSB of the jump
	// address is read from the zero byte of the same page rather than the
	// zero byte of the next page
	mem.putInstructions(0x02ff, 0x34)
	mem.putInstructions(0x0200, 0x12)
	mem.putInstructions(origin, 0x6c, 0xff, 0x02)
	step(t, mc) // JMP ($02FF)
	test.Equate(t, mc.PC.Address(), 0x1234)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.CPUBug, "indirect addressing bug (JMP bug)")
}

func TestInterrupts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// interrupt vectors
	mem.putInstructions(0xfffa, 0x00, 0x05, 0x00, 0x00, 0x00, 0x06)

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	mem.putInstructions(origin, 0xea, 0xea)
	step(t, mc) // NOP

	// NMI is serviced before the next instruction. 7 cycles
	mc.RaiseNMI()
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0500)
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.SP.Value(), 0xfa)

	// pushed status has the break flag clear and the interrupt disable flag
	// is set on entry to the handler
	mem.assert(t, 0x01fb, 0x24)
	assertStatus(t, mc, "nv-bdIzc")

	// IRQ is inhibited when the interrupt disable flag is set
	mem.putInstructions(0x0500, 0x58, 0xea)
	mc.SetIRQ(true)
	step(t, mc) // CLI
	step(t, mc) // IRQ serviced before NOP
	test.Equate(t, mc.PC.Address(), 0x0600)
	test.Equate(t, mc.LastResult.Cycles, 7)
	mc.SetIRQ(false)
}

func TestBRK(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0xfffe, 0x00, 0x06)

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	mem.putInstructions(origin, 0x00)
	step(t, mc) // BRK
	test.Equate(t, mc.PC.Address(), 0x0600)
	test.Equate(t, mc.LastResult.Cycles, 7)

	// BRK pushes PC+2 and the status register with the break flag set
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x34)

	// RTI restores the status register and returns to the pushed address
	mem.putInstructions(0x0600, 0x40)
	step(t, mc) // RTI
	test.Equate(t, mc.PC.Address(), 0x0202)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Value(), 0xfd)
}

func TestUndocumentedInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// LAX absolute
	mem.putInstructions(0x0700, 0x56)
	origin = mem.putInstructions(origin, 0xaf, 0x00, 0x07)
	step(t, mc) // LAX $0700
	test.Equate(t, mc.A.Value(), 0x56)
	test.Equate(t, mc.X.Value(), 0x56)

	// SAX absolute. stores A AND X
	origin = mem.putInstructions(origin, 0xa9, 0x0f, 0x8f, 0x01, 0x07)
	step(t, mc) // LDA #$0F
	step(t, mc) // SAX $0701
	mem.assert(t, 0x0701, 0x06)

	// DCP zero page. decrements memory then compares with A
	mem.putInstructions(0x0010, 0x10)
	origin = mem.putInstructions(origin, 0xc7, 0x10)
	step(t, mc) // DCP $10
	mem.assert(t, 0x0010, 0x0f)
	assertStatus(t, mc, "nv-bdIZC")
}

func TestUndocumentedRMWFlags(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// SLO shifts memory left and ORs the result into A
	mem.putInstructions(0x0010, 0x40)
	origin = mem.putInstructions(origin, 0xa9, 0x01, 0x07, 0x10)
	step(t, mc) // LDA #$01
	step(t, mc) // SLO $10
	mem.assert(t, 0x0010, 0x80)
	test.Equate(t, mc.A.Value(), 0x81)
	assertStatus(t, mc, "Nv-bdIzc")

	// RLA rotates memory left and ANDs the result into A. zero and sign
	// reflect the accumulator, so a zero A gives Z even though the rotated
	// memory byte is non-zero
	mem.putInstructions(0x0011, 0x40)
	origin = mem.putInstructions(origin, 0xa9, 0x00, 0x27, 0x11)
	step(t, mc) // LDA #$00
	step(t, mc) // RLA $11
	mem.assert(t, 0x0011, 0x80)
	test.Equate(t, mc.A.Value(), 0x00)
	assertStatus(t, mc, "nv-bdIZc")

	// SRE shifts memory right and EORs the result into A
	mem.putInstructions(0x0012, 0x01)
	origin = mem.putInstructions(origin, 0xa9, 0xff, 0x47, 0x12)
	step(t, mc) // LDA #$FF
	step(t, mc) // SRE $12
	mem.assert(t, 0x0012, 0x00)
	test.Equate(t, mc.A.Value(), 0xff)
	assertStatus(t, mc, "Nv-bdIzC")

	// RRA rotates memory right (carry is set from SRE above, so it rotates
	// into bit 7) and adds the result to A with carry
	mem.putInstructions(0x0013, 0x02)
	origin = mem.putInstructions(origin, 0x67, 0x13)
	step(t, mc) // RRA $13
	mem.assert(t, 0x0013, 0x81)
	test.Equate(t, mc.A.Value(), 0x80)
	assertStatus(t, mc, "Nv-bdIzC")

	// ISC increments memory and subtracts the result from A
	mem.putInstructions(0x0014, 0x0f)
	origin = mem.putInstructions(origin, 0xa9, 0x80, 0xe7, 0x14)
	step(t, mc) // LDA #$80
	step(t, mc) // ISC $14
	mem.assert(t, 0x0014, 0x10)
	test.Equate(t, mc.A.Value(), 0x70)
	assertStatus(t, mc, "nV-bdIzC")
}

func TestUndocumentedImmediateFlags(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)
	mc.Status.Carry = true

	// ANC takes the carry flag from bit 7 of the AND result, not the
	// operand, so a zero result clears a previously set carry
	origin = mem.putInstructions(origin, 0xa9, 0x00, 0x0b, 0x80)
	step(t, mc) // LDA #$00
	step(t, mc) // ANC #$80
	test.Equate(t, mc.A.Value(), 0x00)
	assertStatus(t, mc, "nv-bdIZc")

	origin = mem.putInstructions(origin, 0xa9, 0xc0, 0x2b, 0xc0)
	step(t, mc) // LDA #$C0
	step(t, mc) // ANC #$C0
	test.Equate(t, mc.A.Value(), 0xc0)
	assertStatus(t, mc, "Nv-bdIzC")

	// ARR carry comes from bit 6 of the rotated result and overflow from
	// bit 6 XOR bit 5
	origin = mem.putInstructions(origin, 0xa9, 0x80, 0x18, 0x6b, 0xff)
	step(t, mc) // LDA #$80
	step(t, mc) // CLC
	step(t, mc) // ARR #$FF
	test.Equate(t, mc.A.Value(), 0x40)
	assertStatus(t, mc, "nV-bdIzC")

	// with the carry set it rotates into bit 7. bits 6 and 5 of the result
	// are clear so both carry and overflow end up clear
	origin = mem.putInstructions(origin, 0x38, 0xa9, 0x41, 0x6b, 0x01)
	step(t, mc) // SEC
	step(t, mc) // LDA #$41
	step(t, mc) // ARR #$01
	test.Equate(t, mc.A.Value(), 0x80)
	assertStatus(t, mc, "Nv-bdIzc")

	// AXS subtracts the operand from A AND X, CMP-style carry
	origin = mem.putInstructions(origin, 0xa2, 0x0f, 0xa9, 0x0f, 0xcb, 0x0a)
	step(t, mc) // LDX #$0F
	step(t, mc) // LDA #$0F
	step(t, mc) // AXS #$0A
	test.Equate(t, mc.X.Value(), 0x05)
	assertStatus(t, mc, "nv-bdIzC")

	// XAA transfers X to A and ANDs with the operand
	origin = mem.putInstructions(origin, 0xa2, 0xaa, 0x8b, 0x55)
	step(t, mc) // LDX #$AA
	step(t, mc) // XAA #$55
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.X.Value(), 0xaa)
	assertStatus(t, mc, "nv-bdIZC")

	// ASR ANDs then shifts right
	origin = mem.putInstructions(origin, 0xa9, 0x03, 0x4b, 0x03)
	step(t, mc) // LDA #$03
	step(t, mc) // ASR #$03
	test.Equate(t, mc.A.Value(), 0x01)
	assertStatus(t, mc, "nv-bdIzC")
}

func TestKIL(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	mem.putInstructions(origin, 0x02, 0xea)
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.Killed, true)

	// further calls to ExecuteInstruction do nothing
	pc := mc.PC.Address()
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.PC.Address(), pc)

	// Reset() clears the killed state
	mc.Reset()
	test.Equate(t, mc.Killed, false)
}

func TestCycleCallback(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	var origin uint16 = 0x0200
	_ = mc.LoadPC(origin)

	// the callback must be run once per cycle
	var cycles int
	callback := func() error {
		cycles++
		return nil
	}

	// LDA $10 is 3 cycles; STA $0700,X is 5 cycles
	mem.putInstructions(origin, 0xa5, 0x10, 0x9d, 0x00, 0x07)
	err := mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 3)

	cycles = 0
	err = mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 5)
}
