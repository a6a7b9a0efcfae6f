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

// Register represents a named address in PPU/APU/IO memory.
type Register string

// List of valid Register values.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
	SQ1VOL    Register = "SQ1_VOL"
	SQ1SWEEP  Register = "SQ1_SWEEP"
	SQ1LO     Register = "SQ1_LO"
	SQ1HI     Register = "SQ1_HI"
	SQ2VOL    Register = "SQ2_VOL"
	SQ2SWEEP  Register = "SQ2_SWEEP"
	SQ2LO     Register = "SQ2_LO"
	SQ2HI     Register = "SQ2_HI"
	TRILINEAR Register = "TRI_LINEAR"
	TRILO     Register = "TRI_LO"
	TRIHI     Register = "TRI_HI"
	NOISEVOL  Register = "NOISE_VOL"
	NOISELO   Register = "NOISE_LO"
	NOISEHI   Register = "NOISE_HI"
	DMCFREQ   Register = "DMC_FREQ"
	DMCRAW    Register = "DMC_RAW"
	DMCSTART  Register = "DMC_START"
	DMCLEN    Register = "DMC_LEN"
	OAMDMA    Register = "OAMDMA"
	SNDCHN    Register = "SND_CHN"
	JOY1      Register = "JOY1"
	JOY2      Register = "JOY2"
)

// ReadSymbols indexes all read symbols by normalised address.
var ReadSymbols = map[uint16]Register{
	0x2002: PPUSTATUS,
	0x2004: OAMDATA,
	0x2007: PPUDATA,
	0x4015: SNDCHN,
	0x4016: JOY1,
	0x4017: JOY2,
}

// WriteSymbols indexes all write symbols by normalised address.
var WriteSymbols = map[uint16]Register{
	0x2000: PPUCTRL,
	0x2001: PPUMASK,
	0x2003: OAMADDR,
	0x2004: OAMDATA,
	0x2005: PPUSCROLL,
	0x2006: PPUADDR,
	0x2007: PPUDATA,
	0x4000: SQ1VOL,
	0x4001: SQ1SWEEP,
	0x4002: SQ1LO,
	0x4003: SQ1HI,
	0x4004: SQ2VOL,
	0x4005: SQ2SWEEP,
	0x4006: SQ2LO,
	0x4007: SQ2HI,
	0x4008: TRILINEAR,
	0x400a: TRILO,
	0x400b: TRIHI,
	0x400c: NOISEVOL,
	0x400e: NOISELO,
	0x400f: NOISEHI,
	0x4010: DMCFREQ,
	0x4011: DMCRAW,
	0x4012: DMCSTART,
	0x4013: DMCLEN,
	0x4014: OAMDMA,
	0x4015: SNDCHN,
	0x4016: JOY1,
	0x4017: JOY2,
}

// ReadAddress indexes all read addresses by canonical symbol.
var ReadAddress = map[Register]uint16{}

// WriteAddress indexes all write addresses by canonical symbol.
var WriteAddress = map[Register]uint16{}

// Address does not correspond with any known symbol.
const NotACPUBusRegister Register = ""

func init() {
	for k, v := range ReadSymbols {
		ReadAddress[v] = k
	}
	for k, v := range WriteSymbols {
		WriteAddress[v] = k
	}
}
