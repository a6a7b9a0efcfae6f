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

// Package cartridgeloader is responsible for loading data from a cartridge
// file and decoding the iNES container format. It is a convenient way of
// passing cartridge data around the emulation without having to fuss with
// the details of the file format.
//
// The Loader type is passed to the cartridge package's Attach() function
// which selects and initialises the correct mapper for the data. A Loader
// can also be built directly from PRG and CHR banks, which is how the test
// suites construct their cartridges.
package cartridgeloader
