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

// Package curated is a "curated" implementation of the error type. The
// rationale is that it allows code to identify an error by its message
// pattern, rather than by an opaque sentinel value or a one-off type.
//
// Errors are created with the Errorf() function. The first argument is the
// pattern and is used for comparison by the Is() and Has() functions:
//
//	const UnsupportedMapper = "cartridge: unsupported mapper: %d"
//
//	func attach(id int) error {
//		return curated.Errorf(UnsupportedMapper, id)
//	}
//
// A caller that wants to check for a specific failure compares against the
// pattern, not against the formatted string:
//
//	if curated.Is(err, cartridge.UnsupportedMapper) {
//		...
//	}
//
// The Has() function walks wrapped curated errors looking for the pattern
// anywhere in the chain. This allows deeply nested packages to return
// specific errors and outer packages to wrap them with context:
//
//	return curated.Errorf("console: %v", err)
//
// Note that when an error message is formed from a chain of curated errors,
// duplicate adjacent message parts are removed. This keeps messages readable
// when every layer of the emulation adds the same prefix.
package curated
