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

package digest_test

import (
	"testing"

	"gophernes/digest"
	"gophernes/test"
)

func TestChaining(t *testing.T) {
	dig := digest.NewVideo()

	err := dig.SetPixel(10, 10, 0xff, 0x80, 0x00)
	test.ExpectedSuccess(t, err)
	err = dig.NewFrame(0)
	test.ExpectedSuccess(t, err)
	first := dig.Hash()

	// an identical frame fingerprints differently because the chain folds
	// in the fingerprint of the frame before it
	err = dig.SetPixel(10, 10, 0xff, 0x80, 0x00)
	test.ExpectedSuccess(t, err)
	err = dig.NewFrame(1)
	test.ExpectedSuccess(t, err)
	second := dig.Hash()

	test.ExpectedFailure(t, first == second)
}

func TestDeterminism(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	for _, dig := range []*digest.Video{a, b} {
		for x := 0; x < 20; x++ {
			err := dig.SetPixel(x, 5, uint8(x), 0x00, 0xff)
			test.ExpectedSuccess(t, err)
		}
		err := dig.NewFrame(0)
		test.ExpectedSuccess(t, err)
	}

	test.Equate(t, a.Hash(), b.Hash())
}