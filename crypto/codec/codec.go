// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package codec implements the fixed-width big-endian byte packing the
// Fiat-Shamir transcript is built from. The one detail that matters:
// a value whose hex representation has an odd digit count must still
// place its most-significant nibble in the right byte, not drop it.
// math/big.Int.FillBytes already packs big-endian with left zero
// padding at the bit level, which sidesteps the hex-string round trip
// (and its odd-nibble pitfall) entirely — see DESIGN.md.
package codec

import (
	"errors"
	"math/big"

	"github.com/pietrzak-labs/rsavdf/crypto/rsa2048"
)

const (
	// Width256 is the packed width used for the seed x and the round
	// index i.
	Width256 = 32
)

// WidthN is the packed width used for residues mod N (y and each proof
// element u_i) — exactly as wide as the group modulus itself.
const WidthN = rsa2048.ByteWidth

// ErrTooWide is returned when v does not fit in the requested width.
var ErrTooWide = errors.New("codec: value does not fit in requested width")

// Pack big-endian left-zero-pads v into exactly width bytes.
func Pack(v *big.Int, width int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, errors.New("codec: cannot pack a negative value")
	}
	buf := make([]byte, width)
	// FillBytes panics if v doesn't fit; bounds-check first so a
	// malformed input surfaces as an error, not a panic.
	if (v.BitLen()+7)/8 > width {
		return nil, ErrTooWide
	}
	v.FillBytes(buf)
	return buf, nil
}

// PackIndex packs a round index into Width256 big-endian bytes.
func PackIndex(i uint64) []byte {
	buf := make([]byte, Width256)
	v := new(big.Int).SetUint64(i)
	v.FillBytes(buf)
	return buf
}

// Unpack interprets buf as a big-endian unsigned integer.
func Unpack(buf []byte) *big.Int {
	return new(big.Int).SetBytes(buf)
}
