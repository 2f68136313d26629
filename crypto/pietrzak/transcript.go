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

package pietrzak

import (
	"math/big"

	"github.com/pietrzak-labs/rsavdf/crypto/codec"
	"github.com/pietrzak-labs/rsavdf/crypto/keccakhash"
)

// hashFn is the random oracle every transcript digest goes through. It
// is a package variable rather than a hardcoded call so tests can swap
// in a stub oracle (see evaluate_test.go's stubbed-oracle case) without
// touching the recursion itself.
var hashFn = keccakhash.Sum256

// hashXY computes H_xy = H(pack(x,32) || pack(y,256)), the transcript
// prefix reused by every round's challenge derivation.
func hashXY(x, y *big.Int) ([]byte, error) {
	xBytes, err := codec.Pack(x, codec.Width256)
	if err != nil {
		return nil, err
	}
	yBytes, err := codec.Pack(y, codec.WidthN)
	if err != nil {
		return nil, err
	}
	input := make([]byte, 0, len(xBytes)+len(yBytes))
	input = append(input, xBytes...)
	input = append(input, yBytes...)
	digest := hashFn(input)
	return digest[:], nil
}

// challenge derives r_i from (H_xy, u_i, i). r_i is the raw 256-bit
// digest interpreted as a big-endian integer; it is never reduced mod
// N here — PowMod does that reduction downstream. There is no
// rejection sampling: every 256-bit value is a valid challenge.
func challenge(hXY []byte, ui *big.Int, i uint64) (*big.Int, error) {
	uiBytes, err := codec.Pack(ui, codec.WidthN)
	if err != nil {
		return nil, err
	}
	iBytes := codec.PackIndex(i)

	input := make([]byte, 0, len(hXY)+len(uiBytes)+len(iBytes))
	input = append(input, hXY...)
	input = append(input, uiBytes...)
	input = append(input, iBytes...)

	digest := hashFn(input)
	return codec.Unpack(digest[:]), nil
}
