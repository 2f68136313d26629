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

// Package rsa2048 holds the fixed RSA-2048 group the Pietrzak VDF runs
// over: the RSA Factoring Challenge modulus, a group of unknown order
// nobody has a trapdoor for.
package rsa2048

import "math/big"

// hexModulus is the RSA-2048 factoring-challenge number, bit-exact with
// the on-chain verifier this prover interoperates with.
const hexModulus = "" +
	"c7970ceedcc3b0754490201a7aa613cd73911081c790f5f1a8726f463550bb5b" +
	"7ff0db8e1ea1189ec72f93d1650011bd721aeeacc2acde32a04107f0648c2813" +
	"a31f5b0b7765ff8b44b4b6ffc93384b646eb09c7cf5e8592d40ea33c80039f35" +
	"b4f14a04b51f7bfd781be4d1673164ba8eb991c2c4d730bbbe35f592bdef524a" +
	"f7e8daefd26c66fc02c479af89d64d373f442709439de66ceb955f3ea37d5159" +
	"f6135809f85334b5cb1813addc80cd05609f10ac6a95ad65872c909525bdad32" +
	"bc729592642920f24c61dc5b3c3b7923e56b16a4d9d373d8721f24a3fc0f1b31" +
	"31f55615172866bccc30f95054c824e733a5eb6817f7bc16399d48c6361cc7e5"

// N is the fixed, process-wide, immutable modulus. Callers must never
// mutate the returned value; use math/big's copy-on-write idiom
// (new(big.Int).Set(N)) if a scratch copy is required.
var N = mustParseHex(hexModulus)

// ByteWidth is the number of bytes needed to hold any residue mod N.
const ByteWidth = 256

func mustParseHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("rsa2048: invalid modulus literal")
	}
	return n
}
