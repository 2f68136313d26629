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

// Package keccakhash wraps the Keccak-256 oracle the Fiat-Shamir
// transcript is built from. This is the pre-NIST, Ethereum-style
// Keccak — NOT SHA3-256, which pads differently and would silently
// desynchronize the transcript from an on-chain verifier.
package keccakhash

import "golang.org/x/crypto/sha3"

// Size is the digest length in bytes.
const Size = 32

// Sum256 hashes buf with Keccak-256 and returns the 32-byte digest.
func Sum256(buf []byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(buf) //nolint:errcheck // hash.Hash.Write never errors
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
