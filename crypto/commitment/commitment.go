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

// Package commitment lets a caller commit to VDF inputs (x, t) before
// a long-running evaluation starts, and later prove what was committed
// without a trusted third party: publish the digest now, reveal salt
// and data once the answer is known.
package commitment

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/blake2b"

	"github.com/pietrzak-labs/rsavdf/crypto/utils"
)

// ErrDifferentDigest is returned when a revealed (data, salt) pair
// does not hash to the committed digest.
var ErrDifferentDigest = errors.New("commitment: different digests")

// HashCommitmenter holds the prover's side of a commitment: the data
// actually committed to, the salt that randomizes it, and the digest
// derived from both.
type HashCommitmenter struct {
	digest []byte
	data   []byte
	salt   []byte
}

// NewHashCommitmenter commits to data under a freshly generated salt.
func NewHashCommitmenter(data []byte) (*HashCommitmenter, error) {
	salt, err := utils.GenRandomBytes(utils.SaltSize)
	if err != nil {
		return nil, err
	}
	digest, err := getDigest(salt, data)
	if err != nil {
		return nil, err
	}
	return &HashCommitmenter{
		digest: digest,
		data:   data,
		salt:   salt,
	}, nil
}

// CommitmentMessage is the value published up front: the digest alone,
// revealing nothing about data or salt.
type CommitmentMessage struct {
	Digest []byte
}

// DecommitmentMessage is published once the committed-to value should
// be revealed.
type DecommitmentMessage struct {
	Data []byte
	Salt []byte
}

// GetCommitmentMessage returns the value to publish immediately.
func (c *HashCommitmenter) GetCommitmentMessage() *CommitmentMessage {
	return &CommitmentMessage{Digest: c.digest}
}

// GetDecommitmentMessage returns the value to publish on reveal.
func (c *HashCommitmenter) GetDecommitmentMessage() *DecommitmentMessage {
	return &DecommitmentMessage{Data: c.data, Salt: c.salt}
}

// Decommit checks that msg opens to the commitment c holds. The
// comparison is constant-time: a commitment scheme that leaks timing
// on digest comparison leaks information about the committed value.
func (c *CommitmentMessage) Decommit(msg *DecommitmentMessage) error {
	digest, err := getDigest(msg.Salt, msg.Data)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(digest, c.Digest) != 1 {
		return ErrDifferentDigest
	}
	return nil
}

func getDigest(salt, data []byte) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	h.Write(salt) //nolint:errcheck // hash.Hash.Write never errors
	h.Write(data) //nolint:errcheck
	return h.Sum(nil), nil
}
