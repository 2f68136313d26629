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
package keccakhash

import (
	"encoding/hex"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestKeccakhash(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Keccakhash Suite")
}

var _ = Describe("keccakhash", func() {
	It("matches the known Keccak-256 (not SHA3-256) digest of the empty string", func() {
		want, err := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
		Expect(err).Should(BeNil())
		got := Sum256(nil)
		Expect(got[:]).Should(Equal(want))
	})

	It("is deterministic", func() {
		a := Sum256([]byte("same input"))
		b := Sum256([]byte("same input"))
		Expect(a).Should(Equal(b))
	})

	It("differs for differing inputs", func() {
		a := Sum256([]byte("input one"))
		b := Sum256([]byte("input two"))
		Expect(a).ShouldNot(Equal(b))
	})
})
