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
package bigint

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestBigint(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bigint Suite")
}

var _ = Describe("bigint", func() {
	It("FromHex/ToHex round-trip", func() {
		v, err := FromHex("1a2b3c")
		Expect(err).Should(BeNil())
		Expect(ToHex(v)).Should(Equal("1a2b3c"))
	})

	It("FromHex rejects garbage", func() {
		_, err := FromHex("not-hex")
		Expect(err).ShouldNot(BeNil())
	})

	It("ToHex has no leading zeros except for 0 itself", func() {
		Expect(ToHex(big.NewInt(0))).Should(Equal("0"))
		Expect(ToHex(big.NewInt(0x10))).Should(Equal("10"))
	})

	It("PowMod computes base^exp mod m", func() {
		got := PowMod(big.NewInt(4), big.NewInt(13), big.NewInt(497))
		Expect(got.Cmp(big.NewInt(445))).Should(BeZero())
	})

	It("PowModSmall(e=2) squares", func() {
		got := PowModSmall(big.NewInt(5), 2, big.NewInt(23))
		Expect(got.Cmp(big.NewInt(2))).Should(BeZero()) // 25 mod 23 == 2
	})

	It("MulMod reduces the product", func() {
		got := MulMod(big.NewInt(10), big.NewInt(10), big.NewInt(7))
		Expect(got.Cmp(big.NewInt(2))).Should(BeZero())
	})

	It("Pow computes a non-modular power", func() {
		got := Pow(2, 10)
		Expect(got.Cmp(big.NewInt(1024))).Should(BeZero())
	})

	DescribeTable("PowBig", func(base, exp int64, want int64, wantErr bool) {
		got, err := PowBig(big.NewInt(base), big.NewInt(exp))
		if wantErr {
			Expect(err).ShouldNot(BeNil())
			return
		}
		Expect(err).Should(BeNil())
		Expect(got.Cmp(big.NewInt(want))).Should(BeZero())
	},
		Entry("2^0 = 1", int64(2), int64(0), int64(1), false),
		Entry("2^10 = 1024", int64(2), int64(10), int64(1024), false),
		Entry("negative exponent fails", int64(2), int64(-1), int64(0), true),
	)

	It("PowBig fails fatally on an absurd exponent", func() {
		huge := new(big.Int).Lsh(big.NewInt(1), 40) // 2^40: the exponent needs 41 bits, past PowBig's 32-bit limit
		_, err := PowBig(big.NewInt(2), huge)
		Expect(err).Should(Equal(ErrExponentOverflow))
	})

	It("SubSmall subtracts a machine-word value", func() {
		got := SubSmall(big.NewInt(10), 3)
		Expect(got.Cmp(big.NewInt(7))).Should(BeZero())
	})

	DescribeTable("SizeInBase(_, 16)", func(v int64, want int) {
		Expect(SizeInBase(big.NewInt(v), 16)).Should(Equal(want))
	},
		Entry("zero is one digit", int64(0), 1),
		Entry("0xF is one digit", int64(0xF), 1),
		Entry("0x10 is two digits", int64(0x10), 2),
		Entry("0xFFF is three digits", int64(0xFFF), 3),
	)

	It("IsZero", func() {
		Expect(IsZero(big.NewInt(0))).Should(BeTrue())
		Expect(IsZero(big.NewInt(1))).Should(BeFalse())
	})
})
