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
package utils

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestUtils(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Utils Suite")
}

var _ = Describe("Utils", func() {
	It("RandomInt()", func() {
		got, err := RandomInt(big.NewInt(10))
		Expect(err).Should(BeNil())
		// Should be in [0, 10)
		Expect(got.Cmp(big.NewInt(10))).Should(Equal(-1))
		Expect(got.Cmp(big.NewInt(-1))).Should(Equal(1))
	})

	It("RandomPositiveInt()", func() {
		got, err := RandomPositiveInt(big.NewInt(10))
		Expect(err).Should(BeNil())
		// Should be in [1, 10)
		Expect(got.Cmp(big.NewInt(10))).Should(Equal(-1))
		Expect(got.Cmp(big.NewInt(0))).Should(Equal(1))
	})

	It("IsRelativePrime()", func() {
		num1 := big.NewInt(5)
		num2 := big.NewInt(8)
		result := IsRelativePrime(num1, num2)
		Expect(result).Should(BeTrue())
	})

	It("Gcd()", func() {
		num1 := big.NewInt(5)
		num2 := big.NewInt(10)
		result := Gcd(num1, num2)
		Expect(result).Should(Equal(num1))

		num2 = big.NewInt(8)
		result = Gcd(num1, num2)
		Expect(result).Should(Equal(big1))
	})

	DescribeTable("InRange()", func(checkValue *big.Int, floor *big.Int, ceil *big.Int, err error) {
		gotErr := InRange(checkValue, floor, ceil)
		if err == nil {
			Expect(gotErr).Should(BeNil())
		} else {
			Expect(gotErr).Should(Equal(err))
		}
	},
		Entry("should be ok", big.NewInt(5), big.NewInt(5), big.NewInt(7), nil),
		Entry("larger floor", big.NewInt(3), big.NewInt(4), big.NewInt(4), ErrLargerFloor),
		Entry("value is smaller than floor", big.NewInt(3), big.NewInt(4), big.NewInt(6), ErrNotInRange),
		Entry("value is equal to ceil", big.NewInt(6), big.NewInt(4), big.NewInt(6), ErrNotInRange),
	)

	DescribeTable("GenRandomBytes()", func(size int, err error) {
		got, gotErr := GenRandomBytes(size)
		if err == nil {
			Expect(gotErr).Should(BeNil())
			Expect(got).ShouldNot(BeNil())
		} else {
			Expect(gotErr).Should(Equal(err))
			Expect(got).Should(BeNil())
		}
	},
		Entry("should be ok", 100, nil),
		Entry("empty slices", 0, ErrEmptySlice),
	)
})
