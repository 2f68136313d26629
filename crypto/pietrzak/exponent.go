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

	"github.com/pietrzak-labs/rsavdf/crypto/bigint"
)

var big2 = big.NewInt(2)

// exponent computes 2^(2^(t-i) - s), s in {0, 1}.
//
// For i=0, s=0 this is the final-y exponent 2^(2^t). For i>=1, s=1 this
// is the per-round exponent 2^(2^(t-i)-1): half of the remaining
// squarings, minus one.
func exponent(t, i, s uint64) (*big.Int, error) {
	tau := bigint.Pow(2, t-i)
	tauPrime := bigint.SubSmall(tau, s)
	e, err := bigint.PowBig(big2, tauPrime)
	if err != nil {
		return nil, err
	}
	return e, nil
}
