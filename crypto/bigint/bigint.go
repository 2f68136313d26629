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

// Package bigint is a thin facade over math/big's arbitrary-precision
// arithmetic, grouping the handful of operations the Pietrzak evaluator
// needs: modular exponentiation, non-modular exponentiation used only to
// build exponents, and hex (de)serialization. It never mutates its
// arguments; every function returns a freshly allocated *big.Int.
package bigint

import (
	"errors"
	"math/big"
)

// ErrExponentOverflow is returned when an exponent exceeds what this
// facade is willing to materialize as a big integer. This mirrors the
// fmpz_pow_fmpz failure path of the reference implementation: fatal,
// not retryable.
var ErrExponentOverflow = errors.New("bigint: exponent overflow")

// FromHex parses a hexadecimal string (no 0x prefix) into a BigInt.
func FromHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errors.New("bigint: invalid hex string")
	}
	return v, nil
}

// ToHex renders v in lowercase hexadecimal with no leading zeros
// (except for the value 0 itself, which renders as "0").
func ToHex(v *big.Int) string {
	return v.Text(16)
}

// PowMod computes base^exp mod m. exp may be an arbitrary-precision
// integer up to a few billion bits; math/big.Exp handles this with
// standard square-and-multiply.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// PowModSmall computes base^e mod m for a small, machine-word exponent.
// This is the fast path used for squarings (e == 2).
func PowModSmall(base *big.Int, e uint64, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, new(big.Int).SetUint64(e), m)
}

// MulMod computes a*b mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	prod := new(big.Int).Mul(a, b)
	return prod.Mod(prod, m)
}

// Pow computes base^exp with no modular reduction, for small
// machine-word base and exponent. Used to build the exponent 2^(t-i).
func Pow(base, exp uint64) *big.Int {
	return new(big.Int).Exp(new(big.Int).SetUint64(base), new(big.Int).SetUint64(exp), nil)
}

// PowBig computes base^exp with no modular reduction, where exp is
// itself an arbitrary-precision integer (used to build 2^(2^(t-i)-s)).
// It fails fatally if the result would be too large to responsibly
// allocate.
func PowBig(base, exp *big.Int) (*big.Int, error) {
	if exp.Sign() < 0 {
		return nil, errors.New("bigint: negative exponent")
	}
	if exp.BitLen() > 32 {
		// exp itself needing more than 32 bits to represent means the
		// result (base^exp for base>=2) needs more than 2^32 bits.
		return nil, ErrExponentOverflow
	}
	return new(big.Int).Exp(base, exp, nil), nil
}

// SubSmall computes v-k. The caller guarantees v >= k; this is not
// checked (mirrors the reference fmpz_sub_ui, which has no underflow
// guard either).
func SubSmall(v *big.Int, k uint64) *big.Int {
	return new(big.Int).Sub(v, new(big.Int).SetUint64(k))
}

// SizeInBase returns the number of digits v needs in the given base,
// matching GMP/flint's fmpz_sizeinbase: zero is represented by exactly
// one digit.
func SizeInBase(v *big.Int, base int) int {
	if v.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(v).Text(base))
}

// IsZero reports whether v is the zero value. Exists so callers don't
// need to reach past this facade for a big0 comparison.
func IsZero(v *big.Int) bool {
	return v.Sign() == 0
}
