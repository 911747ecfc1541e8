/*
 * RPNCalc - The stack-based scientific calculator core
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fixedpoint

import (
	"math/big"
	"strings"
)

// DecimalDigits returns the number of decimal digits of the absolute value of v.
// Zero has one digit.
func DecimalDigits(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	// BitLen * log10(2) is a lower bound which is off by at most one
	estimate := int(float64(v.BitLen()-1)*0.30102999566398119521) + 1
	abs := new(big.Int).Abs(v)
	if abs.Cmp(Pow10(uint(estimate))) >= 0 {
		estimate++
	}
	return estimate
}

// ScaledQuotient returns numerator * 10^scale / denominator,
// rounded half away from zero. The scale may be negative.
// The denominator must not be zero.
func ScaledQuotient(numerator, denominator *big.Int, scale int) *big.Int {
	num := new(big.Int).Set(numerator)
	den := new(big.Int).Set(denominator)

	if scale >= 0 {
		num.Mul(num, Pow10(uint(scale)))
	} else {
		den.Mul(den, Pow10(uint(-scale)))
	}

	negative := (num.Sign() < 0) != (den.Sign() < 0)
	num.Abs(num)
	den.Abs(den)

	quotient, remainder := new(big.Int).QuoRem(num, den, new(big.Int))

	// round half away from zero: 2 * remainder >= denominator
	remainder.Lsh(remainder, 1)
	if remainder.Cmp(den) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	if negative {
		quotient.Neg(quotient)
	}
	return quotient
}

// Format renders a value scaled by 10^scale as a decimal string with exactly scale
// fractional digits, e.g. Format(-1234, 2) == "-12.34".
func Format(value *big.Int, scale uint) string {
	negative, integer, fractional := SplitFixedPoint(value, scale)

	var builder strings.Builder
	if negative {
		builder.WriteByte('-')
	}
	builder.WriteString(integer.String())
	if scale > 0 {
		builder.WriteByte('.')
		digits := fractional.String()
		for i := len(digits); i < int(scale); i++ {
			builder.WriteByte('0')
		}
		builder.WriteString(digits)
	}
	return builder.String()
}
