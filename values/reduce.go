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

package values

import (
	"math"
	"math/big"
)

const (
	// reductionEpsilon is the magnitude below which a complex component
	// is treated as floating point round-off
	reductionEpsilon = 1e-14

	// nonTrivialThreshold is the magnitude the other complex component must exceed
	// before a small component is snapped to zero
	nonTrivialThreshold = 1e-5

	// maxExactInteger is the largest magnitude below which
	// every integral double is exactly representable
	maxExactInteger = 1 << 53
)

// Reduce validates a computed result and converts it to the simplest variant
// which represents it exactly.
//
// Infinite or NaN components fail with a NonFiniteResultError.
// A Complex with a (near) zero imaginary component becomes a Double,
// an integral Double becomes an Integer,
// and a Fraction with denominator 1 becomes an Integer.
func Reduce(value Value) (Value, error) {
	switch value := value.(type) {
	case ComplexValue:
		if !value.isFinite() {
			return nil, NonFiniteResultError{}
		}

		re, im := real(value), imag(value)
		if math.Abs(im) < reductionEpsilon && math.Abs(re) > nonTrivialThreshold {
			im = 0
		}
		if math.Abs(re) < reductionEpsilon && math.Abs(im) > nonTrivialThreshold {
			re = 0
		}

		if im == 0 {
			return reduceDouble(re), nil
		}
		return NewComplexValue(re, im), nil

	case DoubleValue:
		if !isFinite(float64(value)) {
			return nil, NonFiniteResultError{}
		}
		return reduceDouble(float64(value)), nil

	case FractionValue:
		r := value.Rational()
		if r.IsInteger() {
			return newIntegerValue(r.Numerator()), nil
		}
	}

	return value, nil
}

func reduceDouble(f float64) Value {
	if f == math.Trunc(f) && math.Abs(f) <= maxExactInteger {
		return newIntegerValue(big.NewInt(int64(f)))
	}
	return DoubleValue(f)
}
