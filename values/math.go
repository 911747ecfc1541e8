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
	"math/cmplx"
	"strconv"

	"github.com/onflow/rpncalc/fixedpoint"
	"github.com/onflow/rpncalc/rational"
)

const (
	// MaxFactorialArgument bounds the exact factorial computation
	MaxFactorialArgument = 10_000

	// maxCombinatoricsArgument bounds combinations and permutations
	maxCombinatoricsArgument = 100_000
)

// realFunction returns the real number of a real or Binary value.
func realFunction(operation Operation, value Value) (float64, bool, error) {
	switch value := value.(type) {
	case ComplexValue:
		return 0, false, nil
	case NumericValue:
		double, err := value.ToDouble()
		if err != nil {
			return 0, false, err
		}
		return float64(double), true, nil
	}
	return 0, false, invalidOperand(operation, value)
}

// transcendental applies the real function to real values, if the argument is in its real domain,
// and the complex function otherwise.
func transcendental(
	operation Operation,
	value Value,
	inRealDomain func(x float64) bool,
	realFunc func(x float64) float64,
	complexFunc func(z complex128) complex128,
) (Value, error) {
	x, ok, err := realFunction(operation, value)
	if err != nil {
		return nil, err
	}
	if ok {
		if inRealDomain == nil || inRealDomain(x) {
			return DoubleValue(realFunc(x)), nil
		}
		return ComplexValue(complexFunc(complex(x, 0))), nil
	}
	return ComplexValue(complexFunc(complex128(value.(ComplexValue)))), nil
}

func positive(x float64) bool {
	return x > 0
}

func unitInterval(x float64) bool {
	return x >= -1 && x <= 1
}

func Exp(value Value) (Value, error) {
	return transcendental(OperationExp, value, nil, math.Exp, cmplx.Exp)
}

// Ln returns the natural logarithm. Logarithms of negative numbers are complex.
func Ln(value Value) (Value, error) {
	if isZeroValue(value) {
		return nil, ArgumentOutOfRangeError{
			Operation: OperationLn,
			Message:   "logarithm of zero is undefined",
		}
	}
	return transcendental(OperationLn, value, positive, math.Log, cmplx.Log)
}

// Log returns the common (base 10) logarithm.
func Log(value Value) (Value, error) {
	if isZeroValue(value) {
		return nil, ArgumentOutOfRangeError{
			Operation: OperationLog,
			Message:   "logarithm of zero is undefined",
		}
	}
	return transcendental(OperationLog, value, positive, math.Log10, cmplx.Log10)
}

// TenToX returns 10^x, which is exact for integer exponents.
func TenToX(settings Settings, value Value) (Value, error) {
	if _, ok := value.(NumericValue); !ok {
		return nil, invalidOperand(OperationTenToX, value)
	}
	return Power(settings, NewIntegerValueFromInt64(10), value)
}

// Invert returns 1/x.
func Invert(settings Settings, value Value) (Value, error) {
	if _, ok := value.(NumericValue); !ok {
		return nil, invalidOperand(OperationInvert, value)
	}
	if fraction, ok := value.(FractionValue); ok {
		r, err := fraction.Rational().Inv()
		if err != nil {
			return nil, err
		}
		return newRationalValue(r), nil
	}
	return Divide(settings, NewIntegerValueFromInt64(1), value)
}

// trigonometric applies a function of an angle.
// Real angles are in the unit of the angle mode, complex angles are in radians.
func trigonometric(
	settings Settings,
	operation Operation,
	value Value,
	realFunc func(x float64) float64,
	complexFunc func(z complex128) complex128,
) (Value, error) {
	x, ok, err := realFunction(operation, value)
	if err != nil {
		return nil, err
	}
	if ok {
		return DoubleValue(realFunc(settings.AngleMode.ToRadians(x))), nil
	}
	return ComplexValue(complexFunc(complex128(value.(ComplexValue)))), nil
}

// inverseTrigonometric applies an inverse function, resulting in an angle.
// Real results are in the unit of the angle mode, complex results are in radians.
func inverseTrigonometric(
	settings Settings,
	operation Operation,
	value Value,
	inRealDomain func(x float64) bool,
	realFunc func(x float64) float64,
	complexFunc func(z complex128) complex128,
) (Value, error) {
	x, ok, err := realFunction(operation, value)
	if err != nil {
		return nil, err
	}
	if ok && (inRealDomain == nil || inRealDomain(x)) {
		return DoubleValue(settings.AngleMode.FromRadians(realFunc(x))), nil
	}
	z := complex(x, 0)
	if !ok {
		z = complex128(value.(ComplexValue))
	}
	return ComplexValue(complexFunc(z)), nil
}

func Sin(settings Settings, value Value) (Value, error) {
	return trigonometric(settings, OperationSin, value, math.Sin, cmplx.Sin)
}

func Cos(settings Settings, value Value) (Value, error) {
	return trigonometric(settings, OperationCos, value, math.Cos, cmplx.Cos)
}

func Tan(settings Settings, value Value) (Value, error) {
	return trigonometric(settings, OperationTan, value, math.Tan, cmplx.Tan)
}

func ArcSin(settings Settings, value Value) (Value, error) {
	return inverseTrigonometric(settings, OperationArcSin, value, unitInterval, math.Asin, cmplx.Asin)
}

func ArcCos(settings Settings, value Value) (Value, error) {
	return inverseTrigonometric(settings, OperationArcCos, value, unitInterval, math.Acos, cmplx.Acos)
}

func ArcTan(settings Settings, value Value) (Value, error) {
	return inverseTrigonometric(settings, OperationArcTan, value, nil, math.Atan, cmplx.Atan)
}

func Sinh(value Value) (Value, error) {
	return transcendental(OperationSinh, value, nil, math.Sinh, cmplx.Sinh)
}

func Cosh(value Value) (Value, error) {
	return transcendental(OperationCosh, value, nil, math.Cosh, cmplx.Cosh)
}

func Tanh(value Value) (Value, error) {
	return transcendental(OperationTanh, value, nil, math.Tanh, cmplx.Tanh)
}

// Factorial returns n! exactly for integers, and Γ(x+1) for other real numbers.
func Factorial(value Value) (Value, error) {
	switch value := value.(type) {
	case BinaryValue:
		integer, err := value.ToInteger()
		if err != nil {
			return nil, err
		}
		return integerFactorial(integer)

	case IntegerValue:
		return integerFactorial(value)

	case FractionValue:
		if value.Rational().IsInteger() {
			return integerFactorial(newIntegerValue(value.Rational().Numerator()))
		}
		double, err := value.ToDouble()
		if err != nil {
			return nil, err
		}
		return gammaFactorial(float64(double))

	case DoubleValue:
		f := float64(value)
		if f == math.Trunc(f) && math.Abs(f) <= maxExactInteger {
			return integerFactorial(NewIntegerValueFromInt64(int64(f)))
		}
		return gammaFactorial(f)
	}

	return nil, invalidOperand(OperationFactorial, value)
}

func integerFactorial(value IntegerValue) (Value, error) {
	n := value.value()
	if n.Sign() < 0 {
		return nil, NegativeFactorialError{}
	}
	if n.Cmp(big.NewInt(MaxFactorialArgument)) > 0 {
		return nil, OverflowError{}
	}
	return newIntegerValue(new(big.Int).MulRange(1, n.Int64())), nil
}

func gammaFactorial(x float64) (Value, error) {
	return DoubleValue(math.Gamma(x + 1)), nil
}

// rounding applies an integer rounding function to a real value.
func rounding(
	operation Operation,
	value Value,
	rationalFunc func(r rational.Rational) *big.Int,
	floatFunc func(f float64) float64,
) (Value, error) {
	switch value := value.(type) {
	case BinaryValue, IntegerValue:
		return value, nil
	case FractionValue:
		return newIntegerValue(rationalFunc(value.Rational())), nil
	case DoubleValue:
		return DoubleValue(floatFunc(float64(value))), nil
	}
	return nil, invalidOperand(operation, value)
}

func Floor(value Value) (Value, error) {
	return rounding(OperationFloor, value, rational.Rational.Floor, math.Floor)
}

func Ceiling(value Value) (Value, error) {
	return rounding(OperationCeiling, value, rational.Rational.Ceil, math.Ceil)
}

// Round rounds half away from zero.
func Round(value Value) (Value, error) {
	return rounding(OperationRound, value, rational.Rational.Round, math.Round)
}

// Truncate returns the integer part.
func Truncate(value Value) (Value, error) {
	return rounding(OperationTruncate, value, rational.Rational.Truncate, math.Trunc)
}

// FracPart returns the fractional part, which has the sign of the value.
func FracPart(value Value) (Value, error) {
	switch value := value.(type) {
	case BinaryValue:
		return BinaryValue(0), nil
	case IntegerValue:
		return NewIntegerValueFromInt64(0), nil
	case FractionValue:
		return NewFractionValue(value.Rational().FractionalPart()), nil
	case DoubleValue:
		f := float64(value)
		return DoubleValue(f - math.Trunc(f)), nil
	}
	return nil, invalidOperand(OperationFracPart, value)
}

// RoundDigits rounds to the given number of decimal places.
// Negative digits round to tens, hundreds, and so on.
func RoundDigits(value Value, digits int) (Value, error) {
	if digits > MaxFixedDecimalDigits || digits < -MaxFixedDecimalDigits {
		return nil, ArgumentOutOfRangeError{
			Operation: OperationRound,
			Message:   "too many digits",
		}
	}

	switch value := value.(type) {
	case BinaryValue:
		return value, nil

	case IntegerValue:
		if digits >= 0 {
			return value, nil
		}
		return newIntegerValue(roundScaled(value.value(), big.NewInt(1), digits)), nil

	case FractionValue:
		r := value.Rational()
		return newScaledValue(roundScaled(r.Numerator(), r.Denominator(), digits), digits)

	case DoubleValue:
		f := float64(value)
		if !isFinite(f) {
			return nil, NonFiniteResultError{Operation: OperationRound}
		}
		if digits < 0 {
			r, err := rational.NewFromFloat64(f)
			if err != nil {
				return nil, err
			}
			return newIntegerValue(roundScaled(r.Numerator(), r.Denominator(), digits)), nil
		}
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', digits, 64), 64)
		if err != nil {
			return nil, err
		}
		return DoubleValue(rounded), nil
	}

	return nil, invalidOperand(OperationRound, value)
}

// roundScaled returns numerator/denominator rounded to the digits, as an integer scaled by 10^-digits.
func roundScaled(numerator, denominator *big.Int, digits int) *big.Int {
	scaled := fixedpoint.ScaledQuotient(numerator, denominator, digits)
	if digits < 0 {
		return scaled.Mul(scaled, fixedpoint.Pow10(uint(-digits)))
	}
	return scaled
}

func newScaledValue(scaled *big.Int, digits int) (Value, error) {
	if digits <= 0 {
		return newIntegerValue(scaled), nil
	}
	r, err := rational.New(scaled, fixedpoint.Pow10(uint(digits)))
	if err != nil {
		return nil, err
	}
	return newRationalValue(r), nil
}

// Percent returns x percent of y.
func Percent(settings Settings, x, y Value) (Value, error) {
	product, err := Multiply(settings, x, y)
	if err != nil {
		return nil, err
	}
	return Divide(settings, product, hundred())
}

// PercentChange returns the change from x to y, as a percentage of x.
func PercentChange(settings Settings, x, y Value) (Value, error) {
	difference, err := Subtract(settings, y, x)
	if err != nil {
		return nil, err
	}
	scaled, err := Multiply(settings, difference, hundred())
	if err != nil {
		return nil, err
	}
	return Divide(settings, scaled, x)
}

func hundred() Value {
	return NewIntegerValueFromInt64(100)
}

func Min(x, y Value) (Value, error) {
	result, err := Compare(x, y)
	if err != nil {
		return nil, err
	}
	if result <= 0 {
		return x, nil
	}
	return y, nil
}

func Max(x, y Value) (Value, error) {
	result, err := Compare(x, y)
	if err != nil {
		return nil, err
	}
	if result >= 0 {
		return x, nil
	}
	return y, nil
}

func combinatoricsArguments(operation Operation, n, k Value) (int64, int64, error) {
	nInteger, ok := n.(IntegerValue)
	if !ok {
		return 0, 0, invalidOperands(operation, n, k)
	}
	kInteger, ok := k.(IntegerValue)
	if !ok {
		return 0, 0, invalidOperands(operation, n, k)
	}

	nValue, nOK := nInteger.Int64()
	kValue, kOK := kInteger.Int64()
	switch {
	case !nOK || !kOK || nValue > maxCombinatoricsArgument:
		return 0, 0, OverflowError{}
	case nValue < 0 || kValue < 0:
		return 0, 0, ArgumentOutOfRangeError{
			Operation: operation,
			Message:   "arguments must not be negative",
		}
	case kValue > nValue:
		return 0, 0, ArgumentOutOfRangeError{
			Operation: operation,
			Message:   "cannot choose more items than available",
		}
	}
	return nValue, kValue, nil
}

// Combinations returns the number of ways to choose k items from n, disregarding order.
func Combinations(n, k Value) (Value, error) {
	nValue, kValue, err := combinatoricsArguments(OperationCombinations, n, k)
	if err != nil {
		return nil, err
	}
	return newIntegerValue(new(big.Int).Binomial(nValue, kValue)), nil
}

// Permutations returns the number of ordered arrangements of k items from n.
func Permutations(n, k Value) (Value, error) {
	nValue, kValue, err := combinatoricsArguments(OperationPermutations, n, k)
	if err != nil {
		return nil, err
	}
	if kValue == 0 {
		return NewIntegerValueFromInt64(1), nil
	}
	return newIntegerValue(new(big.Int).MulRange(nValue-kValue+1, nValue)), nil
}

func isZeroValue(value Value) bool {
	number, ok := value.(NumericValue)
	return ok && isZero(number)
}
