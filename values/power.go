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
	stderrors "errors"
	"math"
	"math/big"
	"math/cmplx"

	"github.com/onflow/rpncalc/rational"
)

// maxRepeatedMultiplicationExponent is the largest integer exponent
// for which complex powers are computed by repeated squaring
const maxRepeatedMultiplicationExponent = 1024

// Power raises the base to the exponent.
//
// Integer and Fraction bases with Integer exponents are exact,
// falling back to floating point only if the exact result would be too large.
// Real bases with a positive Fraction exponent with an odd denominator
// result in the real principal root, e.g. -8^(1/3) is -2.
// Real powers which are not real numbers, e.g. -8^0.5, are computed as complex powers.
func Power(settings Settings, base, exponent Value) (Value, error) {
	baseNumber, ok := base.(NumericValue)
	if !ok {
		return nil, invalidOperands(OperationPower, base, exponent)
	}
	exponentNumber, ok := exponent.(NumericValue)
	if !ok {
		return nil, invalidOperands(OperationPower, base, exponent)
	}

	if baseBinary, ok := baseNumber.(BinaryValue); ok {
		if exponentBinary, ok := exponentNumber.(BinaryValue); ok {
			return binaryPower(settings, baseBinary, exponentBinary), nil
		}
	}

	// Binary operands are unsigned integers
	baseNumber, err := widenBinary(baseNumber)
	if err != nil {
		return nil, err
	}
	exponentNumber, err = widenBinary(exponentNumber)
	if err != nil {
		return nil, err
	}

	if isZero(baseNumber) && isNegative(exponentNumber) {
		return nil, DivisionByZeroError{}
	}

	switch exponentNumber := exponentNumber.(type) {
	case IntegerValue:
		return integerPower(baseNumber, exponentNumber)

	case FractionValue:
		if baseNumber.ValueType().IsReal() {
			result, ok, err := rootPower(baseNumber, exponentNumber.Rational())
			if ok || err != nil {
				return result, err
			}
		}
	}

	return floatingPower(baseNumber, exponentNumber)
}

// Root returns the n-th root of the value.
func Root(settings Settings, value, n Value) (Value, error) {
	nNumber, ok := n.(NumericValue)
	if !ok {
		return nil, invalidOperands(OperationRoot, value, n)
	}
	if _, ok := value.(NumericValue); !ok {
		return nil, invalidOperands(OperationRoot, value, n)
	}

	nNumber, err := widenBinary(nNumber)
	if err != nil {
		return nil, err
	}
	if isZero(nNumber) {
		return nil, DivisionByZeroError{}
	}

	var exponent Value
	switch nNumber := nNumber.(type) {
	case IntegerValue:
		r, err := rational.New(big.NewInt(1), nNumber.value())
		if err != nil {
			return nil, err
		}
		exponent = NewFractionValue(r)

	case FractionValue:
		r, err := nNumber.Rational().Inv()
		if err != nil {
			return nil, err
		}
		exponent = NewFractionValue(r)

	default:
		exponent, err = Divide(settings, NewIntegerValueFromInt64(1), nNumber)
		if err != nil {
			return nil, err
		}
	}

	return Power(settings, value, exponent)
}

func SquareRoot(settings Settings, value Value) (Value, error) {
	switch value := value.(type) {
	case ComplexValue:
		return ComplexValue(cmplx.Sqrt(complex128(value))), nil
	case NumericValue:
		return Root(settings, value, NewIntegerValueFromInt64(2))
	}
	return nil, invalidOperand(OperationSquareRoot, value)
}

func Square(settings Settings, value Value) (Value, error) {
	if _, ok := value.(NumericValue); !ok {
		return nil, invalidOperand(OperationSquare, value)
	}
	return Multiply(settings, value, value)
}

// binaryPower computes the power modulo 2^wordsize, treating both operands as unsigned.
func binaryPower(settings Settings, base, exponent BinaryValue) Value {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(settings.WordSize()))
	result := new(big.Int).Exp(
		new(big.Int).SetUint64(uint64(base)),
		new(big.Int).SetUint64(uint64(exponent)),
		modulus,
	)
	return NewBinaryValue(settings, result.Uint64())
}

func integerPower(base NumericValue, exponent IntegerValue) (Value, error) {
	switch base := base.(type) {
	case IntegerValue:
		result, err := rational.NewFromInteger(base.value()).Pow(exponent.value())
		if err == nil {
			return newRationalValue(result), nil
		}
		if !stderrors.Is(err, rational.OverflowError{}) {
			return nil, err
		}

	case FractionValue:
		result, err := base.Rational().Pow(exponent.value())
		if err == nil {
			return newRationalValue(result), nil
		}
		if !stderrors.Is(err, rational.OverflowError{}) {
			return nil, err
		}

	case ComplexValue:
		if n, ok := exponent.Int64(); ok && n >= -maxRepeatedMultiplicationExponent && n <= maxRepeatedMultiplicationExponent {
			return complexIntegerPower(base, n)
		}
	}

	return floatingPower(base, exponent)
}

// complexIntegerPower computes the power by repeated squaring,
// which is more accurate than the general complex power for small exponents.
func complexIntegerPower(base ComplexValue, exponent int64) (Value, error) {
	invert := exponent < 0
	if invert {
		exponent = -exponent
	}

	result := complex128(1)
	factor := complex128(base)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= factor
		}
		factor *= factor
		exponent >>= 1
	}

	if invert {
		if result == 0 {
			return nil, DivisionByZeroError{}
		}
		result = 1 / result
	}
	return ComplexValue(result), nil
}

// rootPower computes x^(p/q) for a real x.
// It returns false if the power is not a real number,
// i.e. if x is negative and q is even.
func rootPower(base NumericValue, exponent rational.Rational) (Value, bool, error) {
	baseSign := sign(base)

	p := exponent.Numerator()
	q := exponent.Denominator()
	if !q.IsInt64() || q.Int64() > math.MaxInt32 {
		return nil, false, nil
	}
	root := q.Int64()

	if baseSign < 0 && root%2 == 0 {
		return nil, false, nil
	}

	// Exact roots of integers and fractions
	switch base := base.(type) {
	case IntegerValue:
		if r, ok := exactRoot(new(big.Int).Abs(base.value()), root); ok {
			if baseSign < 0 {
				r.Neg(r)
			}
			result, err := rational.NewFromInteger(r).Pow(p)
			if err == nil {
				return newRationalValue(result), true, nil
			}
		}

	case FractionValue:
		r := base.Rational()
		numerator, numeratorOK := exactRoot(new(big.Int).Abs(r.Numerator()), root)
		denominator, denominatorOK := exactRoot(r.Denominator(), root)
		if numeratorOK && denominatorOK {
			if baseSign < 0 {
				numerator.Neg(numerator)
			}
			rootValue, err := rational.New(numerator, denominator)
			if err != nil {
				return nil, true, err
			}
			result, err := rootValue.Pow(p)
			if err == nil {
				return newRationalValue(result), true, nil
			}
		}
	}

	x, err := base.ToDouble()
	if err != nil {
		return nil, true, err
	}
	power, err := exponent.Float64()
	if err != nil {
		return nil, true, err
	}

	magnitude := math.Abs(float64(x))
	var result float64
	if p.Cmp(big.NewInt(1)) == 0 && root == 3 {
		result = math.Cbrt(magnitude)
	} else {
		result = math.Pow(magnitude, power)
	}
	// Odd roots of negative numbers: the sign survives if the numerator is odd
	if baseSign < 0 && p.Bit(0) == 1 {
		result = -result
	}
	return DoubleValue(result), true, nil
}

// exactRoot returns the integer root of the non-negative integer, if it is exact.
func exactRoot(n *big.Int, root int64) (*big.Int, bool) {
	if n.Sign() == 0 || n.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(n), true
	}

	if root == 2 {
		r := new(big.Int).Sqrt(n)
		return r, new(big.Int).Mul(r, r).Cmp(n) == 0
	}

	f, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(f, 0) {
		return nil, false
	}

	estimate := math.Round(math.Pow(f, 1/float64(root)))
	if root == 3 {
		estimate = math.Round(math.Cbrt(f))
	}
	if estimate > maxExactInteger {
		return nil, false
	}

	exponent := big.NewInt(root)
	candidate := big.NewInt(int64(estimate))
	for _, delta := range []int64{0, -1, 1} {
		r := new(big.Int).Add(candidate, big.NewInt(delta))
		if r.Sign() <= 0 {
			continue
		}
		if new(big.Int).Exp(r, exponent, nil).Cmp(n) == 0 {
			return r, true
		}
	}
	return nil, false
}

// floatingPower computes the power in floating point,
// retrying as a complex power if the real power is not a number.
func floatingPower(base, exponent NumericValue) (Value, error) {
	if base.ValueType() == ValueTypeComplex || exponent.ValueType() == ValueTypeComplex {
		return complexPower(base, exponent)
	}

	x, err := base.ToDouble()
	if err != nil {
		return nil, err
	}
	y, err := exponent.ToDouble()
	if err != nil {
		return nil, err
	}

	result := math.Pow(float64(x), float64(y))
	if math.IsNaN(result) {
		return complexPower(base, exponent)
	}
	return DoubleValue(result), nil
}

func complexPower(base, exponent NumericValue) (Value, error) {
	x, err := base.ToComplex()
	if err != nil {
		return nil, err
	}
	y, err := exponent.ToComplex()
	if err != nil {
		return nil, err
	}
	return ComplexValue(cmplx.Pow(complex128(x), complex128(y))), nil
}

// newRationalValue returns an Integer for integral rationals, and a Fraction otherwise.
func newRationalValue(r rational.Rational) Value {
	if r.IsInteger() {
		return newIntegerValue(r.Numerator())
	}
	return NewFractionValue(r)
}

// widenBinary converts a Binary to an unsigned Integer.
func widenBinary(value NumericValue) (NumericValue, error) {
	if binary, ok := value.(BinaryValue); ok {
		return binary.ToInteger()
	}
	return value, nil
}

func sign(value NumericValue) int {
	switch value := value.(type) {
	case IntegerValue:
		return value.value().Sign()
	case FractionValue:
		return value.Rational().Sign()
	case DoubleValue:
		return compareFloats(float64(value), 0)
	case BinaryValue:
		if value == 0 {
			return 0
		}
		return 1
	}
	return 0
}

func isZero(value NumericValue) bool {
	if complexValue, ok := value.(ComplexValue); ok {
		return complexValue == 0
	}
	return sign(value) == 0
}

func isNegative(value NumericValue) bool {
	if complexValue, ok := value.(ComplexValue); ok {
		return imag(complexValue) == 0 && real(complexValue) < 0
	}
	return sign(value) < 0
}
