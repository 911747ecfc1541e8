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

	"github.com/govalues/decimal"

	"github.com/onflow/rpncalc/format"
	"github.com/onflow/rpncalc/rational"
)

// DoubleValue is a double precision floating point number.
type DoubleValue float64

var _ Value = DoubleValue(0)
var _ NumericValue = DoubleValue(0)

const (
	// maxDecimalFractionScale is the largest number of decimal places
	// for which ToFraction uses the exact decimal expansion
	maxDecimalFractionScale = 12

	// approximationTolerance is the relative tolerance of the continued fraction search
	approximationTolerance = 1e-15
)

func (DoubleValue) isValue() {}

func (DoubleValue) ValueType() ValueType {
	return ValueTypeDouble
}

func (v DoubleValue) String() string {
	return format.FloatGeneral(float64(v))
}

func (v DoubleValue) Format(settings Settings) string {
	return v.formatDecimal(settings, settings.DecimalFormat)
}

func (v DoubleValue) formatDecimal(settings Settings, decimalFormat DecimalFormat) string {
	return formatFloat(float64(v), settings, decimalFormat)
}

func formatFloat(f float64, settings Settings, decimalFormat DecimalFormat) string {
	switch decimalFormat {
	case DecimalFormatFixed:
		return format.FloatFixed(f, settings.fixedDigits())
	case DecimalFormatScientific:
		return format.FloatScientific(f, settings.fixedDigits())
	case DecimalFormatNumber:
		return format.FloatNumber(f, settings.fixedDigits(), settings.language())
	default:
		return format.FloatGeneral(f)
	}
}

func (v DoubleValue) EntryText() string {
	return format.FloatEntry(float64(v))
}

func (v DoubleValue) DisplayFormats(settings Settings) []DisplayFormat {
	result := make([]DisplayFormat, 0, DecimalFormatCount)
	for i := 0; i < DecimalFormatCount; i++ {
		decimalFormat := DecimalFormat(i)
		result = append(result, DisplayFormat{
			Name: decimalFormat.String(),
			Text: v.formatDecimal(settings, decimalFormat),
		})
	}
	return result
}

func (v DoubleValue) Equal(other Value) bool {
	o, ok := other.(DoubleValue)
	return ok && o == v
}

func (v DoubleValue) Plus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, invalidOperands(OperationAdd, v, other)
	}
	return v + o, nil
}

func (v DoubleValue) Minus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, invalidOperands(OperationSubtract, v, other)
	}
	return v - o, nil
}

func (v DoubleValue) Mul(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, invalidOperands(OperationMultiply, v, other)
	}
	return v * o, nil
}

func (v DoubleValue) Div(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, invalidOperands(OperationDivide, v, other)
	}
	if o == 0 {
		return nil, DivisionByZeroError{}
	}
	return v / o, nil
}

func (v DoubleValue) Mod(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return nil, invalidOperands(OperationModulus, v, other)
	}
	if o == 0 {
		return nil, DivisionByZeroError{}
	}
	return DoubleValue(math.Mod(float64(v), float64(o))), nil
}

func (v DoubleValue) Negate(_ Settings) (Value, error) {
	return -v, nil
}

func (v DoubleValue) Abs() (Value, error) {
	return DoubleValue(math.Abs(float64(v))), nil
}

func (v DoubleValue) Sign() Value {
	switch {
	case v < 0:
		return NewIntegerValueFromInt64(-1)
	case v > 0:
		return NewIntegerValueFromInt64(1)
	default:
		return NewIntegerValueFromInt64(0)
	}
}

func (v DoubleValue) Compare(other NumericValue) (int, error) {
	o, ok := other.(DoubleValue)
	if !ok {
		return 0, invalidOperands(OperationCompare, v, other)
	}
	switch {
	case v < o:
		return -1, nil
	case v > o:
		return 1, nil
	default:
		return 0, nil
	}
}

func (v DoubleValue) ToDouble() (DoubleValue, error) {
	return v, nil
}

// ToInteger truncates towards zero.
func (v DoubleValue) ToInteger() (IntegerValue, error) {
	f := float64(v)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return IntegerValue{}, NonFiniteResultError{Operation: OperationConvert}
	}
	result, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return newIntegerValue(result), nil
}

func (v DoubleValue) ToComplex() (ComplexValue, error) {
	return NewComplexValue(float64(v), 0), nil
}

// ToFraction returns a fraction for the double.
//
// Doubles with a short decimal expansion convert through their decimal digits,
// so 0.1 becomes 1/10 rather than its exact binary value.
// Other doubles, including nonzero ones whose decimal rounds to zero,
// are approximated with a bounded continued fraction search,
// which fails with an OverflowError if it does not converge.
func (v DoubleValue) ToFraction() (FractionValue, error) {
	f := float64(v)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return FractionValue{}, NonFiniteResultError{Operation: OperationConvert}
	}

	d, err := decimal.NewFromFloat64(f)
	if err == nil {
		d = d.Trim(0)
		if (!d.IsZero() || f == 0) && d.Scale() <= maxDecimalFractionScale {
			return NewFractionValue(rational.NewFromDecimal(d)), nil
		}
	}

	r, err := rational.Approximate(f, approximationTolerance)
	if err != nil {
		return FractionValue{}, err
	}
	return NewFractionValue(r), nil
}
