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
	"github.com/onflow/rpncalc/rational"
)

// FractionValue is an exact rational number.
type FractionValue struct {
	rational rational.Rational
}

var _ Value = FractionValue{}
var _ NumericValue = FractionValue{}

func NewFractionValue(r rational.Rational) FractionValue {
	return FractionValue{rational: r}
}

func (v FractionValue) Rational() rational.Rational {
	return v.rational
}

func (FractionValue) isValue() {}

func (FractionValue) ValueType() ValueType {
	return ValueTypeFraction
}

func (v FractionValue) String() string {
	return v.rational.String()
}

func (v FractionValue) Format(settings Settings) string {
	return v.formatFraction(settings, settings.FractionFormat)
}

func (v FractionValue) formatFraction(settings Settings, fractionFormat FractionFormat) string {
	switch fractionFormat {
	case FractionFormatMixed:
		return v.rational.MixedString()

	case FractionFormatDecimal:
		double, err := v.ToDouble()
		if err != nil {
			// Beyond the floating point range: fall back to the exact digits
			return v.rational.FixedString(uint(settings.fixedDigits()))
		}
		return double.Format(settings)

	default:
		return v.rational.String()
	}
}

func (v FractionValue) EntryText() string {
	return v.rational.String()
}

func (v FractionValue) DisplayFormats(settings Settings) []DisplayFormat {
	result := make([]DisplayFormat, 0, FractionFormatCount)
	for i := 0; i < FractionFormatCount; i++ {
		fractionFormat := FractionFormat(i)
		result = append(result, DisplayFormat{
			Name: fractionFormat.String(),
			Text: v.formatFraction(settings, fractionFormat),
		})
	}
	return result
}

func (v FractionValue) Equal(other Value) bool {
	o, ok := other.(FractionValue)
	return ok && v.rational.Equal(o.rational)
}

func (v FractionValue) Plus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, invalidOperands(OperationAdd, v, other)
	}
	return NewFractionValue(v.rational.Add(o.rational)), nil
}

func (v FractionValue) Minus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, invalidOperands(OperationSubtract, v, other)
	}
	return NewFractionValue(v.rational.Sub(o.rational)), nil
}

func (v FractionValue) Mul(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, invalidOperands(OperationMultiply, v, other)
	}
	return NewFractionValue(v.rational.Mul(o.rational)), nil
}

func (v FractionValue) Div(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, invalidOperands(OperationDivide, v, other)
	}
	result, err := v.rational.Div(o.rational)
	if err != nil {
		return nil, err
	}
	return NewFractionValue(result), nil
}

func (v FractionValue) Mod(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return nil, invalidOperands(OperationModulus, v, other)
	}
	result, err := v.rational.Mod(o.rational)
	if err != nil {
		return nil, err
	}
	return NewFractionValue(result), nil
}

func (v FractionValue) Negate(_ Settings) (Value, error) {
	return NewFractionValue(v.rational.Neg()), nil
}

func (v FractionValue) Abs() (Value, error) {
	return NewFractionValue(v.rational.Abs()), nil
}

func (v FractionValue) Sign() Value {
	return NewIntegerValueFromInt64(int64(v.rational.Sign()))
}

func (v FractionValue) Compare(other NumericValue) (int, error) {
	o, ok := other.(FractionValue)
	if !ok {
		return 0, invalidOperands(OperationCompare, v, other)
	}
	return v.rational.Cmp(o.rational), nil
}

func (v FractionValue) ToDouble() (DoubleValue, error) {
	result, err := v.rational.Float64()
	if err != nil {
		return 0, err
	}
	return DoubleValue(result), nil
}

// ToInteger truncates towards zero.
func (v FractionValue) ToInteger() (IntegerValue, error) {
	return newIntegerValue(v.rational.Truncate()), nil
}

func (v FractionValue) ToComplex() (ComplexValue, error) {
	double, err := v.ToDouble()
	if err != nil {
		return 0, err
	}
	return NewComplexValue(float64(double), 0), nil
}
