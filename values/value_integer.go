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
	"math/big"

	"github.com/onflow/rpncalc/format"
	"github.com/onflow/rpncalc/rational"
)

// IntegerValue is an arbitrary precision integer.
// The zero value is 0.
type IntegerValue struct {
	big *big.Int
}

var _ Value = IntegerValue{}
var _ NumericValue = IntegerValue{}

// NewIntegerValue returns an Integer holding a copy of the given integer.
func NewIntegerValue(value *big.Int) IntegerValue {
	return IntegerValue{big: new(big.Int).Set(value)}
}

func NewIntegerValueFromInt64(value int64) IntegerValue {
	return IntegerValue{big: big.NewInt(value)}
}

// newIntegerValue takes ownership of the given integer.
func newIntegerValue(value *big.Int) IntegerValue {
	return IntegerValue{big: value}
}

func (v IntegerValue) value() *big.Int {
	if v.big == nil {
		return new(big.Int)
	}
	return v.big
}

// BigInt returns a copy of the integer.
func (v IntegerValue) BigInt() *big.Int {
	return new(big.Int).Set(v.value())
}

// Int64 returns the integer, if it fits into an int64.
func (v IntegerValue) Int64() (int64, bool) {
	value := v.value()
	if !value.IsInt64() {
		return 0, false
	}
	return value.Int64(), true
}

func (IntegerValue) isValue() {}

func (IntegerValue) ValueType() ValueType {
	return ValueTypeInteger
}

func (v IntegerValue) String() string {
	return v.value().String()
}

func (v IntegerValue) Format(settings Settings) string {
	if settings.DecimalFormat == DecimalFormatNumber {
		return v.grouped()
	}
	return v.String()
}

func (v IntegerValue) grouped() string {
	return format.GroupDigits(v.String(), ",")
}

func (v IntegerValue) EntryText() string {
	return v.String()
}

func (v IntegerValue) DisplayFormats(_ Settings) []DisplayFormat {
	return []DisplayFormat{
		{Name: "Integer", Text: v.String()},
		{Name: "Grouped", Text: v.grouped()},
	}
}

func (v IntegerValue) Equal(other Value) bool {
	o, ok := other.(IntegerValue)
	return ok && v.value().Cmp(o.value()) == 0
}

func (v IntegerValue) Plus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(IntegerValue)
	if !ok {
		return nil, invalidOperands(OperationAdd, v, other)
	}
	return newIntegerValue(new(big.Int).Add(v.value(), o.value())), nil
}

func (v IntegerValue) Minus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(IntegerValue)
	if !ok {
		return nil, invalidOperands(OperationSubtract, v, other)
	}
	return newIntegerValue(new(big.Int).Sub(v.value(), o.value())), nil
}

func (v IntegerValue) Mul(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(IntegerValue)
	if !ok {
		return nil, invalidOperands(OperationMultiply, v, other)
	}
	return newIntegerValue(new(big.Int).Mul(v.value(), o.value())), nil
}

// Div returns an Integer if the division is exact, and a Double otherwise.
func (v IntegerValue) Div(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(IntegerValue)
	if !ok {
		return nil, invalidOperands(OperationDivide, v, other)
	}
	if o.value().Sign() == 0 {
		return nil, DivisionByZeroError{}
	}

	quotient, remainder := new(big.Int).QuoRem(v.value(), o.value(), new(big.Int))
	if remainder.Sign() == 0 {
		return newIntegerValue(quotient), nil
	}

	ratio, err := rational.New(v.value(), o.value())
	if err != nil {
		return nil, err
	}
	result, err := ratio.Float64()
	if err != nil {
		return nil, err
	}
	return DoubleValue(result), nil
}

// Mod returns the remainder of the truncated division, which has the sign of the dividend.
func (v IntegerValue) Mod(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(IntegerValue)
	if !ok {
		return nil, invalidOperands(OperationModulus, v, other)
	}
	if o.value().Sign() == 0 {
		return nil, DivisionByZeroError{}
	}
	return newIntegerValue(new(big.Int).Rem(v.value(), o.value())), nil
}

func (v IntegerValue) Negate(_ Settings) (Value, error) {
	return newIntegerValue(new(big.Int).Neg(v.value())), nil
}

func (v IntegerValue) Abs() (Value, error) {
	return newIntegerValue(new(big.Int).Abs(v.value())), nil
}

func (v IntegerValue) Sign() Value {
	return NewIntegerValueFromInt64(int64(v.value().Sign()))
}

func (v IntegerValue) Compare(other NumericValue) (int, error) {
	o, ok := other.(IntegerValue)
	if !ok {
		return 0, invalidOperands(OperationCompare, v, other)
	}
	return v.value().Cmp(o.value()), nil
}

// ToDouble returns the nearest floating point value,
// or an OverflowError if the integer is beyond the floating point range.
func (v IntegerValue) ToDouble() (DoubleValue, error) {
	result, err := rational.NewFromInteger(v.value()).Float64()
	if err != nil {
		return 0, err
	}
	return DoubleValue(result), nil
}

func (v IntegerValue) ToInteger() (IntegerValue, error) {
	return v, nil
}

func (v IntegerValue) ToComplex() (ComplexValue, error) {
	double, err := v.ToDouble()
	if err != nil {
		return 0, err
	}
	return NewComplexValue(float64(double), 0), nil
}

// ToBinary returns the two's complement bits of the integer, masked to the word size.
func (v IntegerValue) ToBinary(settings Settings) BinaryValue {
	value := v.value()
	mask := new(big.Int).SetUint64(settings.WordMask())
	if value.Sign() < 0 {
		// Two's complement of the low 64 bits
		modulus := new(big.Int).Lsh(big.NewInt(1), MaxBinaryWordSize)
		value = new(big.Int).Mod(value, modulus)
	}
	return BinaryValue(new(big.Int).And(value, mask).Uint64())
}
