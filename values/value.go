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
	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/rational"
)

// Value is an immutable, typed datum which can be stored on the stack.
// Every operation returns a new value.
type Value interface {
	isValue()
	ValueType() ValueType
	// String returns the display text under the default settings
	String() string
	// Format returns the display text under the given settings.
	// The display text may be lossy.
	Format(settings Settings) string
	// EntryText returns a lossless text, which parses back to an equal value.
	EntryText() string
	// DisplayFormats returns the ordered list of alternate representations.
	// The number of entries is fixed per value type.
	DisplayFormats(settings Settings) []DisplayFormat
	Equal(other Value) bool
}

// NumericValue is a Value which takes part in promotion.
//
// The binary arithmetic functions expect the other operand to be of the same type,
// i.e. the operands must have been promoted first.
type NumericValue interface {
	Value
	Plus(settings Settings, other NumericValue) (Value, error)
	Minus(settings Settings, other NumericValue) (Value, error)
	Mul(settings Settings, other NumericValue) (Value, error)
	Div(settings Settings, other NumericValue) (Value, error)
	Mod(settings Settings, other NumericValue) (Value, error)
	Negate(settings Settings) (Value, error)
	Abs() (Value, error)
	Sign() Value
	Compare(other NumericValue) (int, error)
	ToDouble() (DoubleValue, error)
	ToInteger() (IntegerValue, error)
	ToComplex() (ComplexValue, error)
}

// DisplayFormat is a named alternate representation of a value.
type DisplayFormat struct {
	Name string
	Text string
}

// Promote converts the lower-ranked of the two operands to the type of the higher-ranked one.
func Promote(left, right NumericValue) (NumericValue, NumericValue, error) {
	leftType := left.ValueType()
	rightType := right.ValueType()

	switch {
	case leftType == rightType:
		return left, right, nil

	case leftType < rightType:
		promoted, err := ConvertTo(left, rightType)
		if err != nil {
			return nil, nil, err
		}
		return promoted, right, nil

	default:
		promoted, err := ConvertTo(right, leftType)
		if err != nil {
			return nil, nil, err
		}
		return left, promoted, nil
	}
}

// ConvertTo widens the numeric value to the given numeric type.
// Narrowing conversions are not supported.
func ConvertTo(value NumericValue, targetType ValueType) (NumericValue, error) {
	if value.ValueType() == targetType {
		return value, nil
	}
	if value.ValueType() > targetType {
		return nil, InvalidOperandError{
			Operation: OperationConvert,
			Type:      value.ValueType(),
		}
	}

	switch targetType {
	case ValueTypeInteger:
		return value.ToInteger()

	case ValueTypeFraction:
		integer, err := value.ToInteger()
		if err != nil {
			return nil, err
		}
		return NewFractionValue(rational.NewFromInteger(integer.BigInt())), nil

	case ValueTypeDouble:
		return value.ToDouble()

	case ValueTypeComplex:
		return value.ToComplex()
	}

	panic(errors.NewUnreachableError())
}

type numericOperation func(settings Settings, left, right NumericValue) (Value, error)

func numericBinaryOperation(
	settings Settings,
	left, right Value,
	operation numericOperation,
) (Value, bool, error) {
	leftNumber, ok := left.(NumericValue)
	if !ok {
		return nil, false, nil
	}
	rightNumber, ok := right.(NumericValue)
	if !ok {
		return nil, false, nil
	}

	leftNumber, rightNumber, err := Promote(leftNumber, rightNumber)
	if err != nil {
		return nil, true, err
	}

	result, err := operation(settings, leftNumber, rightNumber)
	return result, true, err
}

// Add returns the sum of the two values.
// Numeric operands are promoted. A TimeSpan can be added to a DateTime or another TimeSpan.
func Add(settings Settings, left, right Value) (Value, error) {
	result, ok, err := numericBinaryOperation(
		settings,
		left,
		right,
		func(settings Settings, left, right NumericValue) (Value, error) {
			return left.Plus(settings, right)
		},
	)
	if ok {
		return result, err
	}

	switch left := left.(type) {
	case DateTimeValue:
		if right, ok := right.(TimeSpanValue); ok {
			return left.AddTimeSpan(right)
		}

	case TimeSpanValue:
		switch right := right.(type) {
		case TimeSpanValue:
			return left.Plus(right)
		case DateTimeValue:
			return right.AddTimeSpan(left)
		}
	}

	return nil, invalidOperands(OperationAdd, left, right)
}

// Subtract returns the difference of the two values.
// Subtracting two DateTime values results in a TimeSpan.
func Subtract(settings Settings, left, right Value) (Value, error) {
	result, ok, err := numericBinaryOperation(
		settings,
		left,
		right,
		func(settings Settings, left, right NumericValue) (Value, error) {
			return left.Minus(settings, right)
		},
	)
	if ok {
		return result, err
	}

	switch left := left.(type) {
	case DateTimeValue:
		switch right := right.(type) {
		case TimeSpanValue:
			negated, err := right.Negate()
			if err != nil {
				return nil, err
			}
			return left.AddTimeSpan(negated)
		case DateTimeValue:
			return left.Sub(right)
		}

	case TimeSpanValue:
		if right, ok := right.(TimeSpanValue); ok {
			return left.Minus(right)
		}
	}

	return nil, invalidOperands(OperationSubtract, left, right)
}

// Multiply returns the product of the two values.
// A TimeSpan can be scaled by a real number.
func Multiply(settings Settings, left, right Value) (Value, error) {
	result, ok, err := numericBinaryOperation(
		settings,
		left,
		right,
		func(settings Settings, left, right NumericValue) (Value, error) {
			return left.Mul(settings, right)
		},
	)
	if ok {
		return result, err
	}

	if timeSpan, ok := left.(TimeSpanValue); ok {
		if factor, ok := realFactor(right); ok {
			return timeSpan.Scale(factor)
		}
	}
	if timeSpan, ok := right.(TimeSpanValue); ok {
		if factor, ok := realFactor(left); ok {
			return timeSpan.Scale(factor)
		}
	}

	return nil, invalidOperands(OperationMultiply, left, right)
}

// Divide returns the quotient of the two values.
// A TimeSpan can be divided by a real number, or by another TimeSpan resulting in a Double.
func Divide(settings Settings, left, right Value) (Value, error) {
	result, ok, err := numericBinaryOperation(
		settings,
		left,
		right,
		func(settings Settings, left, right NumericValue) (Value, error) {
			return left.Div(settings, right)
		},
	)
	if ok {
		return result, err
	}

	if timeSpan, ok := left.(TimeSpanValue); ok {
		switch right := right.(type) {
		case TimeSpanValue:
			return timeSpan.Ratio(right)
		default:
			if divisor, ok := realFactor(right); ok {
				return timeSpan.DivideBy(divisor)
			}
		}
	}

	return nil, invalidOperands(OperationDivide, left, right)
}

// Modulus returns the remainder of the truncated division of the two values.
func Modulus(settings Settings, left, right Value) (Value, error) {
	result, ok, err := numericBinaryOperation(
		settings,
		left,
		right,
		func(settings Settings, left, right NumericValue) (Value, error) {
			return left.Mod(settings, right)
		},
	)
	if ok {
		return result, err
	}

	return nil, invalidOperands(OperationModulus, left, right)
}

func Negate(settings Settings, value Value) (Value, error) {
	switch value := value.(type) {
	case NumericValue:
		return value.Negate(settings)
	case TimeSpanValue:
		return value.Negate()
	}
	return nil, invalidOperand(OperationNegate, value)
}

// Abs returns the absolute value.
// The absolute value of a Complex is its magnitude.
func Abs(value Value) (Value, error) {
	switch value := value.(type) {
	case NumericValue:
		return value.Abs()
	case TimeSpanValue:
		return value.Abs()
	}
	return nil, invalidOperand(OperationAbs, value)
}

// Sign returns -1, 0, or 1 as an Integer for the real variants.
// The sign of a Complex is the unit value in its direction.
func Sign(value Value) (Value, error) {
	switch value := value.(type) {
	case NumericValue:
		return value.Sign(), nil
	case TimeSpanValue:
		return value.Sign(), nil
	}
	return nil, invalidOperand(OperationSign, value)
}

// Compare returns -1, 0, or 1.
// An absent value (nil) is less than any value.
func Compare(left, right Value) (int, error) {
	switch {
	case left == nil && right == nil:
		return 0, nil
	case left == nil:
		return -1, nil
	case right == nil:
		return 1, nil
	}

	if leftNumber, ok := left.(NumericValue); ok {
		if rightNumber, ok := right.(NumericValue); ok {
			leftNumber, rightNumber, err := Promote(leftNumber, rightNumber)
			if err != nil {
				return 0, err
			}
			return leftNumber.Compare(rightNumber)
		}
	}

	switch left := left.(type) {
	case DateTimeValue:
		if right, ok := right.(DateTimeValue); ok {
			return left.Compare(right), nil
		}
	case TimeSpanValue:
		if right, ok := right.(TimeSpanValue); ok {
			return left.Compare(right), nil
		}
	}

	return 0, invalidOperands(OperationCompare, left, right)
}

// realFactor returns the floating point value of a real numeric value,
// which can scale a TimeSpan.
func realFactor(value Value) (float64, bool) {
	if !value.ValueType().IsReal() {
		return 0, false
	}
	double, err := value.(NumericValue).ToDouble()
	if err != nil {
		return 0, false
	}
	return float64(double), true
}

func invalidOperands(operation Operation, left, right Value) error {
	return InvalidOperandsError{
		Operation: operation,
		LeftType:  left.ValueType(),
		RightType: right.ValueType(),
	}
}

func invalidOperand(operation Operation, value Value) error {
	return InvalidOperandError{
		Operation: operation,
		Type:      value.ValueType(),
	}
}
