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
	"math/cmplx"
	"strings"

	"github.com/onflow/rpncalc/format"
)

// ComplexValue is a complex number with double precision components.
type ComplexValue complex128

var _ Value = ComplexValue(0)
var _ NumericValue = ComplexValue(0)

// PolarPrefix marks the angle of a complex number in polar form
const PolarPrefix = "@"

// AlternatePolarPrefix is accepted on entry
const AlternatePolarPrefix = "∠"

func NewComplexValue(real, imaginary float64) ComplexValue {
	return ComplexValue(complex(real, imaginary))
}

// NewPolarComplexValue returns the complex number with the given magnitude and angle in radians.
func NewPolarComplexValue(magnitude, angle float64) ComplexValue {
	return ComplexValue(cmplx.Rect(magnitude, angle))
}

func (v ComplexValue) Real() float64 {
	return real(v)
}

func (v ComplexValue) Imaginary() float64 {
	return imag(v)
}

func (v ComplexValue) Magnitude() float64 {
	return cmplx.Abs(complex128(v))
}

// Phase returns the angle in radians.
func (v ComplexValue) Phase() float64 {
	return cmplx.Phase(complex128(v))
}

func (v ComplexValue) Conjugate() ComplexValue {
	return ComplexValue(cmplx.Conj(complex128(v)))
}

func (ComplexValue) isValue() {}

func (ComplexValue) ValueType() ValueType {
	return ValueTypeComplex
}

func (v ComplexValue) String() string {
	return v.Format(DefaultSettings())
}

func (v ComplexValue) Format(settings Settings) string {
	if settings.ComplexFormat == ComplexFormatPolar {
		return v.formatPolar(settings, settings.AngleMode)
	}
	return v.formatRectangular(settings)
}

func (v ComplexValue) formatRectangular(settings Settings) string {
	return formatPair(
		formatFloat(real(v), settings, settings.DecimalFormat),
		formatFloat(imag(v), settings, settings.DecimalFormat),
	)
}

func (v ComplexValue) formatPolar(settings Settings, angleMode AngleMode) string {
	return formatPair(
		formatFloat(v.Magnitude(), settings, settings.DecimalFormat),
		PolarPrefix+formatFloat(angleMode.FromRadians(v.Phase()), settings, settings.DecimalFormat),
	)
}

func formatPair(first, second string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(first)
	sb.WriteString(", ")
	sb.WriteString(second)
	sb.WriteByte(')')
	return sb.String()
}

func (v ComplexValue) EntryText() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(format.FloatEntry(real(v)))
	sb.WriteByte(',')
	sb.WriteString(format.FloatEntry(imag(v)))
	sb.WriteByte(')')
	return sb.String()
}

func (v ComplexValue) DisplayFormats(settings Settings) []DisplayFormat {
	return []DisplayFormat{
		{Name: "Rectangular", Text: v.formatRectangular(settings)},
		{Name: "Polar (Radians)", Text: v.formatPolar(settings, AngleModeRadians)},
		{Name: "Polar (Degrees)", Text: v.formatPolar(settings, AngleModeDegrees)},
	}
}

func (v ComplexValue) Equal(other Value) bool {
	o, ok := other.(ComplexValue)
	return ok && o == v
}

func (v ComplexValue) Plus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, invalidOperands(OperationAdd, v, other)
	}
	return v + o, nil
}

func (v ComplexValue) Minus(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, invalidOperands(OperationSubtract, v, other)
	}
	return v - o, nil
}

func (v ComplexValue) Mul(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, invalidOperands(OperationMultiply, v, other)
	}
	return v * o, nil
}

func (v ComplexValue) Div(_ Settings, other NumericValue) (Value, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return nil, invalidOperands(OperationDivide, v, other)
	}
	if o == 0 {
		return nil, DivisionByZeroError{}
	}
	return v / o, nil
}

func (v ComplexValue) Mod(_ Settings, other NumericValue) (Value, error) {
	return nil, invalidOperands(OperationModulus, v, other)
}

func (v ComplexValue) Negate(_ Settings) (Value, error) {
	return -v, nil
}

// Abs returns the magnitude.
func (v ComplexValue) Abs() (Value, error) {
	return DoubleValue(v.Magnitude()), nil
}

// Sign returns the unit complex number in the direction of the value, or 0.
func (v ComplexValue) Sign() Value {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return NewIntegerValueFromInt64(0)
	}
	return NewComplexValue(real(v)/magnitude, imag(v)/magnitude)
}

// Compare orders by the real component first, then by the imaginary component.
func (v ComplexValue) Compare(other NumericValue) (int, error) {
	o, ok := other.(ComplexValue)
	if !ok {
		return 0, invalidOperands(OperationCompare, v, other)
	}
	if result := compareFloats(real(v), real(o)); result != 0 {
		return result, nil
	}
	return compareFloats(imag(v), imag(o)), nil
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ToDouble returns the real component, if the imaginary component is zero.
func (v ComplexValue) ToDouble() (DoubleValue, error) {
	if imag(v) != 0 {
		return 0, invalidOperand(OperationConvert, v)
	}
	return DoubleValue(real(v)), nil
}

func (v ComplexValue) ToInteger() (IntegerValue, error) {
	double, err := v.ToDouble()
	if err != nil {
		return IntegerValue{}, err
	}
	return double.ToInteger()
}

func (v ComplexValue) ToComplex() (ComplexValue, error) {
	return v, nil
}

func (v ComplexValue) isFinite() bool {
	return isFinite(real(v)) && isFinite(imag(v))
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
