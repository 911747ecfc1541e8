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

package calculator

import (
	"github.com/onflow/rpncalc/values"
)

var fractionCommands = &commandGroup{
	name: "fraction",
	commands: map[string]commandFunc{
		"ToFraction":   typed(unaryCommand(toFraction), realTypes),
		"ToDouble":     typed(unaryCommand(toDouble), realTypes),
		"Numerator":    typed(unaryCommand(numerator), rationalTypes),
		"Denominator":  typed(unaryCommand(denominator), rationalTypes),
		"WholePart":    typed(unaryCommand(values.Truncate), rationalTypes),
		"ToMixedParts": typed(toMixedParts, rationalTypes),
	},
}

func toFraction(value values.Value) (values.Value, error) {
	switch value := value.(type) {
	case values.DoubleValue:
		return value.ToFraction()
	case values.BinaryValue:
		return value.ToInteger()
	}
	return value, nil
}

func toDouble(value values.Value) (values.Value, error) {
	return value.(values.NumericValue).ToDouble()
}

func numerator(value values.Value) (values.Value, error) {
	if fraction, ok := value.(values.FractionValue); ok {
		return values.NewIntegerValue(fraction.Rational().Numerator()), nil
	}
	return value, nil
}

func denominator(value values.Value) (values.Value, error) {
	if fraction, ok := value.(values.FractionValue); ok {
		return values.NewIntegerValue(fraction.Rational().Denominator()), nil
	}
	return values.NewIntegerValueFromInt64(1), nil
}

// toMixedParts replaces a fraction with its whole part and its proper fractional part,
// e.g. 7/2 with 3 and 1/2
func toMixedParts(command *Command) error {
	operands, err := command.UseTopValues(1)
	if err != nil {
		return err
	}

	whole, err := values.Truncate(operands[0])
	if err != nil {
		return err
	}

	fractional, err := values.FracPart(operands[0])
	if err != nil {
		return err
	}

	return command.Commit(whole, fractional)
}
