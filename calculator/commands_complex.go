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

var complexCommands = &commandGroup{
	name: "complex",
	commands: map[string]commandFunc{
		"ToComplex":   typed(toComplex, realTypes, realTypes),
		"FromComplex": typed(fromComplex, numericTypes),
		"ToPolar":     typed(toPolar, numericTypes),
		"FromPolar":   typed(fromPolar, realTypes, realTypes),
		"Conjugate": typed(complexCommand(func(_ values.Settings, value values.ComplexValue) values.Value {
			return value.Conjugate()
		}), numericTypes),
		"Real": typed(complexCommand(func(_ values.Settings, value values.ComplexValue) values.Value {
			return values.DoubleValue(value.Real())
		}), numericTypes),
		"Imaginary": typed(complexCommand(func(_ values.Settings, value values.ComplexValue) values.Value {
			return values.DoubleValue(value.Imaginary())
		}), numericTypes),
		"Magnitude": typed(complexCommand(func(_ values.Settings, value values.ComplexValue) values.Value {
			return values.DoubleValue(value.Magnitude())
		}), numericTypes),
		"Phase": typed(complexCommand(func(settings values.Settings, value values.ComplexValue) values.Value {
			return values.DoubleValue(settings.AngleMode.FromRadians(value.Phase()))
		}), numericTypes),
	},
}

func complexArgument(value values.Value) (values.ComplexValue, error) {
	return value.(values.NumericValue).ToComplex()
}

func complexCommand(operation func(settings values.Settings, value values.ComplexValue) values.Value) commandFunc {
	return unarySettingsCommand(func(settings values.Settings, value values.Value) (values.Value, error) {
		complexValue, err := complexArgument(value)
		if err != nil {
			return nil, err
		}
		return operation(settings, complexValue), nil
	})
}

// toComplex replaces the real part and the imaginary part with the complex number
func toComplex(command *Command) error {
	operands, err := command.UseTopValues(2)
	if err != nil {
		return err
	}

	re, err := realArgument(operands[1])
	if err != nil {
		return err
	}

	im, err := realArgument(operands[0])
	if err != nil {
		return err
	}

	return command.Commit(values.NewComplexValue(re, im))
}

// fromComplex replaces a number with its real part and imaginary part
func fromComplex(command *Command) error {
	operands, err := command.UseTopValues(1)
	if err != nil {
		return err
	}

	value, err := complexArgument(operands[0])
	if err != nil {
		return err
	}

	return command.Commit(
		values.DoubleValue(value.Real()),
		values.DoubleValue(value.Imaginary()),
	)
}

// toPolar replaces a number with its magnitude and its angle in the angle mode
func toPolar(command *Command) error {
	operands, err := command.UseTopValues(1)
	if err != nil {
		return err
	}

	value, err := complexArgument(operands[0])
	if err != nil {
		return err
	}

	angleMode := command.Settings().AngleMode
	return command.Commit(
		values.DoubleValue(value.Magnitude()),
		values.DoubleValue(angleMode.FromRadians(value.Phase())),
	)
}

// fromPolar replaces the magnitude and the angle in the angle mode with the complex number
func fromPolar(command *Command) error {
	operands, err := command.UseTopValues(2)
	if err != nil {
		return err
	}

	magnitude, err := realArgument(operands[1])
	if err != nil {
		return err
	}

	angle, err := realArgument(operands[0])
	if err != nil {
		return err
	}

	angleMode := command.Settings().AngleMode
	return command.Commit(values.NewPolarComplexValue(magnitude, angleMode.ToRadians(angle)))
}
