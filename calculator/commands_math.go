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
	"math"

	"github.com/onflow/rpncalc/values"
)

var mathCommands = &commandGroup{
	name: "math",
	commands: map[string]commandFunc{
		"Add":           binarySettingsCommand(values.Add),
		"Subtract":      binarySettingsCommand(values.Subtract),
		"Multiply":      binarySettingsCommand(values.Multiply),
		"Divide":        binarySettingsCommand(values.Divide),
		"Modulus":       binarySettingsCommand(values.Modulus),
		"Negate":        unarySettingsCommand(values.Negate),
		"Abs":           unaryCommand(values.Abs),
		"Sign":          unaryCommand(values.Sign),
		"Invert":        unarySettingsCommand(values.Invert),
		"Square":        unarySettingsCommand(values.Square),
		"SquareRoot":    unarySettingsCommand(values.SquareRoot),
		"Power":         binarySettingsCommand(values.Power),
		"Root":          binarySettingsCommand(values.Root),
		"Factorial":     unaryCommand(values.Factorial),
		"Exp":           unaryCommand(values.Exp),
		"Ln":            unaryCommand(values.Ln),
		"Log":           unaryCommand(values.Log),
		"TenToX":        unarySettingsCommand(values.TenToX),
		"Sin":           unarySettingsCommand(values.Sin),
		"Cos":           unarySettingsCommand(values.Cos),
		"Tan":           unarySettingsCommand(values.Tan),
		"ArcSin":        unarySettingsCommand(values.ArcSin),
		"ArcCos":        unarySettingsCommand(values.ArcCos),
		"ArcTan":        unarySettingsCommand(values.ArcTan),
		"Sinh":          unaryCommand(values.Sinh),
		"Cosh":          unaryCommand(values.Cosh),
		"Tanh":          unaryCommand(values.Tanh),
		"Floor":         unaryCommand(values.Floor),
		"Ceiling":       unaryCommand(values.Ceiling),
		"Round":         unaryCommand(values.Round),
		"Truncate":      unaryCommand(values.Truncate),
		"FracPart":      unaryCommand(values.FracPart),
		"Percent":       binarySettingsCommand(values.Percent),
		"PercentChange": binarySettingsCommand(values.PercentChange),
		"Min":           binaryCommand(values.Min),
		"Max":           binaryCommand(values.Max),
		"Combinations":  binaryCommand(values.Combinations),
		"Permutations":  binaryCommand(values.Permutations),
		"ToDegrees":     typed(scaleCommand(180/math.Pi), realTypes),
		"ToRadians":     typed(scaleCommand(math.Pi/180), realTypes),
		"Sum":           sumAll,
		"Mean":          meanAll,
	},
	parameterCommands: map[string]parameterCommandFunc{
		"Round": roundN,
		"Sum":   sumN,
		"Mean":  meanN,
	},
}

func scaleCommand(factor float64) commandFunc {
	return unarySettingsCommand(func(settings values.Settings, value values.Value) (values.Value, error) {
		return values.Multiply(settings, value, values.DoubleValue(factor))
	})
}

// roundN rounds to n decimal digits; negative n rounds to tens, hundreds, etc.
func roundN(command *Command, n int) error {
	return unaryCommand(func(value values.Value) (values.Value, error) {
		return values.RoundDigits(value, n)
	})(command)
}

func sumAll(command *Command) error {
	return sumN(command, command.Count())
}

func sumN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	operands, err := command.UseTopValues(n)
	if err != nil {
		return err
	}

	sum, err := addAll(command.Settings(), operands)
	if err != nil {
		return err
	}

	return command.Commit(sum)
}

func meanAll(command *Command) error {
	return meanN(command, command.Count())
}

func meanN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	operands, err := command.UseTopValues(n)
	if err != nil {
		return err
	}

	settings := command.Settings()

	sum, err := addAll(settings, operands)
	if err != nil {
		return err
	}

	mean, err := values.Divide(settings, sum, values.NewIntegerValueFromInt64(int64(n)))
	if err != nil {
		return err
	}

	return command.Commit(mean)
}

// addAll adds the top-first operands, from the bottom up
func addAll(settings values.Settings, operands []values.Value) (values.Value, error) {
	ordered := pushOrder(operands)
	result := ordered[0]
	for _, operand := range ordered[1:] {
		var err error
		result, err = values.Add(settings, result, operand)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
