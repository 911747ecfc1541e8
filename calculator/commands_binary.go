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

var binaryCommands = &commandGroup{
	name: "binary",
	commands: map[string]commandFunc{
		"And": typed(bitwiseCommand(values.BinaryValue.And), binaryType, binaryType),
		"Or":  typed(bitwiseCommand(values.BinaryValue.Or), binaryType, binaryType),
		"Xor": typed(bitwiseCommand(values.BinaryValue.Xor), binaryType, binaryType),
		"Not": typed(
			binaryUnaryCommand(func(settings values.Settings, value values.BinaryValue) (values.Value, error) {
				return value.Not(settings), nil
			}),
			binaryType,
		),
		"ShiftLeft":            typed(shiftCommand(values.BinaryValue.ShiftLeft), countTypes, binaryType),
		"ShiftRight":           typed(shiftCommand(values.BinaryValue.ShiftRight), countTypes, binaryType),
		"ArithmeticShiftRight": typed(shiftCommand(values.BinaryValue.ArithmeticShiftRight), countTypes, binaryType),
		"RotateLeft":           typed(shiftCommand(rotateLeft), countTypes, binaryType),
		"RotateRight":          typed(shiftCommand(rotateRight), countTypes, binaryType),
		"SetBit":               typed(shiftCommand(values.BinaryValue.SetBit), countTypes, binaryType),
		"ClearBit":             typed(shiftCommand(values.BinaryValue.ClearBit), countTypes, binaryType),
		"TestBit":              typed(testBit, countTypes, binaryType),
		"BitCount": typed(
			binaryUnaryCommand(func(settings values.Settings, value values.BinaryValue) (values.Value, error) {
				return values.NewIntegerValueFromInt64(int64(value.BitCount(settings))), nil
			}),
			binaryType,
		),
		"BtoI": typed(
			binaryUnaryCommand(func(_ values.Settings, value values.BinaryValue) (values.Value, error) {
				return value.ToInteger()
			}),
			binaryType,
		),
		"ItoB": typed(integerToBinary, integerType),
	},
}

func bitwiseCommand(
	operation func(x values.BinaryValue, settings values.Settings, y values.BinaryValue) values.BinaryValue,
) commandFunc {
	return binarySettingsCommand(func(settings values.Settings, x, y values.Value) (values.Value, error) {
		return operation(x.(values.BinaryValue), settings, y.(values.BinaryValue)), nil
	})
}

func binaryUnaryCommand(
	operation func(settings values.Settings, value values.BinaryValue) (values.Value, error),
) commandFunc {
	return unarySettingsCommand(func(settings values.Settings, value values.Value) (values.Value, error) {
		return operation(settings, value.(values.BinaryValue))
	})
}

func rotateLeft(value values.BinaryValue, settings values.Settings, count int) (values.BinaryValue, error) {
	return value.RotateLeft(settings, count), nil
}

func rotateRight(value values.BinaryValue, settings values.Settings, count int) (values.BinaryValue, error) {
	return value.RotateRight(settings, count), nil
}

// shiftCommand applies the operation to the second value,
// with the top value as the count or bit index
func shiftCommand(
	operation func(value values.BinaryValue, settings values.Settings, count int) (values.BinaryValue, error),
) commandFunc {
	return func(command *Command) error {
		operands, err := command.UseTopValues(2)
		if err != nil {
			return err
		}

		count, err := intArgument(command, operands[0])
		if err != nil {
			return err
		}

		result, err := operation(operands[1].(values.BinaryValue), command.Settings(), count)
		if err != nil {
			return err
		}

		return command.Commit(result)
	}
}

// testBit pushes 1 if the bit is set, and 0 otherwise
func testBit(command *Command) error {
	operands, err := command.UseTopValues(2)
	if err != nil {
		return err
	}

	index, err := intArgument(command, operands[0])
	if err != nil {
		return err
	}

	set, err := operands[1].(values.BinaryValue).TestBit(command.Settings(), index)
	if err != nil {
		return err
	}

	var result int64
	if set {
		result = 1
	}
	return command.Commit(values.NewIntegerValueFromInt64(result))
}

func integerToBinary(command *Command) error {
	return unarySettingsCommand(func(settings values.Settings, value values.Value) (values.Value, error) {
		return value.(values.IntegerValue).ToBinary(settings), nil
	})(command)
}
