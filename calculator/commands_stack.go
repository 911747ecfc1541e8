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
	"slices"

	"github.com/onflow/rpncalc/values"
)

var stackCommands = &commandGroup{
	name: "stack",
	commands: map[string]commandFunc{
		"Clear":   clearStack,
		"Drop":    drop,
		"Dup":     dup,
		"Swap":    swap,
		"Over":    over,
		"Rotate":  rotate,
		"Depth":   depth,
		"Last":    last,
		"Reverse": reverseAll,
		"Sort":    sortAll,
	},
	parameterCommands: map[string]parameterCommandFunc{
		"Drop":     dropN,
		"Dup":      dupN,
		"RollUp":   rollUpN,
		"RollDown": rollDownN,
		"Pick":     pickN,
		"Reverse":  reverseN,
		"Sort":     sortN,
	},
}

func clearStack(command *Command) error {
	_, err := command.UseTopValues(command.Count())
	if err != nil {
		return err
	}
	return command.Commit()
}

func drop(command *Command) error {
	return dropN(command, 1)
}

func dropN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	_, err = command.UseTopValues(n)
	if err != nil {
		return err
	}
	return command.Commit()
}

// dup pushes a copy of the top value, without changing the last arguments
func dup(command *Command) error {
	top, err := command.PeekAt(0)
	if err != nil {
		return err
	}
	return command.Commit(top)
}

// dupN pushes copies of the top n values
func dupN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	operands, err := command.PeekTopValues(n)
	if err != nil {
		return err
	}

	return command.Commit(pushOrder(operands)...)
}

func swap(command *Command) error {
	operands, err := command.UseTopValues(2)
	if err != nil {
		return err
	}
	return command.Commit(operands[0], operands[1])
}

// over pushes a copy of the second value
func over(command *Command) error {
	second, err := command.PeekAt(1)
	if err != nil {
		return err
	}
	return command.Commit(second)
}

// rotate moves the third value to the top
func rotate(command *Command) error {
	return rollUpN(command, 3)
}

// rollUpN moves the n-th value to the top
func rollUpN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	operands, err := command.UseTopValues(n)
	if err != nil {
		return err
	}

	ordered := pushOrder(operands)
	rolled := append(ordered[1:], ordered[0])
	return command.Commit(rolled...)
}

// rollDownN moves the top value to the n-th position
func rollDownN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	operands, err := command.UseTopValues(n)
	if err != nil {
		return err
	}

	ordered := pushOrder(operands)
	rolled := append([]values.Value{ordered[n-1]}, ordered[:n-1]...)
	return command.Commit(rolled...)
}

// pickN pushes a copy of the n-th value
func pickN(command *Command, n int) error {
	err := requireParameter(command, n, 1)
	if err != nil {
		return err
	}

	value, err := command.PeekAt(n - 1)
	if err != nil {
		return err
	}
	return command.Commit(value)
}

func depth(command *Command) error {
	return command.Commit(values.NewIntegerValueFromInt64(int64(command.Count())))
}

// last pushes the values which the last committed command used
func last(command *Command) error {
	lastArgs := command.calculator.lastArgs
	if len(lastArgs) == 0 {
		return NoLastArgumentsError{}
	}
	return command.Commit(lastArgs...)
}

func reverseAll(command *Command) error {
	return reverseN(command, command.Count())
}

func reverseN(command *Command, n int) error {
	err := requireParameter(command, n, 0)
	if err != nil {
		return err
	}

	operands, err := command.UseTopValues(n)
	if err != nil {
		return err
	}

	// pushing top-first reverses
	return command.Commit(operands...)
}

func sortAll(command *Command) error {
	return sortN(command, command.Count())
}

// sortN sorts the top n values, so that the largest value ends up on top
func sortN(command *Command, n int) error {
	err := requireParameter(command, n, 0)
	if err != nil {
		return err
	}

	operands, err := command.UseTopValues(n)
	if err != nil {
		return err
	}

	sorted := pushOrder(operands)

	var compareErr error
	slices.SortStableFunc(sorted, func(a, b values.Value) int {
		result, err := values.Compare(a, b)
		if err != nil && compareErr == nil {
			compareErr = err
		}
		return result
	})
	if compareErr != nil {
		return compareErr
	}

	return command.Commit(sorted...)
}
