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
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/rpncalc/values"
)

type commandFunc func(command *Command) error

// parameterCommandFunc is a command variant which takes an integer parameter,
// e.g. the depth of the stack item to apply to.
type parameterCommandFunc func(command *Command, parameter int) error

type commandGroup struct {
	name              string
	commands          map[string]commandFunc
	parameterCommands map[string]parameterCommandFunc
}

// commandGroups are searched in order, the first group with a matching command wins.
// Stack commands are the most frequently used ones.
var commandGroups = []*commandGroup{
	stackCommands,
	mathCommands,
	binaryCommands,
	fractionCommands,
	dateCommands,
	timeSpanCommands,
	complexCommands,
	constantCommands,
	entryCommands,
}

func lookupCommand(name string) (commandFunc, bool) {
	for _, group := range commandGroups {
		if command, ok := group.commands[name]; ok {
			return command, true
		}
	}
	return nil, false
}

func lookupParameterCommand(name string) (parameterCommandFunc, bool) {
	for _, group := range commandGroups {
		if command, ok := group.parameterCommands[name]; ok {
			return command, true
		}
	}
	return nil, false
}

func HasCommand(name string) bool {
	_, ok := lookupCommand(name)
	return ok
}

// HasParameterCommand returns whether a command with the name exists
// in a variant which takes an integer parameter.
func HasParameterCommand(name string) bool {
	_, ok := lookupParameterCommand(name)
	return ok
}

// CommandNames returns the sorted names of all commands,
// including the ones which only exist with a parameter.
func CommandNames() []string {
	var names []string
	for _, group := range commandGroups {
		for name := range group.commands {
			names = append(names, name)
		}
		for name := range group.parameterCommands {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

const maxSuggestionDistance = 3

// suggestCommand returns the name of the command which is closest to the given unknown name.
func suggestCommand(name string) string {
	var suggestion string
	bestDistance := math.MaxInt

	source := []rune(strings.ToLower(name))
	for _, candidate := range CommandNames() {
		distance := levenshtein.DistanceForStrings(
			source,
			[]rune(strings.ToLower(candidate)),
			levenshtein.DefaultOptions,
		)
		if distance < bestDistance {
			bestDistance = distance
			suggestion = candidate
		}
	}

	if bestDistance > maxSuggestionDistance {
		return ""
	}
	return suggestion
}

func unaryCommand(operation func(value values.Value) (values.Value, error)) commandFunc {
	return func(command *Command) error {
		operands, err := command.UseTopValues(1)
		if err != nil {
			return err
		}

		result, err := operation(operands[0])
		if err != nil {
			return err
		}

		return command.Commit(result)
	}
}

func unarySettingsCommand(
	operation func(settings values.Settings, value values.Value) (values.Value, error),
) commandFunc {
	return func(command *Command) error {
		settings := command.Settings()
		return unaryCommand(func(value values.Value) (values.Value, error) {
			return operation(settings, value)
		})(command)
	}
}

// binaryCommand applies the operation to the second value and the top value,
// e.g. "x y Subtract" is x - y.
func binaryCommand(operation func(x, y values.Value) (values.Value, error)) commandFunc {
	return func(command *Command) error {
		operands, err := command.UseTopValues(2)
		if err != nil {
			return err
		}

		result, err := operation(operands[1], operands[0])
		if err != nil {
			return err
		}

		return command.Commit(result)
	}
}

func binarySettingsCommand(
	operation func(settings values.Settings, x, y values.Value) (values.Value, error),
) commandFunc {
	return func(command *Command) error {
		settings := command.Settings()
		return binaryCommand(func(x, y values.Value) (values.Value, error) {
			return operation(settings, x, y)
		})(command)
	}
}

// typed wraps a command which requires the values at the top of the stack to have one of the given types,
// one list of allowed types per offset.
func typed(command commandFunc, allowed ...[]values.ValueType) commandFunc {
	return func(c *Command) error {
		err := c.RequireArguments(len(allowed))
		if err != nil {
			return err
		}
		for offset, allowedTypes := range allowed {
			err := c.RequireType(offset, allowedTypes...)
			if err != nil {
				return err
			}
		}
		return command(c)
	}
}

var (
	binaryType    = []values.ValueType{values.ValueTypeBinary}
	integerType   = []values.ValueType{values.ValueTypeInteger}
	dateTimeType  = []values.ValueType{values.ValueTypeDateTime}
	timeSpanType  = []values.ValueType{values.ValueTypeTimeSpan}
	countTypes    = []values.ValueType{values.ValueTypeInteger, values.ValueTypeBinary}
	rationalTypes = []values.ValueType{values.ValueTypeInteger, values.ValueTypeFraction}
	realTypes     = []values.ValueType{
		values.ValueTypeBinary,
		values.ValueTypeInteger,
		values.ValueTypeFraction,
		values.ValueTypeDouble,
	}
	numericTypes = append(slices.Clone(realTypes), values.ValueTypeComplex)
)

// maxIntArgument bounds integer operands which are used as counts or indices
const maxIntArgument = math.MaxInt32

// intArgument returns the integer value of an Integer or Binary operand
func intArgument(command *Command, value values.Value) (int, error) {
	switch value := value.(type) {
	case values.IntegerValue:
		n, ok := value.Int64()
		if !ok || n > maxIntArgument || n < -maxIntArgument {
			return 0, InvalidArgumentError{
				Command: command.name,
				Message: fmt.Sprintf("%s is out of range", value),
			}
		}
		return int(n), nil

	case values.BinaryValue:
		if uint64(value) > maxIntArgument {
			return 0, InvalidArgumentError{
				Command: command.name,
				Message: fmt.Sprintf("%s is out of range", value),
			}
		}
		return int(value), nil
	}

	return 0, OperandTypeError{
		Command: command.name,
		Operand: 1,
		Allowed: countTypes,
		Actual:  value.ValueType(),
	}
}

// realArgument returns the floating point value of a real operand
func realArgument(value values.Value) (float64, error) {
	numericValue, ok := value.(values.NumericValue)
	if !ok {
		return 0, values.InvalidOperandError{
			Operation: values.OperationConvert,
			Type:      value.ValueType(),
		}
	}
	double, err := numericValue.ToDouble()
	if err != nil {
		return 0, err
	}
	return float64(double), nil
}

func requireParameter(command *Command, parameter int, lower int) error {
	if parameter < lower {
		return InvalidParameterError{
			Command:   command.name,
			Parameter: parameter,
			Message:   fmt.Sprintf("must be at least %d", lower),
		}
	}
	return nil
}

// pushOrder returns the top-first values in the order they were pushed
func pushOrder(topFirst []values.Value) []values.Value {
	result := slices.Clone(topFirst)
	slices.Reverse(result)
	return result
}
