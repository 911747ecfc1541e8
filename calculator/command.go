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
	"time"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/values"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=CommandState -trimprefix=CommandState

type CommandState uint8

const (
	CommandStateOpen CommandState = iota
	CommandStateCommitted
	CommandStateCancelled
)

// Command is the transaction of one command execution.
//
// A command reads its operands with UseTopValues,
// and then either commits its results, or cancels.
// The stack is only changed by Commit.
type Command struct {
	calculator *Calculator
	name       string
	state      CommandState
	// pending is the number of top values which Commit removes
	pending     int
	lastArgs    []values.Value
	hasLastArgs bool
	result      *CommandResult
}

func newCommand(calculator *Calculator, name string, result *CommandResult) *Command {
	return &Command{
		calculator: calculator,
		name:       name,
		result:     result,
	}
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) State() CommandState {
	return c.state
}

func (c *Command) Settings() values.Settings {
	return c.calculator.settings.Values()
}

func (c *Command) Now() time.Time {
	return c.calculator.config.now()
}

// Count returns the number of values on the stack.
func (c *Command) Count() int {
	return c.calculator.stack.Count()
}

// RequireArguments ensures the stack holds at least n values.
func (c *Command) RequireArguments(n int) error {
	if c.calculator.stack.Count() < n {
		return ArgumentCountError{
			Command:  c.name,
			Required: n,
		}
	}
	return nil
}

// RequireType ensures the value at the offset from the top of the stack
// has one of the allowed types.
func (c *Command) RequireType(offset int, allowed ...values.ValueType) error {
	err := c.RequireArguments(offset + 1)
	if err != nil {
		return err
	}

	value, err := c.calculator.stack.PeekAt(offset)
	if err != nil {
		return err
	}

	valueType := value.ValueType()
	for _, allowedType := range allowed {
		if valueType == allowedType {
			return nil
		}
	}

	return OperandTypeError{
		Command: c.name,
		Operand: offset + 1,
		Allowed: allowed,
		Actual:  valueType,
	}
}

// RequireMatchingTypes ensures the values at the two offsets from the top of the stack
// have the same type.
func (c *Command) RequireMatchingTypes(offset, otherOffset int) error {
	err := c.RequireArguments(max(offset, otherOffset) + 1)
	if err != nil {
		return err
	}

	value, err := c.calculator.stack.PeekAt(offset)
	if err != nil {
		return err
	}

	other, err := c.calculator.stack.PeekAt(otherOffset)
	if err != nil {
		return err
	}

	if value.ValueType() != other.ValueType() {
		return MismatchedOperandTypesError{
			Command:   c.name,
			LeftType:  other.ValueType(),
			RightType: value.ValueType(),
		}
	}
	return nil
}

// PeekAt returns the value at the offset from the top of the stack,
// without marking it for consumption.
func (c *Command) PeekAt(offset int) (values.Value, error) {
	err := c.RequireArguments(offset + 1)
	if err != nil {
		return nil, err
	}
	return c.calculator.stack.PeekAt(offset)
}

// PeekTopValues returns the top n values, top-first,
// without marking them for consumption.
func (c *Command) PeekTopValues(n int) ([]values.Value, error) {
	err := c.RequireArguments(n)
	if err != nil {
		return nil, err
	}
	return c.calculator.stack.PeekRange(n)
}

// UseTopValues returns the top n values, top-first,
// and marks them to be removed by Commit.
func (c *Command) UseTopValues(n int) ([]values.Value, error) {
	if c.state != CommandStateOpen {
		return nil, CommandStateError{
			Command: c.name,
			State:   c.state,
			Action:  "use values",
		}
	}

	err := c.RequireArguments(n)
	if err != nil {
		return nil, err
	}

	topValues, err := c.calculator.stack.PeekRange(n)
	if err != nil {
		return nil, err
	}

	c.pending = n
	return topValues, nil
}

// SetLastArgs overrides the values which the Last command recalls after this command,
// in push order.
func (c *Command) SetLastArgs(lastArgs ...values.Value) {
	c.lastArgs = lastArgs
	c.hasLastArgs = true
}

// Commit reduces the results, removes the used values,
// and pushes the results in order, i.e. the last result ends up on top.
//
// If any result is invalid, the stack is left unchanged.
func (c *Command) Commit(results ...values.Value) error {
	if c.state != CommandStateOpen {
		return CommandStateError{
			Command: c.name,
			State:   c.state,
			Action:  "commit",
		}
	}

	reduced := make([]values.Value, 0, len(results))
	for _, result := range results {
		if result == nil {
			return errors.NewUnexpectedError("command %s committed a nil result", c.name)
		}
		value, err := values.Reduce(result)
		if err != nil {
			return err
		}
		reduced = append(reduced, value)
	}

	calculator := c.calculator

	used, err := calculator.stack.PeekRange(c.pending)
	if err != nil {
		return err
	}

	err = calculator.stack.Replace(c.pending, reduced)
	if err != nil {
		return err
	}

	c.state = CommandStateCommitted

	switch {
	case c.hasLastArgs:
		calculator.lastArgs = c.lastArgs
	case len(used) > 0:
		// push order
		lastArgs := make([]values.Value, len(used))
		for i, value := range used {
			lastArgs[len(used)-1-i] = value
		}
		calculator.lastArgs = lastArgs
	}

	return nil
}

// Cancel ends the transaction without changing the stack.
// Cancel must not be called after Commit.
func (c *Command) Cancel() {
	switch c.state {
	case CommandStateOpen:
		c.state = CommandStateCancelled
	case CommandStateCancelled:
		return
	default:
		panic(CommandStateError{
			Command: c.name,
			State:   c.state,
			Action:  "cancel",
		})
	}
}
