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
	"strings"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/parser"
	"github.com/onflow/rpncalc/values"
)

// ArgumentCountError is reported when the stack holds fewer values
// than a command requires.

type ArgumentCountError struct {
	Command  string
	Required int
}

var _ errors.UserError = ArgumentCountError{}

func (ArgumentCountError) IsUserError() {}

func (e ArgumentCountError) Error() string {
	if e.Required == 1 {
		return fmt.Sprintf("%s: 1 argument required", e.Command)
	}
	return fmt.Sprintf("%s: %d arguments required", e.Command, e.Required)
}

// OperandTypeError is reported when an operand has none of the allowed types.
// Operands are numbered from the top of the stack, starting at 1.

type OperandTypeError struct {
	Command string
	Operand int
	Allowed []values.ValueType
	Actual  values.ValueType
}

var _ errors.UserError = OperandTypeError{}

func (OperandTypeError) IsUserError() {}

func (e OperandTypeError) Error() string {
	names := make([]string, 0, len(e.Allowed))
	for _, valueType := range e.Allowed {
		names = append(names, valueType.String())
	}
	return fmt.Sprintf(
		"%s: operand %d must be of type %s, got %s",
		e.Command,
		e.Operand,
		strings.Join(names, " or "),
		e.Actual,
	)
}

// MismatchedOperandTypesError

type MismatchedOperandTypesError struct {
	Command   string
	LeftType  values.ValueType
	RightType values.ValueType
}

var _ errors.UserError = MismatchedOperandTypesError{}

func (MismatchedOperandTypesError) IsUserError() {}

func (e MismatchedOperandTypesError) Error() string {
	return fmt.Sprintf(
		"%s: operands must have the same type, got %s and %s",
		e.Command,
		e.LeftType,
		e.RightType,
	)
}

// InvalidParameterError is reported for an integer parameter
// which is out of range for the command.

type InvalidParameterError struct {
	Command   string
	Parameter int
	Message   string
}

var _ errors.UserError = InvalidParameterError{}

func (InvalidParameterError) IsUserError() {}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid parameter %d: %s", e.Command, e.Parameter, e.Message)
}

// InvalidArgumentError is reported for an operand
// which has an allowed type, but is out of range for the command.

type InvalidArgumentError struct {
	Command string
	Message string
}

var _ errors.UserError = InvalidArgumentError{}

func (InvalidArgumentError) IsUserError() {}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

// NoLastArgumentsError

type NoLastArgumentsError struct{}

var _ errors.UserError = NoLastArgumentsError{}

func (NoLastArgumentsError) IsUserError() {}

func (NoLastArgumentsError) Error() string {
	return "no last arguments"
}

// EntryParseError is reported when the entry text contains an invalid value.

type EntryParseError struct {
	Err *parser.InvalidTokenError
}

var _ errors.UserError = EntryParseError{}

func (EntryParseError) IsUserError() {}

func (e EntryParseError) Unwrap() error {
	return e.Err
}

func (e EntryParseError) Error() string {
	return e.Err.Error()
}

// InvalidSettingError

type InvalidSettingError struct {
	Setting string
	Value   any
}

var _ errors.UserError = InvalidSettingError{}

func (InvalidSettingError) IsUserError() {}

func (e InvalidSettingError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Setting, e.Value)
}

// UnknownCommandError is reported when no command group has a command with the name.
// The command vocabulary of the caller is fixed, so this is an internal error.

type UnknownCommandError struct {
	Name         string
	HasParameter bool
	Suggestion   string
}

var _ errors.InternalError = UnknownCommandError{}
var _ errors.SecondaryError = UnknownCommandError{}

func (UnknownCommandError) IsInternalError() {}

func (e UnknownCommandError) Error() string {
	var sb strings.Builder
	sb.WriteString("unknown command ")
	sb.WriteString(fmt.Sprintf("%q", e.Name))
	if e.HasParameter {
		sb.WriteString(" with parameter")
	}
	return sb.String()
}

func (e UnknownCommandError) SecondaryError() string {
	if e.Suggestion == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", e.Suggestion)
}

// IncompleteCommandError is reported when a command neither committed nor cancelled.

type IncompleteCommandError struct {
	Command string
}

var _ errors.InternalError = IncompleteCommandError{}

func (IncompleteCommandError) IsInternalError() {}

func (e IncompleteCommandError) Error() string {
	return fmt.Sprintf("command %s neither committed nor cancelled", e.Command)
}

// CommandStateError is reported when a command transaction is used
// after it was committed or cancelled.

type CommandStateError struct {
	Command string
	State   CommandState
	Action  string
}

var _ errors.InternalError = CommandStateError{}

func (CommandStateError) IsInternalError() {}

func (e CommandStateError) Error() string {
	return fmt.Sprintf(
		"command %s cannot %s: transaction is %s",
		e.Command,
		e.Action,
		e.State,
	)
}
