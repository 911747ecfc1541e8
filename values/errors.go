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
	"fmt"
	"strings"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/rational"
)

type DivisionByZeroError = rational.DivisionByZeroError

type OverflowError = rational.OverflowError

// NonFiniteResultError is reported when a computed result is infinite or not a number.

type NonFiniteResultError struct {
	Operation Operation
}

var _ errors.UserError = NonFiniteResultError{}

func (NonFiniteResultError) IsUserError() {}

func (e NonFiniteResultError) Error() string {
	if e.Operation == OperationUnknown {
		return "result is not a finite number"
	}
	return fmt.Sprintf("result of %s is not a finite number", e.Operation)
}

// InvalidOperandsError

type InvalidOperandsError struct {
	Operation Operation
	LeftType  ValueType
	RightType ValueType
}

var _ errors.UserError = InvalidOperandsError{}

func (InvalidOperandsError) IsUserError() {}

func (e InvalidOperandsError) Error() string {
	return fmt.Sprintf(
		"cannot apply operation %s to types: %s, %s",
		e.Operation,
		e.LeftType,
		e.RightType,
	)
}

// InvalidOperandError

type InvalidOperandError struct {
	Operation Operation
	Type      ValueType
}

var _ errors.UserError = InvalidOperandError{}

func (InvalidOperandError) IsUserError() {}

func (e InvalidOperandError) Error() string {
	return fmt.Sprintf(
		"cannot apply operation %s to type %s",
		e.Operation,
		e.Type,
	)
}

// ArgumentOutOfRangeError is reported when an operand has the right type,
// but its value is outside of the domain of the operation.

type ArgumentOutOfRangeError struct {
	Operation Operation
	Message   string
}

var _ errors.UserError = ArgumentOutOfRangeError{}

func (ArgumentOutOfRangeError) IsUserError() {}

func (e ArgumentOutOfRangeError) Error() string {
	return fmt.Sprintf("invalid argument for %s: %s", e.Operation, e.Message)
}

// NegativeFactorialError

type NegativeFactorialError struct{}

var _ errors.UserError = NegativeFactorialError{}

func (NegativeFactorialError) IsUserError() {}

func (NegativeFactorialError) Error() string {
	return "factorial of a negative integer is undefined"
}

// ParseError is reported when text is not a valid literal of a value type.

type ParseError struct {
	ValueType ValueType
	Text      string
	Err       error
}

var _ errors.UserError = ParseError{}

func (ParseError) IsUserError() {}

func (e ParseError) Unwrap() error {
	return e.Err
}

func (e ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid ")
	sb.WriteString(e.ValueType.String())
	sb.WriteString(" value: ")
	sb.WriteString(fmt.Sprintf("%q", e.Text))
	return sb.String()
}

// InvalidWordSizeError

type InvalidWordSizeError struct {
	WordSize int
}

var _ errors.UserError = InvalidWordSizeError{}

func (InvalidWordSizeError) IsUserError() {}

func (e InvalidWordSizeError) Error() string {
	return fmt.Sprintf(
		"invalid binary word size %d: expected %d to %d bits",
		e.WordSize,
		MinBinaryWordSize,
		MaxBinaryWordSize,
	)
}
