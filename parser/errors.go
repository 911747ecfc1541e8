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

package parser

import (
	"fmt"

	"github.com/onflow/rpncalc/errors"
)

// InvalidTokenError is reported for the first token of an entry line
// which cannot be parsed as a value of any candidate type.

type InvalidTokenError struct {
	Token Token
	// Err is the error of the last attempted interpretation
	Err error
}

var _ errors.UserError = InvalidTokenError{}

func (InvalidTokenError) IsUserError() {}

func (e InvalidTokenError) Unwrap() error {
	return e.Err
}

func (e InvalidTokenError) StartPosition() Position {
	return e.Token.StartPos
}

func (e InvalidTokenError) EndPosition() Position {
	return e.Token.EndPos
}

func (e InvalidTokenError) Error() string {
	if !e.Token.Terminated {
		return fmt.Sprintf(
			"incomplete %s value at column %d: %q",
			e.Token.Type,
			e.Token.StartPos.Column+1,
			e.Token.Text,
		)
	}
	return fmt.Sprintf(
		"invalid value at column %d: %q",
		e.Token.StartPos.Column+1,
		e.Token.Text,
	)
}
