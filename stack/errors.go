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

package stack

import (
	"fmt"

	"github.com/onflow/rpncalc/errors"
)

// UnderflowError is reported when more values are requested
// than the stack holds.
//
// Commands check the stack depth before accessing it,
// so an underflow is an internal error.
type UnderflowError struct {
	Requested int
	Count     int
}

var _ errors.InternalError = UnderflowError{}

func (UnderflowError) IsInternalError() {}

func (e UnderflowError) Error() string {
	return fmt.Sprintf(
		"stack underflow: requested %d values, but stack has %d",
		e.Requested,
		e.Count,
	)
}

// MissingEntryKeyError is reported when a saved stack entry lacks a key.
type MissingEntryKeyError struct {
	Key string
}

var _ errors.UserError = MissingEntryKeyError{}

func (MissingEntryKeyError) IsUserError() {}

func (e MissingEntryKeyError) Error() string {
	return fmt.Sprintf("stack entry has no %s", e.Key)
}

// UnknownValueTypeError is reported when a saved stack entry has an unknown value type.
type UnknownValueTypeError struct {
	Name string
}

var _ errors.UserError = UnknownValueTypeError{}

func (UnknownValueTypeError) IsUserError() {}

func (e UnknownValueTypeError) Error() string {
	return fmt.Sprintf("unknown value type: %q", e.Name)
}
