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

package rational

// DivisionByZeroError is reported when a rational is constructed with a zero denominator,
// or when a division, modulus, or inversion by zero is attempted.
type DivisionByZeroError struct{}

func (DivisionByZeroError) IsUserError() {}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

// OverflowError is reported when a result does not fit the target representation,
// e.g. a rational beyond the range of a float, or a non-converging approximation.
type OverflowError struct{}

func (OverflowError) IsUserError() {}

func (OverflowError) Error() string {
	return "overflow"
}

// InvalidFormatError is reported when a rational cannot be parsed from text.
type InvalidFormatError struct {
	Text string
}

func (InvalidFormatError) IsUserError() {}

func (e InvalidFormatError) Error() string {
	return "invalid fraction: " + e.Text
}
