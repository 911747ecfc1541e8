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
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/onflow/rpncalc/values"
)

// exponentPattern matches a decimal literal which ends in its exponent,
// where the sign of the exponent is toggled
var exponentPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)[eE][+-]?\d*$`)

// scalarPattern matches the prefix of an integer, fraction, time span or decimal literal
var scalarPattern = regexp.MustCompile(`^[+-]?(?:[0-9.][0-9._:/]*)?$`)

// NegatableScalarSignOffset returns the offset of the sign of the numeric literal
// which the text before the caret ends in.
//
// Scalars are separated by whitespace, and inside of complex literals
// by the opening parenthesis, the separator, and the polar prefix.
// Date-time and binary literals have no sign.
func NegatableScalarSignOffset(text string, caret int) (int, bool) {
	if caret < 0 || caret > len(text) {
		return 0, false
	}
	if caret < len(text) && !utf8.RuneStart(text[caret]) {
		return 0, false
	}

	before := text[:caret]

	// inside of a date-time literal
	if strings.Count(before, string(values.DateTimeDelimiter))%2 == 1 {
		return 0, false
	}

	start := 0
	for offset, r := range before {
		if unicode.IsSpace(r) ||
			r == values.ComplexStart ||
			r == values.ComplexSeparator {

			start = offset + utf8.RuneLen(r)
		}
	}
	for _, prefix := range []string{values.PolarPrefix, values.AlternatePolarPrefix} {
		index := strings.LastIndex(before, prefix)
		if index >= 0 && index+len(prefix) > start {
			start = index + len(prefix)
		}
	}

	scalar := before[start:]
	if scalar == "" {
		return 0, false
	}

	if exponentPattern.MatchString(scalar) {
		return start + strings.IndexAny(scalar, "eE") + 1, true
	}

	if scalarPattern.MatchString(scalar) {
		return start, true
	}

	return 0, false
}

// ToggleSign negates the numeric literal which the text before the caret ends in,
// by adding or removing its minus sign.
// It returns the new text and the new caret offset.
func ToggleSign(text string, caret int) (string, int, bool) {
	offset, ok := NegatableScalarSignOffset(text, caret)
	if !ok {
		return text, caret, false
	}

	if offset < len(text) {
		switch text[offset] {
		case '-':
			return text[:offset] + text[offset+1:], caret - 1, true
		case '+':
			return text[:offset] + "-" + text[offset+1:], caret, true
		}
	}

	return text[:offset] + "-" + text[offset:], caret + 1, true
}
