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

package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Radix returns the unsigned value in the given base (2, 8, 10, or 16),
// using upper-case digits.
func Radix(v uint64, base int) string {
	return strings.ToUpper(strconv.FormatUint(v, base))
}

// GroupDigits inserts the separator between groups of three digits
// of an integer string, which may have a leading sign.
func GroupDigits(digits string, separator string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign = digits[:1]
		digits = digits[1:]
	}

	if len(digits) <= 3 {
		return sign + digits
	}

	var builder strings.Builder
	builder.WriteString(sign)

	first := len(digits) % 3
	if first == 0 {
		first = 3
	}
	builder.WriteString(digits[:first])
	for i := first; i < len(digits); i += 3 {
		builder.WriteString(separator)
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}

// FloatGeneral returns the shortest representation which round-trips.
func FloatGeneral(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FloatEntry returns the shortest round-trip representation,
// which always reads back as a float, i.e. "5" is rendered as "5.0".
func FloatEntry(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// FloatFixed returns the value with exactly the given number of fractional digits.
func FloatFixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// FloatScientific returns the value in exponent notation
// with the given number of fractional mantissa digits, e.g. "1.50E+03".
func FloatScientific(v float64, digits int) string {
	return strconv.FormatFloat(v, 'E', digits, 64)
}

// FloatNumber returns the value with the given number of fractional digits
// and the digit grouping of the given language, e.g. "1,234.50".
func FloatNumber(v float64, digits int, tag language.Tag) string {
	printer := message.NewPrinter(tag)
	return printer.Sprintf("%.*f", digits, v)
}
