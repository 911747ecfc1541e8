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
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/rational"
)

const (
	BinaryPrefix            = "#"
	HexadecimalPrefix       = "0x"
	ComplexStart            = '('
	ComplexEnd              = ')'
	ComplexSeparator        = ','
	DateTimeDelimiter       = '"'
	FractionSeparator       = '/'
	MixedFractionSeparator  = '_'
	timeSpanDaysSeparator   = '.'
	timeSpanFieldsSeparator = ':'
)

// Parse parses the text as a literal of the given value type.
func Parse(valueType ValueType, text string, settings Settings) (Value, error) {
	switch valueType {
	case ValueTypeBinary:
		return ParseBinary(text, settings)
	case ValueTypeInteger:
		return ParseInteger(text)
	case ValueTypeFraction:
		return ParseFraction(text)
	case ValueTypeDouble:
		return ParseDouble(text)
	case ValueTypeComplex:
		return ParseComplex(text, settings)
	case ValueTypeDateTime:
		return ParseDateTime(text)
	case ValueTypeTimeSpan:
		return ParseTimeSpan(text)
	}

	panic(errors.NewUnreachableError())
}

// ParseBinary parses "#digits" with an optional radix suffix b, o, d, or h,
// or "0x" followed by hexadecimal digits.
// Without a suffix, the digits are in the radix of the binary format setting.
// The value is masked to the word size.
func ParseBinary(text string, settings Settings) (BinaryValue, error) {
	parseError := ParseError{
		ValueType: ValueTypeBinary,
		Text:      text,
	}

	var digits string
	var radix int

	switch {
	case strings.HasPrefix(text, BinaryPrefix):
		digits = text[len(BinaryPrefix):]
		radix = settings.BinaryFormat.Radix()
		if len(digits) > 1 {
			if suffixRadix, ok := binarySuffixRadix(digits[len(digits)-1]); ok {
				radix = suffixRadix
				digits = digits[:len(digits)-1]
			}
		}

	case len(text) > len(HexadecimalPrefix) &&
		strings.EqualFold(text[:len(HexadecimalPrefix)], HexadecimalPrefix):

		digits = text[len(HexadecimalPrefix):]
		radix = 16

	default:
		return 0, parseError
	}

	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, parseError
	}

	value, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		parseError.Err = err
		return 0, parseError
	}

	return NewBinaryValue(settings, value), nil
}

func binarySuffixRadix(suffix byte) (int, bool) {
	switch suffix {
	case 'b', 'B':
		return 2, true
	case 'o', 'O':
		return 8, true
	case 'd', 'D':
		return 10, true
	case 'h', 'H':
		return 16, true
	}
	return 0, false
}

// ParseInteger parses an optionally signed decimal integer.
func ParseInteger(text string) (IntegerValue, error) {
	if text == "" {
		return IntegerValue{}, ParseError{ValueType: ValueTypeInteger, Text: text}
	}
	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return IntegerValue{}, ParseError{ValueType: ValueTypeInteger, Text: text}
	}
	return newIntegerValue(value), nil
}

// ParseFraction parses "n/d" or the mixed form "w_n/d".
func ParseFraction(text string) (FractionValue, error) {
	r, err := rational.Parse(text)
	if err != nil {
		return FractionValue{}, ParseError{
			ValueType: ValueTypeFraction,
			Text:      text,
			Err:       err,
		}
	}
	return NewFractionValue(r), nil
}

// ParseDouble parses a finite decimal floating point number.
func ParseDouble(text string) (DoubleValue, error) {
	parseError := ParseError{
		ValueType: ValueTypeDouble,
		Text:      text,
	}

	unsigned := strings.TrimLeft(text, "+-")
	if unsigned == "" || !isDecimalDigit(unsigned[0]) && unsigned[0] != '.' {
		// Rejects "Inf", "NaN", and hexadecimal floats
		return 0, parseError
	}
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, parseError
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		parseError.Err = err
		return 0, parseError
	}
	if !isFinite(value) {
		return 0, parseError
	}
	return DoubleValue(value), nil
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseComplex parses "(re,im)", "(re)", or the polar forms "(r,@angle)" and "(r,∠angle)".
// Polar angles are in the unit of the angle mode setting.
func ParseComplex(text string, settings Settings) (ComplexValue, error) {
	parseError := ParseError{
		ValueType: ValueTypeComplex,
		Text:      text,
	}

	if len(text) < 2 || text[0] != ComplexStart || text[len(text)-1] != ComplexEnd {
		return 0, parseError
	}

	parts := strings.Split(text[1:len(text)-1], string(ComplexSeparator))
	if len(parts) > 2 {
		return 0, parseError
	}

	first, err := ParseDouble(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, parseError
	}
	if len(parts) == 1 {
		return NewComplexValue(float64(first), 0), nil
	}

	second := strings.TrimSpace(parts[1])
	polar := false
	for _, prefix := range []string{PolarPrefix, AlternatePolarPrefix} {
		if strings.HasPrefix(second, prefix) {
			second = strings.TrimSpace(second[len(prefix):])
			polar = true
			break
		}
	}

	secondValue, err := ParseDouble(second)
	if err != nil {
		return 0, parseError
	}

	if polar {
		angle := settings.AngleMode.ToRadians(float64(secondValue))
		return NewPolarComplexValue(float64(first), angle), nil
	}
	return NewComplexValue(float64(first), float64(secondValue)), nil
}

var dateTimeLayouts = []string{
	entryLayout,
	"2006-01-02 15:04:05 -07:00",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"1/2/2006",
	"January 2, 2006",
	"Monday, January 2, 2006 3:04:05 PM",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// ParseDateTime parses a date, a date and time, or a time of today,
// optionally enclosed in double quotes. Times without an offset are local.
func ParseDateTime(text string) (DateTimeValue, error) {
	parseError := ParseError{
		ValueType: ValueTypeDateTime,
		Text:      text,
	}

	unquoted := text
	if strings.HasPrefix(unquoted, string(DateTimeDelimiter)) {
		if len(unquoted) < 2 || !strings.HasSuffix(unquoted, string(DateTimeDelimiter)) {
			return DateTimeValue{}, parseError
		}
		unquoted = unquoted[1 : len(unquoted)-1]
	}
	unquoted = strings.TrimSpace(unquoted)

	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, unquoted, time.Local)
		if err == nil {
			return newCheckedDateTimeValue(t)
		}
	}

	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, unquoted, time.Local)
		if err == nil {
			year, month, day := time.Now().Date()
			return newCheckedDateTimeValue(time.Date(
				year,
				month,
				day,
				t.Hour(),
				t.Minute(),
				t.Second(),
				t.Nanosecond(),
				time.Local,
			))
		}
	}

	return DateTimeValue{}, parseError
}

var timeSpanPattern = regexp.MustCompile(
	`^([+-])?(?:(\d+)\.)?(\d+):(\d+)(?::(\d+)(?:\.(\d{1,9}))?)?$`,
)

// ParseTimeSpan parses a whole number of days, the form [-][d.]h:mm[:ss[.fffffffff]],
// or a duration like "1h30m".
func ParseTimeSpan(text string) (TimeSpanValue, error) {
	parseError := ParseError{
		ValueType: ValueTypeTimeSpan,
		Text:      text,
	}

	if days, err := strconv.ParseInt(text, 10, 64); err == nil {
		if days > maxTimeSpanDays || days < -maxTimeSpanDays {
			return 0, OverflowError{}
		}
		return TimeSpanValue(time.Duration(days) * day), nil
	}

	match := timeSpanPattern.FindStringSubmatch(text)
	if match == nil {
		duration, err := time.ParseDuration(text)
		if err != nil {
			parseError.Err = err
			return 0, parseError
		}
		return TimeSpanValue(duration), nil
	}

	field := func(index int) int64 {
		if match[index] == "" {
			return 0
		}
		value, err := strconv.ParseInt(match[index], 10, 64)
		if err != nil {
			// Too many digits to be in range
			return -1
		}
		return value
	}

	days := field(2)
	hours := field(3)
	minutes := field(4)
	seconds := field(5)

	var nanoseconds int64
	if fraction := match[6]; fraction != "" {
		fraction += strings.Repeat("0", 9-len(fraction))
		nanoseconds, _ = strconv.ParseInt(fraction, 10, 64)
	}

	if days < 0 || days > maxTimeSpanDays ||
		hours < 0 || hours > 23 ||
		minutes < 0 || minutes > 59 ||
		seconds < 0 || seconds > 59 {

		return 0, parseError
	}

	clock := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(nanoseconds)
	daySpan := time.Duration(days) * day

	// The negative range is one larger, so negative values are summed as negative
	if match[1] == "-" {
		clock = -clock
		daySpan = -daySpan
	}

	return TimeSpanValue(clock).Plus(TimeSpanValue(daySpan))
}

// maxTimeSpanDays is the number of whole days in the longest duration
const maxTimeSpanDays = int64(1<<63-1) / int64(day)
