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
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/onflow/rpncalc/format"
)

// TimeSpanValue is a signed duration with nanosecond resolution.
type TimeSpanValue time.Duration

var _ Value = TimeSpanValue(0)

const day = 24 * time.Hour

func (TimeSpanValue) isValue() {}

func (TimeSpanValue) ValueType() ValueType {
	return ValueTypeTimeSpan
}

// String returns the standard form [-][d.]hh:mm:ss[.fffffffff].
func (v TimeSpanValue) String() string {
	var sb strings.Builder

	duration := time.Duration(v)
	// The magnitude of the minimum duration does not fit,
	// so the components are computed on the negative value
	negative := duration < 0
	if !negative {
		duration = -duration
	}
	if negative {
		sb.WriteByte('-')
	}

	days := -(duration / day)
	duration %= day
	hours := -(duration / time.Hour)
	duration %= time.Hour
	minutes := -(duration / time.Minute)
	duration %= time.Minute
	seconds := -(duration / time.Second)
	nanoseconds := -(duration % time.Second)

	if days != 0 {
		sb.WriteString(strconv.FormatInt(int64(days), 10))
		sb.WriteByte('.')
	}
	writeTwoDigits := func(n time.Duration) {
		sb.WriteString(format.PadLeft(strconv.FormatInt(int64(n), 10), '0', 2))
	}
	writeTwoDigits(hours)
	sb.WriteByte(':')
	writeTwoDigits(minutes)
	sb.WriteByte(':')
	writeTwoDigits(seconds)

	if nanoseconds != 0 {
		fraction := format.PadLeft(strconv.FormatInt(int64(nanoseconds), 10), '0', 9)
		sb.WriteByte('.')
		sb.WriteString(strings.TrimRight(fraction, "0"))
	}

	return sb.String()
}

func (v TimeSpanValue) Format(_ Settings) string {
	return v.String()
}

func (v TimeSpanValue) EntryText() string {
	return v.String()
}

func (v TimeSpanValue) DisplayFormats(settings Settings) []DisplayFormat {
	return []DisplayFormat{
		{Name: "Standard", Text: v.String()},
		{Name: "Total Days", Text: formatFloat(v.TotalDays(), settings, settings.DecimalFormat)},
	}
}

func (v TimeSpanValue) Equal(other Value) bool {
	o, ok := other.(TimeSpanValue)
	return ok && o == v
}

func (v TimeSpanValue) Compare(other TimeSpanValue) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

func (v TimeSpanValue) Plus(other TimeSpanValue) (TimeSpanValue, error) {
	result := v + other
	// Signed overflow: both operands have the same sign, and the result has a different one
	if (v > 0 && other > 0 && result < 0) || (v < 0 && other < 0 && result >= 0) {
		return 0, OverflowError{}
	}
	return result, nil
}

func (v TimeSpanValue) Minus(other TimeSpanValue) (TimeSpanValue, error) {
	negated, err := other.Negate()
	if err != nil {
		return 0, err
	}
	return v.Plus(negated)
}

func (v TimeSpanValue) Negate() (TimeSpanValue, error) {
	if v == math.MinInt64 {
		return 0, OverflowError{}
	}
	return -v, nil
}

func (v TimeSpanValue) Abs() (TimeSpanValue, error) {
	if v < 0 {
		return v.Negate()
	}
	return v, nil
}

func (v TimeSpanValue) Sign() Value {
	switch {
	case v < 0:
		return NewIntegerValueFromInt64(-1)
	case v > 0:
		return NewIntegerValueFromInt64(1)
	default:
		return NewIntegerValueFromInt64(0)
	}
}

// Scale multiplies the duration by a real factor, rounding to the nearest nanosecond.
func (v TimeSpanValue) Scale(factor float64) (TimeSpanValue, error) {
	return newTimeSpanValueFromFloat(float64(v) * factor)
}

func (v TimeSpanValue) DivideBy(divisor float64) (TimeSpanValue, error) {
	if divisor == 0 {
		return 0, DivisionByZeroError{}
	}
	return newTimeSpanValueFromFloat(float64(v) / divisor)
}

// Ratio returns the quotient of the two durations.
func (v TimeSpanValue) Ratio(other TimeSpanValue) (DoubleValue, error) {
	if other == 0 {
		return 0, DivisionByZeroError{}
	}
	return DoubleValue(float64(v) / float64(other)), nil
}

// Days returns the whole days component.
func (v TimeSpanValue) Days() int64 {
	return int64(time.Duration(v) / day)
}

// Hours returns the hours component, between -23 and 23.
func (v TimeSpanValue) Hours() int64 {
	return int64(time.Duration(v) % day / time.Hour)
}

func (v TimeSpanValue) Minutes() int64 {
	return int64(time.Duration(v) % time.Hour / time.Minute)
}

func (v TimeSpanValue) Seconds() int64 {
	return int64(time.Duration(v) % time.Minute / time.Second)
}

func (v TimeSpanValue) Milliseconds() int64 {
	return int64(time.Duration(v) % time.Second / time.Millisecond)
}

func (v TimeSpanValue) TotalDays() float64 {
	return float64(v) / float64(day)
}

func (v TimeSpanValue) TotalHours() float64 {
	return time.Duration(v).Hours()
}

func (v TimeSpanValue) TotalMinutes() float64 {
	return time.Duration(v).Minutes()
}

func (v TimeSpanValue) TotalSeconds() float64 {
	return time.Duration(v).Seconds()
}

func (v TimeSpanValue) TotalMilliseconds() float64 {
	return float64(v) / float64(time.Millisecond)
}

// NewTimeSpanValueFromUnit returns the duration of the given amount of units,
// rounded to the nearest nanosecond.
func NewTimeSpanValueFromUnit(amount float64, unit time.Duration) (TimeSpanValue, error) {
	return newTimeSpanValueFromFloat(amount * float64(unit))
}

func newTimeSpanValueFromFloat(nanoseconds float64) (TimeSpanValue, error) {
	if math.IsNaN(nanoseconds) {
		return 0, NonFiniteResultError{}
	}
	rounded := math.Round(nanoseconds)
	// float64(math.MaxInt64) rounds up to 2^63, which is out of range
	if rounded >= math.MaxInt64 || rounded < math.MinInt64 {
		return 0, OverflowError{}
	}
	return TimeSpanValue(int64(rounded)), nil
}
