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
	"time"
)

// DateTimeValue is a calendar instant.
type DateTimeValue struct {
	time time.Time
}

var _ Value = DateTimeValue{}

const (
	// entryLayout is the lossless layout of the entry text.
	// The offset keeps instants unambiguous around daylight saving transitions.
	entryLayout = "2006-01-02 15:04:05.999999999 -07:00"

	generalDateLayout     = "2006-01-02"
	generalDateTimeLayout = "2006-01-02 15:04:05.999999999"
	longLayout            = "Monday, January 2, 2006 3:04:05 PM"

	minYear = 1
	maxYear = 9999
)

func NewDateTimeValue(t time.Time) DateTimeValue {
	return DateTimeValue{time: t}
}

// NewDateValue returns the local midnight of the given date.
// Dates which do not exist, e.g. February 30, are rejected.
func NewDateValue(year int, month time.Month, day int) (DateTimeValue, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return DateTimeValue{}, ArgumentOutOfRangeError{
			Operation: OperationConvert,
			Message:   fmt.Sprintf("%04d-%02d-%02d is not a valid date", year, int(month), day),
		}
	}
	return newCheckedDateTimeValue(t)
}

func (v DateTimeValue) Time() time.Time {
	return v.time
}

func (DateTimeValue) isValue() {}

func (DateTimeValue) ValueType() ValueType {
	return ValueTypeDateTime
}

func (v DateTimeValue) String() string {
	return v.Format(DefaultSettings())
}

// Format returns the date and time, or only the date if the time of day is midnight.
func (v DateTimeValue) Format(_ Settings) string {
	if v.TimeOfDay() == 0 {
		return v.time.Format(generalDateLayout)
	}
	return v.time.Format(generalDateTimeLayout)
}

func (v DateTimeValue) EntryText() string {
	return `"` + v.time.Format(entryLayout) + `"`
}

func (v DateTimeValue) DisplayFormats(settings Settings) []DisplayFormat {
	return []DisplayFormat{
		{Name: "General", Text: v.Format(settings)},
		{Name: "Long", Text: v.time.Format(longLayout)},
		{Name: "ISO 8601", Text: v.time.Format(time.RFC3339Nano)},
	}
}

func (v DateTimeValue) Equal(other Value) bool {
	o, ok := other.(DateTimeValue)
	return ok && v.time.Equal(o.time)
}

func (v DateTimeValue) Compare(other DateTimeValue) int {
	return v.time.Compare(other.time)
}

func (v DateTimeValue) AddTimeSpan(span TimeSpanValue) (DateTimeValue, error) {
	return newCheckedDateTimeValue(v.time.Add(time.Duration(span)))
}

// Sub returns the duration between the two instants.
func (v DateTimeValue) Sub(other DateTimeValue) (TimeSpanValue, error) {
	duration := v.time.Sub(other.time)
	// Sub saturates instead of overflowing
	if !other.time.Add(duration).Equal(v.time) {
		return 0, OverflowError{}
	}
	return TimeSpanValue(duration), nil
}

// AddMonths adds calendar months.
// The day is clamped to the last day of the resulting month.
func (v DateTimeValue) AddMonths(months int) (DateTimeValue, error) {
	t := v.time
	year, month, day := t.Date()

	totalMonths := int64(year)*12 + int64(month-1) + int64(months)
	newYear := totalMonths / 12
	newMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 || newYear < minYear || newYear > maxYear {
		return DateTimeValue{}, OverflowError{}
	}

	day = min(day, daysIn(int(newYear), newMonth))

	hour, minute, second := t.Clock()
	return newCheckedDateTimeValue(time.Date(
		int(newYear),
		newMonth,
		day,
		hour,
		minute,
		second,
		t.Nanosecond(),
		t.Location(),
	))
}

func (v DateTimeValue) AddYears(years int) (DateTimeValue, error) {
	if years > maxYear || years < -maxYear {
		return DateTimeValue{}, OverflowError{}
	}
	return v.AddMonths(years * 12)
}

// Date returns the date at midnight.
func (v DateTimeValue) Date() DateTimeValue {
	year, month, day := v.time.Date()
	return DateTimeValue{
		time: time.Date(year, month, day, 0, 0, 0, 0, v.time.Location()),
	}
}

// TimeOfDay returns the time elapsed since midnight.
func (v DateTimeValue) TimeOfDay() TimeSpanValue {
	hour, minute, second := v.time.Clock()
	return TimeSpanValue(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(v.time.Nanosecond()))
}

func newCheckedDateTimeValue(t time.Time) (DateTimeValue, error) {
	if year := t.Year(); year < minYear || year > maxYear {
		return DateTimeValue{}, OverflowError{}
	}
	return DateTimeValue{time: t}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
