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
	"time"

	"github.com/onflow/rpncalc/values"
)

var dateCommands = &commandGroup{
	name: "date",
	commands: map[string]commandFunc{
		"Now":   now,
		"Today": today,
		"Date": typed(dateTimeCommand(func(value values.DateTimeValue) (values.Value, error) {
			return value.Date(), nil
		}), dateTimeType),
		"TimeOfDay": typed(dateTimeCommand(func(value values.DateTimeValue) (values.Value, error) {
			return value.TimeOfDay(), nil
		}), dateTimeType),
		"Year":       typed(dateComponentCommand(time.Time.Year), dateTimeType),
		"Month":      typed(dateComponentCommand(month), dateTimeType),
		"Day":        typed(dateComponentCommand(time.Time.Day), dateTimeType),
		"Hour":       typed(dateComponentCommand(time.Time.Hour), dateTimeType),
		"Minute":     typed(dateComponentCommand(time.Time.Minute), dateTimeType),
		"Second":     typed(dateComponentCommand(time.Time.Second), dateTimeType),
		"DayOfWeek":  typed(dateComponentCommand(dayOfWeek), dateTimeType),
		"DayOfYear":  typed(dateComponentCommand(time.Time.YearDay), dateTimeType),
		"AddMonths":  typed(addCalendarUnits(values.DateTimeValue.AddMonths), countTypes, dateTimeType),
		"AddYears":   typed(addCalendarUnits(values.DateTimeValue.AddYears), countTypes, dateTimeType),
		"ToDateTime": typed(toDateTime, integerType, integerType, integerType),
	},
}

func now(command *Command) error {
	return command.Commit(values.NewDateTimeValue(command.Now()))
}

func today(command *Command) error {
	return command.Commit(values.NewDateTimeValue(command.Now()).Date())
}

func month(t time.Time) int {
	return int(t.Month())
}

// dayOfWeek is 0 for Sunday
func dayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

func dateTimeCommand(operation func(value values.DateTimeValue) (values.Value, error)) commandFunc {
	return unaryCommand(func(value values.Value) (values.Value, error) {
		return operation(value.(values.DateTimeValue))
	})
}

func dateComponentCommand(component func(t time.Time) int) commandFunc {
	return dateTimeCommand(func(value values.DateTimeValue) (values.Value, error) {
		return values.NewIntegerValueFromInt64(int64(component(value.Time()))), nil
	})
}

// addCalendarUnits adds the top value as a number of months or years to the second value
func addCalendarUnits(
	operation func(value values.DateTimeValue, count int) (values.DateTimeValue, error),
) commandFunc {
	return func(command *Command) error {
		operands, err := command.UseTopValues(2)
		if err != nil {
			return err
		}

		count, err := intArgument(command, operands[0])
		if err != nil {
			return err
		}

		result, err := operation(operands[1].(values.DateTimeValue), count)
		if err != nil {
			return err
		}

		return command.Commit(result)
	}
}

// toDateTime replaces year, month and day with the date
func toDateTime(command *Command) error {
	operands, err := command.UseTopValues(3)
	if err != nil {
		return err
	}

	var fields [3]int
	for i, operand := range pushOrder(operands) {
		fields[i], err = intArgument(command, operand)
		if err != nil {
			return err
		}
	}

	date, err := values.NewDateValue(fields[0], time.Month(fields[1]), fields[2])
	if err != nil {
		return err
	}

	return command.Commit(date)
}
