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

var timeSpanCommands = &commandGroup{
	name: "timespan",
	commands: map[string]commandFunc{
		"Days":              typed(timeSpanUnitCommand(values.TimeSpanValue.Days, 24*time.Hour), timeSpanUnitTypes),
		"Hours":             typed(timeSpanUnitCommand(values.TimeSpanValue.Hours, time.Hour), timeSpanUnitTypes),
		"Minutes":           typed(timeSpanUnitCommand(values.TimeSpanValue.Minutes, time.Minute), timeSpanUnitTypes),
		"Seconds":           typed(timeSpanUnitCommand(values.TimeSpanValue.Seconds, time.Second), timeSpanUnitTypes),
		"Milliseconds":      typed(timeSpanUnitCommand(values.TimeSpanValue.Milliseconds, time.Millisecond), timeSpanUnitTypes),
		"TotalDays":         typed(timeSpanTotalCommand(values.TimeSpanValue.TotalDays), timeSpanType),
		"TotalHours":        typed(timeSpanTotalCommand(values.TimeSpanValue.TotalHours), timeSpanType),
		"TotalMinutes":      typed(timeSpanTotalCommand(values.TimeSpanValue.TotalMinutes), timeSpanType),
		"TotalSeconds":      typed(timeSpanTotalCommand(values.TimeSpanValue.TotalSeconds), timeSpanType),
		"TotalMilliseconds": typed(timeSpanTotalCommand(values.TimeSpanValue.TotalMilliseconds), timeSpanType),
	},
}

var timeSpanUnitTypes = append([]values.ValueType{values.ValueTypeTimeSpan}, realTypes...)

// timeSpanUnitCommand replaces a time span with its component in the unit,
// and a real number with the time span of that many units
func timeSpanUnitCommand(component func(span values.TimeSpanValue) int64, unit time.Duration) commandFunc {
	return unaryCommand(func(value values.Value) (values.Value, error) {
		if span, ok := value.(values.TimeSpanValue); ok {
			return values.NewIntegerValueFromInt64(component(span)), nil
		}

		amount, err := realArgument(value)
		if err != nil {
			return nil, err
		}
		return values.NewTimeSpanValueFromUnit(amount, unit)
	})
}

func timeSpanTotalCommand(total func(span values.TimeSpanValue) float64) commandFunc {
	return unaryCommand(func(value values.Value) (values.Value, error) {
		return values.DoubleValue(total(value.(values.TimeSpanValue))), nil
	})
}
