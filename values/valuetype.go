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

//go:generate go run golang.org/x/tools/cmd/stringer -type=ValueType -trimprefix=ValueType

// ValueType is the variant tag of a Value.
// The numeric variants are declared in promotion order, lowest rank first.
type ValueType uint8

const (
	ValueTypeBinary ValueType = iota
	ValueTypeInteger
	ValueTypeFraction
	ValueTypeDouble
	ValueTypeComplex
	ValueTypeDateTime
	ValueTypeTimeSpan
)

const ValueTypeCount = int(ValueTypeTimeSpan) + 1

// IsNumeric returns true for the variants which take part in promotion.
func (t ValueType) IsNumeric() bool {
	return t <= ValueTypeComplex
}

// IsReal returns true for the numeric variants which are ordered on the real line,
// i.e. every numeric variant except Binary and Complex.
func (t ValueType) IsReal() bool {
	switch t {
	case ValueTypeInteger, ValueTypeFraction, ValueTypeDouble:
		return true
	}
	return false
}

// ValueTypeFromName returns the value type with the given persisted name.
func ValueTypeFromName(name string) (ValueType, bool) {
	for i := 0; i < ValueTypeCount; i++ {
		valueType := ValueType(i)
		if valueType.String() == name {
			return valueType, true
		}
	}
	return 0, false
}
