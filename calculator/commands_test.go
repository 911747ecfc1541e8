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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/rpncalc/values"
)

func assertTop(t *testing.T, calculator *Calculator, expected values.Value) {
	t.Helper()

	actual := top(t, calculator)
	assert.Truef(t,
		expected.Equal(actual),
		"expected %s, got %s",
		expected.EntryText(),
		actual.EntryText(),
	)
}

func topFloat(t *testing.T, calculator *Calculator) float64 {
	t.Helper()

	double, err := top(t, calculator).(values.NumericValue).ToDouble()
	require.NoError(t, err)
	return float64(double)
}

func TestStackCommands(t *testing.T) {

	t.Parallel()

	type test struct {
		name     string
		entry    string
		run      func(t *testing.T, calculator *Calculator)
		expected []string
	}

	tests := []test{
		{
			name:  "Dup",
			entry: "1 2",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Dup")
			},
			expected: []string{"2", "2", "1"},
		},
		{
			name:  "Over",
			entry: "1 2",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Over")
			},
			expected: []string{"1", "2", "1"},
		},
		{
			name:  "Rotate",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Rotate")
			},
			expected: []string{"1", "3", "2"},
		},
		{
			name:  "Depth",
			entry: "7 8",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Depth")
			},
			expected: []string{"2", "8", "7"},
		},
		{
			name:  "Clear",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Clear")
			},
			expected: nil,
		},
		{
			name:  "Reverse",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Reverse")
			},
			expected: []string{"1", "2", "3"},
		},
		{
			name:  "Sort",
			entry: "3 1/2 -2 1",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Sort")
			},
			expected: []string{"3", "1", "1/2", "-2"},
		},
		{
			name:  "Drop N",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "Drop", 2)
			},
			expected: []string{"1"},
		},
		{
			name:  "Dup N",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "Dup", 2)
			},
			expected: []string{"3", "2", "3", "2", "1"},
		},
		{
			name:  "RollUp N",
			entry: "1 2 3 4",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "RollUp", 3)
			},
			expected: []string{"2", "4", "3", "1"},
		},
		{
			name:  "RollDown N",
			entry: "1 2 3 4",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "RollDown", 3)
			},
			expected: []string{"3", "2", "4", "1"},
		},
		{
			name:  "RollUp and RollDown",
			entry: "1 2 3 4",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "RollUp", 4)
				executeWithParameter(t, calculator, "RollDown", 4)
			},
			expected: []string{"4", "3", "2", "1"},
		},
		{
			name:  "Pick N",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "Pick", 3)
			},
			expected: []string{"1", "3", "2", "1"},
		},
		{
			name:  "Reverse N",
			entry: "1 2 3",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "Reverse", 2)
			},
			expected: []string{"2", "3", "1"},
		},
		{
			name:  "Sort N",
			entry: "9 3 1 2",
			run: func(t *testing.T, calculator *Calculator) {
				executeWithParameter(t, calculator, "Sort", 3)
			},
			expected: []string{"3", "2", "1", "9"},
		},
		{
			name:  "Last after Add",
			entry: "3 4",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Add", "Last")
			},
			expected: []string{"4", "3", "7"},
		},
		{
			name:  "Last after Dup N",
			entry: "1 2",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Add")
				enter(t, calculator, "5 6")
				executeWithParameter(t, calculator, "Dup", 2)
				execute(t, calculator, "Last")
			},
			expected: []string{"2", "1", "6", "5", "6", "5", "3"},
		},
		{
			name:  "Last after Over",
			entry: "1 2",
			run: func(t *testing.T, calculator *Calculator) {
				execute(t, calculator, "Add")
				enter(t, calculator, "5 6")
				execute(t, calculator, "Over", "Last")
			},
			expected: []string{"2", "1", "5", "6", "5", "3"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			calculator := New(Config{})
			enter(t, calculator, test.entry)
			test.run(t, calculator)

			assert.Equal(t, test.expected, stackTexts(calculator))
		})
	}
}

func TestMathCommands(t *testing.T) {

	t.Parallel()

	type test struct {
		entry    string
		command  string
		expected string
	}

	tests := []test{
		{"7 2", "Subtract", "5"},
		{"6 7", "Multiply", "42"},
		{"1 3", "Divide", "1/3"},
		{"7 3", "Modulus", "1"},
		{"5", "Negate", "-5"},
		{"-5", "Abs", "5"},
		{"-5", "Sign", "-1"},
		{"4", "Invert", "1/4"},
		{"1/3", "Square", "1/9"},
		{"16", "SquareRoot", "4"},
		{"16 2", "Root", "4"},
		{"5", "Factorial", "120"},
		{"100", "Log", "2"},
		{"3", "TenToX", "1000"},
		{"2.5", "Floor", "2"},
		{"2.5", "Ceiling", "3"},
		{"-2.5", "Truncate", "-2"},
		{"200 15", "Percent", "30"},
		{"50 75", "PercentChange", "50"},
		{"3 4", "Min", "3"},
		{"3 4", "Max", "4"},
		{"5 2", "Combinations", "10"},
		{"5 2", "Permutations", "20"},
		{"1 2 3 4", "Sum", "10"},
		{"1 2 3 4", "Mean", "5/2"},
	}

	for _, test := range tests {
		t.Run(test.command, func(t *testing.T) {
			t.Parallel()

			calculator := New(Config{})
			enter(t, calculator, test.entry)
			execute(t, calculator, test.command)

			assert.Equal(t, test.expected, top(t, calculator).EntryText())
		})
	}

	t.Run("Sum N", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1 2 3 4")
		executeWithParameter(t, calculator, "Sum", 3)

		assert.Equal(t, []string{"9", "1"}, stackTexts(calculator))
	})

	t.Run("Mean N", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1 2 3 4")
		executeWithParameter(t, calculator, "Mean", 2)

		assert.Equal(t, []string{"7/2", "2", "1"}, stackTexts(calculator))
	})

	t.Run("Round N", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "3.14159")
		executeWithParameter(t, calculator, "Round", 2)

		assertTop(t, calculator, values.DoubleValue(3.14))
	})

	t.Run("trigonometry in degrees", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		require.NoError(t, calculator.Settings().SetAngleMode(values.AngleModeDegrees))

		enter(t, calculator, "90")
		execute(t, calculator, "Sin")
		assertTop(t, calculator, values.NewIntegerValueFromInt64(1))

		enter(t, calculator, "1")
		execute(t, calculator, "ArcTan")
		assert.InDelta(t, 45, topFloat(t, calculator), 1e-12)
	})

	t.Run("square root of negative number", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "-4")
		execute(t, calculator, "SquareRoot")

		assertTop(t, calculator, values.NewComplexValue(0, 2))
	})

	t.Run("ToDegrees and ToRadians", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		calculator.Stack().Push(values.DoubleValue(math.Pi))
		execute(t, calculator, "ToDegrees")
		assert.InDelta(t, 180, topFloat(t, calculator), 1e-12)

		execute(t, calculator, "ToRadians")
		assert.InDelta(t, math.Pi, topFloat(t, calculator), 1e-12)
	})
}

func TestBinaryCommands(t *testing.T) {

	t.Parallel()

	type test struct {
		entry    string
		command  string
		expected string
	}

	tests := []test{
		{"#F0h #3Ch", "And", "#30h"},
		{"#F0h #0Fh", "Or", "#FFh"},
		{"#FFh #0Fh", "Xor", "#F0h"},
		{"#1h 4", "ShiftLeft", "#10h"},
		{"#10h #4h", "ShiftRight", "#1h"},
		{"#80000000h 4", "ArithmeticShiftRight", "#F8000000h"},
		{"#80000001h 1", "RotateLeft", "#3h"},
		{"#1h 1", "RotateRight", "#80000000h"},
		{"#0h 3", "SetBit", "#8h"},
		{"#FFh 0", "ClearBit", "#FEh"},
		{"#4h 2", "TestBit", "1"},
		{"#4h 1", "TestBit", "0"},
		{"#F0F0h", "BitCount", "8"},
		{"#FFh", "BtoI", "255"},
		{"255", "ItoB", "#FFh"},
		{"#0h", "Not", "#FFFFFFFFh"},
	}

	for _, test := range tests {
		t.Run(test.command, func(t *testing.T) {
			t.Parallel()

			calculator := New(Config{})
			enter(t, calculator, test.entry)
			execute(t, calculator, test.command)

			assert.Equal(t, test.expected, top(t, calculator).EntryText())
		})
	}

	t.Run("ItoB wraps to word size", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		require.NoError(t, calculator.Settings().SetBinaryWordSize(8))

		enter(t, calculator, "-1")
		execute(t, calculator, "ItoB")
		assert.Equal(t, "#FFh", top(t, calculator).EntryText())
	})
}

func TestFractionCommands(t *testing.T) {

	t.Parallel()

	t.Run("parts", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "7/3")
		execute(t, calculator, "Dup", "Numerator")
		assertTop(t, calculator, values.NewIntegerValueFromInt64(7))

		execute(t, calculator, "Drop", "Denominator")
		assertTop(t, calculator, values.NewIntegerValueFromInt64(3))
	})

	t.Run("ToMixedParts", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "7/3")
		execute(t, calculator, "ToMixedParts")

		assert.Equal(t, []string{"1/3", "2"}, stackTexts(calculator))
	})

	t.Run("ToFraction and ToDouble", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "0.75")
		execute(t, calculator, "ToFraction")
		assert.Equal(t, "3/4", top(t, calculator).EntryText())

		execute(t, calculator, "ToDouble")
		assertTop(t, calculator, values.DoubleValue(0.75))
	})
}

func TestDateCommands(t *testing.T) {

	t.Parallel()

	clock := time.Date(2024, time.February, 29, 13, 45, 30, 0, time.Local)

	newCalculator := func() *Calculator {
		return New(Config{
			Now: func() time.Time {
				return clock
			},
		})
	}

	date := func(t *testing.T, year int, month time.Month, day int) values.DateTimeValue {
		value, err := values.NewDateValue(year, month, day)
		require.NoError(t, err)
		return value
	}

	t.Run("Now and Today", func(t *testing.T) {
		t.Parallel()

		calculator := newCalculator()
		execute(t, calculator, "Now")
		assertTop(t, calculator, values.NewDateTimeValue(clock))

		execute(t, calculator, "Today")
		assertTop(t, calculator, date(t, 2024, time.February, 29))
	})

	t.Run("components", func(t *testing.T) {
		t.Parallel()

		expected := map[string]int64{
			"Year":      2024,
			"Month":     2,
			"Day":       29,
			"Hour":      13,
			"Minute":    45,
			"Second":    30,
			"DayOfWeek": 4,
			"DayOfYear": 60,
		}

		for name, component := range expected {
			calculator := newCalculator()
			execute(t, calculator, "Now", name)
			assertTop(t, calculator, values.NewIntegerValueFromInt64(component))
		}
	})

	t.Run("TimeOfDay", func(t *testing.T) {
		t.Parallel()

		calculator := newCalculator()
		execute(t, calculator, "Now", "TimeOfDay")
		assertTop(t, calculator, values.TimeSpanValue(13*time.Hour+45*time.Minute+30*time.Second))
	})

	t.Run("AddMonths and AddYears", func(t *testing.T) {
		t.Parallel()

		calculator := newCalculator()
		execute(t, calculator, "Today")
		enter(t, calculator, "1")
		execute(t, calculator, "AddMonths")
		assertTop(t, calculator, date(t, 2024, time.March, 29))

		execute(t, calculator, "Today")
		enter(t, calculator, "1")
		execute(t, calculator, "AddYears")
		assertTop(t, calculator, date(t, 2025, time.February, 28))
	})

	t.Run("ToDateTime", func(t *testing.T) {
		t.Parallel()

		calculator := newCalculator()
		enter(t, calculator, "2024 2 29")
		execute(t, calculator, "ToDateTime")
		assertTop(t, calculator, date(t, 2024, time.February, 29))

		enter(t, calculator, "2023 2 29")
		result, err := calculator.ExecuteCommand("ToDateTime")
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &values.ArgumentOutOfRangeError{})
		assert.Equal(t, 4, calculator.Stack().Count())
	})
}

func TestTimeSpanCommands(t *testing.T) {

	t.Parallel()

	type test struct {
		command  string
		expected values.Value
	}

	tests := []test{
		{"Days", values.NewIntegerValueFromInt64(1)},
		{"Hours", values.NewIntegerValueFromInt64(2)},
		{"Minutes", values.NewIntegerValueFromInt64(30)},
		{"Seconds", values.NewIntegerValueFromInt64(15)},
		{"TotalMinutes", values.DoubleValue(1590.25)},
		{"TotalSeconds", values.NewIntegerValueFromInt64(95415)},
	}

	for _, test := range tests {
		t.Run(test.command, func(t *testing.T) {
			t.Parallel()

			calculator := New(Config{})
			enter(t, calculator, "1.02:30:15")
			execute(t, calculator, test.command)

			assertTop(t, calculator, test.expected)
		})
	}

	t.Run("from real number", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1.5")
		execute(t, calculator, "Hours")
		assertTop(t, calculator, values.TimeSpanValue(90*time.Minute))

		enter(t, calculator, "2")
		execute(t, calculator, "Days", "Add")
		assertTop(t, calculator, values.TimeSpanValue(49*time.Hour+30*time.Minute))
	})
}

func TestComplexCommands(t *testing.T) {

	t.Parallel()

	t.Run("ToComplex and FromComplex", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "3 4")
		execute(t, calculator, "ToComplex")
		assertTop(t, calculator, values.NewComplexValue(3, 4))

		execute(t, calculator, "FromComplex")
		assert.Equal(t, []string{"4", "3"}, stackTexts(calculator))
	})

	t.Run("parts", func(t *testing.T) {
		t.Parallel()

		type test struct {
			command  string
			expected values.Value
		}

		tests := []test{
			{"Conjugate", values.NewComplexValue(3, -4)},
			{"Real", values.NewIntegerValueFromInt64(3)},
			{"Imaginary", values.NewIntegerValueFromInt64(4)},
			{"Magnitude", values.NewIntegerValueFromInt64(5)},
			{"Phase", values.DoubleValue(math.Atan2(4, 3))},
		}

		for _, test := range tests {
			calculator := New(Config{})
			enter(t, calculator, "(3,4)")
			execute(t, calculator, test.command)
			assertTop(t, calculator, test.expected)
		}
	})

	t.Run("polar in degrees", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		require.NoError(t, calculator.Settings().SetAngleMode(values.AngleModeDegrees))

		enter(t, calculator, "(0,2)")
		execute(t, calculator, "ToPolar")
		assert.InDelta(t, 90, topFloat(t, calculator), 1e-12)
		require.Equal(t, 2, calculator.Stack().Count())

		execute(t, calculator, "FromPolar")
		assertTop(t, calculator, values.NewComplexValue(0, 2))
	})
}

func TestConstantCommands(t *testing.T) {

	t.Parallel()

	expected := map[string]float64{
		"Pi":  math.Pi,
		"E":   math.E,
		"Phi": math.Phi,
		"Tau": 2 * math.Pi,
	}

	for name, constant := range expected {
		calculator := New(Config{})
		execute(t, calculator, name)
		assertTop(t, calculator, values.DoubleValue(constant))
	}
}

func TestEntryCommands(t *testing.T) {

	t.Parallel()

	t.Run("empty entry", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		calculator.SetEntryText("   ")

		result, err := calculator.ExecuteCommand("Entry")
		require.NoError(t, err)
		require.NoError(t, result.Err)
		require.NotNil(t, result.EntryLine)
		assert.True(t, result.EntryLine.IsEmpty())
		assert.Equal(t, 0, calculator.Stack().Count())
		assert.Empty(t, calculator.EntryHistory())
	})

	t.Run("history", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{
			MaxEntryHistory: 3,
		})

		for _, text := range []string{"1", "2", "3", "1", "4"} {
			enter(t, calculator, text)
		}
		assert.Equal(t, []string{"4", "1", "3"}, calculator.EntryHistory())
		assert.Empty(t, calculator.EntryText())

		executeWithParameter(t, calculator, "RecallEntry", 2)
		assert.Equal(t, "1", calculator.EntryText())

		execute(t, calculator, "ClearEntry")
		assert.Empty(t, calculator.EntryText())

		result, err := calculator.ExecuteCommandWithParameter("RecallEntry", 4)
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &InvalidParameterError{})
	})

	t.Run("last arguments", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "5 6")
		execute(t, calculator, "Multiply")

		lastArgs := calculator.LastArguments()
		require.Len(t, lastArgs, 2)
		assert.Equal(t, "5", lastArgs[0].EntryText())
		assert.Equal(t, "6", lastArgs[1].EntryText())
	})
}
