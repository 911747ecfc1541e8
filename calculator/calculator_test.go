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
	"bytes"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/goleak"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/nodes"
	. "github.com/onflow/rpncalc/test_utils/common_utils"
	"github.com/onflow/rpncalc/values"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// enter parses the text as the entry line and pushes its values
func enter(t *testing.T, calculator *Calculator, text string) {
	t.Helper()

	calculator.SetEntryText(text)
	result, err := calculator.ExecuteCommand("Entry")
	require.NoError(t, err)
	require.NoError(t, result.Err)
}

func execute(t *testing.T, calculator *Calculator, names ...string) {
	t.Helper()

	for _, name := range names {
		result, err := calculator.ExecuteCommand(name)
		require.NoError(t, err)
		require.NoError(t, result.Err, name)
	}
}

func executeWithParameter(t *testing.T, calculator *Calculator, name string, parameter int) {
	t.Helper()

	result, err := calculator.ExecuteCommandWithParameter(name, parameter)
	require.NoError(t, err)
	require.NoError(t, result.Err, name)
}

// stackTexts returns the entry texts of the stack values, top-first
func stackTexts(calculator *Calculator) []string {
	var texts []string
	for _, value := range calculator.Stack().Values() {
		texts = append(texts, value.EntryText())
	}
	return texts
}

func top(t *testing.T, calculator *Calculator) values.Value {
	t.Helper()

	value, err := calculator.Stack().Peek()
	require.NoError(t, err)
	return value
}

func TestScenarios(t *testing.T) {

	t.Parallel()

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "3")
		enter(t, calculator, "4")
		execute(t, calculator, "Add")

		assert.Equal(t, "7", top(t, calculator).EntryText())
		assert.Equal(t, 1, calculator.Stack().Count())
		assert.Empty(t, calculator.ErrorMessage())
	})

	t.Run("divide by zero", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1 0")

		result, err := calculator.ExecuteCommand("Divide")
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &values.DivisionByZeroError{})
		assert.False(t, result.Succeeded())

		assert.Equal(t, "division by zero", calculator.ErrorMessage())
		assert.Equal(t, []string{"0", "1"}, stackTexts(calculator))

		calculator.ClearError()
		assert.Empty(t, calculator.ErrorMessage())
	})

	t.Run("unterminated complex", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		calculator.SetEntryText("(3,4")

		result, err := calculator.ExecuteCommand("Entry")
		require.NoError(t, err)
		require.Error(t, result.Err)
		require.ErrorAs(t, result.Err, &EntryParseError{})

		require.NotNil(t, result.EntryLine)
		assert.True(t, result.EntryLine.InComplex())
		assert.False(t, result.EntryLine.IsComplete())
		assert.Equal(t, 0, result.EntryLine.ErrorTokenIndex())

		assert.Equal(t, 0, calculator.Stack().Count())
		assert.Equal(t, "(3,4", calculator.EntryText())
		assert.NotEmpty(t, calculator.ErrorMessage())
	})

	t.Run("power reduces to integer", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		calculator.Stack().PushRange([]values.Value{
			values.NewIntegerValueFromInt64(6),
			values.NewIntegerValueFromInt64(2),
		})
		execute(t, calculator, "Power")

		result := top(t, calculator)
		assert.Equal(t, values.ValueTypeInteger, result.ValueType())
		assert.Equal(t, "36", result.EntryText())
	})

	t.Run("binary not at word size 8", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		require.NoError(t, calculator.Settings().SetBinaryWordSize(8))

		enter(t, calculator, "#255d")
		assert.Equal(t, values.BinaryValue(255), top(t, calculator))

		execute(t, calculator, "Not", "BtoI")

		result := top(t, calculator)
		assert.Equal(t, values.ValueTypeInteger, result.ValueType())
		assert.Equal(t, "0", result.EntryText())
	})

	t.Run("last after swap and drop", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1 2")

		execute(t, calculator, "Swap")
		assert.Equal(t, []string{"1", "2"}, stackTexts(calculator))

		execute(t, calculator, "Drop")
		assert.Equal(t, []string{"2"}, stackTexts(calculator))

		execute(t, calculator, "Last")
		assert.Equal(t, []string{"1", "2"}, stackTexts(calculator))
	})
}

func TestAtomicity(t *testing.T) {

	t.Parallel()

	commandNames := []string{
		"Add", "Subtract", "Divide", "Modulus", "Power", "Root",
		"Factorial", "Ln", "Log", "Invert", "And", "Not", "ToComplex",
		"Combinations", "Permutations", "Swap", "Rotate", "Last",
		"Sort", "Mean", "ToDateTime", "Year", "TotalDays",
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property(
		"failed commands leave the stack unchanged",
		prop.ForAll(
			func(operands []int64, name string) bool {
				calculator := New(Config{})
				for _, operand := range operands {
					calculator.Stack().Push(values.NewIntegerValueFromInt64(operand))
				}

				before := stackTexts(calculator)

				result, err := calculator.ExecuteCommand(name)
				if err != nil {
					return false
				}
				if result.Err == nil {
					return calculator.ErrorMessage() == ""
				}

				return assert.ObjectsAreEqual(before, stackTexts(calculator)) &&
					calculator.ErrorMessage() != ""
			},
			gen.SliceOfN(3, gen.Int64Range(-3, 3)),
			gen.OneConstOf(toInterfaces(commandNames)...),
		),
	)

	properties.TestingRun(t)
}

func toInterfaces(names []string) []any {
	result := make([]any, 0, len(names))
	for _, name := range names {
		result = append(result, name)
	}
	return result
}

func TestCommandErrors(t *testing.T) {

	t.Parallel()

	t.Run("argument count", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1")

		result, err := calculator.ExecuteCommand("Add")
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &ArgumentCountError{})
		assert.Equal(t, "Add: 2 arguments required", calculator.ErrorMessage())
		assert.Equal(t, []string{"1"}, stackTexts(calculator))
	})

	t.Run("operand type", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "#1 2")

		result, err := calculator.ExecuteCommand("And")
		require.NoError(t, err)

		var operandTypeErr OperandTypeError
		require.ErrorAs(t, result.Err, &operandTypeErr)
		assert.Equal(t, 1, operandTypeErr.Operand)
		assert.Equal(t, values.ValueTypeInteger, operandTypeErr.Actual)
		assert.Equal(t, "And: operand 1 must be of type Binary, got Integer", operandTypeErr.Error())
	})

	t.Run("invalid operands", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		calculator.Stack().PushRange([]values.Value{
			values.TimeSpanValue(time.Hour),
			values.NewIntegerValueFromInt64(1),
		})

		result, err := calculator.ExecuteCommand("Add")
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &values.InvalidOperandsError{})
		assert.Equal(t, 2, calculator.Stack().Count())
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})

		_, err := calculator.ExecuteCommand("Factoral")
		require.Error(t, err)
		assert.True(t, errors.IsInternalError(err))

		var unknownCommandErr UnknownCommandError
		require.ErrorAs(t, err, &unknownCommandErr)
		assert.Equal(t, "Factorial", unknownCommandErr.Suggestion)
		assert.Equal(t, `internal error: unknown command "Factoral". did you mean "Factorial"?`, calculator.ErrorMessage())
	})

	t.Run("unknown parameter command", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})

		_, err := calculator.ExecuteCommandWithParameter("Swap", 2)
		require.ErrorAs(t, err, &UnknownCommandError{})
	})

	t.Run("invalid parameter", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1")

		result, err := calculator.ExecuteCommandWithParameter("Drop", 0)
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &InvalidParameterError{})
		assert.Equal(t, 1, calculator.Stack().Count())
	})

	t.Run("no last arguments", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})

		result, err := calculator.ExecuteCommand("Last")
		require.NoError(t, err)
		require.ErrorAs(t, result.Err, &NoLastArgumentsError{})
	})
}

func TestCommandBoundary(t *testing.T) {

	t.Parallel()

	t.Run("incomplete command", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		_, err := calculator.execute("Broken", nil, func(*Command) error {
			return nil
		})
		require.ErrorAs(t, err, &IncompleteCommandError{})
		assert.NotEmpty(t, calculator.ErrorMessage())
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})
		enter(t, calculator, "1")

		_, err := calculator.execute("Broken", nil, func(command *Command) error {
			_, err := command.UseTopValues(1)
			require.NoError(t, err)
			panic("broken")
		})
		require.ErrorAs(t, err, &errors.UnexpectedError{})
		assert.Equal(t, 1, calculator.Stack().Count())
	})

	t.Run("cancel after commit", func(t *testing.T) {
		t.Parallel()

		calculator := New(Config{})

		_, err := calculator.execute("Broken", nil, func(command *Command) error {
			err := command.Commit(values.NewIntegerValueFromInt64(1))
			require.NoError(t, err)
			command.Cancel()
			return nil
		})
		require.ErrorAs(t, err, &CommandStateError{})
	})
}

func TestSettingsNotifications(t *testing.T) {

	t.Parallel()

	var notifications []values.Settings
	calculator := New(Config{
		OnSettingsChanged: func(settings values.Settings) {
			notifications = append(notifications, settings)
		},
	})
	settings := calculator.Settings()

	require.NoError(t, settings.SetAngleMode(values.AngleModeDegrees))
	require.Len(t, notifications, 1)
	assert.Equal(t, values.AngleModeDegrees, notifications[0].AngleMode)

	require.NoError(t, settings.SetAngleMode(values.AngleModeDegrees))
	assert.Len(t, notifications, 1)

	require.ErrorAs(t, settings.SetBinaryWordSize(65), &values.InvalidWordSizeError{})
	require.ErrorAs(t, settings.SetAngleMode(values.AngleMode(values.AngleModeCount)), &InvalidSettingError{})
	require.Error(t, settings.SetFixedDecimalDigits(-1))
	assert.Len(t, notifications, 1)

	require.NoError(t, settings.SetBinaryWordSize(16))
	require.NoError(t, settings.SetBinaryFormat(values.BinaryFormatOctal))
	require.NoError(t, settings.SetComplexFormat(values.ComplexFormatPolar))
	require.NoError(t, settings.SetDecimalFormat(values.DecimalFormatFixed))
	require.NoError(t, settings.SetFractionFormat(values.FractionFormatMixed))
	require.NoError(t, settings.SetFixedDecimalDigits(2))
	assert.Len(t, notifications, 7)

	assert.Equal(t, 16, settings.Values().BinaryWordSize)
}

func TestObservers(t *testing.T) {

	t.Parallel()

	var stackChanges int
	var messages []string

	calculator := New(Config{
		OnStackChanged: func() {
			stackChanges++
		},
		OnErrorMessageChanged: func(message string) {
			messages = append(messages, message)
		},
	})

	enter(t, calculator, "1 2 3")
	assert.Equal(t, 1, stackChanges)

	execute(t, calculator, "Add")
	assert.Equal(t, 2, stackChanges)

	result, err := calculator.ExecuteCommand("Factorial")
	require.NoError(t, err)
	require.NoError(t, result.Err)
	assert.Equal(t, 3, stackChanges)

	enter(t, calculator, "-1")
	result, err = calculator.ExecuteCommand("Factorial")
	require.NoError(t, err)
	require.Error(t, result.Err)
	assert.Equal(t, 4, stackChanges)

	calculator.ClearError()
	assert.Equal(t, []string{"factorial of a negative integer is undefined", ""}, messages)
}

func TestLoggingAndTracing(t *testing.T) {

	t.Parallel()

	type trace struct {
		name  string
		attrs []attribute.KeyValue
	}

	var traces []trace
	var output bytes.Buffer

	calculator := New(Config{
		Logger: zerolog.New(&output).Level(zerolog.DebugLevel),
		Tracer: Tracer{
			TracingEnabled: true,
			OnRecordTrace: func(operationName string, _ time.Duration, attrs []attribute.KeyValue) {
				traces = append(traces, trace{name: operationName, attrs: attrs})
			},
		},
	})

	enter(t, calculator, "1 2")
	executeWithParameter(t, calculator, "Pick", 2)

	require.Len(t, traces, 2)
	assert.Equal(t, "command.Entry", traces[0].name)
	assert.Equal(t, "command.Pick", traces[1].name)
	assert.Equal(t,
		[]attribute.KeyValue{
			attribute.Int("depth", 3),
			attribute.String("outcome", "Committed"),
			attribute.Int("parameter", 2),
		},
		traces[1].attrs,
	)

	assert.Equal(t, 2, bytes.Count(output.Bytes(), []byte("executed command")))
	assert.Contains(t, output.String(), `"command":"Pick"`)
}

func TestPersistence(t *testing.T) {

	t.Parallel()

	calculator := New(Config{})
	require.NoError(t, calculator.Settings().SetAngleMode(values.AngleModeGrads))
	require.NoError(t, calculator.Settings().SetBinaryWordSize(12))
	enter(t, calculator, "#FFh 1/3 (1,2) 1:30")
	enter(t, calculator, "42")

	root := nodes.NewMemoryNode("Calculator")
	calculator.Save(root)

	document, err := nodes.EncodeYAML(root)
	require.NoError(t, err)

	decoded, err := nodes.DecodeYAML(document)
	require.NoError(t, err)

	var notifications int
	loaded := New(Config{
		OnSettingsChanged: func(values.Settings) {
			notifications++
		},
	})
	loaded.Load(decoded)

	assert.Equal(t, 1, notifications)
	assert.Equal(t, calculator.Settings().Values(), loaded.Settings().Values())
	assert.Equal(t, stackTexts(calculator), stackTexts(loaded))
	AssertEqualWithDiff(t,
		[]string{"42", "#FFh 1/3 (1,2) 1:30"},
		loaded.EntryHistory(),
	)
}

func TestCommandNames(t *testing.T) {

	t.Parallel()

	names := CommandNames()
	assert.Contains(t, names, "Add")
	assert.Contains(t, names, "RollUp")
	assert.Contains(t, names, "RecallEntry")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		assert.True(t, HasCommand(name) || HasParameterCommand(name), name)
	}

	assert.True(t, HasCommand("Swap"))
	assert.False(t, HasParameterCommand("Swap"))
	assert.False(t, HasCommand("RollUp"))
	assert.True(t, HasParameterCommand("RollUp"))
}
