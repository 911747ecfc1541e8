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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/rpncalc/values"
)

func newTestCommand(t *testing.T, entry string) (*Calculator, *Command) {
	t.Helper()

	calculator := New(Config{})
	if entry != "" {
		enter(t, calculator, entry)
	}
	return calculator, newCommand(calculator, "Test", &CommandResult{Name: "Test"})
}

func TestCommand(t *testing.T) {

	t.Parallel()

	t.Run("require type", func(t *testing.T) {
		t.Parallel()

		_, command := newTestCommand(t, "1/2 #1")

		require.NoError(t, command.RequireType(0, values.ValueTypeBinary))
		require.NoError(t, command.RequireType(1, values.ValueTypeInteger, values.ValueTypeFraction))

		var operandTypeErr OperandTypeError
		require.ErrorAs(t, command.RequireType(1, values.ValueTypeInteger), &operandTypeErr)
		assert.Equal(t, 2, operandTypeErr.Operand)
		assert.Equal(t, values.ValueTypeFraction, operandTypeErr.Actual)

		require.ErrorAs(t, command.RequireType(2, values.ValueTypeInteger), &ArgumentCountError{})
	})

	t.Run("require matching types", func(t *testing.T) {
		t.Parallel()

		_, command := newTestCommand(t, "1 2 #3")

		require.NoError(t, command.RequireMatchingTypes(1, 2))

		var mismatchErr MismatchedOperandTypesError
		require.ErrorAs(t, command.RequireMatchingTypes(0, 1), &mismatchErr)
		assert.Equal(t, values.ValueTypeInteger, mismatchErr.LeftType)
		assert.Equal(t, values.ValueTypeBinary, mismatchErr.RightType)
	})

	t.Run("use without commit", func(t *testing.T) {
		t.Parallel()

		calculator, command := newTestCommand(t, "1 2")

		used, err := command.UseTopValues(2)
		require.NoError(t, err)
		require.Len(t, used, 2)
		assert.Equal(t, "2", used[0].EntryText())

		command.Cancel()
		assert.Equal(t, CommandStateCancelled, command.State())
		assert.Equal(t, []string{"2", "1"}, stackTexts(calculator))

		_, err = command.UseTopValues(1)
		require.ErrorAs(t, err, &CommandStateError{})
	})

	t.Run("commit", func(t *testing.T) {
		t.Parallel()

		calculator, command := newTestCommand(t, "1 2 3")

		_, err := command.UseTopValues(2)
		require.NoError(t, err)

		err = command.Commit(
			values.DoubleValue(4),
			values.NewComplexValue(5, 0),
		)
		require.NoError(t, err)
		assert.Equal(t, CommandStateCommitted, command.State())

		// Results are reduced
		assert.Equal(t, []string{"5", "4", "1"}, stackTexts(calculator))

		lastArgs := calculator.LastArguments()
		require.Len(t, lastArgs, 2)
		assert.Equal(t, "2", lastArgs[0].EntryText())
		assert.Equal(t, "3", lastArgs[1].EntryText())

		require.ErrorAs(t, command.Commit(), &CommandStateError{})
		assert.Panics(t, command.Cancel)
	})

	t.Run("commit invalid result", func(t *testing.T) {
		t.Parallel()

		calculator, command := newTestCommand(t, "1 2")

		_, err := command.UseTopValues(2)
		require.NoError(t, err)

		err = command.Commit(values.DoubleValue(1), values.DoubleValue(math.Inf(1)))
		require.ErrorAs(t, err, &values.NonFiniteResultError{})
		assert.Equal(t, CommandStateOpen, command.State())
		assert.Equal(t, []string{"2", "1"}, stackTexts(calculator))
	})

	t.Run("last arguments override", func(t *testing.T) {
		t.Parallel()

		calculator, command := newTestCommand(t, "1 2")

		_, err := command.UseTopValues(1)
		require.NoError(t, err)

		command.SetLastArgs(values.NewIntegerValueFromInt64(9))
		require.NoError(t, command.Commit())

		assert.Equal(t, []string{"1"}, stackTexts(calculator))
		lastArgs := calculator.LastArguments()
		require.Len(t, lastArgs, 1)
		assert.Equal(t, "9", lastArgs[0].EntryText())
	})
}
