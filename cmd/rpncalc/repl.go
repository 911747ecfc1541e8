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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/onflow/rpncalc/calculator"
	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/nodes"
	"github.com/onflow/rpncalc/values"
)

const replHelpMessage = `
Enter values separated by spaces to push them onto the stack,
or a command name, optionally followed by a parameter, to execute it.

Commands are prefixed with a dot. Valid commands are:

.exit                  Exit the calculator
.help                  Print this help message
.commands              List all calculator commands
.settings              Print the current settings
.set <setting> <value> Change a setting, e.g. '.set AngleMode Degrees'

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

type repl struct {
	calculator *calculator.Calculator
	out        io.Writer
	colors     colors
	exit       bool
}

func newREPL(calc *calculator.Calculator, out io.Writer, colorsEnabled bool) *repl {
	return &repl{
		calculator: calc,
		out:        out,
		colors:     newColors(colorsEnabled),
	}
}

func (r *repl) run() {
	fmt.Fprintf(r.out, "Welcome to RPNCalc!\n%s\n\n", replAssistanceMessage)
	r.printStack()

	options := []prompt.Option{
		prompt.OptionPrefix("> "),
		prompt.OptionTitle("rpncalc"),
		prompt.OptionSetExitCheckerOnInput(func(_ string, breakline bool) bool {
			return breakline && r.exit
		}),
	}
	prompt.New(r.execute, r.suggest, options...).Run()
}

func (r *repl) execute(line string) {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, ".") {
		r.handleCommand(line)
		return
	}

	if !r.executeCommand(line) {
		r.executeEntry(line)
	}

	r.printError()
	r.printStack()
}

// executeCommand executes the line if it is a command name,
// optionally followed by an integer parameter
func (r *repl) executeCommand(line string) bool {
	fields := strings.Fields(line)

	// Errors, including internal ones, are reported in the error message
	switch len(fields) {
	case 1:
		name := fields[0]
		if !calculator.HasCommand(name) {
			return false
		}
		_, _ = r.calculator.ExecuteCommand(name)

	case 2:
		name := fields[0]
		if !calculator.HasParameterCommand(name) {
			return false
		}
		parameter, parseErr := strconv.Atoi(fields[1])
		if parseErr != nil {
			return false
		}
		_, _ = r.calculator.ExecuteCommandWithParameter(name, parameter)

	default:
		return false
	}

	return true
}

func (r *repl) executeEntry(line string) {
	r.calculator.SetEntryText(line)

	result, err := r.calculator.ExecuteCommand("Entry")
	if err != nil || result.EntryLine == nil {
		return
	}

	errorRange, ok := result.EntryLine.ErrorRange()
	if !ok {
		return
	}

	// Mark the invalid value
	width := max(errorRange.EndPos.Column-errorRange.StartPos.Column, 1)
	fmt.Fprintln(r.out, line)
	fmt.Fprintln(r.out,
		r.colors.error(strings.Repeat(" ", errorRange.StartPos.Column)+strings.Repeat("^", width)),
	)
	r.calculator.SetEntryText("")
}

func (r *repl) printError() {
	message := r.calculator.ErrorMessage()
	if message == "" {
		return
	}
	fmt.Fprintln(r.out, r.colors.error(message))
	r.calculator.ClearError()
}

// printStack prints the stack with the top value last
func (r *repl) printStack() {
	stack := r.calculator.Stack()
	settings := r.calculator.Settings().Values()

	for level := stack.Count(); level >= 1; level-- {
		value, err := stack.PeekAt(level - 1)
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(r.out,
			"%s %s\n",
			r.colors.level(fmt.Sprintf("%d:", level)),
			r.colors.value(value.Format(settings)),
		)
	}
}

func (r *repl) handleCommand(line string) {
	fields := strings.Fields(line)

	switch fields[0] {
	case ".exit":
		r.exit = true
	case ".help":
		fmt.Fprintln(r.out, replHelpMessage)
	case ".commands":
		fmt.Fprintln(r.out, strings.Join(calculator.CommandNames(), " "))
	case ".settings":
		r.printSettings()
	case ".set":
		if len(fields) != 3 {
			fmt.Fprintln(r.out, r.colors.error("Usage: .set <setting> <value>"))
			return
		}
		err := r.changeSetting(fields[1], fields[2])
		if err != nil {
			fmt.Fprintln(r.out, r.colors.error(err.Error()))
			return
		}
		r.printStack()
	default:
		fmt.Fprintln(r.out, r.colors.error(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func (r *repl) printSettings() {
	settings := r.calculator.Settings().Values()
	fmt.Fprintf(r.out, "AngleMode          %s\n", settings.AngleMode)
	fmt.Fprintf(r.out, "BinaryFormat       %s\n", settings.BinaryFormat)
	fmt.Fprintf(r.out, "BinaryWordSize     %d\n", settings.BinaryWordSize)
	fmt.Fprintf(r.out, "ComplexFormat      %s\n", settings.ComplexFormat)
	fmt.Fprintf(r.out, "DecimalFormat      %s\n", settings.DecimalFormat)
	fmt.Fprintf(r.out, "FractionFormat     %s\n", settings.FractionFormat)
	fmt.Fprintf(r.out, "FixedDecimalDigits %d\n", settings.FixedDecimalDigits)
	fmt.Fprintf(r.out, "Language           %s\n", settings.Language)
}

func (r *repl) changeSetting(name, value string) error {
	settings := r.calculator.Settings()

	switch name {
	case "AngleMode":
		mode, err := parseSettingEnum[values.AngleMode](name, value, values.AngleModeCount)
		if err != nil {
			return err
		}
		return settings.SetAngleMode(mode)

	case "BinaryFormat":
		format, err := parseSettingEnum[values.BinaryFormat](name, value, values.BinaryFormatCount)
		if err != nil {
			return err
		}
		return settings.SetBinaryFormat(format)

	case "ComplexFormat":
		format, err := parseSettingEnum[values.ComplexFormat](name, value, values.ComplexFormatCount)
		if err != nil {
			return err
		}
		return settings.SetComplexFormat(format)

	case "DecimalFormat":
		format, err := parseSettingEnum[values.DecimalFormat](name, value, values.DecimalFormatCount)
		if err != nil {
			return err
		}
		return settings.SetDecimalFormat(format)

	case "FractionFormat":
		format, err := parseSettingEnum[values.FractionFormat](name, value, values.FractionFormatCount)
		if err != nil {
			return err
		}
		return settings.SetFractionFormat(format)

	case "BinaryWordSize":
		size, err := strconv.Atoi(value)
		if err != nil {
			return calculator.InvalidSettingError{Setting: name, Value: value}
		}
		return settings.SetBinaryWordSize(size)

	case "FixedDecimalDigits":
		digits, err := strconv.Atoi(value)
		if err != nil {
			return calculator.InvalidSettingError{Setting: name, Value: value}
		}
		return settings.SetFixedDecimalDigits(digits)

	default:
		return errors.NewDefaultUserError("unknown setting %q", name)
	}
}

func parseSettingEnum[T nodes.Enum](setting, name string, count int) (T, error) {
	value, ok := nodes.ParseEnum[T](name, count)
	if !ok {
		return value, calculator.InvalidSettingError{Setting: setting, Value: name}
	}
	return value, nil
}

func (r *repl) suggest(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if len(word) == 0 {
		return nil
	}

	var suggests []prompt.Suggest

	if strings.HasPrefix(word, ".") {
		for _, command := range []string{".exit", ".help", ".commands", ".settings", ".set"} {
			suggests = append(suggests, prompt.Suggest{Text: command})
		}
	} else {
		for _, name := range calculator.CommandNames() {
			suggestion := prompt.Suggest{
				Text: name,
			}
			if calculator.HasParameterCommand(name) {
				suggestion.Description = "accepts a parameter"
			}
			suggests = append(suggests, suggestion)
		}
	}

	return prompt.FilterHasPrefix(suggests, word, true)
}
