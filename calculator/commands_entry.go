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
	"fmt"
	"slices"

	"github.com/onflow/rpncalc/parser"
)

var entryCommands = &commandGroup{
	name: "entry",
	commands: map[string]commandFunc{
		"Entry":      entry,
		"ClearEntry": clearEntry,
	},
	parameterCommands: map[string]parameterCommandFunc{
		"RecallEntry": recallEntryN,
	},
}

// entry parses the entry text and pushes its values.
// The entry line is reported in the command result,
// so the caller can highlight an invalid value.
func entry(command *Command) error {
	calculator := command.calculator

	entryLine := parser.Parse(calculator.entryText, command.Settings())
	command.result.EntryLine = entryLine

	if entryLine.IsEmpty() {
		command.Cancel()
		return nil
	}

	if entryLine.HasError() {
		return EntryParseError{
			Err: entryLine.Err,
		}
	}

	err := command.Commit(entryLine.Values...)
	if err != nil {
		return err
	}

	calculator.addEntryHistory(entryLine.Text)
	calculator.entryText = ""
	return nil
}

func clearEntry(command *Command) error {
	command.calculator.entryText = ""
	command.Cancel()
	return nil
}

// recallEntryN replaces the entry text with the n-th most recent entry
func recallEntryN(command *Command, n int) error {
	history := command.calculator.entryHistory
	if n < 1 || n > len(history) {
		return InvalidParameterError{
			Command:   command.name,
			Parameter: n,
			Message:   fmt.Sprintf("entry history has %d entries", len(history)),
		}
	}

	command.calculator.entryText = history[n-1]
	command.Cancel()
	return nil
}

// addEntryHistory records the text as the most recent entry.
// A repeated entry moves to the front.
func (c *Calculator) addEntryHistory(text string) {
	history := slices.DeleteFunc(c.entryHistory, func(entry string) bool {
		return entry == text
	})
	history = slices.Insert(history, 0, text)

	maxEntryHistory := c.config.maxEntryHistory()
	if len(history) > maxEntryHistory {
		history = history[:maxEntryHistory]
	}
	c.entryHistory = history
}
