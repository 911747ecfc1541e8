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

// Package calculator implements the command engine of the calculator.
//
// Every command executes in a transaction (Command),
// which reads operands from the stack, and either commits its results or cancels.
// Failed commands leave the stack unchanged,
// and report their error in the current error message.
package calculator

import (
	goerrors "errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/nodes"
	"github.com/onflow/rpncalc/parser"
	"github.com/onflow/rpncalc/stack"
	"github.com/onflow/rpncalc/values"
)

const (
	entryHistoryNodeName = "EntryHistory"
	entryNodeName        = "Entry"
	entryTextKey         = "Text"
)

// CommandResult is the result of a command execution.
type CommandResult struct {
	Name string
	// EntryLine is the parsed entry text, set by the Entry command
	EntryLine *parser.EntryLine
	// Err is the error the command failed with, if any
	Err error
}

func (r *CommandResult) Succeeded() bool {
	return r.Err == nil
}

type Calculator struct {
	config       Config
	logger       zerolog.Logger
	settings     *Settings
	stack        *stack.Stack
	lastArgs     []values.Value
	entryText    string
	entryHistory []string
	errorMessage string
}

func New(config Config) *Calculator {
	calculator := &Calculator{
		config: config,
		logger: config.Logger,
		stack:  stack.New(),
	}

	calculator.settings = newSettings(func(settings values.Settings) {
		if config.OnSettingsChanged != nil {
			config.OnSettingsChanged(settings)
		}
	})

	calculator.stack.OnChanged(func() {
		if config.OnStackChanged != nil {
			config.OnStackChanged()
		}
	})

	return calculator
}

func (c *Calculator) Stack() *stack.Stack {
	return c.stack
}

func (c *Calculator) Settings() *Settings {
	return c.settings
}

func (c *Calculator) EntryText() string {
	return c.entryText
}

func (c *Calculator) SetEntryText(text string) {
	c.entryText = text
}

// EntryHistory returns the recent entries, most recent first.
func (c *Calculator) EntryHistory() []string {
	return slices.Clone(c.entryHistory)
}

// LastArguments returns the values which the last committed command used, in push order.
func (c *Calculator) LastArguments() []values.Value {
	return slices.Clone(c.lastArgs)
}

func (c *Calculator) ErrorMessage() string {
	return c.errorMessage
}

func (c *Calculator) ClearError() {
	c.setErrorMessage("")
}

func (c *Calculator) setErrorMessage(message string) {
	if message == c.errorMessage {
		return
	}
	c.errorMessage = message
	if c.config.OnErrorMessageChanged != nil {
		c.config.OnErrorMessageChanged(message)
	}
}

// ExecuteCommand executes the command with the given name.
//
// User errors, e.g. a division by zero, are reported in the result and in the current error message.
// The returned error is only non-nil for internal errors, e.g. an unknown command name.
func (c *Calculator) ExecuteCommand(name string) (*CommandResult, error) {
	command, ok := lookupCommand(name)
	if !ok {
		return c.unknownCommand(name, false)
	}
	return c.execute(name, nil, command)
}

// ExecuteCommandWithParameter executes the variant of the command with the given name
// which takes an integer parameter.
func (c *Calculator) ExecuteCommandWithParameter(name string, parameter int) (*CommandResult, error) {
	parameterCommand, ok := lookupParameterCommand(name)
	if !ok {
		return c.unknownCommand(name, true)
	}
	return c.execute(
		name,
		&parameter,
		func(command *Command) error {
			return parameterCommand(command, parameter)
		},
	)
}

func (c *Calculator) unknownCommand(name string, hasParameter bool) (*CommandResult, error) {
	err := UnknownCommandError{
		Name:         name,
		HasParameter: hasParameter,
		Suggestion:   suggestCommand(name),
	}
	c.reportInternalError(name, err)
	return &CommandResult{
		Name: name,
		Err:  err,
	}, err
}

func (c *Calculator) execute(
	name string,
	parameter *int,
	run commandFunc,
) (
	result *CommandResult,
	err error,
) {
	result = &CommandResult{
		Name: name,
	}

	command := newCommand(c, name, result)

	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}

		if command.state == CommandStateOpen {
			command.state = CommandStateCancelled
			if err == nil {
				err = IncompleteCommandError{
					Command: name,
				}
			}
		}

		outcome := command.state.String()

		if err != nil {
			result.Err = err
			if errors.IsInternalError(err) {
				outcome = "internal error"
				c.reportInternalError(name, err)
			} else {
				outcome = "error"
				c.setErrorMessage(errorMessage(err))
				err = nil
			}
		}

		duration := time.Since(startTime)
		depth := c.stack.Count()

		event := c.logger.Debug().
			Str("command", name).
			Dur("duration", duration).
			Int("depth", depth).
			Str("outcome", outcome)
		if parameter != nil {
			event = event.Int("parameter", *parameter)
		}
		if result.Err != nil {
			event = event.AnErr("result", result.Err)
		}
		event.Msg("executed command")

		if c.config.Tracer.enabled() {
			c.config.Tracer.reportCommandTrace(name, parameter, depth, outcome, duration)
		}
	}()

	err = run(command)
	return result, err
}

func (c *Calculator) reportInternalError(name string, err error) {
	c.logger.Error().
		Err(err).
		Str("command", name).
		Msg("internal error")

	c.setErrorMessage(fmt.Sprintf("internal error: %s", errorMessage(err)))
}

// errorMessage returns the message of the error,
// followed by its secondary message, if any
func errorMessage(err error) string {
	message := err.Error()

	var secondaryError errors.SecondaryError
	if goerrors.As(err, &secondaryError) {
		secondary := secondaryError.SecondaryError()
		if secondary != "" {
			message += ". " + secondary
		}
	}

	return message
}

func recoveredError(r any) error {
	switch r := r.(type) {
	case errors.InternalError:
		return r
	case error:
		return errors.NewUnexpectedErrorFromCause(r)
	default:
		return errors.NewUnexpectedError("%v", r)
	}
}

// Save stores the settings, the stack, and the entry history in the node.
func (c *Calculator) Save(node nodes.Node) {
	c.settings.Save(node)
	c.stack.Save(node)

	node.DeleteSubNodes(entryHistoryNodeName)
	historyNode := node.AddSubNode(entryHistoryNodeName)
	for _, text := range c.entryHistory {
		historyNode.AddSubNode(entryNodeName).
			SetString(entryTextKey, text)
	}
}

// Load replaces the settings, the stack, and the entry history with the ones stored in the node.
func (c *Calculator) Load(node nodes.Node) {
	c.settings.Load(node)
	c.stack.Load(node, c.settings.Values(), c.logger)

	var history []string
	historyNode := node.GetSubNode(entryHistoryNodeName)
	if historyNode != nil {
		for _, entryNode := range historyNode.SubNodes() {
			text, ok := entryNode.GetString(entryTextKey)
			if !ok {
				continue
			}
			history = append(history, text)
		}
	}
	maxEntryHistory := c.config.maxEntryHistory()
	if len(history) > maxEntryHistory {
		history = history[:maxEntryHistory]
	}
	c.entryHistory = history
	c.lastArgs = nil
}
