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

// Package parser parses the entry line of the calculator,
// i.e. free-form text containing any number of values separated by whitespace.
package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/values"
)

// EntryLine is the result of parsing an entry line.
type EntryLine struct {
	// Text is the normalized entry text which positions refer to
	Text   string
	Tokens []Token
	// Values are the values of the tokens, up to the first invalid token
	Values []values.Value
	// Err is nil if all tokens were parsed successfully
	Err *InvalidTokenError
}

// Parse tokenizes and parses the entry text.
//
// Parsing stops at the first token which cannot be parsed.
// Binary and complex values are parsed according to the settings.
func Parse(text string, settings values.Settings) *EntryLine {
	text = norm.NFC.String(text)

	entryLine := &EntryLine{
		Text:   text,
		Tokens: Lex(text),
	}

	for _, token := range entryLine.Tokens {
		value, err := parseToken(token, settings)
		if err != nil {
			entryLine.Err = &InvalidTokenError{
				Token: token,
				Err:   err,
			}
			break
		}
		entryLine.Values = append(entryLine.Values, value)
	}

	return entryLine
}

func parseToken(token Token, settings values.Settings) (values.Value, error) {
	switch token.Type {
	case TokenBinary:
		return values.ParseBinary(token.Text, settings)

	case TokenComplex:
		return values.ParseComplex(token.Text, settings)

	case TokenDateTime:
		return values.ParseDateTime(token.Text)

	case TokenUntyped:
		if strings.ContainsRune(token.Text, values.FractionSeparator) {
			return values.ParseFraction(token.Text)
		}

		// Integer before TimeSpan, so a bare integer is not read as days,
		// and before Double, so integers are not widened
		var err error
		for _, valueType := range untypedCandidates {
			var value values.Value
			value, err = values.Parse(valueType, token.Text, settings)
			if err == nil {
				return value, nil
			}
		}
		return nil, err
	}

	panic(errors.NewUnreachableError())
}

var untypedCandidates = []values.ValueType{
	values.ValueTypeInteger,
	values.ValueTypeTimeSpan,
	values.ValueTypeDouble,
}

// IsEmpty returns true if the entry line has no tokens, i.e. only whitespace.
func (e *EntryLine) IsEmpty() bool {
	return len(e.Tokens) == 0
}

// IsComplete returns true if every token was parsed to a value.
func (e *EntryLine) IsComplete() bool {
	return e.Err == nil
}

func (e *EntryLine) HasError() bool {
	return e.Err != nil
}

// ErrorTokenIndex returns the index of the first invalid token, or -1.
func (e *EntryLine) ErrorTokenIndex() int {
	if e.Err == nil {
		return -1
	}
	return len(e.Values)
}

// ErrorRange returns the range of the first invalid token.
func (e *EntryLine) ErrorRange() (Range, bool) {
	if e.Err == nil {
		return Range{}, false
	}
	return e.Err.Token.Range, true
}

func (e *EntryLine) lastToken() (Token, bool) {
	if len(e.Tokens) == 0 {
		return Token{}, false
	}
	return e.Tokens[len(e.Tokens)-1], true
}

// InComplex returns true if the last token opens a complex value
// which is not closed yet, e.g. "(3,4".
func (e *EntryLine) InComplex() bool {
	token, ok := e.lastToken()
	return ok && token.Is(TokenComplex) && !token.Terminated
}

// InDateTime returns true if the last token opens a date-time value
// which is not closed yet.
func (e *EntryLine) InDateTime() bool {
	token, ok := e.lastToken()
	return ok && token.Is(TokenDateTime) && !token.Terminated
}

// IsMidNegatableScalar returns true if the text before the caret
// ends inside of a numeric literal whose sign can be toggled.
//
// The caret is a byte offset into Text, which is NFC-normalized and may differ
// in length from the text passed to Parse. Callers holding a caret into
// the raw entry text must map it with NormalizeCaret first.
func (e *EntryLine) IsMidNegatableScalar(caret int) bool {
	_, ok := NegatableScalarSignOffset(e.Text, caret)
	return ok
}

// NormalizeCaret maps a byte offset into the raw entry text to the
// corresponding byte offset into the NFC-normalized Text.
// Carets outside of the raw text are clamped to its bounds.
func NormalizeCaret(raw string, caret int) int {
	caret = max(0, min(caret, len(raw)))
	for caret > 0 && caret < len(raw) && !utf8.RuneStart(raw[caret]) {
		caret--
	}
	return len(norm.NFC.String(raw[:caret]))
}
