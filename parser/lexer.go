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

package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/onflow/rpncalc/errors"
	"github.com/onflow/rpncalc/values"
)

const EOF rune = -1

// stateFn uses the input lexer to read runes and emit tokens.
//
// It either returns nil when reaching the end of the input,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) stateFn

type lexer struct {
	// input is the entire entry text
	input string
	// tokens contains all emitted tokens
	tokens []Token
	// startOffset is the start offset of the current word
	startOffset int
	// endOffset is the end offset of the current word
	endOffset int
	// prevEndOffset is the previous end offset, used for stepping back
	prevEndOffset int
	// current is the currently scanned rune
	current rune
	// prev is the previously scanned rune, used for stepping back
	prev rune
	// canBackup indicates whether stepping back is allowed
	canBackup bool
}

// Lex splits the entry text into tokens.
//
// Complex literals extend to the matching closing parenthesis,
// date-time literals to the matching quote,
// and all other tokens to the next whitespace.
func Lex(input string) []Token {
	l := &lexer{
		input:   input,
		current: EOF,
		prev:    EOF,
	}
	l.run(rootState)
	return l.tokens
}

// run executes the stateFn until no more stateFn is returned,
// i.e. until the end of the input is reached.
func (l *lexer) run(state stateFn) {
	for state != nil {
		state = state(l)
	}
}

// next decodes the next rune from the input.
//
// It returns EOF if it reaches the end of the input,
// otherwise returns the scanned rune.
func (l *lexer) next() rune {
	l.canBackup = true

	endOffset := l.endOffset

	// update prevEndOffset and prev so that we can step back one rune.
	l.prevEndOffset = endOffset
	l.prev = l.current

	r := EOF
	w := 0
	if endOffset < len(l.input) {
		r, w = utf8.DecodeRuneInString(l.input[endOffset:])
	}

	l.endOffset += w
	l.current = r

	return r
}

// backupOne steps back one rune.
// Can be called only once per call of next.
func (l *lexer) backupOne() {
	if !l.canBackup {
		panic(errors.NewUnreachableError())
	}
	l.canBackup = false

	l.endOffset = l.prevEndOffset
	l.current = l.prev
}

// acceptOne reads one rune ahead.
// It returns true if the next rune matches with the input rune,
// otherwise it steps back one rune and returns false.
func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

func (l *lexer) word() string {
	return l.input[l.startOffset:l.endOffset]
}

// ignore skips the current word
func (l *lexer) ignore() {
	l.startOffset = l.endOffset
}

func (l *lexer) emit(ty TokenType, terminated bool) {
	l.tokens = append(
		l.tokens,
		Token{
			Type:       ty,
			Text:       l.word(),
			Terminated: terminated,
			Range: Range{
				StartPos: NewPosition(l.input, l.startOffset),
				EndPos:   NewPosition(l.input, l.endOffset),
			},
		},
	)
	l.startOffset = l.endOffset
}

func rootState(l *lexer) stateFn {
	r := l.next()
	switch {
	case r == EOF:
		return nil
	case unicode.IsSpace(r):
		return spaceState
	case r == values.ComplexStart:
		return delimitedState(TokenComplex, values.ComplexEnd)
	case r == values.DateTimeDelimiter:
		return delimitedState(TokenDateTime, values.DateTimeDelimiter)
	case r == '#':
		return wordState(TokenBinary)
	case r == '0':
		if l.acceptOne('x') || l.acceptOne('X') {
			return wordState(TokenBinary)
		}
		return wordState(TokenUntyped)
	default:
		return wordState(TokenUntyped)
	}
}

func spaceState(l *lexer) stateFn {
	for {
		r := l.next()
		if r == EOF || !unicode.IsSpace(r) {
			l.backupOne()
			break
		}
	}
	l.ignore()
	return rootState
}

// wordState returns a stateFn that scans until the next whitespace
func wordState(ty TokenType) stateFn {
	return func(l *lexer) stateFn {
		for {
			r := l.next()
			if r == EOF {
				break
			}
			if unicode.IsSpace(r) {
				l.backupOne()
				break
			}
		}
		l.emit(ty, true)
		return rootState
	}
}

// delimitedState returns a stateFn that scans up to and including the end delimiter,
// or until the end of the input, if the delimiter is missing
func delimitedState(ty TokenType, end rune) stateFn {
	return func(l *lexer) stateFn {
		for {
			r := l.next()
			switch r {
			case EOF:
				l.emit(ty, false)
				return nil
			case end:
				l.emit(ty, true)
				return rootState
			}
		}
	}
}
