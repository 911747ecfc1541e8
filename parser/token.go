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
	"github.com/onflow/rpncalc/errors"
)

type TokenType uint8

const (
	// TokenUntyped is a token whose value type is determined while parsing
	TokenUntyped TokenType = iota
	TokenBinary
	TokenComplex
	TokenDateTime
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenUntyped:
		return "untyped"
	case TokenBinary:
		return "binary"
	case TokenComplex:
		return "complex"
	case TokenDateTime:
		return "date-time"
	default:
		panic(errors.NewUnreachableError())
	}
}

type Token struct {
	Range
	Text string
	Type TokenType
	// Terminated is false for a complex or date-time token
	// which is missing its closing delimiter
	Terminated bool
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}
