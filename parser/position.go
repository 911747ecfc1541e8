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
	"github.com/rivo/uniseg"
)

// Position is a location in the entry text.
type Position struct {
	// Offset is the byte offset
	Offset int
	// Column is the number of user-perceived characters (grapheme clusters)
	// before the position, i.e. what a caret in an edit control counts
	Column int
}

func NewPosition(input string, offset int) Position {
	return Position{
		Offset: offset,
		Column: uniseg.GraphemeClusterCount(input[:offset]),
	}
}

// Range is a part of the entry text.
// EndPos is the position after the last character.
type Range struct {
	StartPos Position
	EndPos   Position
}

func (r Range) Source(input string) string {
	return input[r.StartPos.Offset:r.EndPos.Offset]
}

// Contains returns whether the offset is inside of the range, or at its end.
func (r Range) Contains(offset int) bool {
	return offset >= r.StartPos.Offset && offset <= r.EndPos.Offset
}
