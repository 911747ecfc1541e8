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

package stack

import (
	"github.com/rs/zerolog"

	"github.com/onflow/rpncalc/nodes"
	"github.com/onflow/rpncalc/values"
)

const (
	StackNodeName = "Stack"
	EntryNodeName = "Entry"
	ValueTypeKey  = "ValueType"
	EntryValueKey = "EntryValue"
)

// Save stores the values in a "Stack" sub-node of the given node,
// bottom to top, replacing any previously saved stack.
func (s *Stack) Save(node nodes.Node) {
	node.DeleteSubNodes(StackNodeName)
	stackNode := node.AddSubNode(StackNodeName)

	for _, value := range s.values {
		entryNode := stackNode.AddSubNode(EntryNodeName)
		nodes.SetEnum(entryNode, ValueTypeKey, value.ValueType())
		entryNode.SetString(EntryValueKey, value.EntryText())
	}
}

// Load replaces the values with the ones stored in the "Stack" sub-node of the given node.
//
// Entries which cannot be parsed, e.g. because they were saved by a different version,
// are skipped and logged.
func (s *Stack) Load(node nodes.Node, settings values.Settings, logger zerolog.Logger) {
	var loaded []values.Value

	stackNode := node.GetSubNode(StackNodeName)
	if stackNode != nil {
		for index, entryNode := range stackNode.SubNodes() {
			value, err := loadEntry(entryNode, settings)
			if err != nil {
				logger.Warn().
					Err(err).
					Int("index", index).
					Msg("skipping stack entry")
				continue
			}
			loaded = append(loaded, value)
		}
	}

	if len(s.values) == 0 && len(loaded) == 0 {
		return
	}
	s.truncate(len(s.values))
	s.append(loaded...)
	s.changed()
}

func loadEntry(entryNode nodes.Node, settings values.Settings) (values.Value, error) {
	typeName, ok := entryNode.GetString(ValueTypeKey)
	if !ok {
		return nil, MissingEntryKeyError{Key: ValueTypeKey}
	}
	valueType, ok := values.ValueTypeFromName(typeName)
	if !ok {
		return nil, UnknownValueTypeError{Name: typeName}
	}

	text, ok := entryNode.GetString(EntryValueKey)
	if !ok {
		return nil, MissingEntryKeyError{Key: EntryValueKey}
	}

	return values.Parse(valueType, text, settings)
}
