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

// Package nodes provides the structured key/value tree
// which the calculator state is loaded from and saved to.
//
// A node has a name, scalar string and integer values, and an ordered list of sub-nodes.
// Sub-node names do not have to be unique, e.g. a list of stack entries.
package nodes

import (
	"fmt"
)

type Node interface {
	Name() string
	GetString(key string) (string, bool)
	SetString(key string, value string)
	GetInt(key string) (int64, bool)
	SetInt(key string, value int64)
	// SubNodes returns the sub-nodes in insertion order
	SubNodes() []Node
	// GetSubNode returns the first sub-node with the given name, or nil
	GetSubNode(name string) Node
	// GetOrCreateSubNode returns the first sub-node with the given name,
	// or adds a new one
	GetOrCreateSubNode(name string) Node
	// AddSubNode appends a new sub-node, even if one with the same name exists
	AddSubNode(name string) Node
	// DeleteSubNodes removes all sub-nodes with the given name
	DeleteSubNodes(name string)
}

// Enum is an enumeration which is stored by name.
type Enum interface {
	~uint8
	fmt.Stringer
}

// GetEnum returns the enum value stored by name under the key.
// It returns the default value if there is no value,
// or if the stored name is not one of the count values.
func GetEnum[T Enum](node Node, key string, count int, defaultValue T) T {
	name, ok := node.GetString(key)
	if !ok {
		return defaultValue
	}
	value, ok := ParseEnum[T](name, count)
	if !ok {
		return defaultValue
	}
	return value
}

// SetEnum stores the name of the enum value under the key.
func SetEnum[T Enum](node Node, key string, value T) {
	node.SetString(key, value.String())
}

// ParseEnum returns the enum value with the given name.
func ParseEnum[T Enum](name string, count int) (T, bool) {
	for i := 0; i < count; i++ {
		value := T(i)
		if value.String() == name {
			return value, true
		}
	}
	var zero T
	return zero, false
}

// GetBool returns a boolean stored as an integer.
func GetBool(node Node, key string, defaultValue bool) bool {
	value, ok := node.GetInt(key)
	if !ok {
		return defaultValue
	}
	return value != 0
}

func SetBool(node Node, key string, value bool) {
	var stored int64
	if value {
		stored = 1
	}
	node.SetInt(key, stored)
}
