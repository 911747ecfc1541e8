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

package nodes

import (
	"slices"
)

// MemoryNode is an in-memory Node.
type MemoryNode struct {
	name     string
	strings  map[string]string
	ints     map[string]int64
	subNodes []*MemoryNode
}

var _ Node = &MemoryNode{}

func NewMemoryNode(name string) *MemoryNode {
	return &MemoryNode{
		name: name,
	}
}

func (n *MemoryNode) Name() string {
	return n.name
}

func (n *MemoryNode) GetString(key string) (string, bool) {
	value, ok := n.strings[key]
	return value, ok
}

func (n *MemoryNode) SetString(key string, value string) {
	if n.strings == nil {
		n.strings = map[string]string{}
	}
	n.strings[key] = value
}

func (n *MemoryNode) GetInt(key string) (int64, bool) {
	value, ok := n.ints[key]
	return value, ok
}

func (n *MemoryNode) SetInt(key string, value int64) {
	if n.ints == nil {
		n.ints = map[string]int64{}
	}
	n.ints[key] = value
}

func (n *MemoryNode) SubNodes() []Node {
	result := make([]Node, 0, len(n.subNodes))
	for _, subNode := range n.subNodes {
		result = append(result, subNode)
	}
	return result
}

func (n *MemoryNode) GetSubNode(name string) Node {
	for _, subNode := range n.subNodes {
		if subNode.name == name {
			return subNode
		}
	}
	return nil
}

func (n *MemoryNode) GetOrCreateSubNode(name string) Node {
	subNode := n.GetSubNode(name)
	if subNode != nil {
		return subNode
	}
	return n.AddSubNode(name)
}

func (n *MemoryNode) AddSubNode(name string) Node {
	subNode := NewMemoryNode(name)
	n.subNodes = append(n.subNodes, subNode)
	return subNode
}

func (n *MemoryNode) DeleteSubNodes(name string) {
	n.subNodes = slices.DeleteFunc(n.subNodes, func(subNode *MemoryNode) bool {
		return subNode.name == name
	})
}

// Data is the serialized form of a node tree.
type Data struct {
	Name     string            `json:"name" yaml:"name" cbor:"1,keyasint"`
	Strings  map[string]string `json:"strings,omitempty" yaml:"strings,omitempty" cbor:"2,keyasint,omitempty"`
	Ints     map[string]int64  `json:"ints,omitempty" yaml:"ints,omitempty" cbor:"3,keyasint,omitempty"`
	SubNodes []Data            `json:"nodes,omitempty" yaml:"nodes,omitempty" cbor:"4,keyasint,omitempty"`
}

// Data returns the serialized form of the tree rooted at the node.
func (n *MemoryNode) Data() Data {
	data := Data{
		Name: n.name,
	}
	if len(n.strings) > 0 {
		data.Strings = make(map[string]string, len(n.strings))
		for key, value := range n.strings {
			data.Strings[key] = value
		}
	}
	if len(n.ints) > 0 {
		data.Ints = make(map[string]int64, len(n.ints))
		for key, value := range n.ints {
			data.Ints[key] = value
		}
	}
	for _, subNode := range n.subNodes {
		data.SubNodes = append(data.SubNodes, subNode.Data())
	}
	return data
}

// NewMemoryNodeFromData returns the node tree of the serialized form.
func NewMemoryNodeFromData(data Data) *MemoryNode {
	node := NewMemoryNode(data.Name)
	for key, value := range data.Strings {
		node.SetString(key, value)
	}
	for key, value := range data.Ints {
		node.SetInt(key, value)
	}
	for _, subNodeData := range data.SubNodes {
		node.subNodes = append(node.subNodes, NewMemoryNodeFromData(subNodeData))
	}
	return node
}
