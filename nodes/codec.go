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
	"encoding/json"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/pretty"
)

// EncodeYAML returns the YAML document of the node tree.
func EncodeYAML(node *MemoryNode) ([]byte, error) {
	return yaml.Marshal(node.Data())
}

func DecodeYAML(document []byte) (*MemoryNode, error) {
	var data Data
	err := yaml.Unmarshal(document, &data)
	if err != nil {
		return nil, err
	}
	return NewMemoryNodeFromData(data), nil
}

// EncodeJSON returns the JSON document of the node tree,
// indented if requested.
func EncodeJSON(node *MemoryNode, indent bool) ([]byte, error) {
	document, err := json.Marshal(node.Data())
	if err != nil {
		return nil, err
	}
	if indent {
		document = pretty.Pretty(document)
	}
	return document, nil
}

func DecodeJSON(document []byte) (*MemoryNode, error) {
	var data Data
	err := json.Unmarshal(document, &data)
	if err != nil {
		return nil, err
	}
	return NewMemoryNodeFromData(data), nil
}

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		MaxArrayElements: 1_000_000,
		MaxMapPairs:      1_000_000,
		MaxNestedLevels:  math.MaxInt16,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// EncodeCBOR returns the deterministic CBOR encoding of the node tree.
func EncodeCBOR(node *MemoryNode) ([]byte, error) {
	return CBOREncMode.Marshal(node.Data())
}

func DecodeCBOR(encoded []byte) (*MemoryNode, error) {
	var data Data
	err := CBORDecMode.Unmarshal(encoded, &data)
	if err != nil {
		return nil, err
	}
	return NewMemoryNodeFromData(data), nil
}
