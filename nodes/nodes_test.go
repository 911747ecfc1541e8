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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/onflow/rpncalc/test_utils/common_utils"
	"github.com/onflow/rpncalc/values"
)

func newTestTree() *MemoryNode {
	root := NewMemoryNode("Calculator")
	root.SetString("AngleMode", "Degrees")
	root.SetInt("BinaryWordSize", 16)

	stack := root.AddSubNode("Stack")
	for _, text := range []string{"1", "2/3", "(1,2)"} {
		entry := stack.AddSubNode("Entry")
		entry.SetString("EntryValue", text)
	}
	return root
}

func TestMemoryNode(t *testing.T) {

	t.Parallel()

	t.Run("scalars", func(t *testing.T) {
		t.Parallel()

		node := NewMemoryNode("Settings")
		assert.Equal(t, "Settings", node.Name())

		_, ok := node.GetString("missing")
		assert.False(t, ok)

		_, ok = node.GetInt("missing")
		assert.False(t, ok)

		node.SetString("Name", "a")
		node.SetString("Name", "b")
		value, ok := node.GetString("Name")
		require.True(t, ok)
		assert.Equal(t, "b", value)

		node.SetInt("Count", -3)
		count, ok := node.GetInt("Count")
		require.True(t, ok)
		assert.Equal(t, int64(-3), count)
	})

	t.Run("sub-nodes keep order and allow duplicate names", func(t *testing.T) {
		t.Parallel()

		root := newTestTree()
		stack := root.GetSubNode("Stack")
		require.NotNil(t, stack)

		entries := stack.SubNodes()
		require.Len(t, entries, 3)

		var texts []string
		for _, entry := range entries {
			assert.Equal(t, "Entry", entry.Name())
			text, _ := entry.GetString("EntryValue")
			texts = append(texts, text)
		}
		assert.Equal(t, []string{"1", "2/3", "(1,2)"}, texts)

		first, _ := stack.GetSubNode("Entry").GetString("EntryValue")
		assert.Equal(t, "1", first)
	})

	t.Run("get or create", func(t *testing.T) {
		t.Parallel()

		root := NewMemoryNode("Calculator")
		assert.Nil(t, root.GetSubNode("Stack"))

		created := root.GetOrCreateSubNode("Stack")
		found := root.GetOrCreateSubNode("Stack")
		assert.Same(t, created, found)
		assert.Len(t, root.SubNodes(), 1)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		root := newTestTree()
		root.AddSubNode("Other")
		root.DeleteSubNodes("Stack")

		subNodes := root.SubNodes()
		require.Len(t, subNodes, 1)
		assert.Equal(t, "Other", subNodes[0].Name())
	})
}

func TestEnums(t *testing.T) {

	t.Parallel()

	node := NewMemoryNode("Settings")

	assert.Equal(t,
		values.AngleModeRadians,
		GetEnum(node, "AngleMode", values.AngleModeCount, values.AngleModeRadians),
	)

	SetEnum(node, "AngleMode", values.AngleModeGrads)
	name, _ := node.GetString("AngleMode")
	assert.Equal(t, "Grads", name)
	assert.Equal(t,
		values.AngleModeGrads,
		GetEnum(node, "AngleMode", values.AngleModeCount, values.AngleModeRadians),
	)

	node.SetString("AngleMode", "Turns")
	assert.Equal(t,
		values.AngleModeDegrees,
		GetEnum(node, "AngleMode", values.AngleModeCount, values.AngleModeDegrees),
	)

	_, ok := ParseEnum[values.ValueType]("Complex", values.ValueTypeCount)
	assert.True(t, ok)

	assert.True(t, GetBool(node, "Tracing", true))
	SetBool(node, "Tracing", false)
	assert.False(t, GetBool(node, "Tracing", true))
}

func TestCodecs(t *testing.T) {

	t.Parallel()

	type codec struct {
		name   string
		encode func(*MemoryNode) ([]byte, error)
		decode func([]byte) (*MemoryNode, error)
	}

	codecs := []codec{
		{
			name:   "YAML",
			encode: EncodeYAML,
			decode: DecodeYAML,
		},
		{
			name: "JSON",
			encode: func(node *MemoryNode) ([]byte, error) {
				return EncodeJSON(node, true)
			},
			decode: DecodeJSON,
		},
		{
			name:   "CBOR",
			encode: EncodeCBOR,
			decode: DecodeCBOR,
		},
	}

	for _, codec := range codecs {
		t.Run(codec.name, func(t *testing.T) {
			t.Parallel()

			tree := newTestTree()

			encoded, err := codec.encode(tree)
			require.NoError(t, err)

			decoded, err := codec.decode(encoded)
			require.NoError(t, err)

			AssertEqualWithDiff(t, tree.Data(), decoded.Data())
		})
	}

	t.Run("CBOR is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := EncodeCBOR(newTestTree())
		require.NoError(t, err)

		second, err := EncodeCBOR(newTestTree())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeYAML([]byte("name: [unterminated"))
		require.Error(t, err)
	})
}
