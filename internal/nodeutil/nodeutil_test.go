package nodeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func parseNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return Root(&doc)
}

func TestRoot(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`{"a": 1}`), &doc))

	assert.Equal(t, yaml.DocumentNode, doc.Kind)
	root := Root(&doc)
	assert.Equal(t, yaml.MappingNode, root.Kind)

	// Non-document nodes pass through unchanged
	assert.Same(t, root, Root(root))
	assert.Nil(t, Root(nil))
}

func TestMapGet(t *testing.T) {
	node := parseNode(t, `{"type": "object", "nullable": true}`)

	typ := MapGet(node, "type")
	require.NotNil(t, typ)
	assert.Equal(t, "object", typ.Value)

	assert.Nil(t, MapGet(node, "missing"))
	assert.Nil(t, MapGet(nil, "type"))
	assert.Nil(t, MapGet(StringScalar("x"), "type"))
}

func TestMapSet(t *testing.T) {
	t.Run("replace keeps key position", func(t *testing.T) {
		node := parseNode(t, `{"a": 1, "b": 2, "c": 3}`)
		MapSet(node, "b", StringScalar("replaced"))

		assert.Equal(t, []string{"a", "b", "c"}, Keys(node))
		assert.Equal(t, "replaced", MapGet(node, "b").Value)
	})

	t.Run("append adds new pair at the end", func(t *testing.T) {
		node := parseNode(t, `{"a": 1}`)
		MapSet(node, "nullable", BoolScalar(true))

		assert.Equal(t, []string{"a", "nullable"}, Keys(node))
		assert.Equal(t, "true", MapGet(node, "nullable").Value)
		assert.Equal(t, "!!bool", MapGet(node, "nullable").Tag)
	})

	t.Run("set twice is stable", func(t *testing.T) {
		node := parseNode(t, `{"a": 1}`)
		MapSet(node, "nullable", BoolScalar(true))
		MapSet(node, "nullable", BoolScalar(true))

		assert.Equal(t, []string{"a", "nullable"}, Keys(node))
	})
}

func TestKeysPreserveDocumentOrder(t *testing.T) {
	node := parseNode(t, `{"zebra": 1, "apple": 2, "mango": 3}`)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, Keys(node))
}

func TestIndex(t *testing.T) {
	node := parseNode(t, `{"a": "x", "b": "y"}`)
	idx := Index(node)

	require.Len(t, idx, 2)
	assert.Equal(t, "x", idx["a"].Value)
	assert.Nil(t, Index(StringScalar("not a map")))
}

func TestStringSequence(t *testing.T) {
	seq := StringSequence("string", "null")

	require.Equal(t, yaml.SequenceNode, seq.Kind)
	require.Len(t, seq.Content, 2)
	assert.True(t, SequenceContains(seq, "null"))
	assert.False(t, SequenceContains(seq, "object"))
}

func TestIsStringScalar(t *testing.T) {
	assert.True(t, IsStringScalar(StringScalar("string"), "string"))
	assert.False(t, IsStringScalar(StringScalar("string"), "object"))
	assert.False(t, IsStringScalar(BoolScalar(true), "true"))
	assert.False(t, IsStringScalar(nil, "string"))
}

func TestEncodeJSONPreservesOrder(t *testing.T) {
	var doc yaml.Node
	src := `{"zebra":{"type":"object"},"apple":[1,2.5,true,null],"mango":"s"}`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	out, err := EncodeJSON(&doc)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestEncodeJSONEscapesStrings(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`{"a":"line\nbreak \"quoted\""}`), &doc))

	out, err := EncodeJSON(&doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"line\nbreak \"quoted\""}`, string(out))
}

func TestEncodeJSONIndent(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`{"a":1}`), &doc))

	out, err := EncodeJSONIndent(&doc, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(out))
}

func TestEncodeJSONRejectsNonFiniteFloats(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a: .inf"), &doc))

	_, err := EncodeJSON(&doc)
	assert.Error(t, err)
}
